// Licensed to LinDB under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. LinDB licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package concurrent

import "github.com/corepool/dispatch/internal/stats"

// ConcurrentQueue is a thin owner of a QueueHandle in a Pool plus a
// convenient submission surface (spec §4.2).
type ConcurrentQueue struct {
	pool   *Pool
	handle *QueueHandle
}

// NewConcurrentQueue binds to Default() at Normal priority with a default
// label.
func NewConcurrentQueue() *ConcurrentQueue {
	return NewConcurrentQueueWith(Default(), "queue", Normal)
}

// NewConcurrentQueueWith binds to pool with the given label and priority.
func NewConcurrentQueueWith(pool *Pool, label string, priority Priority) *ConcurrentQueue {
	return &ConcurrentQueue{pool: pool, handle: pool.NewHandle(label, priority)}
}

// Enqueue packages fn and submits it to the pool on this queue's handle.
func (q *ConcurrentQueue) Enqueue(fn func()) {
	q.pool.SubmitTo(q.handle, fn)
}

// Steal performs one pool dequeue-and-run step on the caller's goroutine.
// It is a no-op (returns false) if every band is currently empty. Callers
// that would otherwise block on Wait can call Steal to make progress on
// whatever work happens to be available, not just their own.
func (q *ConcurrentQueue) Steal() bool {
	return q.pool.tryStep()
}

// Wait cooperatively drains this queue's handle (spec §4.2).
func (q *ConcurrentQueue) Wait() {
	q.pool.Drain(q.handle)
}

// Cancel abandons this queue's pending tasks (spec §4.2, §8 invariant 5).
func (q *ConcurrentQueue) Cancel() {
	q.pool.Cancel(q.handle)
}

// Close waits for the handle to quiesce, matching the destructor contract
// in spec §4.2 ("wait() implicitly; the handle must be quiescent before
// it is destroyed").
func (q *ConcurrentQueue) Close() {
	q.Wait()
}

// Label returns the queue's diagnostic label.
func (q *ConcurrentQueue) Label() string { return q.handle.Label() }

// Priority returns the queue's priority band.
func (q *ConcurrentQueue) Priority() Priority { return q.handle.Priority() }

// Pending returns the number of tasks currently queued or executing on
// this queue's handle.
func (q *ConcurrentQueue) Pending() int64 { return q.handle.Pending() }

// Stats returns a diagnostic snapshot for this queue's handle.
func (q *ConcurrentQueue) Stats() stats.Snapshot { return q.handle.Stats() }
