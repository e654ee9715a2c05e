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

import (
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/corepool/dispatch/internal/errs"
	"github.com/corepool/dispatch/internal/stats"
	"github.com/corepool/dispatch/internal/xlog"
)

// SerialQueue executes submitted closures strictly in submission order on
// a single, private worker goroutine. It is independent of Pool (spec
// §4.3).
type SerialQueue struct {
	name string

	mu       sync.Mutex
	deque    []closure
	waitCond *sync.Cond

	workerWake chan struct{}
	stopCh     chan struct{}
	done       chan struct{}
	stopped    atomic.Bool
	count      atomic.Int64

	logger taskLogger
	stats  stats.Counters
}

// NewSerialQueue creates a SerialQueue with a default label.
func NewSerialQueue() *SerialQueue {
	return NewSerialQueueWith("serial")
}

// NewSerialQueueWith creates a SerialQueue with the given diagnostic
// label and starts its dedicated worker goroutine.
func NewSerialQueueWith(label string) *SerialQueue {
	s := &SerialQueue{
		name:       label,
		workerWake: make(chan struct{}, 1),
		stopCh:     make(chan struct{}),
		done:       make(chan struct{}),
		logger:     xlog.GetLogger("SerialQueue", label),
	}
	s.waitCond = sync.NewCond(&s.mu)
	go s.run()
	return s
}

// Label returns the queue's diagnostic label.
func (s *SerialQueue) Label() string { return s.name }

// Pending returns the number of closures queued or executing.
func (s *SerialQueue) Pending() int64 { return s.count.Load() }

// Stats returns a diagnostic snapshot for this queue.
func (s *SerialQueue) Stats() stats.Snapshot { return s.stats.Snapshot() }

// Enqueue appends fn to the back of the deque and wakes the worker. The
// counter is incremented before fn becomes visible to the worker, same
// discipline as Pool.SubmitTo.
func (s *SerialQueue) Enqueue(fn func()) {
	s.count.Inc()
	s.stats.Submitted.Inc()

	s.mu.Lock()
	s.deque = append(s.deque, fn)
	s.mu.Unlock()

	select {
	case s.workerWake <- struct{}{}:
	default:
	}
}

// Cancel clears the pending deque without interrupting an already-running
// closure (spec §4.3).
func (s *SerialQueue) Cancel() {
	s.mu.Lock()
	n := int64(len(s.deque))
	s.deque = nil
	s.mu.Unlock()

	if n > 0 {
		s.count.Sub(n)
		s.stats.Cancelled.Add(uint64(n))
	}

	s.mu.Lock()
	s.waitCond.Broadcast()
	s.mu.Unlock()
}

// Wait blocks the caller until the pending count reaches zero.
func (s *SerialQueue) Wait() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.count.Load() > 0 {
		s.waitCond.Wait()
	}
}

// Close waits for the queue to drain, then stops and joins the worker
// goroutine.
func (s *SerialQueue) Close() {
	s.Wait()
	if s.stopped.Swap(true) {
		return
	}
	close(s.stopCh)
	<-s.done
}

func (s *SerialQueue) run() {
	defer close(s.done)
	for {
		s.mu.Lock()
		for len(s.deque) == 0 {
			// Idle: deque empty, release any Wait() callers and either
			// exit (Stopped) or sleep until woken (spec §4.3 state
			// machine).
			s.waitCond.Broadcast()
			if s.stopped.Load() {
				s.mu.Unlock()
				return
			}
			s.mu.Unlock()
			select {
			case <-s.workerWake:
			case <-s.stopCh:
			}
			s.mu.Lock()
		}
		fn := s.deque[0]
		s.deque[0] = nil
		s.deque = s.deque[1:]
		s.mu.Unlock()

		s.execute(fn)

		s.count.Dec()
		s.mu.Lock()
		s.waitCond.Broadcast()
		s.mu.Unlock()
	}
}

func (s *SerialQueue) execute(fn closure) {
	start := time.Now()
	func() {
		defer func() {
			if r := recover(); r != nil {
				err := errs.Recovered(r)
				s.stats.Panicked.Inc()
				s.logger.Error("panic while executing task",
					xlog.Error(err), xlog.Stack())
			}
		}()
		fn()
	}()
	s.stats.Run.Observe(time.Since(start))
	s.stats.Completed.Inc()
}
