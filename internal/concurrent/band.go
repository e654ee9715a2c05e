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

import "sync"

// band is one priority-segregated MPMC task queue inside a Pool: any
// number of submitters push, any worker can try a non-blocking pop.
// Strict inter-producer FIFO is not required by spec (§4.5), only FIFO
// as observed across pushes serialized by the band's own mutex, so a
// plain mutex-guarded slice satisfies the contract without needing a
// hand-rolled lock-free ring.
type band struct {
	mu    sync.Mutex
	items []*task

	// trailing pad keeps adjacent bands in Pool.bands from sharing a
	// cache line (spec §5's "each banded queue's head/tail should be
	// aligned to a typical cache line").
	_ cacheLinePad
}

// push appends t to the tail.
func (b *band) push(t *task) {
	b.mu.Lock()
	b.items = append(b.items, t)
	b.mu.Unlock()
}

// tryPop removes and returns the oldest task, or reports false if the
// band is currently empty. Never blocks.
func (b *band) tryPop() (*task, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.items) == 0 {
		return nil, false
	}
	t := b.items[0]
	b.items[0] = nil
	b.items = b.items[1:]
	return t, true
}

func (b *band) len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}
