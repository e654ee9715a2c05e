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
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConcurrentQueueDefaultsToNormalOnDefaultPool(t *testing.T) {
	q := NewConcurrentQueue()
	defer q.Close()
	assert.Equal(t, Normal, q.Priority())
	assert.Equal(t, "queue", q.Label())
}

func TestConcurrentQueueStealRunsOneStep(t *testing.T) {
	p := NewNamedPool("steal", 1)
	defer p.Close()

	blocker := make(chan struct{})
	p.Submit(func() { <-blocker })
	time.Sleep(20 * time.Millisecond) // worker now stuck in blocker

	q := NewConcurrentQueueWith(p, "steal-queue", Normal)
	var ran int64
	q.Enqueue(func() { atomic.AddInt64(&ran, 1) })

	// the sole worker is blocked, so only a Steal() on the calling
	// goroutine can make this task execute.
	assert.Eventually(t, func() bool {
		q.Steal()
		return atomic.LoadInt64(&ran) == 1
	}, time.Second, time.Millisecond)

	close(blocker)
}

func TestConcurrentQueueStealNoopWhenEmpty(t *testing.T) {
	p := NewNamedPool("steal-empty", 2)
	defer p.Close()

	q := NewConcurrentQueueWith(p, "empty", Normal)
	assert.False(t, q.Steal())
}

func TestConcurrentQueueStatsTrackCompletion(t *testing.T) {
	p := NewNamedPool("stats", 2)
	defer p.Close()

	q := NewConcurrentQueueWith(p, "stats", Normal)
	for i := 0; i < 10; i++ {
		q.Enqueue(func() {})
	}
	q.Wait()

	snap := q.Stats()
	assert.EqualValues(t, 10, snap.Submitted)
	assert.EqualValues(t, 10, snap.Completed)
}
