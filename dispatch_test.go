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

package dispatch_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corepool/dispatch"
)

func TestDefaultPoolIsSharedAndSized(t *testing.T) {
	p1 := dispatch.DefaultPool()
	p2 := dispatch.DefaultPool()
	assert.Same(t, p1, p2)
	assert.GreaterOrEqual(t, p1.Size(), 1)
}

func TestConcurrentQueueEndToEnd(t *testing.T) {
	pool := dispatch.NewPool(4)
	defer pool.Close()

	q := dispatch.NewConcurrentQueueWith(pool, "e2e", dispatch.High)
	var n int64
	for i := 0; i < 100; i++ {
		q.Enqueue(func() { atomic.AddInt64(&n, 1) })
	}
	q.Wait()
	assert.EqualValues(t, 100, n)
}

func TestSerialQueueEndToEnd(t *testing.T) {
	s := dispatch.NewSerialQueue()
	defer s.Close()

	var order []int
	for i := 0; i < 20; i++ {
		i := i
		s.Enqueue(func() { order = append(order, i) })
	}
	s.Wait()

	require.Len(t, order, 20)
	for i, v := range order {
		assert.Equal(t, i, v)
	}
}

func TestTicketQueueEndToEnd(t *testing.T) {
	pool := dispatch.NewPool(4)
	defer pool.Close()
	tq := dispatch.NewTicketQueue()
	defer tq.Close()

	var result []int
	for i := 0; i < 50; i++ {
		ticket := tq.Acquire()
		i := i
		pool.Submit(func() {
			time.Sleep(time.Duration(50-i) * time.Microsecond)
			ticket.Consume(func() { result = append(result, i) })
		})
	}
	tq.Wait()

	require.Len(t, result, 50)
	for i, v := range result {
		assert.Equal(t, i, v)
	}
}
