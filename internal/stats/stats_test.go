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

package stats

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLatencyMeanAndStd(t *testing.T) {
	var l Latency
	l.Observe(1 * time.Microsecond)
	l.Observe(2 * time.Microsecond)
	l.Observe(3 * time.Microsecond)

	n, mean, std := l.Snapshot()
	assert.EqualValues(t, 3, n)
	assert.InDelta(t, 2.0, mean, 1e-9)
	assert.InDelta(t, 1.0, std, 1e-9)
}

func TestLatencyEmptySnapshot(t *testing.T) {
	var l Latency
	n, mean, std := l.Snapshot()
	assert.Zero(t, n)
	assert.Zero(t, mean)
	assert.Zero(t, std)
}

func TestCountersSnapshot(t *testing.T) {
	var c Counters
	c.Submitted.Add(5)
	c.Completed.Add(3)
	c.Cancelled.Add(1)
	c.Panicked.Add(1)
	c.Wait.Observe(10 * time.Microsecond)
	c.Run.Observe(20 * time.Microsecond)

	snap := c.Snapshot()
	assert.EqualValues(t, 5, snap.Submitted)
	assert.EqualValues(t, 3, snap.Completed)
	assert.EqualValues(t, 1, snap.Cancelled)
	assert.EqualValues(t, 1, snap.Panicked)
	assert.EqualValues(t, 1, snap.WaitCount)
	assert.False(t, math.IsNaN(snap.WaitMeanUs))
}
