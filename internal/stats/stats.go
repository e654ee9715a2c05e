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

// Package stats provides the atomic counters and online latency moments
// the dispatch core's front-ends expose for diagnostics. It plays the role
// of the teacher's unretrieved metrics.ConcurrentStatistics type, built on
// go.uber.org/atomic rather than reconstructing an unseen dependency.
package stats

import (
	"math"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// Latency accumulates running mean/stddev of a duration series using
// Welford's online algorithm, same approach as the teacher's hand-rolled
// stat type in the priority-pool reference (Guti2010-Proyecto-SO).
type Latency struct {
	mu   sync.Mutex
	n    int64
	mean float64
	m2   float64
}

// Observe folds one duration sample into the running moments.
func (l *Latency) Observe(d time.Duration) {
	x := float64(d.Microseconds())
	l.mu.Lock()
	defer l.mu.Unlock()
	l.n++
	delta := x - l.mean
	l.mean += delta / float64(l.n)
	delta2 := x - l.mean
	l.m2 += delta * delta2
}

// Snapshot returns the sample count, mean, and standard deviation in
// microseconds.
func (l *Latency) Snapshot() (count int64, meanMicros, stdMicros float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	count = l.n
	meanMicros = l.mean
	if l.n > 1 {
		variance := l.m2 / float64(l.n-1)
		if variance > 0 {
			stdMicros = math.Sqrt(variance)
		}
	}
	return
}

// Counters are the atomic submission/completion tallies for a single Pool
// or front-end, mirroring the fields the teacher's pool.go threaded
// through an unretrieved metrics.ConcurrentStatistics value
// (TasksConsumed, TasksRejected, TasksPanic, WorkersAlive, ...).
type Counters struct {
	Submitted atomic.Uint64
	Completed atomic.Uint64
	Cancelled atomic.Uint64
	Panicked  atomic.Uint64

	Wait Latency
	Run  Latency
}

// Snapshot is a point-in-time, serialization-friendly view of Counters.
type Snapshot struct {
	Submitted uint64
	Completed uint64
	Cancelled uint64
	Panicked  uint64

	WaitCount  int64
	WaitMeanUs float64
	WaitStdUs  float64

	RunCount  int64
	RunMeanUs float64
	RunStdUs  float64
}

// Snapshot takes a consistent-enough read of the counters for diagnostics.
// It is not transactionally consistent across fields: each counter is read
// atomically and each latency series under its own lock, one at a time.
func (c *Counters) Snapshot() Snapshot {
	waitN, waitMean, waitStd := c.Wait.Snapshot()
	runN, runMean, runStd := c.Run.Snapshot()
	return Snapshot{
		Submitted:  c.Submitted.Load(),
		Completed:  c.Completed.Load(),
		Cancelled:  c.Cancelled.Load(),
		Panicked:   c.Panicked.Load(),
		WaitCount:  waitN,
		WaitMeanUs: waitMean,
		WaitStdUs:  waitStd,
		RunCount:   runN,
		RunMeanUs:  runMean,
		RunStdUs:   runStd,
	}
}
