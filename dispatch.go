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

// Package dispatch is the work-dispatch core of a general-purpose
// computation library: a shared worker pool plus three user-facing
// submission front-ends built on top of it (ConcurrentQueue, SerialQueue,
// TicketQueue). See the package-level docs in internal/concurrent for the
// implementation; this file is the public, stable surface.
package dispatch

import "github.com/corepool/dispatch/internal/concurrent"

// Priority is one of three totally-ordered dispatch bands.
type Priority = concurrent.Priority

const (
	High   = concurrent.High
	Normal = concurrent.Normal
	Low    = concurrent.Low
)

// Pool is a fixed-size set of worker goroutines dequeuing tasks from
// three priority-banded queues.
type Pool = concurrent.Pool

// NewPool creates a pool with exactly size worker goroutines.
func NewPool(size int) *Pool { return concurrent.NewPool(size) }

// DefaultPool returns the process-wide shared Pool, sized to
// max(runtime.NumCPU(), 1).
func DefaultPool() *Pool { return concurrent.Default() }

// QueueHandle is the pool-side identity of a logical group of tasks.
type QueueHandle = concurrent.QueueHandle

// ConcurrentQueue is a priority-aware, order-independent submission
// front-end with cooperative draining.
type ConcurrentQueue = concurrent.ConcurrentQueue

// NewConcurrentQueue binds to DefaultPool() at Normal priority.
func NewConcurrentQueue() *ConcurrentQueue { return concurrent.NewConcurrentQueue() }

// NewConcurrentQueueWith binds to pool with the given label and priority.
func NewConcurrentQueueWith(pool *Pool, label string, priority Priority) *ConcurrentQueue {
	return concurrent.NewConcurrentQueueWith(pool, label, priority)
}

// SerialQueue executes submitted closures strictly in submission order on
// a dedicated worker goroutine, independent of any Pool.
type SerialQueue = concurrent.SerialQueue

// NewSerialQueue creates a SerialQueue with a default label.
func NewSerialQueue() *SerialQueue { return concurrent.NewSerialQueue() }

// NewSerialQueueWith creates a SerialQueue with the given diagnostic
// label.
func NewSerialQueueWith(label string) *SerialQueue { return concurrent.NewSerialQueueWith(label) }

// TicketQueue sequences the completion of concurrently computed results
// in the order their tickets were acquired.
type TicketQueue = concurrent.TicketQueue

// Ticket is a reference-counted reservation on a TicketQueue.
type Ticket = concurrent.Ticket

// NewTicketQueue creates a TicketQueue and starts its consumer goroutine.
func NewTicketQueue() *TicketQueue { return concurrent.NewTicketQueue() }

// NewTicketQueueWith creates a TicketQueue with the given diagnostic
// label.
func NewTicketQueueWith(label string) *TicketQueue { return concurrent.NewTicketQueueWith(label) }
