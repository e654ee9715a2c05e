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

// Command dispatchctl is a manual exercise tool for the dispatch core. It
// is not part of the library surface (spec §6: the core has no CLI of
// its own); it just drives a Pool and a couple of front-ends so a
// developer can watch priority preemption and drain behavior.
package main

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	_ "go.uber.org/automaxprocs" // set GOMAXPROCS from the container CPU quota at start-up

	"github.com/corepool/dispatch"
)

var workers int

func main() {
	root := &cobra.Command{
		Use:   "dispatchctl",
		Short: "Exercise the dispatch core's Pool and front-ends by hand",
	}
	root.PersistentFlags().IntVar(&workers, "workers", runtime.NumCPU(), "worker count for the scenario's Pool")

	root.AddCommand(newPriorityCmd(), newDrainCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newPriorityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "priority",
		Short: "Submit a slow Low task then a High task, and report completion order",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool := dispatch.NewPool(workers)
			defer pool.Close()

			low := dispatch.NewConcurrentQueueWith(pool, "low", dispatch.Low)
			high := dispatch.NewConcurrentQueueWith(pool, "high", dispatch.High)

			var order []string
			var mu sync.Mutex
			record := func(name string) {
				mu.Lock()
				order = append(order, name)
				mu.Unlock()
			}

			low.Enqueue(func() {
				time.Sleep(100 * time.Millisecond)
				record("low")
			})
			time.Sleep(5 * time.Millisecond)
			high.Enqueue(func() {
				record("high")
			})

			low.Wait()
			high.Wait()

			fmt.Println("completion order:", order)
			return nil
		},
	}
}

func newDrainCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "drain",
		Short: "Enqueue N tasks incrementing a counter and cooperatively wait for them",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool := dispatch.NewPool(workers)
			defer pool.Close()

			q := dispatch.NewConcurrentQueueWith(pool, "drain", dispatch.Normal)
			var counter int64
			for i := 0; i < n; i++ {
				q.Enqueue(func() { atomic.AddInt64(&counter, 1) })
			}
			q.Wait()
			fmt.Printf("completed %d/%d tasks\n", atomic.LoadInt64(&counter), n)
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "count", 10000, "number of tasks to submit")
	return cmd
}
