// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - maintain a set of background processes
//
// a list of processes to start and a way to shut them all down
package background

import (
	"time"
)

// Process - type signature for background process
// and type that implements this Run is a process
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle type for the stop
type T struct {
	finished chan struct{}
	shutdown chan struct{}
	count    int
}

// maximum time before give up on a shutdown
const shutdownTimeout = 5 * time.Second

// Start - start up a set of background processes
// all with the same arg value
func Start(processes Processes, args interface{}) *T {

	register := new(T)
	register.count = len(processes)
	register.finished = make(chan struct{}, len(processes))
	register.shutdown = make(chan struct{})

	// start each background
	for _, p := range processes {
		go func(p Process) {
			// pass the shutdown to the Run loop
			// to obtain a clean shutdown
			p.Run(args, register.shutdown)
			register.finished <- struct{}{}
		}(p)
	}
	return register
}

// Stop - stop a set of background processes
func (t *T) Stop() {

	if nil == t {
		return
	}

	// shutdown all background tasks
	close(t.shutdown)

	// wait for shutdown of all tasks
	// a stuck process is abandoned rather than blocking the caller
	for i := 0; i < t.count; i += 1 {
		select {
		case <-t.finished:
		case <-time.After(shutdownTimeout):
			return
		}
	}
}
