// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - event broadcasting
//
// drains the internal message bus and republishes each event as a
// ZeroMQ PUB frame pair so external subscribers can follow data and
// ownership changes without polling the RPC interface.
package publish

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/erc725/erc725d/background"
	"github.com/erc725/erc725d/fault"
)

// Configuration - a block of configuration data
// this is read from the configuration file
type Configuration struct {
	Broadcast []string `gluamapper:"broadcast" json:"broadcast"`
}

// globals for background process
type publishData struct {
	sync.RWMutex

	log *logger.L

	brd broadcaster

	background *background.T

	initialised bool
}

// global data
var globalData publishData

// Initialise - bind the broadcast sockets and start the background
// process
//
// an empty broadcast list is allowed and simply publishes nothing
func Initialise(configuration *Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	if err := globalData.brd.initialise(configuration); nil != err {
		return err
	}

	globalData.initialised = true

	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.brd,
	}

	globalData.background = background.Start(processes, globalData.log)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
