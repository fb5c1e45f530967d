// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/erc725/erc725d/capability"
	"github.com/erc725/erc725d/counter"
	"github.com/erc725/erc725d/datastore"
	"github.com/erc725/erc725d/ownership"
	"github.com/erc725/erc725d/rpc/ratelimit"
)

// Node - type for RPC calls
type Node struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Version   string
	Store     datastore.Store
	Ownership ownership.Ownership
	counter   *counter.Counter
}

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// New - create the node service
func New(log *logger.L, start time.Time, version string, store datastore.Store, os ownership.Ownership, counter *counter.Counter) *Node {
	return &Node{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:     start,
		Version:   version,
		Store:     store,
		Ownership: os,
		counter:   counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version          string `json:"version"`
	Uptime           string `json:"uptime"`
	Connections      uint64 `json:"connections"`
	Owned            bool   `json:"owned"`
	PaymentsReceived uint64 `json:"paymentsReceived,string"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.Connections = node.counter.Uint64()
	reply.Owned = nil != node.Ownership.Owner()
	reply.PaymentsReceived = node.Store.PaymentsReceived()
	return nil
}

// ---

// SupportsArguments - the interface to query
type SupportsArguments struct {
	InterfaceID capability.InterfaceID `json:"interfaceId"` // hex
}

// SupportsReply - result from the interface query
type SupportsReply struct {
	Supported bool `json:"supported"`
}

// Supports - report whether an interface is implemented
//
// unknown interfaces are not an error, they simply report false
func (node *Node) Supports(arguments *SupportsArguments, reply *SupportsReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Supported = capability.Supported(arguments.InterfaceID)
	return nil
}
