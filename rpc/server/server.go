// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/erc725/erc725d/counter"
	"github.com/erc725/erc725d/datastore"
	"github.com/erc725/erc725d/ownership"
	"github.com/erc725/erc725d/rpc/node"
	"github.com/erc725/erc725d/rpc/owner"
	"github.com/erc725/erc725d/rpc/store"
)

// Create - register all services on a fresh RPC server
func Create(log *logger.L, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(store.New(log, datastore.Get()))
	_ = server.Register(owner.New(log, ownership.Get()))
	_ = server.Register(node.New(log, start, version, datastore.Get(), ownership.Get(), rpcCount))

	return server
}
