// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - accept TLS connections and serve the RPC
// registry over JSON-RPC
package listeners

// Listener - the interface for listeners
type Listener interface {
	Serve() error
}

const minConnectionCount = 1
