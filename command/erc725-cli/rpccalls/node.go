// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/erc725/erc725d/capability"
	"github.com/erc725/erc725d/rpc/node"
)

// GetInfo - request status from erc725d
func (client *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.client.Call("Node.Info", node.InfoArguments{}, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}

// Supports - ask whether an interface is implemented
func (client *Client) Supports(interfaceID string) (*node.SupportsReply, error) {

	var id capability.InterfaceID
	if err := id.UnmarshalText([]byte(interfaceID)); nil != err {
		return nil, err
	}

	arguments := node.SupportsArguments{
		InterfaceID: id,
	}

	client.printJson("Supports Request", arguments)

	var reply node.SupportsReply
	if err := client.client.Call("Node.Supports", arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Supports Reply", reply)

	return &reply, nil
}
