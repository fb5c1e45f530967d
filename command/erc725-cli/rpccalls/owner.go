// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/erc725/erc725d/account"
	"github.com/erc725/erc725d/ownership"
	"github.com/erc725/erc725d/rpc/owner"
)

// GetOwner - ask for the current owner
func (client *Client) GetOwner() (*owner.CurrentReply, error) {
	var reply owner.CurrentReply
	if err := client.client.Call("Owner.Current", owner.CurrentArguments{}, &reply); err != nil {
		return nil, err
	}

	client.printJson("Current Reply", reply)

	return &reply, nil
}

// TransferOwnership - hand the store to a different owner
func (client *Client) TransferOwnership(current *account.PrivateKey, newOwner *account.Account) (*owner.TransferReply, error) {

	arguments := owner.TransferArguments{
		Owner:     current.Account(),
		NewOwner:  newOwner,
		Signature: current.Sign(ownership.PackTransfer(newOwner)),
	}

	client.printJson("Transfer Request", arguments)

	var reply owner.TransferReply
	if err := client.client.Call("Owner.Transfer", arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Transfer Reply", reply)

	return &reply, nil
}

// RenounceOwnership - give up ownership forever
func (client *Client) RenounceOwnership(current *account.PrivateKey) (*owner.RenounceReply, error) {

	arguments := owner.RenounceArguments{
		Owner:     current.Account(),
		Signature: current.Sign(ownership.PackRenounce()),
	}

	client.printJson("Renounce Request", arguments)

	var reply owner.RenounceReply
	if err := client.client.Call("Owner.Renounce", arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Renounce Reply", reply)

	return &reply, nil
}
