// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/erc725/erc725d/account"
	"github.com/erc725/erc725d/datastore"
	"github.com/erc725/erc725d/rpc/store"
)

// GetData - read one value
func (client *Client) GetData(key datastore.Key) (*store.GetReply, error) {

	arguments := store.GetArguments{
		Key: key,
	}

	client.printJson("Get Request", arguments)

	var reply store.GetReply
	if err := client.client.Call("Store.Get", arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Get Reply", reply)

	return &reply, nil
}

// GetDataBatch - read many values in one call
func (client *Client) GetDataBatch(keys []datastore.Key) (*store.GetBatchReply, error) {

	arguments := store.GetBatchArguments{
		Keys: keys,
	}

	client.printJson("GetBatch Request", arguments)

	var reply store.GetBatchReply
	if err := client.client.Call("Store.GetBatch", arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("GetBatch Reply", reply)

	return &reply, nil
}

// SetData - store one value, signed by the owner key
func (client *Client) SetData(owner *account.PrivateKey, key datastore.Key, value datastore.Data, payment uint64) (*store.SetReply, error) {

	arguments := store.SetArguments{
		Owner:     owner.Account(),
		Key:       key,
		Value:     value,
		Payment:   payment,
		Signature: owner.Sign(datastore.PackPut(key, value, payment)),
	}

	client.printJson("Set Request", arguments)

	var reply store.SetReply
	if err := client.client.Call("Store.Set", arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Set Reply", reply)

	return &reply, nil
}

// SetDataBatch - store many values in one call, signed by the owner key
func (client *Client) SetDataBatch(owner *account.PrivateKey, keys []datastore.Key, values []datastore.Data, payment uint64) (*store.SetBatchReply, error) {

	arguments := store.SetBatchArguments{
		Owner:     owner.Account(),
		Keys:      keys,
		Values:    values,
		Payment:   payment,
		Signature: owner.Sign(datastore.PackPutBatch(keys, values, payment)),
	}

	client.printJson("SetBatch Request", arguments)

	var reply store.SetBatchReply
	if err := client.client.Call("Store.SetBatch", arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("SetBatch Reply", reply)

	return &reply, nil
}
