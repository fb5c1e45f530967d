// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/erc725/erc725d/account"
	"github.com/erc725/erc725d/datastore"
	"github.com/erc725/erc725d/fault"
	"github.com/erc725/erc725d/rpc/ratelimit"
)

// Store - type for the RPC
type Store struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Store   datastore.Store
}

const (
	rateLimitStore = 200
	rateBurstStore = 100
)

// New - create the store service
func New(log *logger.L, store datastore.Store) *Store {
	return &Store{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitStore, rateBurstStore),
		Store:   store,
	}
}

// ---

// GetArguments - arguments for a single read
type GetArguments struct {
	Key datastore.Key `json:"key"` // hex
}

// GetReply - result of a single read
type GetReply struct {
	Value datastore.Data `json:"value"` // hex, empty if never set
}

// Get - read one value
func (s *Store) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	reply.Value = s.Store.Get(arguments.Key)
	return nil
}

// ---

// GetBatchArguments - arguments for a batch read
type GetBatchArguments struct {
	Keys []datastore.Key `json:"keys"`
}

// GetBatchReply - result of a batch read
//
// values are positional: element i corresponds to keys[i]
type GetBatchReply struct {
	Values []datastore.Data `json:"values"`
}

// GetBatch - read many values in one call
//
// reads carry no entry limit so the whole batch costs one rate
// limiter token regardless of size
func (s *Store) GetBatch(arguments *GetBatchArguments, reply *GetBatchReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	reply.Values = s.Store.GetBatch(arguments.Keys)
	return nil
}

// ---

// SetArguments - arguments for a single write
//
// the signature covers the canonical packing of key, value and
// payment and must verify against the owner account
type SetArguments struct {
	Owner     *account.Account  `json:"owner"` // base58
	Key       datastore.Key     `json:"key"`
	Value     datastore.Data    `json:"value"`
	Payment   uint64            `json:"payment,string"`
	Signature account.Signature `json:"signature"` // hex
}

// SetReply - result of a single write
type SetReply struct {
	Key datastore.Key `json:"key"`
}

// Set - store one value
func (s *Store) Set(arguments *SetArguments, reply *SetReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	log := s.Log
	log.Infof("Store.Set: %v", arguments.Key)

	if nil == arguments.Owner {
		return fault.MissingParameters
	}

	packed := datastore.PackPut(arguments.Key, arguments.Value, arguments.Payment)
	if err := arguments.Owner.CheckSignature(packed, arguments.Signature); nil != err {
		return err
	}

	err := s.Store.Put(arguments.Owner, arguments.Key, arguments.Value, arguments.Payment)
	if nil != err {
		return err
	}

	reply.Key = arguments.Key
	return nil
}

// ---

// SetBatchArguments - arguments for a batch write
type SetBatchArguments struct {
	Owner     *account.Account  `json:"owner"` // base58
	Keys      []datastore.Key   `json:"keys"`
	Values    []datastore.Data  `json:"values"`
	Payment   uint64            `json:"payment,string"`
	Signature account.Signature `json:"signature"` // hex
}

// SetBatchReply - result of a batch write
type SetBatchReply struct {
	Count int `json:"count"`
}

// SetBatch - store many values in one call
//
// the batch applies entirely or not at all
func (s *Store) SetBatch(arguments *SetBatchArguments, reply *SetBatchReply) error {

	// an out of range count is charged as a single request and then
	// rejected by the store itself with the proper error
	count := len(arguments.Keys)
	if count > 0 && count <= datastore.MaximumBatchEntries {
		if err := ratelimit.LimitN(s.Limiter, count, datastore.MaximumBatchEntries); nil != err {
			return err
		}
	} else if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	log := s.Log
	log.Infof("Store.SetBatch: %d entries", len(arguments.Keys))

	if nil == arguments.Owner {
		return fault.MissingParameters
	}

	packed := datastore.PackPutBatch(arguments.Keys, arguments.Values, arguments.Payment)
	if err := arguments.Owner.CheckSignature(packed, arguments.Signature); nil != err {
		return err
	}

	err := s.Store.PutBatch(arguments.Owner, arguments.Keys, arguments.Values, arguments.Payment)
	if nil != err {
		return err
	}

	reply.Count = len(arguments.Keys)
	return nil
}
