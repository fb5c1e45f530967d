// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/erc725/erc725d/account"
	"github.com/erc725/erc725d/fault"
	"github.com/erc725/erc725d/ownership"
	"github.com/erc725/erc725d/rpc/ratelimit"
)

// Owner - type for the RPC
type Owner struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Ownership ownership.Ownership
}

const (
	rateLimitOwner = 200
	rateBurstOwner = 100
)

// New - create the owner service
func New(log *logger.L, os ownership.Ownership) *Owner {
	return &Owner{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitOwner, rateBurstOwner),
		Ownership: os,
	}
}

// ---

// CurrentArguments - empty arguments for the owner query
type CurrentArguments struct{}

// CurrentReply - the current owner
//
// owner is null once ownership has been renounced
type CurrentReply struct {
	Owner *account.Account `json:"owner"` // base58
}

// Current - return the current owner
func (owner *Owner) Current(_ *CurrentArguments, reply *CurrentReply) error {

	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	reply.Owner = owner.Ownership.Owner()
	return nil
}

// ---

// TransferArguments - arguments for RPC
//
// the signature covers the canonical transfer packing and must verify
// against the current owner account
type TransferArguments struct {
	Owner     *account.Account  `json:"owner"`    // base58
	NewOwner  *account.Account  `json:"newOwner"` // base58
	Signature account.Signature `json:"signature"`
}

// TransferReply - result of the transfer
type TransferReply struct {
	Owner *account.Account `json:"owner"` // base58
}

// Transfer - hand the store to a different owner
func (owner *Owner) Transfer(arguments *TransferArguments, reply *TransferReply) error {

	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	log := owner.Log
	log.Infof("Owner.Transfer: %v", arguments.NewOwner)

	if nil == arguments.Owner {
		return fault.MissingParameters
	}

	packed := ownership.PackTransfer(arguments.NewOwner)
	if err := arguments.Owner.CheckSignature(packed, arguments.Signature); nil != err {
		return err
	}

	err := owner.Ownership.Transfer(arguments.Owner, arguments.NewOwner)
	if nil != err {
		return err
	}

	reply.Owner = arguments.NewOwner
	return nil
}

// ---

// RenounceArguments - arguments for RPC
type RenounceArguments struct {
	Owner     *account.Account  `json:"owner"` // base58
	Signature account.Signature `json:"signature"`
}

// RenounceReply - result of the renounce
type RenounceReply struct {
	Renounced bool `json:"renounced"`
}

// Renounce - give up ownership forever
//
// there is no way back: once renounced every further write fails
func (owner *Owner) Renounce(arguments *RenounceArguments, reply *RenounceReply) error {

	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	log := owner.Log
	log.Infof("Owner.Renounce: %v", arguments.Owner)

	if nil == arguments.Owner {
		return fault.MissingParameters
	}

	packed := ownership.PackRenounce()
	if err := arguments.Owner.CheckSignature(packed, arguments.Signature); nil != err {
		return err
	}

	err := owner.Ownership.Renounce(arguments.Owner)
	if nil != err {
		return err
	}

	reply.Renounced = true
	return nil
}
