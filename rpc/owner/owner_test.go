// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/erc725/erc725d/account"
	"github.com/erc725/erc725d/fault"
	"github.com/erc725/erc725d/ownership"
	"github.com/erc725/erc725d/rpc/fixtures"
	"github.com/erc725/erc725d/rpc/mocks"
	"github.com/erc725/erc725d/rpc/owner"
)

func makeOwner(t *testing.T) (*account.PrivateKey, *account.Account) {
	p, err := account.NewPrivateKey()
	assert.Nil(t, err, "cannot generate key pair")
	return p, p.Account()
}

func TestOwnerCurrent(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_, current := makeOwner(t)

	os := mocks.NewMockOwnership(ctl)
	os.EXPECT().Owner().Return(current).Times(1)

	o := owner.New(logger.New(fixtures.LogCategory), os)

	var reply owner.CurrentReply
	err := o.Current(&owner.CurrentArguments{}, &reply)
	assert.Nil(t, err, "wrong Current")
	assert.Equal(t, current, reply.Owner, "wrong owner")
}

func TestOwnerCurrentRenounced(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	os := mocks.NewMockOwnership(ctl)
	os.EXPECT().Owner().Return(nil).Times(1)

	o := owner.New(logger.New(fixtures.LogCategory), os)

	var reply owner.CurrentReply
	err := o.Current(&owner.CurrentArguments{}, &reply)
	assert.Nil(t, err, "wrong Current")
	assert.Nil(t, reply.Owner, "unexpected owner")
}

func TestOwnerTransfer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p, current := makeOwner(t)
	_, next := makeOwner(t)

	os := mocks.NewMockOwnership(ctl)
	os.EXPECT().Transfer(current, next).Return(nil).Times(1)

	o := owner.New(logger.New(fixtures.LogCategory), os)

	arg := owner.TransferArguments{
		Owner:     current,
		NewOwner:  next,
		Signature: p.Sign(ownership.PackTransfer(next)),
	}
	var reply owner.TransferReply
	err := o.Transfer(&arg, &reply)
	assert.Nil(t, err, "wrong Transfer")
	assert.Equal(t, next, reply.Owner, "wrong new owner")
}

func TestOwnerTransferBadSignature(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p, current := makeOwner(t)
	_, next := makeOwner(t)
	_, another := makeOwner(t)

	// no Transfer expected
	os := mocks.NewMockOwnership(ctl)

	o := owner.New(logger.New(fixtures.LogCategory), os)

	// signature covers a different target account
	arg := owner.TransferArguments{
		Owner:     current,
		NewOwner:  next,
		Signature: p.Sign(ownership.PackTransfer(another)),
	}
	var reply owner.TransferReply
	err := o.Transfer(&arg, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "forged transfer accepted")
}

func TestOwnerTransferNotTheOwner(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p, caller := makeOwner(t)
	_, next := makeOwner(t)

	os := mocks.NewMockOwnership(ctl)
	os.EXPECT().Transfer(caller, next).Return(fault.NotTheOwner).Times(1)

	o := owner.New(logger.New(fixtures.LogCategory), os)

	arg := owner.TransferArguments{
		Owner:     caller,
		NewOwner:  next,
		Signature: p.Sign(ownership.PackTransfer(next)),
	}
	var reply owner.TransferReply
	err := o.Transfer(&arg, &reply)
	assert.Equal(t, fault.NotTheOwner, err, "wrong error")
}

func TestOwnerRenounce(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p, current := makeOwner(t)

	os := mocks.NewMockOwnership(ctl)
	os.EXPECT().Renounce(current).Return(nil).Times(1)

	o := owner.New(logger.New(fixtures.LogCategory), os)

	arg := owner.RenounceArguments{
		Owner:     current,
		Signature: p.Sign(ownership.PackRenounce()),
	}
	var reply owner.RenounceReply
	err := o.Renounce(&arg, &reply)
	assert.Nil(t, err, "wrong Renounce")
	assert.True(t, reply.Renounced, "renounce not confirmed")
}

func TestOwnerRenounceMissingOwner(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	os := mocks.NewMockOwnership(ctl)
	o := owner.New(logger.New(fixtures.LogCategory), os)

	var reply owner.RenounceReply
	err := o.Renounce(&owner.RenounceArguments{}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "ownerless request accepted")
}
