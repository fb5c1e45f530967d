// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/erc725/erc725d/account"
	"github.com/erc725/erc725d/datastore"
	"github.com/erc725/erc725d/fault"
	"github.com/erc725/erc725d/rpc/fixtures"
	"github.com/erc725/erc725d/rpc/mocks"
	"github.com/erc725/erc725d/rpc/store"
)

func makeOwner(t *testing.T) (*account.PrivateKey, *account.Account) {
	p, err := account.NewPrivateKey()
	assert.Nil(t, err, "cannot generate key pair")
	return p, p.Account()
}

func TestStoreGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockStore(ctl)

	key := datastore.DeriveKey([]byte("name"))
	d.EXPECT().Get(key).Return(datastore.Data("Hello")).Times(1)

	s := store.New(logger.New(fixtures.LogCategory), d)

	arg := store.GetArguments{Key: key}
	var reply store.GetReply
	err := s.Get(&arg, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, datastore.Data("Hello"), reply.Value, "wrong value")
}

func TestStoreGetBatch(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockStore(ctl)

	keys := []datastore.Key{
		datastore.DeriveKey([]byte("one")),
		datastore.DeriveKey([]byte("two")),
	}
	values := []datastore.Data{
		datastore.Data("1"),
		datastore.Data{},
	}
	d.EXPECT().GetBatch(keys).Return(values).Times(1)

	s := store.New(logger.New(fixtures.LogCategory), d)

	arg := store.GetBatchArguments{Keys: keys}
	var reply store.GetBatchReply
	err := s.GetBatch(&arg, &reply)
	assert.Nil(t, err, "wrong GetBatch")
	assert.Equal(t, values, reply.Values, "wrong values")
}

func TestStoreSet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockStore(ctl)

	p, owner := makeOwner(t)
	key := datastore.DeriveKey([]byte("name"))
	value := datastore.Data("Hello")

	d.EXPECT().Put(owner, key, value, uint64(5)).Return(nil).Times(1)

	s := store.New(logger.New(fixtures.LogCategory), d)

	arg := store.SetArguments{
		Owner:     owner,
		Key:       key,
		Value:     value,
		Payment:   5,
		Signature: p.Sign(datastore.PackPut(key, value, 5)),
	}
	var reply store.SetReply
	err := s.Set(&arg, &reply)
	assert.Nil(t, err, "wrong Set")
	assert.Equal(t, key, reply.Key, "wrong key")
}

func TestStoreSetBadSignature(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no Put expected, the request fails before the store is touched
	d := mocks.NewMockStore(ctl)

	p, owner := makeOwner(t)
	key := datastore.DeriveKey([]byte("name"))

	s := store.New(logger.New(fixtures.LogCategory), d)

	// signature over a different payment than the request carries
	arg := store.SetArguments{
		Owner:     owner,
		Key:       key,
		Value:     datastore.Data("Hello"),
		Payment:   5,
		Signature: p.Sign(datastore.PackPut(key, datastore.Data("Hello"), 6)),
	}
	var reply store.SetReply
	err := s.Set(&arg, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "forged request accepted")
}

func TestStoreSetMissingOwner(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockStore(ctl)
	s := store.New(logger.New(fixtures.LogCategory), d)

	arg := store.SetArguments{
		Key:   datastore.DeriveKey([]byte("name")),
		Value: datastore.Data("Hello"),
	}
	var reply store.SetReply
	err := s.Set(&arg, &reply)
	assert.Equal(t, fault.MissingParameters, err, "ownerless request accepted")
}

func TestStoreSetBatch(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockStore(ctl)

	p, owner := makeOwner(t)
	keys := []datastore.Key{
		datastore.DeriveKey([]byte("one")),
		datastore.DeriveKey([]byte("two")),
	}
	values := []datastore.Data{
		datastore.Data("1"),
		datastore.Data("2"),
	}

	d.EXPECT().PutBatch(owner, keys, values, uint64(0)).Return(nil).Times(1)

	s := store.New(logger.New(fixtures.LogCategory), d)

	arg := store.SetBatchArguments{
		Owner:     owner,
		Keys:      keys,
		Values:    values,
		Signature: p.Sign(datastore.PackPutBatch(keys, values, 0)),
	}
	var reply store.SetBatchReply
	err := s.SetBatch(&arg, &reply)
	assert.Nil(t, err, "wrong SetBatch")
	assert.Equal(t, 2, reply.Count, "wrong count")
}

func TestStoreSetBatchStoreError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockStore(ctl)

	p, owner := makeOwner(t)
	keys := []datastore.Key{datastore.DeriveKey([]byte("one"))}
	values := []datastore.Data{datastore.Data("1"), datastore.Data("2")}

	d.EXPECT().PutBatch(owner, keys, values, uint64(0)).
		Return(fault.BatchLengthMismatch).Times(1)

	s := store.New(logger.New(fixtures.LogCategory), d)

	arg := store.SetBatchArguments{
		Owner:     owner,
		Keys:      keys,
		Values:    values,
		Signature: p.Sign(datastore.PackPutBatch(keys, values, 0)),
	}
	var reply store.SetBatchReply
	err := s.SetBatch(&arg, &reply)
	assert.Equal(t, fault.BatchLengthMismatch, err, "wrong error")
}
