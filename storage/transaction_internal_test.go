// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/erc725/erc725d/fault"
	"github.com/erc725/erc725d/storage/mocks"
)

func setupMockTransaction(t *testing.T) (Transaction, *mocks.MockAccess, *gomock.Controller) {
	ctl := gomock.NewController(t)
	mock := mocks.NewMockAccess(ctl)
	return newTransaction([]Access{mock}), mock, ctl
}

func TestTransactionBeginTwice(t *testing.T) {
	trx, mock, ctl := setupMockTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Return(nil).Times(1)

	err := trx.Begin()
	assert.Nil(t, err, "first begin errored")
	assert.True(t, trx.InUse(), "transaction not marked in use")

	err = trx.Begin()
	assert.Equal(t, fault.TransactionAlreadyInUse, err, "second begin did not error")
}

func TestTransactionBeginPropagatesError(t *testing.T) {
	trx, mock, ctl := setupMockTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Return(fault.TransactionAlreadyInUse).Times(1)

	err := trx.Begin()
	assert.Equal(t, fault.TransactionAlreadyInUse, err, "underlying error was swallowed")
	assert.False(t, trx.InUse(), "failed begin marked transaction in use")
}

func TestTransactionCommitReleases(t *testing.T) {
	trx, mock, ctl := setupMockTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Return(nil).Times(1)
	mock.EXPECT().Commit().Return(nil).Times(1)
	mock.EXPECT().Abort().Times(1)

	_ = trx.Begin()
	err := trx.Commit()
	assert.Nil(t, err, "commit errored")
	assert.False(t, trx.InUse(), "transaction still in use after commit")
}

func TestTransactionAbortReleases(t *testing.T) {
	trx, mock, ctl := setupMockTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Return(nil).Times(1)
	mock.EXPECT().Abort().Times(1)

	_ = trx.Begin()
	trx.Abort()
	assert.False(t, trx.InUse(), "transaction still in use after abort")
}
