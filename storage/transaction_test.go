// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erc725/erc725d/storage"
)

func TestTransactionCommit(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "cannot begin transaction")

	trx.Put(p, []byte("key-one"), []byte("data-one"))
	trx.Put(p, []byte("key-two"), []byte("data-two"))
	trx.PutN(p, []byte("key-n"), 7)

	err = trx.Commit()
	assert.Nil(t, err, "cannot commit transaction")

	assert.Equal(t, []byte("data-one"), p.Get([]byte("key-one")), "wrong data")
	assert.Equal(t, []byte("data-two"), p.Get([]byte("key-two")), "wrong data")
	n, found := p.GetN([]byte("key-n"))
	assert.True(t, found, "missing record")
	assert.Equal(t, uint64(7), n, "wrong value")
}

func TestTransactionAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	p.Put([]byte("existing"), []byte("before"))

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "cannot begin transaction")

	trx.Put(p, []byte("staged"), []byte("staged-data"))
	trx.Put(p, []byte("existing"), []byte("after"))
	trx.Abort()

	assert.Nil(t, p.Get([]byte("staged")), "staged data survived abort")
	assert.Equal(t, []byte("before"), p.Get([]byte("existing")), "aborted overwrite applied")
}

func TestTransactionBeginWhileInUse(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "cannot begin transaction")

	_, err = storage.NewDBTransaction()
	assert.NotNil(t, err, "second begin did not error")

	trx.Abort()

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "cannot begin after abort")
	trx.Abort()
}

func TestTransactionDelete(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	p.Put([]byte("doomed"), []byte("data"))

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "cannot begin transaction")
	trx.Delete(p, []byte("doomed"))
	err = trx.Commit()
	assert.Nil(t, err, "cannot commit transaction")

	assert.Nil(t, p.Get([]byte("doomed")), "data survived deletion")
}
