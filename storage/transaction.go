// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/erc725/erc725d/fault"
)

// Transaction - a batch of writes committed or dropped as a whole
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Commit() error
	Abort()
	InUse() bool
}

// TransactionData - concrete type of Transaction
type TransactionData struct {
	sync.Mutex
	inUse      bool
	dataAccess []Access
}

func newTransaction(access []Access) Transaction {
	return &TransactionData{
		inUse:      false,
		dataAccess: access,
	}
}

// Begin - acquire the underlying batches
func (t *TransactionData) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionAlreadyInUse
	}

	for _, access := range t.dataAccess {
		err := access.Begin()
		if nil != err {
			return err
		}
	}

	t.inUse = true
	return nil
}

// Put - stage a write into a pool
func (t *TransactionData) Put(p *PoolHandle, key []byte, value []byte) {
	p.put(key, value)
}

// PutN - stage a write of a uint64 as an 8 byte big endian record
func (t *TransactionData) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.put(key, buffer)
}

// Delete - stage a removal from a pool
func (t *TransactionData) Delete(p *PoolHandle, key []byte) {
	p.remove(key)
}

// Commit - write all staged operations to the database
func (t *TransactionData) Commit() error {
	t.Lock()
	defer t.Unlock()

	for _, access := range t.dataAccess {
		err := access.Commit()
		if nil != err {
			return err
		}
	}

	t.release()
	return nil
}

// Abort - drop all staged operations, leaving the database untouched
func (t *TransactionData) Abort() {
	t.Lock()
	defer t.Unlock()
	t.release()
}

// drop any remaining staged data and free the batches
func (t *TransactionData) release() {
	for _, access := range t.dataAccess {
		access.Abort()
	}
	t.inUse = false
}

// InUse - is a transaction currently open
func (t *TransactionData) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}
