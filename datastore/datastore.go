// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package datastore - the ERC725Y key-value store
//
// a blind mapping from fixed 32 byte keys to bounded byte values.
// Reads are open to everyone and never fail; writes pass the
// ownership gate.  The store offers no enumeration: without the key
// there is no way to discover a value.
package datastore

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/erc725/erc725d/account"
	"github.com/erc725/erc725d/fault"
	"github.com/erc725/erc725d/messagebus"
	"github.com/erc725/erc725d/ownership"
	"github.com/erc725/erc725d/storage"
)

// limits on the write path
//
// reads are deliberately unbounded: a view-only batch get costs the
// caller only their own time, while each write burns database work,
// so only writes carry a ceiling.  Do not "fix" this asymmetry.
const (
	// MaximumValueLength - longest value one key can hold
	MaximumValueLength = 1024

	// MaximumBatchEntries - most entries in one batch write
	MaximumBatchEntries = 256
)

// Store - interface for the data store
type Store interface {
	Get(key Key) Data
	GetBatch(keys []Key) []Data
	Put(caller *account.Account, key Key, value Data, payment uint64) error
	PutBatch(caller *account.Account, keys []Key, values []Data, payment uint64) error
	PaymentsReceived() uint64
}

// the key of the payment accumulator in the metadata pool
var paymentsKey = []byte("payments")

type storeData struct {
	sync.RWMutex

	log      *logger.L
	data     *storage.PoolHandle
	metadata *storage.PoolHandle
	gate     ownership.Ownership
}

// global data
var globalData storeData

// Initialise - attach pools and the owner gate
func Initialise(data *storage.PoolHandle, metadata *storage.PoolHandle, gate ownership.Ownership) {
	globalData.Lock()
	defer globalData.Unlock()

	globalData.log = logger.New("datastore")
	globalData.data = data
	globalData.metadata = metadata
	globalData.gate = gate
}

// Finalise - detach pools
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()
	globalData.data = nil
	globalData.metadata = nil
	globalData.gate = nil
}

// Get - return the store
func Get() Store {
	return &globalData
}

// Get - read one value
//
// absence is the empty value, there is no "not found" error by design
// so callers must not rely on error signalling for missing keys
func (d *storeData) Get(key Key) Data {
	d.RLock()
	defer d.RUnlock()

	if nil == d.data {
		return Data{}
	}
	value := d.data.Get(key[:])
	if 0 == len(value) {
		return Data{}
	}

	// the caller gets a copy, never a reference into the store
	result := make(Data, len(value))
	copy(result, value)
	return result
}

// GetBatch - read many values in one call
//
// result is positional: element i is the value for keys[i]
func (d *storeData) GetBatch(keys []Key) []Data {
	values := make([]Data, len(keys))
	for i, key := range keys {
		values[i] = d.Get(key)
	}
	return values
}

// Put - store one value
//
// storing the empty value clears the key; the record itself is kept
func (d *storeData) Put(caller *account.Account, key Key, value Data, payment uint64) error {
	d.Lock()
	defer d.Unlock()

	if nil == d.data {
		return fault.NotInitialised
	}
	if err := d.gate.RequireOwner(caller); nil != err {
		return err
	}
	if len(value) > MaximumValueLength {
		return fault.ValueTooLong
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	trx.Put(d.data, key[:], value)
	d.retainPayment(trx, payment)
	err = trx.Commit()
	if nil != err {
		return err
	}

	d.log.Debugf("put: %s  %d bytes", key, len(value))
	d.notify(key, value)
	return nil
}

// PutBatch - store many values in one call
//
// all preconditions are checked before any write is staged, so a
// rejected batch leaves the store exactly as it was.  Past the checks
// every entry is written: there is no remaining per-entry failure
// mode, hence no partial application to consider.
func (d *storeData) PutBatch(caller *account.Account, keys []Key, values []Data, payment uint64) error {
	d.Lock()
	defer d.Unlock()

	if nil == d.data {
		return fault.NotInitialised
	}
	if err := d.gate.RequireOwner(caller); nil != err {
		return err
	}
	if len(keys) != len(values) {
		return fault.BatchLengthMismatch
	}
	if 0 == len(keys) {
		return fault.EmptyBatch
	}
	if len(keys) > MaximumBatchEntries {
		return fault.BatchTooLarge
	}
	for _, value := range values {
		if len(value) > MaximumValueLength {
			return fault.ValueTooLong
		}
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	for i, key := range keys {
		trx.Put(d.data, key[:], values[i])
	}
	d.retainPayment(trx, payment)
	err = trx.Commit()
	if nil != err {
		return err
	}

	d.log.Debugf("put batch: %d entries", len(keys))
	for i, key := range keys {
		d.notify(key, values[i])
	}
	return nil
}

// PaymentsReceived - total of all payments retained so far
func (d *storeData) PaymentsReceived() uint64 {
	d.RLock()
	defer d.RUnlock()

	if nil == d.metadata {
		return 0
	}
	total, _ := d.metadata.GetN(paymentsKey)
	return total
}

// accumulate an attached payment
//
// the amount is retained as-is: it is never validated against the
// data operation and never refunded
func (d *storeData) retainPayment(trx storage.Transaction, payment uint64) {
	if 0 == payment {
		return
	}
	total, _ := d.metadata.GetN(paymentsKey)
	trx.PutN(d.metadata, paymentsKey, total+payment)
}

// one data-changed notification per written key
func (d *storeData) notify(key Key, value Data) {
	stored := make(Data, len(value))
	copy(stored, value)
	messagebus.Send("datastore", ChangedEvent{
		Key:   key,
		Value: stored,
	})
}
