// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - the single owner gate
//
// every mutating operation passes this gate.  There is exactly one
// owner at any time; renouncing sets the stored record empty so that
// no caller can ever match it again.  This is intentional and
// irreversible.
package ownership

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/erc725/erc725d/account"
	"github.com/erc725/erc725d/fault"
	"github.com/erc725/erc725d/messagebus"
	"github.com/erc725/erc725d/storage"
)

// TransferredEvent - notification payload for an ownership change
//
// a nil NewOwner records a renounce
type TransferredEvent struct {
	OldOwner *account.Account `json:"oldOwner"`
	NewOwner *account.Account `json:"newOwner"`
}

// Ownership - interface for the owner gate
type Ownership interface {
	Owner() *account.Account
	Transfer(caller *account.Account, newOwner *account.Account) error
	Renounce(caller *account.Account) error
	RequireOwner(caller *account.Account) error
}

// the key of the owner record in the metadata pool
var ownerKey = []byte("owner")

type ownerData struct {
	sync.RWMutex

	log  *logger.L
	pool storage.Handle
}

// global data
var globalData ownerData

// Initialise - attach the metadata pool
//
// assigns the initial owner only when no owner record exists yet, so
// a restart never overrides a later transfer or renounce
func Initialise(metadata storage.Handle, initialOwner *account.Account) {
	globalData.Lock()
	defer globalData.Unlock()

	globalData.log = logger.New("ownership")
	globalData.pool = metadata

	if nil != initialOwner && !metadata.Has(ownerKey) {
		metadata.Put(ownerKey, initialOwner.Bytes())
		globalData.log.Infof("initial owner: %s", initialOwner)
	}
}

// Finalise - detach the metadata pool
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()
	globalData.pool = nil
}

// Get - return the gate
func Get() Ownership {
	return &globalData
}

// Owner - the current owner
//
// never fails; nil once renounced or before any owner was assigned
func (d *ownerData) Owner() *account.Account {
	d.RLock()
	defer d.RUnlock()
	return d.unlockedOwner()
}

func (d *ownerData) unlockedOwner() *account.Account {
	if nil == d.pool {
		return nil
	}
	packed := d.pool.Get(ownerKey)
	if 0 == len(packed) {
		return nil
	}
	owner, err := account.AccountFromBytes(packed)
	if nil != err {
		logger.Panicf("ownership: corrupt owner record: %x  error: %s", packed, err)
	}
	return owner
}

// RequireOwner - the gate used by all mutating operations
//
// an empty owner record matches no caller at all
func (d *ownerData) RequireOwner(caller *account.Account) error {
	d.RLock()
	defer d.RUnlock()
	return d.unlockedRequireOwner(caller)
}

func (d *ownerData) unlockedRequireOwner(caller *account.Account) error {
	owner := d.unlockedOwner()
	if !owner.SameAs(caller) {
		return fault.NotTheOwner
	}
	return nil
}

// Transfer - assign a new owner
//
// only the current owner may transfer; the zero account cannot be a
// transfer target, renounce is the explicit way to give up ownership
func (d *ownerData) Transfer(caller *account.Account, newOwner *account.Account) error {
	d.Lock()
	defer d.Unlock()

	if err := d.unlockedRequireOwner(caller); nil != err {
		return err
	}
	if nil == newOwner {
		return fault.TransferToZeroAccount
	}

	oldOwner := d.unlockedOwner()
	d.pool.Put(ownerKey, newOwner.Bytes())
	d.log.Infof("owner transferred: %s -> %s", oldOwner, newOwner)

	messagebus.Send("ownership", TransferredEvent{
		OldOwner: oldOwner,
		NewOwner: newOwner,
	})
	return nil
}

// Renounce - permanently give up ownership
func (d *ownerData) Renounce(caller *account.Account) error {
	d.Lock()
	defer d.Unlock()

	if err := d.unlockedRequireOwner(caller); nil != err {
		return err
	}

	oldOwner := d.unlockedOwner()
	d.pool.Put(ownerKey, []byte{})
	d.log.Warnf("owner renounced: %s", oldOwner)

	messagebus.Send("ownership", TransferredEvent{
		OldOwner: oldOwner,
		NewOwner: nil,
	})
	return nil
}
