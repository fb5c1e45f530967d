// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datastore

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/erc725/erc725d/fault"
)

// KeySize - data keys are a fixed 32 bytes
const KeySize = 32

// Key - opaque identifier of one stored value
//
// the store never interprets keys; the owner chooses a convention,
// typically the Keccak-256 digest of a schema name
type Key [KeySize]byte

// DeriveKey - the conventional key for a name
//
// Keccak-256 to stay compatible with keys derived by on-chain ERC725
// implementations
func DeriveKey(label []byte) Key {
	h := sha3.NewLegacyKeccak256()
	h.Write(label)
	var key Key
	copy(key[:], h.Sum(nil))
	return key
}

// KeyFromBytes - convert a byte slice to a key
func KeyFromBytes(buffer []byte) (Key, error) {
	var key Key
	if KeySize != len(buffer) {
		return key, fault.InvalidKeyLength
	}
	copy(key[:], buffer)
	return key, nil
}

// String - convert a key to hex for use by the fmt package (for %s)
func (key Key) String() string {
	return hex.EncodeToString(key[:])
}

// MarshalText - convert a key to hex text
func (key Key) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(key))
	buffer := make([]byte, size)
	hex.Encode(buffer, key[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a key
func (key *Key) UnmarshalText(s []byte) error {
	if hex.EncodedLen(KeySize) != len(s) {
		return fault.InvalidKey
	}
	buffer := make([]byte, KeySize)
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return fault.InvalidKey
	}
	copy(key[:], buffer)
	return nil
}
