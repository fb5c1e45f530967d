// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datastore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erc725/erc725d/datastore"
	"github.com/erc725/erc725d/fault"
)

func TestDeriveKey(t *testing.T) {
	// Keccak-256("test")
	expected := "9c22ff5f21f0b81b113e63f7db6da94fedef11b2119b4088b89664fb9a3cb658"

	key := datastore.DeriveKey([]byte("test"))
	assert.Equal(t, expected, key.String(), "wrong derived key")

	// derivation is deterministic
	again := datastore.DeriveKey([]byte("test"))
	assert.Equal(t, key, again, "derivation not deterministic")
}

func TestKeyFromBytes(t *testing.T) {
	buffer := make([]byte, datastore.KeySize)
	for i := range buffer {
		buffer[i] = byte(i)
	}

	key, err := datastore.KeyFromBytes(buffer)
	assert.Nil(t, err, "key rejected")
	assert.Equal(t, buffer, key[:], "key bytes mangled")

	_, err = datastore.KeyFromBytes(buffer[:datastore.KeySize-1])
	assert.Equal(t, fault.InvalidKeyLength, err, "short key accepted")

	_, err = datastore.KeyFromBytes(append(buffer, 0x00))
	assert.Equal(t, fault.InvalidKeyLength, err, "long key accepted")
}

func TestKeyMarshalling(t *testing.T) {
	key := datastore.DeriveKey([]byte("round trip"))

	text, err := key.MarshalText()
	assert.Nil(t, err, "marshal failed")

	var back datastore.Key
	err = back.UnmarshalText(text)
	assert.Nil(t, err, "unmarshal failed")
	assert.Equal(t, key, back, "round trip mismatch")

	err = back.UnmarshalText([]byte("zz"))
	assert.Equal(t, fault.InvalidKey, err, "bad hex accepted")
}
