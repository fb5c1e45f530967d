// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datastore

import (
	"encoding/hex"
)

// Data - a stored byte value
//
// the empty value doubles as the absent marker: the store cannot tell
// "never set" from "explicitly cleared"
type Data []byte

// ChangedEvent - notification payload for one successful write
type ChangedEvent struct {
	Key   Key  `json:"key"`
	Value Data `json:"value"`
}

// String - convert a value to hex for use by the fmt package (for %s)
func (data Data) String() string {
	return hex.EncodeToString(data)
}

// MarshalText - convert a value to hex text
func (data Data) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(data))
	buffer := make([]byte, size)
	hex.Encode(buffer, data)
	return buffer, nil
}

// UnmarshalText - convert hex text into a value
func (data *Data) UnmarshalText(s []byte) error {
	decoded := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(decoded, s)
	if nil != err {
		return err
	}
	*data = decoded[:byteCount]
	return nil
}
