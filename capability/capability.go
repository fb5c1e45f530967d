// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package capability - static feature discovery
//
// answers the ERC165 style question: "does this node implement
// capability X".  The table is fixed at compile time and is not
// derived from any stored data.
package capability

import (
	"encoding/hex"

	"github.com/erc725/erc725d/fault"
)

// InterfaceIDSize - interface ids are a fixed 4 bytes
const InterfaceIDSize = 4

// InterfaceID - a fixed short code identifying one operation set
type InterfaceID [InterfaceIDSize]byte

// the well known interface ids
var (
	InterfaceERC165  = InterfaceID{0x01, 0xff, 0xc9, 0xa7}
	InterfaceERC725X = InterfaceID{0x75, 0x45, 0xac, 0xac}
	InterfaceERC725Y = InterfaceID{0x71, 0x4d, 0xf4, 0x25}
)

// the interfaces this node claims to implement
//
// ERC725X (the execute proxy) is intentionally absent: declaring it
// without implementing the call mechanism would mislead callers
var supported = map[InterfaceID]bool{
	InterfaceERC165:  true,
	InterfaceERC725Y: true,
}

// Supported - constant time capability lookup
//
// unknown ids simply report false, this never fails
func Supported(id InterfaceID) bool {
	return supported[id]
}

// String - convert an interface id to hex for use by the fmt package (for %s)
func (id InterfaceID) String() string {
	return hex.EncodeToString(id[:])
}

// MarshalText - convert an interface id to hex text
func (id InterfaceID) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(id))
	buffer := make([]byte, size)
	hex.Encode(buffer, id[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an interface id
func (id *InterfaceID) UnmarshalText(s []byte) error {
	if hex.EncodedLen(InterfaceIDSize) != len(s) {
		return fault.InvalidInterfaceID
	}
	buffer := make([]byte, InterfaceIDSize)
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return fault.InvalidInterfaceID
	}
	copy(id[:], buffer)
	return nil
}
