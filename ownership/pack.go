// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/erc725/erc725d/account"
)

// record type bytes for the signable packings
const (
	packTransfer = 'T'
	packRenounce = 'R'
)

// PackTransfer - the canonical payload a caller signs to authorise a
// transfer over the RPC interface
//
// structure: 'T' ++ packed new owner account
func PackTransfer(newOwner *account.Account) []byte {
	buffer := []byte{packTransfer}
	if nil != newOwner {
		buffer = append(buffer, newOwner.Bytes()...)
	}
	return buffer
}

// PackRenounce - the canonical payload a caller signs to authorise a
// renounce over the RPC interface
func PackRenounce() []byte {
	return []byte{packRenounce}
}
