// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datastore

import (
	"github.com/erc725/erc725d/util"
)

// record type bytes for the signable packings
const (
	packPut      = 'P'
	packPutBatch = 'B'
)

// PackPut - the canonical payload a caller signs to authorise a
// single write over the RPC interface
//
// structure: 'P' ++ key ++ varint(value length) ++ value ++ varint(payment)
func PackPut(key Key, value Data, payment uint64) []byte {
	buffer := make([]byte, 0, 1+KeySize+len(value)+2*util.Varint64MaximumBytes)
	buffer = append(buffer, packPut)
	buffer = append(buffer, key[:]...)
	buffer = append(buffer, util.ToVarint64(uint64(len(value)))...)
	buffer = append(buffer, value...)
	buffer = append(buffer, util.ToVarint64(payment)...)
	return buffer
}

// PackPutBatch - the canonical payload a caller signs to authorise a
// batch write over the RPC interface
//
// structure: 'B' ++ varint(entry count) ++ entries ++ varint(payment)
// where each entry is: key ++ varint(value length) ++ value
func PackPutBatch(keys []Key, values []Data, payment uint64) []byte {
	buffer := []byte{packPutBatch}
	buffer = append(buffer, util.ToVarint64(uint64(len(keys)))...)
	for i, key := range keys {
		buffer = append(buffer, key[:]...)
		if i < len(values) {
			buffer = append(buffer, util.ToVarint64(uint64(len(values[i])))...)
			buffer = append(buffer, values[i]...)
		}
	}
	buffer = append(buffer, util.ToVarint64(payment)...)
	return buffer
}
