// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk data store
//
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. data key     = opaque 32 byte identifier chosen by the owner
// 4. owner        = varint key variant ++ 32 byte public key
// 5. total        = big endian uint64 (8 bytes)
//
// Data:
//
//   D ++ data key              - the key-value store
//                                data: byte values of various length, empty = absent
//
// Metadata:
//
//   M ++ "owner"               - current owner record
//                                data: packed owner account, empty or missing = renounced
//   M ++ "payments"            - accumulated payment total
//                                data: total
//
// Testing:
//
//   Z ++ key                   - testing data
package storage
