// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - queue for event notifications
//
// every successful data write and ownership change places one message
// on this queue; the publish module drains it
package messagebus
