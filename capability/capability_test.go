// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package capability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erc725/erc725d/capability"
)

func TestSupported(t *testing.T) {
	testList := []struct {
		id        capability.InterfaceID
		supported bool
	}{
		{capability.InterfaceERC165, true},
		{capability.InterfaceERC725Y, true},
		{capability.InterfaceERC725X, false},
		{capability.InterfaceID{0x00, 0x00, 0x00, 0x00}, false},
		{capability.InterfaceID{0xff, 0xff, 0xff, 0xff}, false},
		{capability.InterfaceID{0xde, 0xad, 0xbe, 0xef}, false},
	}

	for i, item := range testList {
		assert.Equal(t, item.supported, capability.Supported(item.id), "%d: wrong result for: %s", i, item.id)
	}
}

func TestInterfaceIDText(t *testing.T) {
	id := capability.InterfaceERC725Y

	text, err := id.MarshalText()
	assert.Nil(t, err, "cannot marshal interface id")
	assert.Equal(t, "714df425", string(text), "wrong hex form")

	var decoded capability.InterfaceID
	err = decoded.UnmarshalText(text)
	assert.Nil(t, err, "cannot unmarshal interface id")
	assert.Equal(t, id, decoded, "round trip mismatch")

	err = decoded.UnmarshalText([]byte("714df4"))
	assert.NotNil(t, err, "short text did not error")

	err = decoded.UnmarshalText([]byte("zzzzzzzz"))
	assert.NotNil(t, err, "invalid hex did not error")
}
