// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/erc725/erc725d/messagebus"
)

func TestQueue(t *testing.T) {

	items := []messagebus.Message{
		{
			From: "one",
			Item: "i1",
		},
		{
			From: "two",
			Item: "i2",
		},
		{
			From: "three",
			Item: "i3",
		},
	}

	for _, item := range items {
		messagebus.Send(item.From, item.Item)
	}

	queue := messagebus.Chan()
	for _, item := range items {
		received := <-queue
		if received.From != item.From {
			t.Errorf("actual: %q  expected: %q", received.From, item.From)
		}
		if received.Item != item.Item {
			t.Errorf("actual: %v  expected: %v", received.Item, item.Item)
		}
	}
}

// a full queue must drop rather than block the sender
func TestQueueOverflow(t *testing.T) {

	for i := 0; i < 5000; i += 1 {
		messagebus.Send("overflow", i)
	}

	// drain whatever was retained
	queue := messagebus.Chan()
drain:
	for {
		select {
		case <-queue:
		default:
			break drain
		}
	}
}
