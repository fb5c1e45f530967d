// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

// internal constants
const (
	queueSize = 1000
)

// Message - event data to queue
type Message struct {
	From string
	Item interface{}
}

var (
	// for queueing data
	queue = make(chan Message, queueSize)
)

// Send - place an event on the queue
//
// the message is dropped if no consumer is draining the queue fast
// enough; notifications are an observable side channel, they never
// block or fail the operation that produced them
func Send(from string, item interface{}) {
	select {
	case queue <- Message{
		From: from,
		Item: item,
	}:
	default:
	}
}

// Chan - channel to read from
func Chan() <-chan Message {
	return queue
}
