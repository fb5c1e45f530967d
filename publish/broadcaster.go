// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/erc725/erc725d/messagebus"
	"github.com/erc725/erc725d/util"
)

type broadcaster struct {
	log    *logger.L
	socket *zmq.Socket
}

// bind the PUB socket to all configured addresses
func (brd *broadcaster) initialise(configuration *Configuration) error {

	log := logger.New("broadcaster")
	brd.log = log

	log.Info("initialising…")

	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return err
	}
	brd.socket = socket

	socket.SetLinger(0)

	for i, address := range configuration.Broadcast {
		bindTo, err := util.CanonicalIPandPort("tcp://", address)
		if nil != err {
			log.Errorf("broadcast[%d]=%q  error: %s", i, address, err)
			socket.Close()
			return err
		}

		err = socket.Bind(bindTo)
		if nil != err {
			log.Errorf("broadcast[%d]=%q  error: %s", i, address, err)
			socket.Close()
			return err
		}
		log.Infof("broadcast on: %q", address)
	}
	return nil
}

// drain the message bus, sending each event as a two frame message:
// the source as topic then the item as JSON
func (brd *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brd.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case message := <-messagebus.Chan():
			brd.process(message)
		}
	}
	brd.socket.Close()
}

// publish one event
//
// a slow or absent subscriber never blocks; ZeroMQ drops frames a
// PUB socket cannot deliver
func (brd *broadcaster) process(message messagebus.Message) {

	data, err := json.Marshal(message.Item)
	if nil != err {
		brd.log.Errorf("JSON encode error: %s", err)
		return
	}

	brd.log.Infof("broadcast: %s %s", message.From, data)

	_, err = brd.socket.SendMessageDontwait(message.From, data)
	if nil != err {
		brd.log.Errorf("send error: %s", err)
	}
}
