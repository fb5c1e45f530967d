// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON-RPC interface to the store
//
// reads are open to any client; writes and ownership changes carry an
// account signature over a canonical packing of the request.
package rpc

import (
	"io/ioutil"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/erc725/erc725d/counter"
	"github.com/erc725/erc725d/fault"
	"github.com/erc725/erc725d/rpc/certificate"
	"github.com/erc725/erc725d/rpc/listeners"
	"github.com/erc725/erc725d/rpc/server"
)

const tlsName = "client_rpc"

// globals
type rpcData struct {
	sync.RWMutex

	log *logger.L

	initialised bool
}

// global data
var globalData rpcData

// connection count
var connectionCountRPC counter.Counter

// Initialise - start the RPC listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	// the configuration carries file names, the TLS layer wants PEM
	certificatePEM, keyPEM, err := readCertificatePair(rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		log.Errorf("certificate files: error: %s", err)
		return err
	}

	tlsConfig, certificateFingerprint, err := certificate.Get(log, tlsName, certificatePEM, keyPEM)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		server.Create(log, version, &connectionCountRPC),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}

	err = rpcListener.Serve()
	if nil != err {
		return err
	}

	globalData.initialised = true

	return nil
}

// read a certificate and its private key from their files
func readCertificatePair(certificateFileName string, keyFileName string) (string, string, error) {
	certificatePEM, err := ioutil.ReadFile(certificateFileName)
	if nil != err {
		return "", "", err
	}

	keyPEM, err := ioutil.ReadFile(keyFileName)
	if nil != err {
		return "", "", err
	}

	return string(certificatePEM), string(keyPEM), nil
}

// Finalise - stop all background tasks
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
