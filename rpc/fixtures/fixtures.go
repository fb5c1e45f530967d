// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared helpers for the RPC service tests
package fixtures

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

// LogCategory - logger tag the tests use
const LogCategory = "testing"

const testingDirName = "testing"

// SetupTestLogger - create the testing directory and initialise the
// logger for one test
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - remove all files created by the test
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// Certificate - PEM certificate matching Key
//
// a fresh self signed pair is generated into the testing directory on
// first use
func Certificate() string {
	certificate, _ := selfSignedPair()
	return certificate
}

// Key - PEM private key matching Certificate
func Key() string {
	_, key := selfSignedPair()
	return key
}

func selfSignedPair() (string, string) {
	certificateFileName := filepath.Join(testingDirName, "test.crt")
	keyFileName := filepath.Join(testingDirName, "test.key")

	if certificate, err := ioutil.ReadFile(certificateFileName); nil == err {
		key, _ := ioutil.ReadFile(keyFileName)
		return string(certificate), string(key)
	}

	validUntil := time.Now().Add(24 * time.Hour)
	certificate, key, err := certgen.NewTLSCertPair("testing", validUntil, false, nil)
	if nil != err {
		logger.Panicf("cannot generate certificate: %s", err)
	}

	_ = ioutil.WriteFile(certificateFileName, certificate, 0666)
	_ = ioutil.WriteFile(keyFileName, key, 0600)

	return string(certificate), string(key)
}

func removeFiles() {
	dirPath, _ := filepath.Abs(testingDirName)
	_ = os.RemoveAll(dirPath)
}
