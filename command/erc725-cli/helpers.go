// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/urfave/cli"

	"github.com/erc725/erc725d/account"
	"github.com/erc725/erc725d/command/erc725-cli/rpccalls"
	"github.com/erc725/erc725d/datastore"
	"github.com/erc725/erc725d/fault"
)

func getClient(c *cli.Context) (*rpccalls.Client, *metadata, error) {
	m := c.App.Metadata["config"].(*metadata)
	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return client, m, nil
}

// read the owner private key from the --key flag
//
// a leading "@" loads the key from a file so the secret can stay out
// of shell history
func getPrivateKey(m *metadata) (*account.PrivateKey, error) {
	key := m.key
	if "" == key {
		return nil, fault.MissingParameters
	}
	if strings.HasPrefix(key, "@") {
		data, err := ioutil.ReadFile(key[1:])
		if nil != err {
			return nil, err
		}
		key = strings.TrimSpace(string(data))
	}
	return account.PrivateKeyFromBase58(key)
}

// parse a store key argument
//
// accepts the 64 character hex form; anything else is treated as a
// name and converted with the conventional derivation
func parseKey(s string) (datastore.Key, error) {
	var key datastore.Key
	if nil == key.UnmarshalText([]byte(s)) {
		return key, nil
	}
	return datastore.DeriveKey([]byte(s)), nil
}

func printJson(handle io.Writer, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(handle, "error: %s\n", err)
		return
	}
	fmt.Fprintf(handle, "%s\n", b)
}
