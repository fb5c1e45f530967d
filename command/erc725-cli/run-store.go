// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/erc725/erc725d/datastore"
)

func runGet(c *cli.Context) error {
	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	args := c.Args()
	if 0 == len(args) {
		return cli.NewExitError("missing KEY argument", 1)
	}

	keys := make([]datastore.Key, len(args))
	for i, a := range args {
		keys[i], err = parseKey(a)
		if nil != err {
			return err
		}
	}

	if 1 == len(keys) {
		reply, err := client.GetData(keys[0])
		if nil != err {
			return err
		}
		printJson(m.w, reply)
		return nil
	}

	reply, err := client.GetDataBatch(keys)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}

func runSet(c *cli.Context) error {
	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	owner, err := getPrivateKey(m)
	if nil != err {
		return err
	}

	args := c.Args()
	if 0 == len(args) || 0 != len(args)%2 {
		return cli.NewExitError("arguments must be KEY HEX-VALUE pairs", 1)
	}

	n := len(args) / 2
	keys := make([]datastore.Key, n)
	values := make([]datastore.Data, n)
	for i := 0; i < n; i += 1 {
		keys[i], err = parseKey(args[2*i])
		if nil != err {
			return err
		}
		if err := values[i].UnmarshalText([]byte(args[2*i+1])); nil != err {
			return err
		}
	}

	payment := c.Uint64("payment")

	if 1 == n {
		reply, err := client.SetData(owner, keys[0], values[0], payment)
		if nil != err {
			return err
		}
		printJson(m.w, reply)
		return nil
	}

	reply, err := client.SetDataBatch(owner, keys, values, payment)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}
