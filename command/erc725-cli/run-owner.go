// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/erc725/erc725d/account"
)

func runOwner(c *cli.Context) error {
	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetOwner()
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runTransfer(c *cli.Context) error {
	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	current, err := getPrivateKey(m)
	if nil != err {
		return err
	}

	newOwnerArg := c.Args().First()
	if "" == newOwnerArg {
		return cli.NewExitError("missing NEW-OWNER-ACCOUNT argument", 1)
	}
	newOwner, err := account.AccountFromBase58(newOwnerArg)
	if nil != err {
		return err
	}

	reply, err := client.TransferOwnership(current, newOwner)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runRenounce(c *cli.Context) error {
	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if !c.Bool("yes") {
		return cli.NewExitError("renounce is irreversible, repeat with --yes to confirm", 1)
	}

	current, err := getPrivateKey(m)
	if nil != err {
		return err
	}

	reply, err := client.RenounceOwnership(current)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
