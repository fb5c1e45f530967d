// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runInfo(c *cli.Context) error {
	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetInfo()
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runSupports(c *cli.Context) error {
	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	interfaceID := c.Args().First()
	if "" == interfaceID {
		return cli.NewExitError("missing INTERFACE-ID argument", 1)
	}

	reply, err := client.Supports(interfaceID)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
