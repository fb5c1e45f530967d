// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/erc725/erc725d/account"
	"github.com/erc725/erc725d/datastore"
)

func runGenerate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := account.NewPrivateKey()
	if nil != err {
		return err
	}

	printJson(m.w, map[string]string{
		"account":    privateKey.Account().String(),
		"privateKey": privateKey.String(),
	})
	return nil
}

func runDerive(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name := c.Args().First()
	if "" == name {
		return cli.NewExitError("missing NAME argument", 1)
	}

	key := datastore.DeriveKey([]byte(name))
	printJson(m.w, map[string]string{
		"name": name,
		"key":  key.String(),
	})
	return nil
}
