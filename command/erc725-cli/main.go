// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	key     string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "erc725-cli"
	app.Usage = "command line interface to an erc725d store"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2150",
			Usage: " erc725d host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "key, k",
			Value: "",
			Usage: " owner private key, base58 `KEY` or @FILE",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate an account and private key, will not store them",
			Action: runGenerate,
		},
		{
			Name:      "derive",
			Usage:     "derive the store key for a name",
			ArgsUsage: "NAME",
			Action:    runDerive,
		},
		{
			Name:   "info",
			Usage:  "display node status",
			Action: runInfo,
		},
		{
			Name:      "supports",
			Usage:     "query a standard interface, e.g. 714df425",
			ArgsUsage: "INTERFACE-ID",
			Action:    runSupports,
		},
		{
			Name:      "get",
			Usage:     "read one or more values",
			ArgsUsage: "KEY [KEY...]",
			Action:    runGet,
		},
		{
			Name:      "set",
			Usage:     "write one or more key/value pairs (requires --key)",
			ArgsUsage: "KEY HEX-VALUE [KEY HEX-VALUE...]",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "payment, p",
					Value: 0,
					Usage: " payment to attach, retained by the store",
				},
			},
			Action: runSet,
		},
		{
			Name:   "owner",
			Usage:  "display the current owner",
			Action: runOwner,
		},
		{
			Name:      "transfer",
			Usage:     "transfer ownership (requires --key)",
			ArgsUsage: "NEW-OWNER-ACCOUNT",
			Action:    runTransfer,
		},
		{
			Name:  "renounce",
			Usage: "renounce ownership forever (requires --key)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "yes, y",
					Usage: " really do it, there is no way back",
				},
			},
			Action: runRenounce,
		},
	}

	app.Before = func(c *cli.Context) error {
		app.Metadata = map[string]interface{}{
			"config": &metadata{
				connect: c.GlobalString("connect"),
				key:     c.GlobalString("key"),
				verbose: c.GlobalBool("verbose"),
				e:       app.ErrWriter,
				w:       app.Writer,
			},
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		os.Exit(1)
	}
}
