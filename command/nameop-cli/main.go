// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/nameops/configuration"
	"github.com/bitmark-inc/nameops/operation"
	"github.com/bitmark-inc/nameops/operation/announce"
	"github.com/bitmark-inc/nameops/script"
)

type metadata struct {
	config   *configuration.Configuration // nil if no file given
	network  string
	log      *logger.L
	codec    script.Codec
	registry *operation.Registry
	announce *announce.Handler
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp()

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		exitwithstatus.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "nameop-cli"
	app.Usage = "name operation records in bitcoin null-data outputs"
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
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "",
			Usage: " bitcoin `NETWORK` [bitcoin|testnet|regtest] overrides configuration",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "build-announce",
			Usage:     "build the record announcing a message hash",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hash, m",
					Value: "",
					Usage: "*message `HASH` as 40 hex characters",
				},
			},
			Action: runBuildAnnounce,
		},
		{
			Name:      "decode",
			Usage:     "decode a record or null-data script",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "record, r",
					Value: "",
					Usage: "+record `HEX` including magic bytes",
				},
				cli.StringFlag{
					Name:  "script, s",
					Value: "",
					Usage: "+null-data output script `HEX`",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "validate",
			Usage:     "validate a JSON record against a schema",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "schema, s",
					Value: "",
					Usage: "*schema `NAME`",
				},
				cli.StringFlag{
					Name:  "file, f",
					Value: "-",
					Usage: " JSON `FILE` [- = stdin]",
				},
			},
			Action: runValidate,
		},
		{
			Name:      "fees",
			Usage:     "fees for an operation spending a number of inputs",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "inputs, i",
					Value: 1,
					Usage: "*input `COUNT`",
				},
				cli.StringFlag{
					Name:  "tx-fee, t",
					Value: "",
					Usage: " base transaction fee `BTC` [configuration]",
				},
				cli.BoolFlag{
					Name:  "subsidised, s",
					Usage: " fees paid by another party",
				},
			},
			Action: runFees,
		},
		{
			Name:      "recover-fees",
			Usage:     "dust and operation fees of a raw transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "tx, t",
					Value: "",
					Usage: "*raw transaction `HEX`",
				},
			},
			Action: runRecoverFees,
		},
		{
			Name:      "make-announce",
			Usage:     "make an unsigned announcement transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hash, m",
					Value: "",
					Usage: "*message `HASH` as 40 hex characters",
				},
				cli.StringFlag{
					Name:  "public-key, k",
					Value: "",
					Usage: "*sender public key `HEX`",
				},
			},
			Action: runMakeAnnounce,
		},
		{
			Name:      "broadcast",
			Usage:     "send a signed transaction to bitcoind",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "tx, t",
					Value: "",
					Usage: "*signed transaction `HEX`",
				},
			},
			Action: runBroadcast,
		},
		{
			Name:      "scan",
			Usage:     "scan blocks and store the operations found",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first `BLOCK` [after last stored]",
				},
				cli.Uint64Flag{
					Name:  "stop, e",
					Value: 0,
					Usage: " last `BLOCK` [current height]",
				},
			},
			Action: runScan,
		},
		{
			Name:      "history",
			Usage:     "stored history, or the entry of one transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: " transaction `ID`",
				},
			},
			Action: runHistory,
		},
		{
			Name:  "version",
			Usage: "display nameop-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "" == command || "help" == command {
			return nil
		}

		m, err := setup(c)
		if nil != err {
			return err
		}
		c.App.Metadata["config"] = m
		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			logger.Finalise()
		}
		return nil
	}

	return app
}
