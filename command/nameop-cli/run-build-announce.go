// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/nameops/fault"
	"github.com/bitmark-inc/nameops/opcode"
	"github.com/bitmark-inc/nameops/operation"
	"github.com/bitmark-inc/nameops/operation/announce"
)

func runBuildAnnounce(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	messageHash := c.String("hash")
	if "" == messageHash {
		return fault.ErrMissingArgument
	}

	if m.verbose {
		fmt.Fprintf(m.e, "message hash: %s\n", messageHash)
	}

	record, err := m.registry.Build(opcode.Announce, operation.Arguments{
		announce.ArgumentMessageHash: messageHash,
	})
	if nil != err {
		return err
	}

	nullData, err := m.codec.NullDataScript(record)
	if nil != err {
		return err
	}

	result := struct {
		Opcode string `json:"opcode"`
		Record string `json:"record"`
		Script string `json:"script"`
	}{
		Opcode: opcode.Announce.Name(),
		Record: record,
		Script: nullData,
	}

	return printJson(m.w, result)
}
