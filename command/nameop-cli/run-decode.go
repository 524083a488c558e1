// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/nameops/fault"
	"github.com/bitmark-inc/nameops/nulldata"
	"github.com/bitmark-inc/nameops/schema"
)

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	recordHex := c.String("record")
	scriptHex := c.String("script")

	var record nulldata.Packed
	switch {
	case "" != recordHex && "" != scriptHex:
		return fmt.Errorf("only one of record or script may be given")

	case "" != recordHex:
		r, err := nulldata.PackedFromHex(recordHex)
		if nil != err {
			return err
		}
		record = r

	case "" != scriptHex:
		data, ok := m.codec.NullData(scriptHex)
		if !ok {
			return fault.ErrInvalidScript
		}
		record = nulldata.Packed(data)

	default:
		return fault.ErrMissingArgument
	}

	if m.verbose {
		fmt.Fprintf(m.e, "record: %s\n", record)
	}

	decoded, ok := m.registry.Decode(record)
	if !ok {
		return ErrNotAnOperation
	}

	result := struct {
		Opcode string        `json:"opcode"`
		Record schema.Record `json:"record"`
	}{
		Opcode: decoded.Opcode.Name(),
		Record: decoded.Record,
	}

	return printJson(m.w, result)
}
