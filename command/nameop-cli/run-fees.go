// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/nameops/fault"
	"github.com/bitmark-inc/nameops/fees"
	"github.com/bitmark-inc/nameops/nulldata"
	"github.com/bitmark-inc/nameops/transaction"
)

func runFees(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	inputCount := c.Int("inputs")
	if inputCount <= 0 {
		return fault.ErrInvalidCount
	}

	baseTxFee, err := m.baseTxFee(c.String("tx-fee"))
	if nil != err {
		return err
	}

	payFee := !c.Bool("subsidised")
	breakdown, err := fees.Compute(inputCount, payFee, baseTxFee)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "inputs: %d  pay fee: %t  base fee: %d\n", inputCount, payFee, baseTxFee)
	}

	result := struct {
		Inputs    int            `json:"inputs"`
		BaseTxFee uint64         `json:"base_tx_fee"`
		Fees      fees.Breakdown `json:"fees"`
	}{
		Inputs:    inputCount,
		BaseTxFee: baseTxFee,
		Fees:      breakdown,
	}

	return printJson(m.w, result)
}

func runRecoverFees(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	txHex := c.String("tx")
	if "" == txHex {
		return fault.ErrMissingArgument
	}

	tx, err := transaction.Deserialize(txHex)
	if nil != err {
		return err
	}

	if !transaction.HasOperationLayout(m.codec, tx.Outputs) {
		return ErrNotAnOperationLayout
	}

	data, ok := m.codec.NullData(tx.Outputs[transaction.RecordOutputIndex].ScriptHex)
	if !ok {
		return ErrNotAnOperationLayout
	}
	decoded, ok := m.registry.Decode(nulldata.Packed(data))
	if !ok {
		return ErrNotAnOperation
	}

	// only the count of inputs matters
	inputs := make([]transaction.UnspentOutput, tx.InputCount)
	dustFee, opFee, ok := m.registry.Fees(decoded.Opcode, inputs, tx.Outputs)
	if !ok {
		return ErrNotAnOperationLayout
	}

	result := struct {
		TxID    string `json:"txid"`
		Opcode  string `json:"opcode"`
		Inputs  int    `json:"inputs"`
		DustFee uint64 `json:"dust_fee"`
		OpFee   uint64 `json:"op_fee"`
	}{
		TxID:    tx.TxID,
		Opcode:  decoded.Opcode.Name(),
		Inputs:  tx.InputCount,
		DustFee: dustFee,
		OpFee:   opFee,
	}

	return printJson(m.w, result)
}
