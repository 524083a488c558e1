// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/nameops/fault"
	"github.com/bitmark-inc/nameops/transaction"
)

func runMakeAnnounce(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	messageHash := c.String("hash")
	publicKey := c.String("public-key")
	if "" == messageHash || "" == publicKey {
		return fault.ErrMissingArgument
	}

	client, err := m.bitcoinClient()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "message hash: %s\npublic key: %s\n", messageHash, publicKey)
	}

	ctx := context.Background()
	inputs, outputs, err := m.announce.MakeTransaction(ctx, messageHash, publicKey, client, m.config.BaseTxFee(), m.config.PayFee)
	if nil != err {
		return err
	}

	unsigned, err := transaction.Serialize(inputs, outputs)
	if nil != err {
		return err
	}

	result := struct {
		Inputs   []transaction.UnspentOutput `json:"inputs"`
		Outputs  []transaction.Output        `json:"outputs"`
		Unsigned string                      `json:"unsigned"`
	}{
		Inputs:   inputs,
		Outputs:  outputs,
		Unsigned: unsigned,
	}

	return printJson(m.w, result)
}

func runBroadcast(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	txHex := c.String("tx")
	if "" == txHex {
		return fault.ErrMissingArgument
	}

	// reject anything that is not a transaction before contacting the node
	if _, err := transaction.Deserialize(txHex); nil != err {
		return err
	}

	client, err := m.bitcoinClient()
	if nil != err {
		return err
	}

	var broadcaster transaction.Broadcaster = client
	txId, err := broadcaster.Broadcast(context.Background(), txHex)
	if nil != err {
		return err
	}

	m.log.Infof("broadcast: %s", txId)

	result := struct {
		TxID string `json:"txid"`
	}{
		TxID: txId,
	}

	return printJson(m.w, result)
}
