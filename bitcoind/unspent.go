// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitcoind

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/nameops/transaction"
)

// confirmation range for listunspent
const (
	minimumConfirmations = 1
	maximumConfirmations = 9999999
)

type unspent struct {
	TxID          string          `json:"txid"`
	Vout          uint32          `json:"vout"`
	Address       string          `json:"address"`
	ScriptPubKey  string          `json:"scriptPubKey"`
	Amount        decimal.Decimal `json:"amount"`
	Confirmations uint64          `json:"confirmations"`
}

// GetUnspents - confirmed unspent outputs of an address
//
// the address must be watched by the node's wallet
func (c *Client) GetUnspents(ctx context.Context, address string) ([]transaction.UnspentOutput, error) {
	var reply []unspent
	arguments := []interface{}{
		minimumConfirmations,
		maximumConfirmations,
		[]string{address},
	}
	err := c.call(ctx, "listunspent", arguments, &reply)
	if nil != err {
		return nil, err
	}

	result := make([]transaction.UnspentOutput, 0, len(reply))
	for _, u := range reply {
		value, err := ToSatoshi(u.Amount)
		if nil != err {
			c.log.Warnf("txid: %s  vout: %d  amount: %s  error: %s", u.TxID, u.Vout, u.Amount, err)
			return nil, err
		}
		result = append(result, transaction.UnspentOutput{
			TxID:          u.TxID,
			Vout:          u.Vout,
			ScriptHex:     u.ScriptPubKey,
			Value:         value,
			Confirmations: u.Confirmations,
		})
	}
	return result, nil
}

// Broadcast - send a signed transaction, returns its txid
func (c *Client) Broadcast(ctx context.Context, txHex string) (string, error) {
	var txId string
	err := c.call(ctx, "sendrawtransaction", []interface{}{txHex}, &txId)
	if nil != err {
		return "", err
	}
	c.log.Infof("broadcast: %s", txId)
	return txId, nil
}
