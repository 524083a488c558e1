// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitcoind

import (
	"context"
	"strconv"

	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/nameops/transaction"
)

// getblock with transactions decoded
const blockVerbosity = 2

type scriptPubKey struct {
	Hex string `json:"hex"`
}

type vout struct {
	Value        decimal.Decimal `json:"value"`
	N            uint32          `json:"n"`
	ScriptPubKey scriptPubKey    `json:"scriptPubKey"`
}

// only the number of inputs is needed
type vin struct{}

type bitcoinTransaction struct {
	TxID string `json:"txid"`
	Vin  []vin  `json:"vin"`
	Vout []vout `json:"vout"`
}

type bitcoinBlock struct {
	Hash   string               `json:"hash"`
	Height uint64               `json:"height"`
	Tx     []bitcoinTransaction `json:"tx"`
}

// BlockCount - height of the most recent block
func (c *Client) BlockCount(ctx context.Context) (uint64, error) {
	var count uint64
	err := c.call(ctx, "getblockcount", []interface{}{}, &count)
	return count, err
}

// BlockHash - hash of the block at a height
func (c *Client) BlockHash(ctx context.Context, height uint64) (string, error) {
	var hash string
	err := c.call(ctx, "getblockhash", []interface{}{height}, &hash)
	return hash, err
}

// Block - transactions of the block at a height
//
// results are cached, blocks are not expected to change once scanned
func (c *Client) Block(ctx context.Context, height uint64) ([]*transaction.Transaction, error) {
	key := strconv.FormatUint(height, 10)
	if txs, found := c.blocks.Get(key); found {
		return txs.([]*transaction.Transaction), nil
	}

	hash, err := c.BlockHash(ctx, height)
	if nil != err {
		return nil, err
	}

	var reply bitcoinBlock
	err = c.call(ctx, "getblock", []interface{}{hash, blockVerbosity}, &reply)
	if nil != err {
		return nil, err
	}

	txs := make([]*transaction.Transaction, len(reply.Tx))
	for i, tx := range reply.Tx {
		outputs := make([]transaction.Output, len(tx.Vout))
		for j, out := range tx.Vout {
			value, err := ToSatoshi(out.Value)
			if nil != err {
				c.log.Warnf("block: %d  txid: %s  vout: %d  error: %s", height, tx.TxID, out.N, err)
				return nil, err
			}
			outputs[j] = transaction.Output{
				ScriptHex: out.ScriptPubKey.Hex,
				Value:     value,
			}
		}
		txs[i] = &transaction.Transaction{
			TxID:       tx.TxID,
			InputCount: len(tx.Vin),
			Outputs:    outputs,
		}
	}

	c.blocks.Set(key, txs, cache.DefaultExpiration)
	c.log.Debugf("block: %d  hash: %s  transactions: %d", height, hash, len(txs))
	return txs, nil
}
