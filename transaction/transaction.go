// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

//go:generate mockgen -source=transaction.go -destination=../mocks/transaction.go -package=mocks

import (
	"context"
)

// UnspentOutput - a spendable input
type UnspentOutput struct {
	TxID          string `json:"txid"`
	Vout          uint32 `json:"vout"`
	ScriptHex     string `json:"script_hex"`
	Value         uint64 `json:"value"` // satoshi
	Confirmations uint64 `json:"confirmations"`
}

// Output - a transaction output
type Output struct {
	ScriptHex string `json:"script_hex"`
	Value     uint64 `json:"value"` // satoshi
}

// Transaction - the parts of a confirmed transaction needed for scanning
type Transaction struct {
	TxID       string   `json:"txid"`
	InputCount int      `json:"input_count,omitempty"`
	Outputs    []Output `json:"outputs"`
}

// UnspentOutputProvider - look up the spendable outputs of an address
type UnspentOutputProvider interface {
	GetUnspents(ctx context.Context, address string) ([]UnspentOutput, error)
}

// Broadcaster - send a signed raw transaction to the network
type Broadcaster interface {
	Broadcast(ctx context.Context, txHex string) (string, error)
}

// Values - the satoshi values of a list of inputs
func Values(inputs []UnspentOutput) []uint64 {
	values := make([]uint64, len(inputs))
	for i, in := range inputs {
		values[i] = in.Value
	}
	return values
}
