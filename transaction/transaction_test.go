// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nameops/fault"
	"github.com/bitmark-inc/nameops/fees"
	"github.com/bitmark-inc/nameops/script"
	"github.com/bitmark-inc/nameops/transaction"
)

const (
	address       = "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH"
	addressScript = "76a914751e76e8199196d454941c45d1b3a323f1433bd688ac"
	recordHex     = "696423" + "0123456789abcdef0123456789abcdef01234567"
	txId          = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"
)

var inputs = []transaction.UnspentOutput{
	{TxID: txId, Vout: 0, ScriptHex: addressScript, Value: 100000},
	{TxID: txId, Vout: 1, ScriptHex: addressScript, Value: 50000},
}

func codec(t *testing.T) script.Codec {
	c, err := script.New(script.Bitcoin)
	assert.Nil(t, err, "wrong error")
	return c
}

func TestBuildOutputs(t *testing.T) {
	c := codec(t)
	breakdown, err := fees.Compute(len(inputs), true, 0)
	assert.Nil(t, err, "wrong error")

	outputs, err := transaction.BuildOutputs(c, recordHex, inputs, address, breakdown)
	assert.Nil(t, err, "wrong error")
	assert.Len(t, outputs, transaction.OutputCount, "wrong output count")

	assert.Equal(t, "6a17"+recordHex, outputs[0].ScriptHex, "wrong record script")
	assert.Equal(t, uint64(0), outputs[0].Value, "record output has value")

	assert.Equal(t, addressScript, outputs[1].ScriptHex, "wrong change script")
	expected := uint64(150000) - breakdown.OpFee - breakdown.DustFee
	assert.Equal(t, expected, outputs[1].Value, "wrong change")

	assert.True(t, transaction.HasOperationLayout(c, outputs), "layout not recognised")
}

func TestBuildOutputsRejects(t *testing.T) {
	c := codec(t)
	breakdown := fees.Breakdown{DustFee: 200000}

	_, err := transaction.BuildOutputs(c, recordHex, inputs, address, breakdown)
	assert.Equal(t, fault.ErrInsufficientFunds, err, "wrong error")

	_, err = transaction.BuildOutputs(c, recordHex, inputs, "not-an-address", fees.Breakdown{})
	assert.Equal(t, fault.ErrInvalidAddress, err, "wrong error")

	_, err = transaction.BuildOutputs(c, "xyz", inputs, address, fees.Breakdown{})
	assert.Equal(t, fault.ErrInvalidPayload, err, "wrong error")
}

func TestHasOperationLayout(t *testing.T) {
	c := codec(t)
	record := transaction.Output{ScriptHex: "6a03696423", Value: 0}
	change := transaction.Output{ScriptHex: addressScript, Value: 1000}

	assert.True(t, transaction.HasOperationLayout(c, []transaction.Output{record, change}), "valid layout")
	assert.False(t, transaction.HasOperationLayout(c, []transaction.Output{record}), "one output")
	assert.False(t, transaction.HasOperationLayout(c, []transaction.Output{record, change, change}), "three outputs")
	assert.False(t, transaction.HasOperationLayout(c, []transaction.Output{change, record}), "swapped")

	valued := record
	valued.Value = 1
	assert.False(t, transaction.HasOperationLayout(c, []transaction.Output{valued, change}), "record with value")
}

func TestSerializeRoundTrip(t *testing.T) {
	c := codec(t)
	breakdown, err := fees.Compute(len(inputs), true, 0)
	assert.Nil(t, err, "wrong error")
	outputs, err := transaction.BuildOutputs(c, recordHex, inputs, address, breakdown)
	assert.Nil(t, err, "wrong error")

	raw, err := transaction.Serialize(inputs, outputs)
	assert.Nil(t, err, "wrong error")
	assert.True(t, strings.HasPrefix(raw, "0100000002"), "wrong version or input count: %s", raw)

	tx, err := transaction.Deserialize(raw)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, outputs, tx.Outputs, "wrong outputs")
	assert.Len(t, tx.TxID, 64, "wrong txid length")
	assert.Equal(t, len(inputs), tx.InputCount, "wrong input count")
}

func TestSerializeRejects(t *testing.T) {
	bad := []transaction.UnspentOutput{{TxID: "abcd", Value: 1}}
	_, err := transaction.Serialize(bad, nil)
	assert.Equal(t, fault.ErrInvalidTransactionId, err, "wrong error")

	_, err = transaction.Serialize(inputs, []transaction.Output{{ScriptHex: "zz"}})
	assert.Equal(t, fault.ErrInvalidScript, err, "wrong error")

	huge := []transaction.Output{{ScriptHex: addressScript, Value: math.MaxInt64 + 1}}
	_, err = transaction.Serialize(inputs, huge)
	assert.Equal(t, fault.ErrInvalidAmount, err, "wrong error")

	_, err = transaction.Deserialize("zz")
	assert.Equal(t, fault.ErrInvalidPayload, err, "wrong error")

	_, err = transaction.Deserialize("0100")
	assert.NotNil(t, err, "truncated accepted")
}
