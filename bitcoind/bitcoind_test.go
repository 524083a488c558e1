// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitcoind_test

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nameops/bitcoind"
	"github.com/bitmark-inc/nameops/fault"
	"github.com/bitmark-inc/nameops/fixtures"
	"github.com/bitmark-inc/nameops/transaction"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

type request struct {
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// fake node answering from a table of method to result
type node struct {
	sync.Mutex
	results map[string]string
	calls   map[string]int
}

func (n *node) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := ioutil.ReadAll(r.Body)
	var req request
	_ = json.Unmarshal(body, &req)

	user, password, ok := r.BasicAuth()
	if !ok || "user" != user || "secret" != password {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	n.Lock()
	n.calls[req.Method] += 1
	n.Unlock()

	result, ok := n.results[req.Method]
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"result":null,"error":{"code":-32601,"message":"Method not found"},"id":1}`))
		return
	}
	_, _ = w.Write([]byte(`{"result":` + result + `,"error":null,"id":1}`))
}

func setup(t *testing.T, results map[string]string) (*bitcoind.Client, *node, func()) {
	n := &node{
		results: results,
		calls:   make(map[string]int),
	}
	server := httptest.NewServer(n)

	c, err := bitcoind.New(logger.New(fixtures.LogCategory), &bitcoind.Configuration{
		URL:      server.URL,
		Username: "user",
		Password: "secret",
	})
	assert.Nil(t, err, "new error")
	return c, n, server.Close
}

func TestGetUnspents(t *testing.T) {
	c, _, done := setup(t, map[string]string{
		"listunspent": `[
  {"txid": "` + fixtures.TxId + `", "vout": 1, "address": "` + fixtures.Address + `",
   "scriptPubKey": "` + fixtures.AddressScript + `", "amount": 0.0012345, "confirmations": 6},
  {"txid": "` + fixtures.TxId + `", "vout": 2, "address": "` + fixtures.Address + `",
   "scriptPubKey": "` + fixtures.AddressScript + `", "amount": 1, "confirmations": 1}
]`,
	})
	defer done()

	unspents, err := c.GetUnspents(context.Background(), fixtures.Address)
	assert.Nil(t, err, "unspents error")
	assert.Equal(t, []transaction.UnspentOutput{
		{TxID: fixtures.TxId, Vout: 1, ScriptHex: fixtures.AddressScript, Value: 123450, Confirmations: 6},
		{TxID: fixtures.TxId, Vout: 2, ScriptHex: fixtures.AddressScript, Value: 100000000, Confirmations: 1},
	}, unspents, "wrong unspents")
}

func TestBroadcast(t *testing.T) {
	c, _, done := setup(t, map[string]string{
		"sendrawtransaction": `"` + fixtures.TxId + `"`,
	})
	defer done()

	txId, err := c.Broadcast(context.Background(), "0100")
	assert.Nil(t, err, "broadcast error")
	assert.Equal(t, fixtures.TxId, txId, "wrong txid")
}

func TestRPCError(t *testing.T) {
	c, _, done := setup(t, map[string]string{})
	defer done()

	_, err := c.Broadcast(context.Background(), "0100")
	assert.Equal(t, fault.ProcessError("bitcoin rpc error: Method not found"), err, "wrong error")
	assert.True(t, fault.IsErrProcess(err), "wrong error class")
}

func TestBlock(t *testing.T) {
	c, n, done := setup(t, map[string]string{
		"getblockhash": `"00000000000000000003ee4b0a1e2f5d2b8a4ab5b5c1eb7f66a1f6ed57cc3b17"`,
		"getblock": `{
  "hash": "00000000000000000003ee4b0a1e2f5d2b8a4ab5b5c1eb7f66a1f6ed57cc3b17",
  "height": 600000,
  "tx": [
    {"txid": "` + fixtures.TxId + `", "vin": [{"txid": "` + fixtures.TxId + `", "vout": 3}, {"txid": "` + fixtures.TxId + `", "vout": 4}], "vout": [
      {"value": 0, "n": 0, "scriptPubKey": {"hex": "6a0401020304"}},
      {"value": 0.000055, "n": 1, "scriptPubKey": {"hex": "` + fixtures.AddressScript + `"}}
    ]}
  ]
}`,
	})
	defer done()

	expected := []*transaction.Transaction{
		{
			TxID:       fixtures.TxId,
			InputCount: 2,
			Outputs: []transaction.Output{
				{ScriptHex: "6a0401020304", Value: 0},
				{ScriptHex: fixtures.AddressScript, Value: 5500},
			},
		},
	}

	txs, err := c.Block(context.Background(), 600000)
	assert.Nil(t, err, "block error")
	assert.Equal(t, expected, txs, "wrong transactions")

	// second fetch is cached
	txs, err = c.Block(context.Background(), 600000)
	assert.Nil(t, err, "block error")
	assert.Equal(t, expected, txs, "wrong transactions")

	n.Lock()
	assert.Equal(t, 1, n.calls["getblock"], "block not cached")
	n.Unlock()
}

func TestUnauthorised(t *testing.T) {
	n := &node{results: map[string]string{}, calls: map[string]int{}}
	server := httptest.NewServer(n)
	defer server.Close()

	c, err := bitcoind.New(logger.New(fixtures.LogCategory), &bitcoind.Configuration{
		URL: server.URL,
	})
	assert.Nil(t, err, "new error")

	_, err = c.BlockCount(context.Background())
	assert.NotNil(t, err, "expected error")
	assert.False(t, fault.IsErrProcess(errors.Cause(err)), "unexpected rpc error")
}

func TestNew(t *testing.T) {
	_, err := bitcoind.New(logger.New(fixtures.LogCategory), &bitcoind.Configuration{})
	assert.Equal(t, fault.ErrMissingBitcoinURL, err, "wrong error")

	_, err = bitcoind.New(nil, &bitcoind.Configuration{URL: "http://localhost:8332"})
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "wrong error")
}

func TestAmounts(t *testing.T) {
	items := []struct {
		btc     string
		satoshi uint64
		err     error
	}{
		{"0", 0, nil},
		{"0.00000001", 1, nil},
		{"0.0001", 10000, nil},
		{"1.5", 150000000, nil},
		{"21000000", 2100000000000000, nil},
		{"0.000000001", 0, fault.ErrInvalidAmount},
		{"-1", 0, fault.ErrInvalidAmount},
		{"21000000.00000001", 0, fault.ErrInvalidAmount},
		{"one", 0, fault.ErrInvalidAmount},
	}

	for _, item := range items {
		satoshi, err := bitcoind.ParseAmount(item.btc)
		assert.Equal(t, item.err, err, "%s: wrong error", item.btc)
		assert.Equal(t, item.satoshi, satoshi, "%s: wrong value", item.btc)
	}

	satoshi, err := bitcoind.ToSatoshi(decimal.New(55, -7))
	assert.Nil(t, err, "conversion error")
	assert.Equal(t, uint64(550), satoshi, "wrong value")
}
