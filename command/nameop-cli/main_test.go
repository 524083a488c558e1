// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/nameops/fault"
	"github.com/bitmark-inc/nameops/fixtures"
	"github.com/bitmark-inc/nameops/operation"
	"github.com/bitmark-inc/nameops/operation/announce"
	"github.com/bitmark-inc/nameops/script"
	"github.com/bitmark-inc/nameops/transaction"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// run a command with a configuration-less metadata
func run(t *testing.T, args ...string) (string, error) {
	log := logger.New(fixtures.LogCategory)

	codec, err := script.New(script.Bitcoin)
	assert.Nil(t, err, "codec error")

	handler, err := announce.New(log, codec)
	assert.Nil(t, err, "handler error")
	registry, err := operation.New(log, handler)
	assert.Nil(t, err, "registry error")

	var w, e bytes.Buffer

	app := newApp()
	app.Writer = &w
	app.ErrWriter = &e
	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			network:  script.Bitcoin,
			log:      log,
			codec:    codec,
			registry: registry,
			announce: handler,
			e:        &e,
			w:        &w,
		}
		return nil
	}
	app.After = nil

	err = app.Run(append([]string{"nameop-cli"}, args...))
	return w.String(), err
}

func TestBuildAnnounce(t *testing.T) {
	out, err := run(t, "build-announce", "-m", fixtures.MessageHash)
	assert.Nil(t, err, "build error")

	assert.Equal(t, "ANNOUNCE", gjson.Get(out, "opcode").String(), "wrong opcode")
	assert.Equal(t, "696423"+fixtures.MessageHash, gjson.Get(out, "record").String(), "wrong record")
	assert.Equal(t, "6a17696423"+fixtures.MessageHash, gjson.Get(out, "script").String(), "wrong script")
}

func TestBuildAnnounceMissingHash(t *testing.T) {
	_, err := run(t, "build-announce")
	assert.Equal(t, fault.ErrMissingArgument, err, "wrong error")
}

func TestDecode(t *testing.T) {
	items := [][]string{
		{"decode", "-r", "696423" + fixtures.MessageHash},
		{"decode", "-s", "6a17696423" + fixtures.MessageHash},
	}

	for i, args := range items {
		out, err := run(t, args...)
		assert.Nil(t, err, "%d: decode error", i)
		assert.Equal(t, "ANNOUNCE", gjson.Get(out, "opcode").String(), "%d: wrong opcode", i)
		assert.Equal(t, fixtures.MessageHash, gjson.Get(out, "record.message_hash").String(), "%d: wrong hash", i)
	}
}

func TestDecodeRejects(t *testing.T) {
	_, err := run(t, "decode")
	assert.Equal(t, fault.ErrMissingArgument, err, "wrong error")

	// unknown tag
	_, err = run(t, "decode", "-r", "69647e"+fixtures.MessageHash)
	assert.Equal(t, ErrNotAnOperation, err, "wrong error")

	// not null-data
	_, err = run(t, "decode", "-s", fixtures.AddressScript)
	assert.Equal(t, fault.ErrInvalidScript, err, "wrong error")
}

func TestFees(t *testing.T) {
	out, err := run(t, "fees", "-i", "2", "-t", "0.0001")
	assert.Nil(t, err, "fees error")

	assert.Equal(t, uint64(10000), gjson.Get(out, "base_tx_fee").Uint(), "wrong base fee")
	assert.Equal(t, uint64(36500), gjson.Get(out, "fees.dust_fee").Uint(), "wrong dust fee")
	assert.Equal(t, uint64(5500), gjson.Get(out, "fees.op_fee").Uint(), "wrong op fee")
	assert.Equal(t, uint64(5500), gjson.Get(out, "fees.dust_value").Uint(), "wrong dust value")
}

func TestFeesSubsidised(t *testing.T) {
	out, err := run(t, "fees", "-i", "2", "--subsidised")
	assert.Nil(t, err, "fees error")

	assert.Equal(t, uint64(0), gjson.Get(out, "fees.dust_fee").Uint(), "wrong dust fee")
	assert.Equal(t, uint64(0), gjson.Get(out, "fees.op_fee").Uint(), "wrong op fee")
}

func TestFeesRejects(t *testing.T) {
	_, err := run(t, "fees", "-i", "0")
	assert.Equal(t, fault.ErrInvalidCount, err, "wrong error")

	_, err = run(t, "fees", "-i", "1", "-t", "lots")
	assert.NotNil(t, err, "invalid fee accepted")
}

func TestRecoverFees(t *testing.T) {
	log := logger.New(fixtures.LogCategory)
	codec, err := script.New(script.Bitcoin)
	assert.Nil(t, err, "codec error")

	inputs := []transaction.UnspentOutput{
		{TxID: fixtures.TxId, Vout: 0, ScriptHex: fixtures.AddressScript, Value: 100000},
	}
	record, err := announce.Build(fixtures.MessageHash)
	assert.Nil(t, err, "build error")

	handler, err := announce.New(log, codec)
	assert.Nil(t, err, "handler error")

	outputs, err := handler.MakeOutputs(record, inputs, fixtures.Address, 10000, true)
	assert.Nil(t, err, "outputs error")

	txHex, err := transaction.Serialize(inputs, outputs)
	assert.Nil(t, err, "serialize error")

	out, err := run(t, "recover-fees", "-t", txHex)
	assert.Nil(t, err, "recover error")

	assert.Equal(t, "ANNOUNCE", gjson.Get(out, "opcode").String(), "wrong opcode")
	assert.Equal(t, int64(1), gjson.Get(out, "inputs").Int(), "wrong input count")
	assert.Equal(t, uint64(21000), gjson.Get(out, "dust_fee").Uint(), "wrong dust fee")
	assert.Equal(t, uint64(0), gjson.Get(out, "op_fee").Uint(), "wrong op fee")
}

func TestCommandsNeedingConfiguration(t *testing.T) {
	items := [][]string{
		{"make-announce", "-m", fixtures.MessageHash, "-k", fixtures.PublicKey},
		{"scan"},
		{"history"},
	}

	for i, args := range items {
		_, err := run(t, args...)
		assert.Equal(t, ErrConfigurationRequired, err, "%d: wrong error", i)
	}
}
