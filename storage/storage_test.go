// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nameops/fault"
	"github.com/bitmark-inc/nameops/fixtures"
	"github.com/bitmark-inc/nameops/schema"
	"github.com/bitmark-inc/nameops/storage"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func entry(blockNumber int64, vtxindex int64) schema.Record {
	return schema.Record{
		"op":           "#",
		"opcode":       "ANNOUNCE",
		"message_hash": fixtures.MessageHash,
		"txid":         fmt.Sprintf("%060x%04x", blockNumber, vtxindex),
		"vtxindex":     vtxindex,
		"block_number": blockNumber,
	}
}

func openMemory(t *testing.T) *storage.Store {
	s, err := storage.OpenMemory(logger.New(fixtures.LogCategory))
	if !assert.Nil(t, err, "open error") {
		t.FailNow()
	}
	return s
}

func TestAppendAndHistory(t *testing.T) {
	s := openMemory(t)
	defer s.Close()

	// appended out of order
	for _, e := range []schema.Record{entry(200, 3), entry(100, 7), entry(200, 1)} {
		err := s.Append(e)
		assert.Nil(t, err, "append error")
	}

	h, err := s.History()
	assert.Nil(t, err, "history error")
	assert.Equal(t, storage.History{
		"100": {entry(100, 7)},
		"200": {entry(200, 1), entry(200, 3)},
	}, h, "wrong history")

	last, found, err := s.LastBlock()
	assert.Nil(t, err, "last block error")
	assert.True(t, found, "last block not found")
	assert.Equal(t, uint64(200), last, "wrong last block")

	e, err := s.Entry(entry(100, 7)["txid"].(string))
	assert.Nil(t, err, "entry error")
	assert.Equal(t, entry(100, 7), e, "wrong entry")

	_, err = s.Entry(fixtures.TxId)
	assert.Equal(t, fault.ErrRecordNotFound, err, "wrong error")
}

func TestAppendRejects(t *testing.T) {
	s := openMemory(t)
	defer s.Close()

	err := s.Append(entry(100, 1))
	assert.Nil(t, err, "append error")

	err = s.Append(entry(100, 1))
	assert.Equal(t, fault.ErrRecordExists, err, "duplicate position")

	// same transaction at another position
	e := entry(101, 0)
	e["txid"] = entry(100, 1)["txid"]
	err = s.Append(e)
	assert.Equal(t, fault.ErrRecordExists, err, "duplicate txid")

	e = entry(102, 0)
	delete(e, "block_number")
	err = s.Append(e)
	assert.Equal(t, fault.ErrRecordFailedValidation, err, "missing block number")

	e = entry(102, 0)
	e["txid"] = "abc"
	err = s.Append(e)
	assert.Equal(t, fault.ErrRecordFailedValidation, err, "invalid txid")

	e = entry(102, 0)
	e["vtxindex"] = int64(-1)
	err = s.Append(e)
	assert.Equal(t, fault.ErrRecordFailedValidation, err, "negative vtxindex")
}

func TestEmpty(t *testing.T) {
	s := openMemory(t)

	h, err := s.History()
	assert.Nil(t, err, "history error")
	assert.Equal(t, 0, len(h), "history not empty")

	_, found, err := s.LastBlock()
	assert.Nil(t, err, "last block error")
	assert.False(t, found, "last block found")

	assert.Nil(t, s.Close(), "close error")
	assert.Equal(t, fault.ErrNotInitialised, s.Close(), "second close")
	assert.Equal(t, fault.ErrNotInitialised, s.Append(entry(1, 1)), "append after close")
}

func TestHistoryEmbedded(t *testing.T) {
	s := openMemory(t)
	defer s.Close()

	for _, e := range []schema.Record{entry(373500, 1), entry(373601, 3)} {
		assert.Nil(t, s.Append(e), "append error")
	}

	h, err := s.History()
	assert.Nil(t, err, "history error")

	r := schema.Record{
		"address":      fixtures.Address,
		"block_number": int64(373601),
		"history":      h.Records(),
		"name":         "example.id",
		"op":           ":",
		"op_fee":       int64(6400000),
		"opcode":       "NAME_REGISTRATION",
		"sender":       fixtures.AddressScript,
		"txid":         fixtures.TxId,
		"vtxindex":     int64(3),
	}
	assert.Nil(t, schema.NameOperation.Validate(r), "name with stored history rejected")
}

func TestOpenFile(t *testing.T) {
	log := logger.New(fixtures.LogCategory)
	database := filepath.Join("testing", "history.leveldb")

	_, err := storage.Open(log, database, storage.ReadOnly)
	assert.NotNil(t, err, "missing database opened read only")

	s, err := storage.Open(log, database, storage.ReadWrite)
	assert.Nil(t, err, "open error")
	assert.Nil(t, s.Append(entry(5, 0)), "append error")
	assert.Nil(t, s.Close(), "close error")

	s, err = storage.Open(log, database, storage.ReadOnly)
	assert.Nil(t, err, "reopen error")
	defer s.Close()

	e, err := s.Entry(entry(5, 0)["txid"].(string))
	assert.Nil(t, err, "entry error")
	assert.Equal(t, entry(5, 0), e, "wrong entry")

	err = s.Append(entry(6, 0))
	assert.Equal(t, fault.ErrDatabaseIsReadOnly, err, "append to read only")

	_, err = storage.OpenMemory(nil)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "wrong error")
}
