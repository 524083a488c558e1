// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"encoding/json"
	"math"
	"strconv"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/nameops/fault"
	"github.com/bitmark-inc/nameops/schema"
)

const (
	blockNumberLength = 8
	vtxindexLength    = 4
	entryKeyLength    = blockNumberLength + vtxindexLength
)

// History - block number (decimal) to the entries of that block in
// vtxindex order, the form embedded in name and namespace records
type History map[string][]schema.Record

func entryKey(blockNumber uint64, vtxindex uint32) []byte {
	key := make([]byte, entryKeyLength)
	binary.BigEndian.PutUint64(key[:blockNumberLength], blockNumber)
	binary.BigEndian.PutUint32(key[blockNumberLength:], vtxindex)
	return key
}

func splitKey(key []byte) (uint64, uint32, bool) {
	if entryKeyLength != len(key) {
		return 0, 0, false
	}
	return binary.BigEndian.Uint64(key[:blockNumberLength]), binary.BigEndian.Uint32(key[blockNumberLength:]), true
}

// Append - add a history entry
//
// the entry must be a valid history entry with a block number, and
// neither its position nor its transaction may already be stored
func (s *Store) Append(entry schema.Record) error {
	if s.readOnly {
		return fault.ErrDatabaseIsReadOnly
	}

	if !s.validator.Check(schema.HistoryEntry, entry) {
		return fault.ErrRecordFailedValidation
	}

	blockNumber, ok := entry.GetInteger("block_number")
	if !ok || blockNumber < 0 {
		return fault.ErrRecordFailedValidation
	}
	vtxindex, _ := entry.GetInteger("vtxindex")
	if vtxindex > math.MaxUint32 {
		return fault.ErrRecordFailedValidation
	}
	txId, _ := entry.GetString("txid")

	data, err := json.Marshal(entry)
	if nil != err {
		return err
	}

	s.Lock()
	defer s.Unlock()

	if nil == s.database {
		return fault.ErrNotInitialised
	}

	key := entryKey(uint64(blockNumber), uint32(vtxindex))

	exists, err := s.pool.History.has(key)
	if nil != err {
		return err
	}
	if !exists {
		exists, err = s.pool.TxIndex.has([]byte(txId))
		if nil != err {
			return err
		}
	}
	if exists {
		return fault.ErrRecordExists
	}

	batch := new(leveldb.Batch)
	s.pool.History.put(batch, key, data)
	s.pool.TxIndex.put(batch, []byte(txId), key)

	err = s.database.Write(batch, nil)
	if nil != err {
		s.log.Errorf("append: txid: %s  error: %s", txId, err)
		return err
	}

	s.log.Debugf("append: block: %d  vtxindex: %d  txid: %s", blockNumber, vtxindex, txId)
	return nil
}

// Entry - the history entry of a transaction
func (s *Store) Entry(txId string) (schema.Record, error) {
	s.RLock()
	defer s.RUnlock()

	if nil == s.database {
		return nil, fault.ErrNotInitialised
	}

	key, err := s.pool.TxIndex.get([]byte(txId))
	if nil != err {
		return nil, err
	}
	if nil == key {
		return nil, fault.ErrRecordNotFound
	}

	data, err := s.pool.History.get(key)
	if nil != err {
		return nil, err
	}
	if nil == data {
		return nil, fault.ErrRecordNotFound
	}
	return schema.FromJSON(data)
}

// History - all stored entries grouped by block
func (s *Store) History() (History, error) {
	s.RLock()
	defer s.RUnlock()

	if nil == s.database {
		return nil, fault.ErrNotInitialised
	}

	elements, err := s.pool.History.elements()
	if nil != err {
		return nil, err
	}

	history := make(History)
	for _, e := range elements {
		blockNumber, _, ok := splitKey(e.Key)
		if !ok {
			s.log.Warnf("history: invalid key: %x", e.Key)
			continue
		}

		entry, err := schema.FromJSON(e.Value)
		if nil != err {
			return nil, err
		}

		n := strconv.FormatUint(blockNumber, 10)
		history[n] = append(history[n], entry)
	}
	return history, nil
}

// LastBlock - highest block number holding an entry
func (s *Store) LastBlock() (uint64, bool, error) {
	s.RLock()
	defer s.RUnlock()

	if nil == s.database {
		return 0, false, fault.ErrNotInitialised
	}

	e, found, err := s.pool.History.last()
	if nil != err || !found {
		return 0, false, err
	}

	blockNumber, _, ok := splitKey(e.Key)
	if !ok {
		return 0, false, fault.ErrRecordFailedValidation
	}
	return blockNumber, true, nil
}

// Records - the history as a list of records keyed by block, for
// embedding in a name or namespace record
func (h History) Records() map[string]interface{} {
	m := make(map[string]interface{}, len(h))
	for block, entries := range h {
		list := make([]interface{}, len(entries))
		for i, e := range entries {
			list[i] = map[string]interface{}(e)
		}
		m[block] = list
	}
	return m
}
