// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// PoolHandle - one prefixed table of the database
type PoolHandle struct {
	prefix   byte
	limit    []byte
	database *leveldb.DB
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// add a key/value pair to a batch
func (p *PoolHandle) put(batch *leveldb.Batch, key []byte, value []byte) {
	batch.Put(p.prefixKey(key), value)
}

// read a value for a given key, nil if not found
func (p *PoolHandle) get(key []byte) ([]byte, error) {
	value, err := p.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// check if a key exists
func (p *PoolHandle) has(key []byte) (bool, error) {
	return p.database.Has(p.prefixKey(key), nil)
}

// all elements in key order
func (p *PoolHandle) elements() ([]Element, error) {
	maxRange := ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}

	iter := p.database.NewIterator(&maxRange, nil)
	defer iter.Release()

	result := make([]Element, 0, 16)
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		result = append(result, Element{
			Key:   dataKey,
			Value: dataValue,
		})
	}
	return result, iter.Error()
}

// the last element in key order
func (p *PoolHandle) last() (Element, bool, error) {
	maxRange := ldb_util.Range{
		Start: []byte{p.prefix},
		Limit: p.limit,
	}

	iter := p.database.NewIterator(&maxRange, nil)
	defer iter.Release()

	if !iter.Last() {
		return Element{}, false, iter.Error()
	}

	key := iter.Key()
	value := iter.Value()

	result := Element{
		Key:   make([]byte, len(key)-1),
		Value: make([]byte, len(value)),
	}
	copy(result.Key, key[1:])
	copy(result.Value, value)
	return result, true, iter.Error()
}
