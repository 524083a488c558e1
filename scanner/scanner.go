// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package scanner - find name operations in confirmed transactions
//
// only the first null-data output of a transaction that decodes to a
// registered operation is used, its position in the block is the
// vtxindex of the history entry
package scanner

import (
	"context"

	"github.com/bitmark-inc/logger"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/nameops/counter"
	"github.com/bitmark-inc/nameops/fault"
	"github.com/bitmark-inc/nameops/opcode"
	"github.com/bitmark-inc/nameops/operation"
	"github.com/bitmark-inc/nameops/schema"
	"github.com/bitmark-inc/nameops/script"
	"github.com/bitmark-inc/nameops/transaction"
)

// DefaultWorkers - transactions of a block scanned in parallel
const DefaultWorkers = 8

// Operation - a validated operation found in a transaction
type Operation struct {
	Opcode opcode.Opcode `json:"-"`
	TxID   string        `json:"txid"`
	Vout   int           `json:"vout"`
	Record schema.Record `json:"record"`
	Entry  schema.Record `json:"entry"`
}

// BlockSource - transactions of a block by height
type BlockSource interface {
	Block(ctx context.Context, height uint64) ([]*transaction.Transaction, error)
}

// Sink - receiver of the history entries of scanned operations
type Sink interface {
	Append(entry schema.Record) error
}

// Scanner - decoding of transactions through a registry
type Scanner struct {
	log       *logger.L
	codec     script.Codec
	registry  *operation.Registry
	validator *schema.Validator
	workers   int

	blocks       counter.Counter
	transactions counter.Counter
	operations   counter.Counter
	rejected     counter.Counter
}

// Statistics - totals since the scanner was created
type Statistics struct {
	Blocks       uint64 `json:"blocks"`
	Transactions uint64 `json:"transactions"`
	Operations   uint64 `json:"operations"`
	Rejected     uint64 `json:"rejected"`
}

// New - create a scanner
//
// workers less than one selects DefaultWorkers
func New(log *logger.L, codec script.Codec, registry *operation.Registry, workers int) (*Scanner, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Scanner{
		log:       log,
		codec:     codec,
		registry:  registry,
		validator: schema.NewValidator(log),
		workers:   workers,
	}, nil
}

// ScanTransaction - the operation carried by a transaction
//
// vtxindex and blockNumber are recorded in the history entry; false
// if the transaction carries no acceptable operation
func (s *Scanner) ScanTransaction(blockNumber uint64, vtxindex int, tx *transaction.Transaction) (Operation, bool) {
	if nil == tx {
		return Operation{}, false
	}
	s.transactions.Increment()

	for vout, out := range tx.Outputs {
		data, ok := s.codec.NullData(out.ScriptHex)
		if !ok {
			continue
		}

		decoded, ok := s.registry.Decode(data)
		if !ok {
			continue
		}

		entry := decoded.Record.Copy()
		entry["op"] = string(decoded.Opcode.Byte())
		entry["opcode"] = decoded.Opcode.Name()
		entry["txid"] = tx.TxID
		entry["vtxindex"] = int64(vtxindex)
		entry["block_number"] = blockNumber

		if !s.validator.Check(schema.HistoryEntry, entry) {
			s.rejected.Increment()
			s.log.Warnf("txid: %s  vout: %d  history entry rejected", tx.TxID, vout)
			continue
		}

		s.log.Debugf("txid: %s  vout: %d  opcode: %s", tx.TxID, vout, decoded.Opcode)
		return Operation{
			Opcode: decoded.Opcode,
			TxID:   tx.TxID,
			Vout:   vout,
			Record: decoded.Record,
			Entry:  entry,
		}, true
	}
	return Operation{}, false
}

// ScanBlock - operations of a block in transaction order
func (s *Scanner) ScanBlock(ctx context.Context, blockNumber uint64, txs []*transaction.Transaction) ([]Operation, error) {
	found := make([]*Operation, len(txs))

	eg, ctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, s.workers)

loop:
	for i, tx := range txs {
		select {
		case <-ctx.Done():
			break loop
		case sem <- struct{}{}:
		}

		i := i
		tx := tx
		eg.Go(func() error {
			defer func() { <-sem }()

			if nil != ctx.Err() {
				return ctx.Err()
			}
			if op, ok := s.ScanTransaction(blockNumber, i, tx); ok {
				found[i] = &op
			}
			return nil
		})
	}

	if err := eg.Wait(); nil != err {
		return nil, err
	}
	if nil != ctx.Err() {
		return nil, ctx.Err()
	}

	operations := make([]Operation, 0, len(txs))
	for _, op := range found {
		if nil != op {
			operations = append(operations, *op)
		}
	}

	s.blocks.Increment()
	s.operations.Add(uint64(len(operations)))

	s.log.Infof("block: %d  transactions: %d  operations: %d", blockNumber, len(txs), len(operations))
	return operations, nil
}

// ScanRange - scan blocks from start to stop inclusive, passing every
// history entry to sink in block then vtxindex order
func (s *Scanner) ScanRange(ctx context.Context, source BlockSource, start uint64, stop uint64, sink Sink) (int, error) {
	count := 0
	for height := start; height <= stop; height += 1 {
		txs, err := source.Block(ctx, height)
		if nil != err {
			s.log.Errorf("block: %d  error: %s", height, err)
			return count, err
		}

		operations, err := s.ScanBlock(ctx, height, txs)
		if nil != err {
			return count, err
		}

		for _, op := range operations {
			if err := sink.Append(op.Entry); nil != err {
				if fault.IsErrExists(err) {
					s.log.Debugf("block: %d  txid: %s  already stored", height, op.TxID)
					continue
				}
				return count, err
			}
			count += 1
		}

		// overflow guard for stop at the maximum height
		if height == stop {
			break
		}
	}
	return count, nil
}

// Statistics - snapshot of the scanning totals
func (s *Scanner) Statistics() Statistics {
	return Statistics{
		Blocks:       s.blocks.Uint64(),
		Transactions: s.transactions.Uint64(),
		Operations:   s.operations.Uint64(),
		Rejected:     s.rejected.Uint64(),
	}
}
