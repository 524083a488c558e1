// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package announce - broadcast of a message hash to the followers of
// an identity
//
// the record payload is the 20 byte hash of the message, the message
// itself is published elsewhere
package announce

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nameops/constants"
	"github.com/bitmark-inc/nameops/fault"
	"github.com/bitmark-inc/nameops/fees"
	"github.com/bitmark-inc/nameops/nulldata"
	"github.com/bitmark-inc/nameops/opcode"
	"github.com/bitmark-inc/nameops/operation"
	"github.com/bitmark-inc/nameops/schema"
	"github.com/bitmark-inc/nameops/script"
	"github.com/bitmark-inc/nameops/transaction"
	"github.com/bitmark-inc/nameops/util"
)

// ArgumentMessageHash - Build argument holding the hex message hash
const ArgumentMessageHash = "message_hash"

// Handler - the announce operation
type Handler struct {
	log   *logger.L
	codec script.Codec
}

// New - create an announce handler
func New(log *logger.L, codec script.Codec) (*Handler, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Handler{
		log:   log,
		codec: codec,
	}, nil
}

// Build - hex record announcing messageHash
func Build(messageHash string) (string, error) {
	if !util.IsHexOfLength(messageHash, constants.LengthMessageHash) {
		return "", fault.ErrInvalidPayload
	}

	readable := fmt.Sprintf("%s 0x%s", opcode.Announce.Name(), messageHash)
	compiled, err := nulldata.Compile(readable)
	if nil != err {
		return "", err
	}
	return nulldata.AddMagicBytes(compiled), nil
}

// Opcode - always ANNOUNCE
func (h *Handler) Opcode() opcode.Opcode {
	return opcode.Announce
}

// Schema - shape of a parsed announcement
func (h *Handler) Schema() *schema.Schema {
	return schema.Announce
}

// Build - record from the message hash argument
func (h *Handler) Build(arguments operation.Arguments) (string, error) {
	messageHash, ok := arguments[ArgumentMessageHash]
	if !ok {
		return "", fault.ErrMissingArgument
	}
	return Build(messageHash)
}

// Parse - the message hash carried by a payload
func (h *Handler) Parse(payload []byte) (schema.Record, bool) {
	messageHash := util.BytesToHex(payload)
	if !util.IsHexOfLength(messageHash, constants.LengthMessageHash) {
		h.log.Warnf("invalid message hash: %q  length: %d", messageHash, len(payload))
		return nil, false
	}

	return schema.Record{
		"opcode":       opcode.Announce.Name(),
		"message_hash": messageHash,
	}, true
}

// Fees - dust and operation fees of a confirmed announcement
//
// the dust fee is recalculated as if the sender paid it, so a
// subsidised transaction is overstated
func (h *Handler) Fees(inputs []transaction.UnspentOutput, outputs []transaction.Output) (uint64, uint64, bool) {
	if !transaction.HasOperationLayout(h.codec, outputs) {
		h.log.Debugf("outputs are not an announcement: %d outputs", len(outputs))
		return 0, 0, false
	}

	dustFee, err := fees.DustFee(len(inputs), 0)
	if nil != err {
		h.log.Warnf("dust fee: inputs: %d  error: %s", len(inputs), err)
		return 0, 0, false
	}

	// an announcement has no fee of its own
	return dustFee, 0, true
}
