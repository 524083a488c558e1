// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"github.com/bitmark-inc/nameops/opcode"
	"github.com/bitmark-inc/nameops/schema"
	"github.com/bitmark-inc/nameops/transaction"
)

// Arguments - named string arguments to a handler's Build
type Arguments map[string]string

// Handler - build, parse and fee recovery for one operation kind
type Handler interface {
	// the operation kind handled
	Opcode() opcode.Opcode

	// hex record including the magic bytes
	Build(arguments Arguments) (string, error)

	// payload is the record with magic and tag removed, false if it
	// is not acceptable for this kind
	Parse(payload []byte) (schema.Record, bool)

	// dust and operation fees of a confirmed transaction, false if
	// the outputs are not laid out as an operation of this kind
	Fees(inputs []transaction.UnspentOutput, outputs []transaction.Output) (uint64, uint64, bool)

	// shape of the records returned by Parse
	Schema() *schema.Schema
}

// Decoded - a parsed record that satisfied its schema
type Decoded struct {
	Opcode opcode.Opcode `json:"-"`
	Record schema.Record `json:"record"`
}
