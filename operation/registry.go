// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"sort"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nameops/fault"
	"github.com/bitmark-inc/nameops/nulldata"
	"github.com/bitmark-inc/nameops/opcode"
	"github.com/bitmark-inc/nameops/schema"
	"github.com/bitmark-inc/nameops/transaction"
)

// Registry - handlers by opcode and by record tag
type Registry struct {
	sync.RWMutex

	log       *logger.L
	validator *schema.Validator
	byOpcode  map[opcode.Opcode]Handler
	byTag     map[byte]Handler
}

// New - create a registry holding the given handlers
func New(log *logger.L, handlers ...Handler) (*Registry, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	r := &Registry{
		log:       log,
		validator: schema.NewValidator(log),
		byOpcode:  make(map[opcode.Opcode]Handler),
		byTag:     make(map[byte]Handler),
	}

	for _, h := range handlers {
		if err := r.Register(h); nil != err {
			return nil, err
		}
	}
	return r, nil
}

// Register - add a handler
//
// each opcode and each tag can only be handled once
func (r *Registry) Register(h Handler) error {
	o := h.Opcode()
	if !o.IsValid() {
		return fault.ErrInvalidOpcode
	}

	r.Lock()
	defer r.Unlock()

	if _, ok := r.byOpcode[o]; ok {
		return fault.ErrOpcodeAlreadyRegistered
	}
	if _, ok := r.byTag[o.Byte()]; ok {
		return fault.ErrOpcodeAlreadyRegistered
	}

	r.byOpcode[o] = h
	r.byTag[o.Byte()] = h
	r.log.Infof("registered: %s", o)
	return nil
}

// Lookup - the handler for an opcode
func (r *Registry) Lookup(o opcode.Opcode) (Handler, error) {
	r.RLock()
	defer r.RUnlock()

	h, ok := r.byOpcode[o]
	if !ok {
		return nil, fault.ErrOpcodeNotRegistered
	}
	return h, nil
}

// Opcodes - registered opcodes in enumeration order
func (r *Registry) Opcodes() []opcode.Opcode {
	r.RLock()
	defer r.RUnlock()

	opcodes := make([]opcode.Opcode, 0, len(r.byOpcode))
	for o := range r.byOpcode {
		opcodes = append(opcodes, o)
	}
	sort.Slice(opcodes, func(i, j int) bool {
		return opcodes[i] < opcodes[j]
	})
	return opcodes
}

// Decode - parse and validate a complete record
//
// false means the record is not a recognised operation and should be
// skipped
func (r *Registry) Decode(record []byte) (Decoded, bool) {
	tag, payload, err := nulldata.Packed(record).Split()
	if nil != err {
		r.log.Debugf("record: %x  error: %s", record, err)
		return Decoded{}, false
	}

	r.RLock()
	h, ok := r.byTag[tag]
	r.RUnlock()

	if !ok {
		r.log.Debugf("no handler for tag: %q", tag)
		return Decoded{}, false
	}

	parsed, ok := h.Parse(payload)
	if !ok {
		return Decoded{}, false
	}

	if !r.validator.Check(h.Schema(), parsed) {
		return Decoded{}, false
	}

	return Decoded{
		Opcode: h.Opcode(),
		Record: parsed,
	}, true
}

// Build - hex record for an operation
func (r *Registry) Build(o opcode.Opcode, arguments Arguments) (string, error) {
	h, err := r.Lookup(o)
	if nil != err {
		return "", err
	}
	return h.Build(arguments)
}

// Fees - recover the fees of a confirmed operation transaction
func (r *Registry) Fees(o opcode.Opcode, inputs []transaction.UnspentOutput, outputs []transaction.Output) (uint64, uint64, bool) {
	h, err := r.Lookup(o)
	if nil != err {
		r.log.Debugf("fees: %s  error: %s", o, err)
		return 0, 0, false
	}
	return h.Fees(inputs, outputs)
}
