// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package opcode - enumeration of the name operation kinds
//
// Each kind has a protocol name (e.g. "ANNOUNCE") and a single byte tag
// that follows the magic bytes in a record.  Renewal shares its tag
// with registration, so decoding a tag always yields the first kind
// that uses it.
package opcode

import (
	"fmt"

	"github.com/bitmark-inc/nameops/fault"
)

// Opcode - operation kind enumeration
type Opcode int

// possible operation kinds
const (
	Nothing           Opcode = iota // this must be the first value
	NamePreorder      Opcode = iota
	NameRegistration  Opcode = iota
	NameUpdate        Opcode = iota
	NameTransfer      Opcode = iota
	NameRenewal       Opcode = iota
	NameRevoke        Opcode = iota
	NameImport        Opcode = iota
	NamespacePreorder Opcode = iota
	NamespaceReveal   Opcode = iota
	NamespaceReady    Opcode = iota
	Announce          Opcode = iota
	maximumValue      Opcode = iota // this must be the last value
	First             Opcode = Nothing + 1
	Last              Opcode = maximumValue - 1
)

// tags of the second character of two character "op" values
const (
	TransferKeepData   byte = '>'
	TransferRemoveData byte = '~'
)

type info struct {
	name string
	tag  byte
}

var kinds = [maximumValue]info{
	Nothing:           {"", 0},
	NamePreorder:      {"NAME_PREORDER", '?'},
	NameRegistration:  {"NAME_REGISTRATION", ':'},
	NameUpdate:        {"NAME_UPDATE", '+'},
	NameTransfer:      {"NAME_TRANSFER", '>'},
	NameRenewal:       {"NAME_RENEWAL", ':'},
	NameRevoke:        {"NAME_REVOKE", '~'},
	NameImport:        {"NAME_IMPORT", ';'},
	NamespacePreorder: {"NAMESPACE_PREORDER", '*'},
	NamespaceReveal:   {"NAMESPACE_REVEAL", '&'},
	NamespaceReady:    {"NAMESPACE_READY", '!'},
	Announce:          {"ANNOUNCE", '#'},
}

// IsValid - true if in range of First to Last
func (o Opcode) IsValid() bool {
	return o >= First && o <= Last
}

// Name - the protocol name, empty for an invalid opcode
func (o Opcode) Name() string {
	if !o.IsValid() {
		return ""
	}
	return kinds[o].name
}

// Byte - the record tag, zero for an invalid opcode
func (o Opcode) Byte() byte {
	if !o.IsValid() {
		return 0
	}
	return kinds[o].tag
}

// String - protocol name
func (o Opcode) String() string {
	if !o.IsValid() {
		return fmt.Sprintf("opcode(%d)", int(o))
	}
	return kinds[o].name
}

// FromName - convert a protocol name to an opcode
func FromName(name string) (Opcode, error) {
	for o := First; o <= Last; o += 1 {
		if kinds[o].name == name {
			return o, nil
		}
	}
	return Nothing, fault.ErrInvalidOpcode
}

// FromByte - convert a record tag to an opcode
//
// returns false for tags that do not belong to any operation; these
// are routine when scanning arbitrary null-data outputs
func FromByte(b byte) (Opcode, bool) {
	for o := First; o <= Last; o += 1 {
		if kinds[o].tag == b {
			return o, true
		}
	}
	return Nothing, false
}

// Names - all protocol names in enumeration order
func Names() []string {
	names := make([]string, 0, Last)
	for o := First; o <= Last; o += 1 {
		names = append(names, kinds[o].name)
	}
	return names
}

// Tags - the distinct record tags in enumeration order
func Tags() []byte {
	seen := make(map[byte]struct{})
	tags := make([]byte, 0, Last)
	for o := First; o <= Last; o += 1 {
		t := kinds[o].tag
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	return tags
}

// IsValidOp - check the "op" field of a history entry
//
// either a single tag or one of the transfer/renewal combinations:
//
//	">>" transfer keeping data
//	">~" transfer removing data
//	"::" renewal
func IsValidOp(op string) bool {
	switch len(op) {
	case 1:
		_, ok := FromByte(op[0])
		return ok
	case 2:
		transfer := NameTransfer.Byte()
		registration := NameRegistration.Byte()
		if op[0] == transfer && (op[1] == TransferKeepData || op[1] == TransferRemoveData) {
			return true
		}
		return op[0] == registration && op[1] == registration
	default:
		return false
	}
}
