// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nulldata

import (
	"bytes"
	"encoding/hex"

	"github.com/bitmark-inc/nameops/constants"
	"github.com/bitmark-inc/nameops/fault"
	"github.com/bitmark-inc/nameops/opcode"
)

// Packed - a complete record: magic, tag and payload
type Packed []byte

// Pack - assemble a record for an operation
func Pack(o opcode.Opcode, payload []byte) (Packed, error) {
	if !o.IsValid() {
		return nil, fault.ErrInvalidOpcode
	}
	if constants.RecordHeaderLength+len(payload) > constants.MaximumNullDataLength {
		return nil, fault.ErrPayloadTooLong
	}

	record := make(Packed, 0, constants.RecordHeaderLength+len(payload))
	record = append(record, constants.MagicBytes...)
	record = append(record, o.Byte())
	record = append(record, payload...)
	return record, nil
}

// HasMagic - true if the record starts with the protocol magic
func (record Packed) HasMagic() bool {
	return bytes.HasPrefix(record, []byte(constants.MagicBytes))
}

// Split - separate the tag and payload
//
// the payload shares the underlying array of the record
func (record Packed) Split() (byte, []byte, error) {
	if len(record) < constants.RecordHeaderLength {
		return 0, nil, fault.ErrRecordTooShort
	}
	if !record.HasMagic() {
		return 0, nil, fault.ErrWrongMagicBytes
	}
	return record[constants.MagicBytesLength], record[constants.RecordHeaderLength:], nil
}

// String - hex form
func (record Packed) String() string {
	return hex.EncodeToString(record)
}

// MarshalText - convert a packed record to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a hex JSON form to a packed record
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	b := make([]byte, size)
	_, err := hex.Decode(b, s)
	if nil != err {
		return fault.ErrInvalidPayload
	}
	*record = b
	return nil
}

// PackedFromHex - decode a hex record
func PackedFromHex(s string) (Packed, error) {
	var record Packed
	err := record.UnmarshalText([]byte(s))
	if nil != err {
		return nil, err
	}
	return record, nil
}
