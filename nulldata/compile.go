// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nulldata

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/nameops/constants"
	"github.com/bitmark-inc/nameops/fault"
	"github.com/bitmark-inc/nameops/opcode"
	"github.com/bitmark-inc/nameops/util"
)

// Compile - convert the readable form of a record body to hex
//
// tokens are separated by single spaces and are one of:
//
//	opcode name   e.g. ANNOUNCE -> its tag byte
//	0x<hex>       literal hex
//	decimal       integer as big endian hex, padded to whole bytes
//	<hex>         even length literal hex
//
// the magic bytes are not included, see AddMagicBytes
func Compile(readable string) (string, error) {
	var b strings.Builder

	for _, part := range strings.Split(readable, " ") {
		if o, err := opcode.FromName(part); nil == err {
			fmt.Fprintf(&b, "%02x", o.Byte())
			continue
		}

		if strings.HasPrefix(part, "0x") {
			literal := part[2:]
			if !util.IsHex(literal) {
				return "", fault.ErrInvalidScript
			}
			b.WriteString(literal)
			continue
		}

		if isDecimal(part) {
			n, err := strconv.ParseUint(part, 10, 64)
			if nil != err {
				return "", fault.ErrInvalidScript
			}
			h := strconv.FormatUint(n, 16)
			if 1 == len(h)%2 {
				h = "0" + h
			}
			b.WriteString(h)
			continue
		}

		if util.IsHex(part) && 0 == len(part)%2 {
			b.WriteString(part)
			continue
		}

		return "", fault.ErrInvalidScript
	}

	result := b.String()
	if 1 == len(result)%2 {
		return "", fault.ErrInvalidScript
	}
	return strings.ToLower(result), nil
}

// AddMagicBytes - prefix compiled hex with the magic
func AddMagicBytes(hexScript string) string {
	return hex.EncodeToString([]byte(constants.MagicBytes)) + hexScript
}

func isDecimal(s string) bool {
	if 0 == len(s) {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
