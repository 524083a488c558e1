// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/hex"
)

// IsHex - true if s is a non-empty string of hex digits
//
// either case is accepted, length parity is not checked
func IsHex(s string) bool {
	if 0 == len(s) {
		return false
	}
	for i := 0; i < len(s); i += 1 {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// IsHexOfLength - true if s is hex encoding exactly n bytes
func IsHexOfLength(s string, n int) bool {
	return 2*n == len(s) && IsHex(s)
}

// HexToBytes - decode a hex string
func HexToBytes(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

// BytesToHex - encode bytes as lower case hex
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}
