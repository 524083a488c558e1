// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"strings"
)

// B40Alphabet - characters permitted in names and namespace ids
const B40Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz-_.+"

// IsB40 - true if s is non-empty and only uses the base-40 alphabet
func IsB40(s string) bool {
	if 0 == len(s) {
		return false
	}
	for _, c := range s {
		if !strings.ContainsRune(B40Alphabet, c) {
			return false
		}
	}
	return true
}
