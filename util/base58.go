// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/mr-tron/base58"
)

// IsBase58 - true if s is non-empty and decodes as base58
func IsBase58(s string) bool {
	if 0 == len(s) {
		return false
	}
	_, err := base58.Decode(s)
	return nil == err
}
