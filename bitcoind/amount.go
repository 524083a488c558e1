// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitcoind

import (
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/nameops/fault"
)

const satoshiDigits = 8

// ToSatoshi - convert a BTC amount to satoshi
//
// fails for negative amounts and amounts with more than eight decimal
// places
func ToSatoshi(btc decimal.Decimal) (uint64, error) {
	satoshi := btc.Shift(satoshiDigits)
	if satoshi.Sign() < 0 || !satoshi.Equal(satoshi.Truncate(0)) {
		return 0, fault.ErrInvalidAmount
	}
	if satoshi.GreaterThan(decimal.New(maximumSatoshi, 0)) {
		return 0, fault.ErrInvalidAmount
	}
	return uint64(satoshi.IntPart()), nil
}

// ParseAmount - convert a decimal BTC string to satoshi
func ParseAmount(btc string) (uint64, error) {
	d, err := decimal.NewFromString(btc)
	if nil != err {
		return 0, fault.ErrInvalidAmount
	}
	return ToSatoshi(d)
}

// 21 million BTC
const maximumSatoshi = 21000000 * 100000000
