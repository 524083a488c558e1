// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fees - fee arithmetic shared by all name operations
//
// all values are in satoshi
package fees

import (
	"github.com/bitmark-inc/nameops/constants"
	"github.com/bitmark-inc/nameops/fault"
)

// Breakdown - the fees of a single operation
type Breakdown struct {
	DustFee   uint64 `json:"dust_fee"`
	OpFee     uint64 `json:"op_fee"`
	DustValue uint64 `json:"dust_value"`
}

// Compute - fees for an operation spending inputCount inputs
//
// when payFee is false the transaction will be subsidised by another
// party later, so every field is zero
func Compute(inputCount int, payFee bool, baseTxFee uint64) (Breakdown, error) {
	if !payFee {
		return Breakdown{}, nil
	}

	dustFee, err := DustFee(inputCount, baseTxFee)
	if nil != err {
		return Breakdown{}, err
	}

	return Breakdown{
		DustFee:   dustFee,
		OpFee:     constants.DustFeeUnit,
		DustValue: constants.DustFeeUnit,
	}, nil
}

// DustFee - (inputCount + 1) * dust unit + null-data fee + base fee
func DustFee(inputCount int, baseTxFee uint64) (uint64, error) {
	if inputCount < 0 || inputCount > constants.MaximumInputCount {
		return 0, fault.ErrTooManyInputs
	}

	fee := uint64(inputCount+1)*constants.DustFeeUnit + constants.OpReturnFeeUnit
	if fee+baseTxFee < fee {
		return 0, fault.ErrTooManyInputs
	}
	return fee + baseTxFee, nil
}

// ChangeAmount - value left after paying the operation and dust fees
func ChangeAmount(values []uint64, opFee uint64, dustFee uint64) (uint64, error) {
	total := uint64(0)
	for _, v := range values {
		if total+v < total {
			return 0, fault.ErrInsufficientFunds
		}
		total += v
	}

	spend := opFee + dustFee
	if spend < opFee || spend > total {
		return 0, fault.ErrInsufficientFunds
	}
	return total - spend, nil
}
