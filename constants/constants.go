// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants

// prefix of every name operation record
const (
	MagicBytes       = "id"
	MagicBytesLength = len(MagicBytes)

	// magic + opcode byte
	RecordHeaderLength = MagicBytesLength + 1
)

// fees in satoshi, these must match the values expected by the
// deployed network
const (
	DustFeeUnit     = 5500  // minimum value of a non-null-data output
	OpReturnFeeUnit = 10000 // fee for carrying a null-data output

	// reject input counts that could overflow the fee arithmetic
	MaximumInputCount = 10000
)

// byte lengths of hashes embedded in records
const (
	LengthConsensusHash = 16
	LengthValueHash     = 20
	LengthMessageHash   = 20
	LengthNamespaceHash = 8
)

// identifier limits
const (
	LengthMinName        = 3
	LengthMaxName        = 37
	LengthMinNamespaceID = 1
	LengthMaxNamespaceID = 19
)

// maximum bytes carried by a standard null-data output
const (
	MaximumNullDataLength = 80
)
