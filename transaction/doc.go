// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - inputs and outputs of a name operation transaction
//
// An operation transaction always has exactly two outputs, in this
// order:
//
//	0: null-data output carrying the record, value zero
//	1: change back to the sender, value = inputs - op fee - dust fee
//
// fee recovery relies on this positional layout.
//
// Fetching unspent outputs and broadcasting are provided by external
// services through the UnspentOutputProvider and Broadcaster
// interfaces.
package transaction
