// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - append only history of name operations
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. ++           = concatenation of byte data
// 2. block number = big endian uint64 (8 bytes)
// 3. vtxindex     = big endian uint32 (4 bytes)
// 4. txId         = transaction id as hex string bytes
//
// History:
//
//	H ++ block number ++ vtxindex  - history entry
//	                                 data: JSON of the entry
//
// Transactions:
//
//	T ++ txId                      - position of the entry of a transaction
//	                                 data: block number ++ vtxindex
package storage
