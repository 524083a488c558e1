// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bitcoind - JSON-RPC access to a bitcoin node
//
// provides the unspent outputs and broadcast needed to make an
// operation transaction, and the blocks needed to scan for operations
package bitcoind
