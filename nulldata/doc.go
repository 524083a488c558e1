// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package nulldata - the binary record carried by a null-data output
//
// Record format:
//
//	0     2  3                                  N
//	|-----|--|----------------------------------|
//	 magic op  payload (depends on op)
//
// The payload layout belongs to the individual operation; this
// package only deals with the header and with compiling the readable
// form of a record ("ANNOUNCE 0x<hash>") into hex.
package nulldata
