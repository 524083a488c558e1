// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package schema - structural validation of decoded operation records
//
// Records observed on the blockchain are untrusted, so validation
// never panics: a record is either accepted or rejected with a
// ValidationError naming the field and the reason.
//
// Each schema is a set of named fields, each field being one of a
// closed set of kinds:
//
//	String    string, optionally matching a pattern
//	Integer   integer, optionally non-negative
//	Number    integer or floating point
//	Boolean   true/false
//	Nullable  another field kind or null
//	Array     list of another field kind with optional bounds
//	Object    nested record checked against a schema
//	History   map of block number -> list of history entries
//	AnyOf     first matching of several field kinds
package schema
