// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package operation - dispatch of records to the handler of each
// operation kind
//
// A record found in a null-data output is split into its tag and
// payload, the handler registered for the tag parses the payload and
// the result is accepted only if it satisfies the handler's schema.
// Records with an unregistered tag are not errors: arbitrary data
// appears in null-data outputs and such records are simply skipped.
//
// Additional operation kinds are added by registering a Handler, the
// dispatcher itself does not change.
package operation
