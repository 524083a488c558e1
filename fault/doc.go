// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances grouped by class
//
// each error is a single typed string value so callers compare with
// == or test the class with one of the IsErrXxx functions, e.g. any
// ExistsError from storage means the entry was already appended
package fault
