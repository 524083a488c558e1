// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/nameops/fault"
)

// common errors - keep in alphabetic order
const (
	ErrConfigurationRequired = fault.InvalidError("configuration file is required for this command")
	ErrInvalidBlockRange     = fault.InvalidError("invalid block range")
	ErrNotAnOperation        = fault.RecordError("not a recognised operation")
	ErrNotAnOperationLayout  = fault.RecordError("outputs are not an operation layout")
)
