// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bitmark-inc/nameops/constants"
	"github.com/bitmark-inc/nameops/opcode"
	"github.com/bitmark-inc/nameops/util"
)

// field patterns
var (
	P2PKHPattern         = regexp.MustCompile(`^76[aA]914[0-9a-fA-F]{40}88[aA][cC]$`)
	ScriptPattern        = regexp.MustCompile(`^([0-9a-fA-F]+)$`)
	PublicKeyPattern     = ScriptPattern
	TxIdPattern          = regexp.MustCompile(`^([0-9a-fA-F]){64}$`)
	ConsensusHashPattern = hexPattern(constants.LengthConsensusHash)
	ValueHashPattern     = hexPattern(constants.LengthValueHash)
	MessageHashPattern   = hexPattern(constants.LengthMessageHash)
	NamespaceHashPattern = hexPattern(constants.LengthNamespaceHash)
	NamePattern          = regexp.MustCompile(fmt.Sprintf(`^(.{%d,%d})$`, constants.LengthMinName, constants.LengthMaxName))
	NamespacePattern     = regexp.MustCompile(fmt.Sprintf(`^([^.]{%d,%d})$`, constants.LengthMinNamespaceID, constants.LengthMaxNamespaceID))
	Base64Pattern        = regexp.MustCompile(`^(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=|[A-Za-z0-9+/]{4})$`)
	OpPattern            = opPattern()
	OpcodeNamePattern    = opcodeNamePattern()
	AnnounceNamePattern  = regexp.MustCompile("^" + opcode.Announce.Name() + "$")
)

// base58 for addresses and private keys, base-40 for names
var (
	Base58String    = String{Check: util.IsBase58}
	NameString      = String{Pattern: NamePattern, Check: util.IsB40}
	NamespaceString = String{Pattern: NamespacePattern, Check: util.IsB40}
)

func hexPattern(byteCount int) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`^([0-9a-fA-F]{%d})$`, 2*byteCount))
}

// a single tag, or transfer/renewal two character combinations
func opPattern() *regexp.Regexp {
	transfer := regexp.QuoteMeta(string(opcode.NameTransfer.Byte()))
	registration := regexp.QuoteMeta(string(opcode.NameRegistration.Byte()))
	keep := regexp.QuoteMeta(string(opcode.TransferKeepData))
	remove := regexp.QuoteMeta(string(opcode.TransferRemoveData))

	return regexp.MustCompile(fmt.Sprintf(`^([%s]|%s%s|%s%s|%s%s)$`,
		regexp.QuoteMeta(string(opcode.Tags())),
		transfer, keep,
		transfer, remove,
		registration, registration,
	))
}

func opcodeNamePattern() *regexp.Regexp {
	names := opcode.Names()
	for i, n := range names {
		names[i] = regexp.QuoteMeta(n)
	}
	return regexp.MustCompile("^(" + strings.Join(names, "|") + ")$")
}
