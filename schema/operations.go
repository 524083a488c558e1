// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

// fields of a single entry in the history of a name or namespace
var historyProperties = map[string]Field{
	"address":           Base58String,
	"base":              Integer{},
	"buckets":           Nullable{Field: Array{Items: Integer{}}},
	"block_number":      Integer{NonNegative: true},
	"coeff":             Nullable{Field: Integer{}},
	"consensus_hash":    Nullable{Field: String{Pattern: ConsensusHashPattern}},
	"fee":               Integer{},
	"first_registered":  Integer{},
	"history_snapshot":  Boolean{},
	"importer":          Nullable{Field: String{Pattern: P2PKHPattern}},
	"importer_address":  Nullable{Field: Base58String},
	"last_renewed":      Integer{},
	"op":                String{Pattern: OpPattern},
	"op_fee":            Number{},
	"opcode":            String{Pattern: OpcodeNamePattern},
	"revoked":           Boolean{},
	"sender":            String{Pattern: ScriptPattern},
	"sender_pubkey":     Nullable{Field: String{Pattern: PublicKeyPattern}},
	"recipient":         Nullable{Field: String{Pattern: ScriptPattern}},
	"recipient_address": Nullable{Field: Base58String},
	"recipient_pubkey":  Nullable{Field: String{Pattern: PublicKeyPattern}},
	"txid":              String{Pattern: TxIdPattern},
	"value_hash":        Nullable{Field: String{Pattern: ValueHashPattern}},
	"vtxindex":          Integer{NonNegative: true},
}

// HistoryEntry - one state changing operation on a name or namespace
var HistoryEntry = &Schema{
	Name:       "history",
	Properties: historyProperties,
	Required: []string{
		"op",
		"opcode",
		"txid",
		"vtxindex",
	},
}

// NameOperation - the current state of a name with its history
var NameOperation = &Schema{
	Name: "name_operation",
	Properties: extend(historyProperties,
		[]string{
			"address",
			"block_number",
			"consensus_hash",
			"first_registered",
			"history_snapshot",
			"importer",
			"importer_address",
			"last_renewed",
			"op",
			"op_fee",
			"opcode",
			"revoked",
			"sender",
			"sender_pubkey",
			"recipient",
			"recipient_address",
			"txid",
			"value_hash",
			"vtxindex",
		},
		map[string]Field{
			"expire_block": Integer{},
			"history":      History{Items: HistoryEntry},
			"name":         NameString,
		},
	),
	Required: []string{
		"address",
		"block_number",
		"op",
		"op_fee",
		"opcode",
		"sender",
		"txid",
		"vtxindex",
	},
}

// NamespaceOperation - the current state of a namespace with its history
var NamespaceOperation = &Schema{
	Name: "namespace_operation",
	Properties: extend(historyProperties,
		[]string{
			"address",
			"base",
			"block_number",
			"buckets",
			"coeff",
			"fee",
			"op",
			"recipient",
			"recipient_address",
			"sender",
			"sender_pubkey",
			"txid",
			"vtxindex",
		},
		map[string]Field{
			"history":           History{Items: HistoryEntry},
			"lifetime":          Integer{},
			"namespace_id":      NamespaceString,
			"namespace_id_hash": String{Pattern: NamespaceHashPattern},
			"no_vowel_discount": Integer{},
			"nonalpha_discount": Integer{},
			"ready":             Boolean{},
			"ready_block":       Integer{},
			"reveal_block":      Integer{},
			"version":           Integer{},
		},
	),
	Required: []string{
		"address",
		"base",
		"block_number",
		"buckets",
		"coeff",
		"lifetime",
		"namespace_id",
		"no_vowel_discount",
		"nonalpha_discount",
		"op",
		"ready",
		"recipient",
		"recipient_address",
		"reveal_block",
		"sender",
		"sender_pubkey",
		"txid",
		"version",
		"vtxindex",
	},
}

// Announce - a parsed announcement record
var Announce = &Schema{
	Name: "announce",
	Properties: map[string]Field{
		"opcode":       String{Pattern: AnnounceNamePattern},
		"message_hash": String{Pattern: MessageHashPattern},
	},
	Required: []string{
		"opcode",
		"message_hash",
	},
}

var declared = map[string]*Schema{
	HistoryEntry.Name:                HistoryEntry,
	NameOperation.Name:               NameOperation,
	NamespaceOperation.Name:          NamespaceOperation,
	Announce.Name:                    Announce,
	PrivateKeyMultisig.Name:          PrivateKeyMultisig,
	EncryptedPrivateKeyMultisig.Name: EncryptedPrivateKeyMultisig,
	Wallet.Name:                      Wallet,
	EncryptedWallet.Name:             EncryptedWallet,
	EncryptedWalletLegacy.Name:       EncryptedWalletLegacy,
}
