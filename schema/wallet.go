// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

// PrivateKeyMultisig - keys and redeem script of a multisig address
var PrivateKeyMultisig = &Schema{
	Name: "private_key_multisig",
	Properties: map[string]Field{
		"address":       Base58String,
		"redeem_script": String{Pattern: ScriptPattern},
		"private_keys":  Array{Items: Base58String},
	},
	Required: []string{
		"address",
		"redeem_script",
		"private_keys",
	},
}

// EncryptedPrivateKeyMultisig - as PrivateKeyMultisig with base64 ciphertexts
var EncryptedPrivateKeyMultisig = &Schema{
	Name: "encrypted_private_key_multisig",
	Properties: map[string]Field{
		"address":                 Base58String,
		"encrypted_redeem_script": String{Pattern: Base64Pattern},
		"encrypted_private_keys":  Array{Items: String{Pattern: Base64Pattern}},
	},
	Required: []string{
		"address",
		"encrypted_redeem_script",
		"encrypted_private_keys",
	},
}

// PrivateKeyInfo - a single key or a multisig bundle
var PrivateKeyInfo = AnyOf{
	Options: []Field{
		Base58String,
		Object{Schema: PrivateKeyMultisig},
	},
}

// EncryptedPrivateKeyInfo - an encrypted single key or multisig bundle
var EncryptedPrivateKeyInfo = AnyOf{
	Options: []Field{
		String{Pattern: Base64Pattern},
		Object{Schema: EncryptedPrivateKeyMultisig},
	},
}

var addressList = Array{Items: Base58String}
var publicKeyList = Array{Items: String{Pattern: PublicKeyPattern}}

var encryptedWalletProperties = map[string]Field{
	"data_pubkey":                  String{Pattern: PublicKeyPattern},
	"data_pubkeys":                 publicKeyList,
	"encrypted_data_privkey":       String{Pattern: Base64Pattern},
	"encrypted_master_private_key": String{Pattern: Base64Pattern},
	"encrypted_owner_privkey":      EncryptedPrivateKeyInfo,
	"encrypted_payment_privkey":    EncryptedPrivateKeyInfo,
	"owner_addresses":              addressList,
	"payment_addresses":            addressList,
}

// EncryptedWallet - the stored form of a wallet
var EncryptedWallet = &Schema{
	Name:       "encrypted_wallet",
	Properties: encryptedWalletProperties,
	Required: []string{
		"data_pubkey",
		"data_pubkeys",
		"encrypted_data_privkey",
		"encrypted_owner_privkey",
		"encrypted_payment_privkey",
		"owner_addresses",
		"payment_addresses",
	},
}

// EncryptedWalletLegacy - older wallets holding only a master key
var EncryptedWalletLegacy = &Schema{
	Name:       "encrypted_wallet_legacy",
	Properties: encryptedWalletProperties,
	Required: []string{
		"encrypted_master_private_key",
	},
}

// Wallet - a decrypted wallet
var Wallet = &Schema{
	Name: "wallet",
	Properties: map[string]Field{
		"data_pubkey":       String{Pattern: PublicKeyPattern},
		"data_pubkeys":      publicKeyList,
		"data_privkey":      Base58String,
		"owner_privkey":     PrivateKeyInfo,
		"payment_privkey":   PrivateKeyInfo,
		"owner_addresses":   addressList,
		"payment_addresses": addressList,
	},
	Required: []string{
		"data_pubkey",
		"data_pubkeys",
		"data_privkey",
		"owner_privkey",
		"payment_privkey",
		"owner_addresses",
		"payment_addresses",
	},
}
