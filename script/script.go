// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - conversion between addresses and output scripts
//
// All scripts are hex encoded, as they appear in the JSON form of a
// bitcoin transaction.
package script

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"

	"github.com/bitmark-inc/nameops/fault"
)

// Codec - the script operations needed to build and check outputs
type Codec interface {
	NullDataScript(dataHex string) (string, error)
	PayToAddressScript(address string) (string, error)
	ScriptToAddress(scriptHex string) (string, bool)
	IsNullData(scriptHex string) bool
	NullData(scriptHex string) ([]byte, bool)
	AddressFromPublicKey(publicKeyHex string) (string, error)
}

// network names accepted by New
const (
	Bitcoin = "bitcoin"
	Testnet = "testnet"
	Regtest = "regtest"
)

type bitcoinCodec struct {
	params *chaincfg.Params
}

// New - codec for a named network
func New(network string) (Codec, error) {
	switch strings.ToLower(network) {
	case Bitcoin, "livenet", "mainnet":
		return NewWithParams(&chaincfg.MainNetParams), nil
	case Testnet, "testnet3":
		return NewWithParams(&chaincfg.TestNet3Params), nil
	case Regtest:
		return NewWithParams(&chaincfg.RegressionNetParams), nil
	default:
		return nil, fault.ErrInvalidNetwork
	}
}

// NewWithParams - codec for explicit chain parameters
func NewWithParams(params *chaincfg.Params) Codec {
	return &bitcoinCodec{
		params: params,
	}
}

// NullDataScript - OP_RETURN followed by a single push of the data
func (c *bitcoinCodec) NullDataScript(dataHex string) (string, error) {
	data, err := hex.DecodeString(dataHex)
	if nil != err {
		return "", fault.ErrInvalidPayload
	}
	if len(data) > txscript.MaxDataCarrierSize {
		return "", fault.ErrPayloadTooLong
	}
	s, err := txscript.NullDataScript(data)
	if nil != err {
		return "", err
	}
	return hex.EncodeToString(s), nil
}

// PayToAddressScript - standard output script paying an address on this network
func (c *bitcoinCodec) PayToAddressScript(address string) (string, error) {
	addr, err := btcutil.DecodeAddress(address, c.params)
	if nil != err || !addr.IsForNet(c.params) {
		return "", fault.ErrInvalidAddress
	}
	s, err := txscript.PayToAddrScript(addr)
	if nil != err {
		return "", fault.ErrInvalidAddress
	}
	return hex.EncodeToString(s), nil
}

// ScriptToAddress - the single address paid by a script
//
// false if the script is not hex, is null data or does not pay
// exactly one address
func (c *bitcoinCodec) ScriptToAddress(scriptHex string) (string, bool) {
	s, err := hex.DecodeString(scriptHex)
	if nil != err || 0 == len(s) {
		return "", false
	}
	class, addresses, _, err := txscript.ExtractPkScriptAddrs(s, c.params)
	if nil != err {
		return "", false
	}
	switch class {
	case txscript.NullDataTy, txscript.NonStandardTy, txscript.MultiSigTy:
		return "", false
	}
	if 1 != len(addresses) {
		return "", false
	}
	return addresses[0].EncodeAddress(), true
}

// IsNullData - true for an OP_RETURN output script
func (c *bitcoinCodec) IsNullData(scriptHex string) bool {
	_, ok := c.NullData(scriptHex)
	return ok
}

// NullData - the concatenated pushes following OP_RETURN
//
// false if the script does not start with OP_RETURN or contains
// anything other than data pushes after it
func (c *bitcoinCodec) NullData(scriptHex string) ([]byte, bool) {
	s, err := hex.DecodeString(scriptHex)
	if nil != err || 0 == len(s) || txscript.OP_RETURN != s[0] {
		return nil, false
	}

	data := make([]byte, 0, len(s))
	tokenizer := txscript.MakeScriptTokenizer(0, s[1:])
	for tokenizer.Next() {
		if tokenizer.Opcode() > txscript.OP_PUSHDATA4 {
			return nil, false
		}
		data = append(data, tokenizer.Data()...)
	}
	if nil != tokenizer.Err() {
		return nil, false
	}
	return data, true
}

// AddressFromPublicKey - pay-to-pubkey-hash address for a hex public key
func (c *bitcoinCodec) AddressFromPublicKey(publicKeyHex string) (string, error) {
	b, err := hex.DecodeString(publicKeyHex)
	if nil != err {
		return "", fault.ErrInvalidPublicKey
	}
	pk, err := btcutil.NewAddressPubKey(b, c.params)
	if nil != err {
		return "", fault.ErrInvalidPublicKey
	}
	return pk.AddressPubKeyHash().EncodeAddress(), nil
}
