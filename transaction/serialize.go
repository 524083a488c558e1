// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"bytes"
	"encoding/hex"
	"math"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/bitmark-inc/nameops/fault"
)

// Serialize - unsigned raw transaction in hex
//
// input scripts are left empty for an external signer to fill
func Serialize(inputs []UnspentOutput, outputs []Output) (string, error) {
	tx := wire.NewMsgTx(wire.TxVersion)

	for _, in := range inputs {
		hash, err := chainhash.NewHashFromStr(in.TxID)
		if nil != err || chainhash.MaxHashStringSize != len(in.TxID) {
			return "", fault.ErrInvalidTransactionId
		}
		tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(hash, in.Vout), nil, nil))
	}

	for _, out := range outputs {
		s, err := hex.DecodeString(out.ScriptHex)
		if nil != err {
			return "", fault.ErrInvalidScript
		}
		if out.Value > math.MaxInt64 {
			return "", fault.ErrInvalidAmount
		}
		tx.AddTxOut(wire.NewTxOut(int64(out.Value), s))
	}

	var buffer bytes.Buffer
	if err := tx.Serialize(&buffer); nil != err {
		return "", err
	}
	return hex.EncodeToString(buffer.Bytes()), nil
}

// Deserialize - decode a raw transaction for scanning
func Deserialize(txHex string) (*Transaction, error) {
	b, err := hex.DecodeString(txHex)
	if nil != err {
		return nil, fault.ErrInvalidPayload
	}

	var tx wire.MsgTx
	if err := tx.Deserialize(bytes.NewReader(b)); nil != err {
		return nil, err
	}

	result := &Transaction{
		TxID:       tx.TxHash().String(),
		InputCount: len(tx.TxIn),
		Outputs:    make([]Output, len(tx.TxOut)),
	}
	for i, out := range tx.TxOut {
		result.Outputs[i] = Output{
			ScriptHex: hex.EncodeToString(out.PkScript),
			Value:     uint64(out.Value),
		}
	}
	return result, nil
}
