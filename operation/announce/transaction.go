// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package announce

import (
	"context"

	"github.com/bitmark-inc/nameops/fault"
	"github.com/bitmark-inc/nameops/fees"
	"github.com/bitmark-inc/nameops/transaction"
)

// MakeOutputs - record output and change output for an announcement
func (h *Handler) MakeOutputs(recordHex string, inputs []transaction.UnspentOutput, changeAddress string, txFee uint64, payFee bool) ([]transaction.Output, error) {
	breakdown, err := fees.Compute(len(inputs), payFee, txFee)
	if nil != err {
		return nil, err
	}

	h.log.Debugf("inputs: %d  dust fee: %d  op fee: %d", len(inputs), breakdown.DustFee, breakdown.OpFee)

	return transaction.BuildOutputs(h.codec, recordHex, inputs, changeAddress, breakdown)
}

// MakeTransaction - inputs and outputs announcing messageHash, paid
// for and changed back to the address of the public key
func (h *Handler) MakeTransaction(ctx context.Context, messageHash string, publicKeyHex string, provider transaction.UnspentOutputProvider, txFee uint64, payFee bool) ([]transaction.UnspentOutput, []transaction.Output, error) {

	recordHex, err := Build(messageHash)
	if nil != err {
		return nil, nil, err
	}

	address, err := h.codec.AddressFromPublicKey(publicKeyHex)
	if nil != err {
		return nil, nil, err
	}

	inputs, err := provider.GetUnspents(ctx, address)
	if nil != err {
		h.log.Errorf("unspents for: %s  error: %s", address, err)
		return nil, nil, err
	}
	if 0 == len(inputs) {
		return nil, nil, fault.ErrNoUnspentOutputs
	}

	outputs, err := h.MakeOutputs(recordHex, inputs, address, txFee, payFee)
	if nil != err {
		return nil, nil, err
	}

	h.log.Infof("announce: %s  from: %s  inputs: %d", messageHash, address, len(inputs))
	return inputs, outputs, nil
}
