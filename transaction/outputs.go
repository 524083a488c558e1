// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/nameops/fees"
	"github.com/bitmark-inc/nameops/script"
)

// positions of the outputs of an operation transaction
const (
	RecordOutputIndex = 0
	ChangeOutputIndex = 1
	OutputCount       = 2
)

// BuildOutputs - the record output followed by the change output
func BuildOutputs(codec script.Codec, recordHex string, inputs []UnspentOutput, changeAddress string, breakdown fees.Breakdown) ([]Output, error) {

	recordScript, err := codec.NullDataScript(recordHex)
	if nil != err {
		return nil, err
	}

	changeScript, err := codec.PayToAddressScript(changeAddress)
	if nil != err {
		return nil, err
	}

	change, err := fees.ChangeAmount(Values(inputs), breakdown.OpFee, breakdown.DustFee)
	if nil != err {
		return nil, err
	}

	outputs := make([]Output, OutputCount)
	outputs[RecordOutputIndex] = Output{
		ScriptHex: recordScript,
		Value:     0,
	}
	outputs[ChangeOutputIndex] = Output{
		ScriptHex: changeScript,
		Value:     change,
	}
	return outputs, nil
}

// HasOperationLayout - true if outputs are exactly a zero value
// null-data output followed by an output paying an address
func HasOperationLayout(codec script.Codec, outputs []Output) bool {
	if OutputCount != len(outputs) {
		return false
	}

	record := outputs[RecordOutputIndex]
	if !codec.IsNullData(record.ScriptHex) || 0 != record.Value {
		return false
	}

	_, ok := codec.ScriptToAddress(outputs[ChangeOutputIndex].ScriptHex)
	return ok
}
