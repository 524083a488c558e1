// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"github.com/bitmark-inc/nameops/fault"
)

// Logger - the logging used by the validator, satisfied by *logger.L
type Logger interface {
	Debugf(format string, arguments ...interface{})
	Warnf(format string, arguments ...interface{})
}

// Validator - validation with diagnostic logging of rejected records
type Validator struct {
	log Logger
}

// NewValidator - create a validator logging to log
func NewValidator(log Logger) *Validator {
	return &Validator{
		log: log,
	}
}

// Check - accept or reject a record, rejections are logged
func (v *Validator) Check(s *Schema, record Record) bool {
	err := s.Validate(record)
	if nil != err {
		v.log.Debugf("rejected: %s", err)
		return false
	}
	return true
}

// CheckNamed - as Check for a schema looked up by name
func (v *Validator) CheckNamed(name string, record Record) (bool, error) {
	s, err := Lookup(name)
	if nil != err {
		v.log.Warnf("schema: %q: %s", name, err)
		return false, err
	}
	return v.Check(s, record), nil
}

// Lookup - a declared schema by name
func Lookup(name string) (*Schema, error) {
	s, ok := declared[name]
	if !ok {
		return nil, fault.ErrUnknownSchema
	}
	return s, nil
}

// Names - names of all declared schemas
func Names() []string {
	return []string{
		HistoryEntry.Name,
		NameOperation.Name,
		NamespaceOperation.Name,
		Announce.Name,
		PrivateKeyMultisig.Name,
		EncryptedPrivateKeyMultisig.Name,
		Wallet.Name,
		EncryptedWallet.Name,
		EncryptedWalletLegacy.Name,
	}
}
