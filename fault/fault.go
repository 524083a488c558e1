// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrBlockNotFound           = NotFoundError("block not found")
	ErrDatabaseIsReadOnly      = ProcessError("database is read only")
	ErrInsufficientFunds       = InvalidError("insufficient funds in inputs")
	ErrInvalidAddress          = InvalidError("invalid address")
	ErrInvalidAmount           = InvalidError("invalid amount")
	ErrInvalidConfiguration    = InvalidError("invalid configuration")
	ErrInvalidCount            = InvalidError("invalid count")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidNetwork          = InvalidError("invalid network")
	ErrInvalidOpcode           = InvalidError("invalid opcode")
	ErrInvalidPayload          = InvalidError("invalid payload")
	ErrInvalidPublicKey        = InvalidError("invalid public key")
	ErrInvalidScript           = InvalidError("invalid script")
	ErrInvalidTransactionId    = InvalidError("invalid transaction id")
	ErrMissingArgument         = InvalidError("missing argument")
	ErrMissingBitcoinURL       = InvalidError("missing bitcoin url")
	ErrNoUnspentOutputs        = NotFoundError("no unspent outputs")
	ErrNotInitialised          = NotFoundError("not initialised")
	ErrOpcodeAlreadyRegistered = ExistsError("opcode already registered")
	ErrOpcodeNotRegistered     = NotFoundError("opcode not registered")
	ErrPayloadTooLong          = LengthError("payload too long")
	ErrRecordExists            = ExistsError("record already exists")
	ErrRecordFailedValidation  = RecordError("record failed validation")
	ErrRecordNotFound          = NotFoundError("record not found")
	ErrRecordTooShort          = LengthError("record too short")
	ErrTooManyInputs           = LengthError("too many inputs")
	ErrUnknownSchema           = NotFoundError("unknown schema")
	ErrWrongMagicBytes         = RecordError("wrong magic bytes")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
