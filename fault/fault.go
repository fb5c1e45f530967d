// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 The erc725d Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	// AccessError - caller fails the ownership check
	AccessError GenericError

	// InvalidError - malformed or out of range input
	InvalidError GenericError

	// LimitError - a fixed ceiling was exceeded
	LimitError GenericError

	// NotFoundError - requested item does not exist
	NotFoundError GenericError

	// ProcessError - internal or lifecycle failure
	ProcessError GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ProcessError("already initialised")
	BatchLengthMismatch          = InvalidError("batch keys and values differ in length")
	BatchTooLarge                = LimitError("batch has too many entries")
	CannotDecodeAccount          = InvalidError("cannot decode account")
	CannotDecodePrivateKey       = InvalidError("cannot decode private key")
	CertificateFileAlreadyExists = ProcessError("certificate file already exists")
	ChecksumMismatch             = InvalidError("checksum mismatch")
	DatabaseIsNotSet             = ProcessError("database is not set")
	EmptyBatch                   = InvalidError("batch is empty")
	IncompatibleDatabaseVersion  = ProcessError("incompatible database version")
	InvalidCount                 = InvalidError("invalid count")
	InvalidInterfaceID           = InvalidError("invalid interface id")
	InvalidIpAddress             = InvalidError("invalid ip address")
	InvalidKey                   = InvalidError("invalid key")
	InvalidKeyLength             = InvalidError("invalid key length")
	InvalidKeyType               = InvalidError("invalid key type")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidSignature             = InvalidError("invalid signature")
	KeyFileAlreadyExists         = ProcessError("key file already exists")
	MissingParameters            = InvalidError("missing parameters")
	NotInitialised               = ProcessError("not initialised")
	NotPrivateKey                = InvalidError("not a private key")
	NotPublicKey                 = InvalidError("not a public key")
	NotTheOwner                  = AccessError("not the owner")
	RateLimiting                 = ProcessError("rate limiting")
	TransactionAlreadyInUse      = ProcessError("transaction already in use")
	TransferToZeroAccount        = InvalidError("transfer to zero account")
	ValueTooLong                 = InvalidError("value too long")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// Error - the error interface methods
func (e AccessError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LimitError) Error() string    { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrAccess - determine the class of an error
func IsErrAccess(e error) bool   { _, ok := e.(AccessError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLimit(e error) bool    { _, ok := e.(LimitError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
