// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

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
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBatchSize            = LengthError("batch size is out of range")
	ErrCountMismatch        = RecordError("node count does not match tree count")
	ErrHeightMismatch       = RecordError("recorded height is incorrect")
	ErrInvalidKeyRange      = InvalidError("key range must be positive")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidProfile       = InvalidError("profile has no operation weights")
	ErrInvalidScript        = InvalidError("invalid script")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvariantViolated    = ProcessError("tree invariant violated")
	ErrMaximumKeys          = LengthError("maximum keys is out of range")
	ErrNegativeWeight       = InvalidError("operation weight is negative")
	ErrNilComparator        = InvalidError("comparator is nil")
	ErrNotADirectory        = InvalidError("path is not a directory")
	ErrNotInitialised       = NotFoundError("not initialised")
	ErrNotPlainFileName     = InvalidError("file is not a plain name")
	ErrOrderViolation       = RecordError("keys are out of order")
	ErrRateLimiting         = ProcessError("rate limiting")
	ErrShadowMismatch       = RecordError("tree differs from reference map")
	ErrUnbalancedTree       = RecordError("balance factor out of range")
	ErrUnknownOperation     = NotFoundError("unknown operation")
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
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrLength(e error) bool   { var x LengthError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
func IsErrRecord(e error) bool   { var x RecordError; return errors.As(e, &x) }
