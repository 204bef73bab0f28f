// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/avlmap/fault"
)

var (
	ErrCountOutOfRange    = fault.LengthError("count is out of range")
	ErrRequiredFileName   = fault.InvalidError("file name is required")
	ErrUnexpectedArgument = fault.InvalidError("unexpected argument")
)

const (
	maximumOperations = 100000000
)

// check for non-blank file name
func checkFileName(fileName string) (string, error) {
	if "" == fileName {
		return "", ErrRequiredFileName
	}

	return fileName, nil
}

// count must be positive and not excessive
func checkCount(count int) (int, error) {
	if count <= 0 || count > maximumOperations {
		return 0, ErrCountOutOfRange
	}

	return count, nil
}

// commands take flags only
func checkNoArguments(args []string) error {
	if 0 != len(args) {
		return ErrUnexpectedArgument
	}

	return nil
}
