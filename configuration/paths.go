// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/avlmap/fault"
)

// EnsureAbsolute - if path is relative then prepend directory to it
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// DataDirectory - resolve the data directory setting
//
// "." means the directory holding the configuration file; the result
// must be an existing directory
func DataDirectory(configurationFileName string, dataDirectory string) (string, error) {
	if "" == dataDirectory || "~" == dataDirectory {
		return "", fmt.Errorf("%w: %q", fault.ErrNotADirectory, dataDirectory)
	}
	if "." == dataDirectory {
		dataDirectory, _ = filepath.Split(configurationFileName)
	}
	dataDirectory = filepath.Clean(dataDirectory)

	// this directory must exist - i.e. must be created prior to running
	fileInfo, err := os.Stat(dataDirectory)
	if nil != err {
		return "", err
	}
	if !fileInfo.IsDir() {
		return "", fmt.Errorf("%w: %q", fault.ErrNotADirectory, dataDirectory)
	}
	return dataDirectory, nil
}

// PlainFileName - fail if the name contains any directory component
func PlainFileName(name string) error {
	switch filepath.Dir(name) {
	case "", ".":
		return nil
	default:
		return fmt.Errorf("%w: %q", fault.ErrNotPlainFileName, name)
	}
}
