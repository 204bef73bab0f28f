// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io"
)

// values come from scripts so leave <, > and & unescaped
func printJson(handle io.Writer, message interface{}) error {
	enc := json.NewEncoder(handle)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(message)
}
