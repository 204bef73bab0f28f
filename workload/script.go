// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/bitmark-inc/avlmap/fault"
)

// ParseScript - read operations, one per line:
//
//	insert   <key> <value>
//	emplace  <key> <value>
//	erase    <key>
//	find     <key>
//	contains <key>
//
// blank lines and lines starting with '#' are ignored; a value runs to
// the end of the line, keeping any inner spaces and tabs
func ParseScript(r io.Reader) ([]Operation, error) {
	operations := make([]Operation, 0, 100)

	scanner := bufio.NewScanner(r)
	lineNumber := 0
scan_lines:
	for scanner.Scan() {
		lineNumber += 1
		line := strings.TrimSpace(scanner.Text())
		if "" == line || '#' == line[0] {
			continue scan_lines
		}

		op, err := parseLine(line)
		if nil != err {
			return nil, fmt.Errorf("%w: line %d: %w", fault.ErrInvalidScript, lineNumber, err)
		}
		operations = append(operations, op)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return operations, nil
}

func parseLine(line string) (Operation, error) {
	fields := strings.Fields(line)

	kind, err := ParseKind(fields[0])
	if nil != err {
		return Operation{}, err
	}

	if len(fields) < 2 {
		return Operation{}, fmt.Errorf("%s: missing key", kind)
	}
	key, err := strconv.Atoi(fields[1])
	if nil != err {
		return Operation{}, fmt.Errorf("%s: key: %q is not an integer", kind, fields[1])
	}

	op := Operation{
		Kind: kind,
		Key:  key,
	}
	switch kind {
	case Insert, Emplace:
		if len(fields) < 3 {
			return Operation{}, fmt.Errorf("%s: missing value", kind)
		}
		op.Value = valueOf(line, fields[0], fields[1])
	default:
		if len(fields) > 2 {
			return Operation{}, fmt.Errorf("%s: unexpected value: %q", kind, strings.Join(fields[2:], " "))
		}
	}
	return op, nil
}

// the remainder of a trimmed line after its kind and key fields
func valueOf(line string, kind string, key string) string {
	rest := strings.TrimLeftFunc(line[len(kind):], unicode.IsSpace)
	return strings.TrimLeftFunc(rest[len(key):], unicode.IsSpace)
}
