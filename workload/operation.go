// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/avlmap/fault"
)

// Kind - type of a single operation
type Kind int

// operation kinds
const (
	Insert Kind = iota
	Emplace
	Erase
	Find
	Contains
	kindCount // must be last
)

var kindNames = [kindCount]string{
	Insert:   "insert",
	Emplace:  "emplace",
	Erase:    "erase",
	Find:     "find",
	Contains: "contains",
}

// String - name of the kind as used in scripts
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "*unknown*"
	}
	return kindNames[k]
}

// IsMutation - true for kinds that may change the tree structure
func (k Kind) IsMutation() bool {
	switch k {
	case Insert, Emplace, Erase:
		return true
	default:
		return false
	}
}

// ParseKind - convert a script name to a kind
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(s)
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", fault.ErrUnknownOperation, s)
}

// Operation - one step of a workload
type Operation struct {
	Kind  Kind
	Key   int
	Value string // only used by Insert and Emplace
}

// String - the operation in script form
func (op Operation) String() string {
	switch op.Kind {
	case Insert, Emplace:
		return fmt.Sprintf("%s %d %s", op.Kind, op.Key, op.Value)
	default:
		return fmt.Sprintf("%s %d", op.Kind, op.Key)
	}
}
