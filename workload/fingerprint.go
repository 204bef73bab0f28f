// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/avlmap/avl"
)

// Fingerprint - SHA3-256 over the ordered contents of a tree as hex
//
// two trees holding the same pairs have the same fingerprint
// regardless of the operations that built them
func Fingerprint(tree *avl.Tree[int, string]) string {
	h := sha3.New256()
	buffer := make([]byte, 0, 2*binary.MaxVarintLen64)
	tree.ForEachInOrder(func(key int, value *string) {
		buffer = buffer[:0]
		buffer = binary.AppendVarint(buffer, int64(key))
		buffer = binary.AppendUvarint(buffer, uint64(len(*value)))
		h.Write(buffer)
		h.Write([]byte(*value))
	})
	return hex.EncodeToString(h.Sum(nil))
}
