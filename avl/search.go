// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - return a pointer to the value stored for key
func (tree *Tree[K, V]) Find(key K) (*V, bool) {
	p := tree.search(key)
	if nil == p {
		return nil, false
	}
	return &p.value, true
}

// Contains - true if key is present
func (tree *Tree[K, V]) Contains(key K) bool {
	return nil != tree.search(key)
}

func (tree *Tree[K, V]) search(key K) *node[K, V] {
	p := tree.root
	for nil != p {
		switch {
		case tree.less.Less(key, p.key):
			p = p.left
		case tree.less.Less(p.key, key):
			p = p.right
		default:
			return p
		}
	}
	return nil
}
