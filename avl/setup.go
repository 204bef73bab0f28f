// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avlmap/fault"
)

// Pair - a key and its value, as produced by an in-order traversal
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// Tree - type to hold the root node of a tree
type Tree[K any, V any] struct {
	root  *node[K, V]
	count int
	less  Comparator[K]

	// allocator state, see allocator.go
	pool       *node[K, V]
	totalNodes int
	freeNodes  int
}

// New - create a tree ordered by less, then insert any initial pairs
// in sequence so that a later duplicate key overwrites an earlier one
//
// a nil comparator is a programming error and panics
func New[K any, V any](less Comparator[K], initial ...Pair[K, V]) *Tree[K, V] {
	if nil == less {
		panic(fault.ErrNilComparator)
	}
	tree := &Tree[K, V]{
		root:  nil,
		count: 0,
		less:  less,
	}
	for _, p := range initial {
		tree.InsertOrAssign(p.Key, p.Value)
	}
	return tree
}

// NewOrdered - create a tree using the natural ordering of the key type
func NewOrdered[K cmp.Ordered, V any](initial ...Pair[K, V]) *Tree[K, V] {
	return New[K, V](Ordered[K](), initial...)
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Height - height of the root node, zero for an empty tree
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

// Shape - keys of the root node and its immediate children
type Shape[K any] struct {
	Root     K
	Left     K
	Right    K
	HasLeft  bool
	HasRight bool
}

// Shape - return the top of the tree, false if the tree is empty
func (tree *Tree[K, V]) Shape() (Shape[K], bool) {
	s := Shape[K]{}
	if nil == tree.root {
		return s, false
	}
	s.Root = tree.root.key
	if nil != tree.root.left {
		s.Left = tree.root.left.key
		s.HasLeft = true
	}
	if nil != tree.root.right {
		s.Right = tree.root.right.key
		s.HasRight = true
	}
	return s, true
}
