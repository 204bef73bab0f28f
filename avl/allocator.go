// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// a node in the tree
type node[K any, V any] struct {
	left   *node[K, V] // left sub-tree
	right  *node[K, V] // right sub-tree; free list link while pooled
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // 1 for a leaf
}

// upper limit on reclaimed nodes kept by a single tree, anything
// beyond this is left to the garbage collector
const maximumFreeNodes = 256

// AllocStats - node allocation counters for a tree
type AllocStats struct {
	Total int // nodes created from the heap
	Free  int // reclaimed nodes waiting for reuse
}

// Stats - read the allocation counters
func (tree *Tree[K, V]) Stats() AllocStats {
	return AllocStats{
		Total: tree.totalNodes,
		Free:  tree.freeNodes,
	}
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
func (tree *Tree[K, V]) newNode(key K, value V) *node[K, V] {
	if nil == tree.pool {
		if 0 != tree.freeNodes {
			panic("pool corrupt")
		}
		tree.totalNodes += 1
		return &node[K, V]{
			key:    key,
			value:  value,
			height: 1,
		}
	}
	p := tree.pool
	tree.pool = p.right
	p.key = key
	p.value = value
	p.height = 1
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	tree.freeNodes -= 1
	return p
}

// reclaim a node, dropping its key and value so they can be collected
func (tree *Tree[K, V]) freeNode(p *node[K, V]) {
	var zeroKey K
	var zeroValue V

	p.left = nil
	p.key = zeroKey
	p.value = zeroValue
	p.height = 0

	if tree.freeNodes >= maximumFreeNodes {
		p.right = nil
		return
	}
	p.right = tree.pool // use as free list pointer
	tree.pool = p
	tree.freeNodes += 1
}
