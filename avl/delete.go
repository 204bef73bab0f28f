// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Erase - remove a key and its value from the tree
//
// returns false if the key was not present
func (tree *Tree[K, V]) Erase(key K) bool {
	root, removed := tree.erase(tree.root, key)
	tree.root = rebalance(root)
	return removed
}

// internal routine for delete
//
// returns the possibly updated sub-tree root
func (tree *Tree[K, V]) erase(p *node[K, V], key K) (*node[K, V], bool) {
	if nil == p {
		return nil, false
	}

	removed := false
	switch {
	case tree.less.Less(key, p.key):
		p.left, removed = tree.erase(p.left, key)
	case tree.less.Less(p.key, key):
		p.right, removed = tree.erase(p.right, key)
	default:
		tree.count -= 1
		return tree.unlink(p), true
	}
	return rebalance(p), removed
}

// detach p from the tree and reclaim it
//
// returns the sub-tree that takes its place
func (tree *Tree[K, V]) unlink(p *node[K, V]) *node[K, V] {
	left := p.left
	right := p.right
	tree.freeNode(p)

	if nil == left {
		return right
	}
	if nil == right {
		return left
	}

	// two children: the in-order successor moves into this position
	right, successor := extractMin(right)
	successor.left = left
	successor.right = right
	return rebalance(successor)
}

// remove the lowest node from a non-empty sub-tree, its right child
// takes over its slot
//
// returns the rebalanced remainder and the detached node
func extractMin[K any, V any](p *node[K, V]) (*node[K, V], *node[K, V]) {
	if nil == p.left {
		rest := p.right
		p.right = nil
		return rest, p
	}
	var lowest *node[K, V]
	p.left, lowest = extractMin(p.left)
	return rebalance(p), lowest
}
