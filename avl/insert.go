// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// what to store when the descent reaches the key
type placement[V any] struct {
	value     V
	construct func() V
	assign    bool // overwrite an existing value
}

// value for a newly created node
func (pl *placement[V]) make() V {
	if pl.assign || nil == pl.construct {
		return pl.value
	}
	return pl.construct()
}

// InsertOrAssign - insert a new node into the tree, or overwrite the
// value of an existing key
//
// returns a pointer to the stored value and true if the key was added
func (tree *Tree[K, V]) InsertOrAssign(key K, value V) (*V, bool) {
	pl := placement[V]{
		value:  value,
		assign: true,
	}
	root, ref, added := tree.insert(tree.root, key, &pl)
	tree.root = rebalance(root)
	return ref, added
}

// Emplace - insert a value built by construct only if the key is absent
//
// construct is not called when the key is already present and the
// stored value is left unchanged; a nil construct stores the zero value
//
// returns a pointer to the stored value and true if the key was added
func (tree *Tree[K, V]) Emplace(key K, construct func() V) (*V, bool) {
	pl := placement[V]{
		construct: construct,
		assign:    false,
	}
	root, ref, added := tree.insert(tree.root, key, &pl)
	tree.root = rebalance(root)
	return ref, added
}

// internal routine for insert
//
// returns the possibly updated sub-tree root
func (tree *Tree[K, V]) insert(p *node[K, V], key K, pl *placement[V]) (*node[K, V], *V, bool) {
	if nil == p { // insert new node
		p = tree.newNode(key, pl.make())
		tree.count += 1
		return p, &p.value, true
	}

	var ref *V
	added := false
	switch {
	case tree.less.Less(key, p.key):
		p.left, ref, added = tree.insert(p.left, key, pl)
	case tree.less.Less(p.key, key):
		p.right, ref, added = tree.insert(p.right, key, pl)
	default:
		if pl.assign {
			p.value = pl.value
		}
		return p, &p.value, false
	}
	return rebalance(p), ref, added
}
