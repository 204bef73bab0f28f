// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// ForEachInOrder - call visit for every key in ascending order
//
// visit may modify the value through the pointer, but must not insert
// or erase keys while the traversal is running
func (tree *Tree[K, V]) ForEachInOrder(visit func(key K, value *V)) {
	inorder(tree.root, visit)
}

func inorder[K any, V any](p *node[K, V], visit func(key K, value *V)) {
	if nil == p {
		return
	}
	inorder(p.left, visit)
	visit(p.key, &p.value)
	inorder(p.right, visit)
}

// ToOrderedSequence - copy all pairs into a slice in ascending key order
func (tree *Tree[K, V]) ToOrderedSequence() []Pair[K, V] {
	out := make([]Pair[K, V], 0, tree.count)
	tree.ForEachInOrder(func(key K, value *V) {
		out = append(out, Pair[K, V]{Key: key, Value: *value})
	})
	return out
}

// First - return the pair with the lowest key
func (tree *Tree[K, V]) First() (K, *V, bool) {
	p := tree.root.first()
	if nil == p {
		var zero K
		return zero, nil, false
	}
	return p.key, &p.value, true
}

// internal: lowest node in a sub-tree
func (p *node[K, V]) first() *node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the pair with the highest key
func (tree *Tree[K, V]) Last() (K, *V, bool) {
	p := tree.root.last()
	if nil == p {
		var zero K
		return zero, nil, false
	}
	return p.key, &p.value, true
}

// internal: highest node in a sub-tree
func (p *node[K, V]) last() *node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
