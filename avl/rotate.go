// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a possibly empty sub-tree
func height[K any, V any](p *node[K, V]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// left height minus right height
func balanceFactor[K any, V any](p *node[K, V]) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// recompute height from the children
func (p *node[K, V]) update() {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}

// rotate the sub-tree rooted at y to the right
//
//	    y            x
//	   / \          / \
//	  x   c  →     a   y
//	 / \              / \
//	a   b            b   c
//
// returns the new sub-tree root
func rotateRight[K any, V any](y *node[K, V]) *node[K, V] {
	x := y.left
	y.left = x.right
	x.right = y
	y.update()
	x.update()
	return x
}

// mirror image of rotateRight
func rotateLeft[K any, V any](x *node[K, V]) *node[K, V] {
	y := x.right
	x.right = y.left
	y.left = x
	x.update()
	y.update()
	return y
}

// restore the balance of a node whose sub-trees are already balanced
// and differ in height by at most two
//
// returns the (possibly new) sub-tree root, nil stays nil
func rebalance[K any, V any](p *node[K, V]) *node[K, V] {
	if nil == p {
		return nil
	}
	p.update()
	bf := balanceFactor(p)
	if bf > 1 {
		if balanceFactor(p.left) < 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		// single LL rotation
		return rotateRight(p)
	}
	if bf < -1 {
		if balanceFactor(p.right) > 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		// single RR rotation
		return rotateLeft(p)
	}
	return p
}
