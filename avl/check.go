// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avlmap/fault"
)

// Check - verify ordering, heights, balance and node count
//
// returns nil for a consistent tree
func (tree *Tree[K, V]) Check() error {
	n, _, err := tree.check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: reachable: %d  count: %d", fault.ErrCountMismatch, n, tree.count)
	}
	return nil
}

// internal: consistency checker, every key of p must lie strictly
// between the optional bounds lo and hi
//
// returns the node count and height of the sub-tree
func (tree *Tree[K, V]) check(p *node[K, V], lo *K, hi *K) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if nil != lo && !tree.less.Less(*lo, p.key) {
		return 0, 0, fmt.Errorf("%w: key: %v  not above: %v", fault.ErrOrderViolation, p.key, *lo)
	}
	if nil != hi && !tree.less.Less(p.key, *hi) {
		return 0, 0, fmt.Errorf("%w: key: %v  not below: %v", fault.ErrOrderViolation, p.key, *hi)
	}

	nl, hl, err := tree.check(p.left, lo, &p.key)
	if nil != err {
		return 0, 0, err
	}
	nr, hr, err := tree.check(p.right, &p.key, hi)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if h != p.height {
		return 0, 0, fmt.Errorf("%w: key: %v  actual: %d  recorded: %d", fault.ErrHeightMismatch, p.key, h, p.height)
	}
	if bf := hl - hr; bf < -1 || bf > 1 {
		return 0, 0, fmt.Errorf("%w: key: %v  balance: %+d", fault.ErrUnbalancedTree, p.key, bf)
	}
	return 1 + nl + nr, h, nil
}
