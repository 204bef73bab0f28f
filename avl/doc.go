// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree holding ordered key/value pairs
//
// Keys are ordered by a Comparator supplied when the tree is created.
// The comparator must be a strict weak order: irreflexive and
// transitive, with two keys treated as the same key when neither is
// less than the other.  Behaviour with any other comparator is
// undefined, and is not detected.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  The whole tree is the unit of locking.
//
// Each node records its height and the tree is rebalanced with single
// or double rotations on the way back up from every insert or
// delete, so the height never exceeds about 1.44·log2(n+2).
//
// Nodes are never copied: rotations and deletes move whole nodes
// between child slots, so a value pointer returned by InsertOrAssign,
// Emplace or Find stays valid until its key is erased.
package avl
