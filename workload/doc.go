// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - drive an avl tree with scripted or random
// operations
//
// A Runner applies each operation to an avl.Tree[int, string] and to a
// plain Go map kept alongside it.  Results from the tree are compared
// with the map, and after mutating operations the tree invariants are
// verified, so any divergence is reported as soon as it happens.
package workload
