// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Comparator - a strict weak order over keys
type Comparator[K any] interface {
	Less(a K, b K) bool // true if a sorts before b
}

// LessFunc - adapt an ordinary function to a Comparator
type LessFunc[K any] func(a K, b K) bool

// Less - implement Comparator
func (f LessFunc[K]) Less(a K, b K) bool {
	return f(a, b)
}

// Ordered - comparator using the natural ordering of K
func Ordered[K cmp.Ordered]() Comparator[K] {
	return LessFunc[K](cmp.Less[K])
}

type reverse[K any] struct {
	c Comparator[K]
}

func (r reverse[K]) Less(a K, b K) bool {
	return r.c.Less(b, a)
}

// Reverse - comparator giving the opposite order of c
func Reverse[K any](c Comparator[K]) Comparator[K] {
	return reverse[K]{c: c}
}
