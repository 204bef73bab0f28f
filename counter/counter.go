// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned event counter that may be read by one
// go routine while another one is counting
type Counter struct {
	v atomic.Uint64
}

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return ic.v.Add(1)
}

// Add - add n to a counter, returns new value
func (ic *Counter) Add(n uint64) uint64 {
	return ic.v.Add(n)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return ic.v.Load()
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.v.Load()
}

// Reset - set to zero, returns the value before the reset
func (ic *Counter) Reset() uint64 {
	return ic.v.Swap(0)
}
