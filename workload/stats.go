// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"github.com/bitmark-inc/avlmap/counter"
)

// Stats - running totals for a runner, safe to read from another go
// routine while the runner is active
type Stats struct {
	operations  [kindCount]counter.Counter
	inserted    counter.Counter
	overwritten counter.Counter
	erased      counter.Counter
	misses      counter.Counter
	violations  counter.Counter
}

// Snapshot - point in time copy of Stats
type Snapshot struct {
	Operations  map[string]uint64 `json:"operations"`
	Total       uint64            `json:"total"`
	Inserted    uint64            `json:"inserted"`    // new keys from insert or emplace
	Overwritten uint64            `json:"overwritten"` // insert of an existing key
	Erased      uint64            `json:"erased"`
	Misses      uint64            `json:"misses"` // erase, find or contains of an absent key
	Violations  uint64            `json:"violations"`
}

// Snapshot - read all counters
func (s *Stats) Snapshot() Snapshot {
	snap := Snapshot{
		Operations:  make(map[string]uint64, kindCount),
		Inserted:    s.inserted.Uint64(),
		Overwritten: s.overwritten.Uint64(),
		Erased:      s.erased.Uint64(),
		Misses:      s.misses.Uint64(),
		Violations:  s.violations.Uint64(),
	}
	for k := range s.operations {
		n := s.operations[k].Uint64()
		snap.Operations[Kind(k).String()] = n
		snap.Total += n
	}
	return snap
}

// Reset - zero all counters
func (s *Stats) Reset() {
	for k := range s.operations {
		s.operations[k].Reset()
	}
	s.inserted.Reset()
	s.overwritten.Reset()
	s.erased.Reset()
	s.misses.Reset()
	s.violations.Reset()
}

// record the outcome of one operation
func (s *Stats) record(result Result) {
	s.operations[result.Operation.Kind].Increment()
	switch result.Operation.Kind {
	case Insert:
		if result.Hit {
			s.overwritten.Increment()
		} else {
			s.inserted.Increment()
		}
	case Emplace:
		if !result.Hit {
			s.inserted.Increment()
		}
	case Erase:
		if result.Hit {
			s.erased.Increment()
		} else {
			s.misses.Increment()
		}
	default:
		if !result.Hit {
			s.misses.Increment()
		}
	}
}
