// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"fmt"
	"math/rand"

	"github.com/bitmark-inc/avlmap/fault"
)

// Profile - parameters for random operation generation
//
// the weights give the relative frequency of each kind
type Profile struct {
	Seed     int64 `gluamapper:"seed" json:"seed"`
	KeyRange int   `gluamapper:"key_range" json:"key_range"`
	Insert   int   `gluamapper:"insert" json:"insert"`
	Emplace  int   `gluamapper:"emplace" json:"emplace"`
	Erase    int   `gluamapper:"erase" json:"erase"`
	Find     int   `gluamapper:"find" json:"find"`
	Contains int   `gluamapper:"contains" json:"contains"`
}

// DefaultProfile - an insert heavy mix over ten thousand keys
func DefaultProfile() Profile {
	return Profile{
		Seed:     1,
		KeyRange: 10000,
		Insert:   40,
		Emplace:  10,
		Erase:    30,
		Find:     15,
		Contains: 5,
	}
}

func (p Profile) weights() [kindCount]int {
	return [kindCount]int{
		Insert:   p.Insert,
		Emplace:  p.Emplace,
		Erase:    p.Erase,
		Find:     p.Find,
		Contains: p.Contains,
	}
}

// Validate - check the profile can generate operations
func (p Profile) Validate() error {
	if p.KeyRange <= 0 {
		return fmt.Errorf("%w: %d", fault.ErrInvalidKeyRange, p.KeyRange)
	}
	total := 0
	for k, w := range p.weights() {
		if w < 0 {
			return fmt.Errorf("%w: %s: %d", fault.ErrNegativeWeight, Kind(k), w)
		}
		total += w
	}
	if 0 == total {
		return fault.ErrInvalidProfile
	}
	return nil
}

// Generator - deterministic source of random operations, the same
// profile always produces the same sequence
type Generator struct {
	rng      *rand.Rand
	profile  Profile
	weights  [kindCount]int
	total    int
	sequence uint64
}

// NewGenerator - create a generator for a valid profile
func NewGenerator(profile Profile) (*Generator, error) {
	if err := profile.Validate(); nil != err {
		return nil, err
	}
	g := &Generator{
		rng:     rand.New(rand.NewSource(profile.Seed)),
		profile: profile,
		weights: profile.weights(),
	}
	for _, w := range g.weights {
		g.total += w
	}
	return g, nil
}

// Profile - the profile the generator was created from
func (g *Generator) Profile() Profile {
	return g.profile
}

// Next - produce one operation
func (g *Generator) Next() Operation {
	g.sequence += 1

	n := g.rng.Intn(g.total)
	kind := Insert
select_kind:
	for k, w := range g.weights {
		if n < w {
			kind = Kind(k)
			break select_kind
		}
		n -= w
	}

	op := Operation{
		Kind: kind,
		Key:  g.rng.Intn(g.profile.KeyRange),
	}
	if kind == Insert || kind == Emplace {
		op.Value = fmt.Sprintf("v%d", g.sequence)
	}
	return op
}

// Batch - produce n operations
func (g *Generator) Batch(n int) []Operation {
	operations := make([]Operation, n)
	for i := range operations {
		operations[i] = g.Next()
	}
	return operations
}
