// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"context"
	"fmt"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

// Result - outcome of one operation
type Result struct {
	Operation Operation
	Hit       bool   // key was present before the operation
	Value     string // value stored for the key afterwards, if any
}

//go:generate mockgen -destination=mocks/mock_observer.go -package=mocks github.com/bitmark-inc/avlmap/workload Observer

// Observer - notified by a runner as operations complete
type Observer interface {
	Applied(result Result)
	Violation(op Operation, err error)
}

// Runner - applies operations to a tree and to a reference map
type Runner struct {
	tree          *avl.Tree[int, string]
	model         map[int]string
	observer      Observer
	log           *logger.L
	limiter       *rate.Limiter
	stats         Stats
	checkInterval int
	mutations     int
}

// NewRunner - create a runner with an empty tree
//
// observer and limiter are optional, log is required
func NewRunner(observer Observer, log *logger.L, limiter *rate.Limiter) *Runner {
	if nil == log {
		fault.Panic("workload: nil logger")
	}
	r := &Runner{
		observer:      observer,
		log:           log,
		limiter:       limiter,
		checkInterval: 1,
	}
	r.Reset()
	return r
}

// Tree - the tree being driven
func (r *Runner) Tree() *avl.Tree[int, string] {
	return r.tree
}

// Stats - counters for all operations since creation
func (r *Runner) Stats() *Stats {
	return &r.stats
}

// SetCheckInterval - run the full invariant check after every n
// mutations, n < 1 is treated as 1
func (r *Runner) SetCheckInterval(n int) {
	if n < 1 {
		n = 1
	}
	r.checkInterval = n
}

// SetLimiter - replace the rate limiter, nil removes the limit
func (r *Runner) SetLimiter(limiter *rate.Limiter) {
	r.limiter = limiter
}

// Reset - discard the current tree and start again with an empty one
func (r *Runner) Reset() {
	r.tree = avl.NewOrdered[int, string]()
	r.model = make(map[int]string)
	r.mutations = 0
}

// Apply - perform a single operation and verify the result
func (r *Runner) Apply(op Operation) (Result, error) {
	if op.Kind < 0 || op.Kind >= kindCount {
		return Result{}, fmt.Errorf("%w: kind: %d", fault.ErrUnknownOperation, op.Kind)
	}

	expected, present := r.model[op.Key]
	result := Result{
		Operation: op,
		Hit:       present,
	}

	var err error
	switch op.Kind {
	case Insert:
		ref, added := r.tree.InsertOrAssign(op.Key, op.Value)
		r.model[op.Key] = op.Value
		result.Value = *ref
		err = r.expect(added == !present, "insert: added: %v  present: %v", added, present)
		if nil == err {
			err = r.expect(op.Value == *ref, "insert: stored: %q  expected: %q", *ref, op.Value)
		}

	case Emplace:
		value := op.Value
		ref, added := r.tree.Emplace(op.Key, func() string {
			return value
		})
		if !present {
			expected = op.Value
			r.model[op.Key] = op.Value
		}
		result.Value = *ref
		err = r.expect(added == !present, "emplace: added: %v  present: %v", added, present)
		if nil == err {
			err = r.expect(expected == *ref, "emplace: stored: %q  expected: %q", *ref, expected)
		}

	case Erase:
		removed := r.tree.Erase(op.Key)
		delete(r.model, op.Key)
		err = r.expect(removed == present, "erase: removed: %v  present: %v", removed, present)

	case Find:
		ref, found := r.tree.Find(op.Key)
		err = r.expect(found == present, "find: found: %v  present: %v", found, present)
		if nil == err && found {
			result.Value = *ref
			err = r.expect(expected == *ref, "find: value: %q  expected: %q", *ref, expected)
		}

	case Contains:
		found := r.tree.Contains(op.Key)
		err = r.expect(found == present, "contains: found: %v  present: %v", found, present)
		if found {
			result.Value = expected
		}
	}

	if nil == err && op.Kind.IsMutation() {
		err = r.verify()
	}

	r.stats.record(result)
	if nil != err {
		r.stats.violations.Increment()
		err = fmt.Errorf("%w: %s: %w", fault.ErrInvariantViolated, op, err)
		r.log.Errorf("%s", err)
		if nil != r.observer {
			r.observer.Violation(op, err)
		}
		return result, err
	}

	r.log.Tracef("%s → hit: %v  value: %q", op, result.Hit, result.Value)
	if nil != r.observer {
		r.observer.Applied(result)
	}
	return result, nil
}

// Run - apply operations in order, stopping at the first violation or
// when the context is cancelled
//
// returns the number of operations applied
func (r *Runner) Run(ctx context.Context, operations []Operation) (int, error) {
	for i, op := range operations {
		if err := ctx.Err(); nil != err {
			return i, err
		}
		if nil != r.limiter {
			if err := r.limiter.Wait(ctx); nil != err {
				if nil != ctx.Err() {
					return i, ctx.Err()
				}
				return i, fmt.Errorf("%w: %w", fault.ErrRateLimiting, err)
			}
		}
		if _, err := r.Apply(op); nil != err {
			return i, err
		}
	}
	return len(operations), nil
}

// check the structure after a mutation
func (r *Runner) verify() error {
	if r.tree.Count() != len(r.model) {
		return fmt.Errorf("%w: count: %d  expected: %d", fault.ErrShadowMismatch, r.tree.Count(), len(r.model))
	}
	r.mutations += 1
	if 0 != r.mutations%r.checkInterval {
		return nil
	}
	return r.tree.Check()
}

// VerifyAll - compare every pair in the tree with the reference map
// and run the full invariant check
func (r *Runner) VerifyAll() error {
	if err := r.tree.Check(); nil != err {
		return err
	}
	if r.tree.Count() != len(r.model) {
		return fmt.Errorf("%w: count: %d  expected: %d", fault.ErrShadowMismatch, r.tree.Count(), len(r.model))
	}
	var err error
	r.tree.ForEachInOrder(func(key int, value *string) {
		if nil != err {
			return
		}
		if expected, ok := r.model[key]; !ok {
			err = fmt.Errorf("%w: unexpected key: %d", fault.ErrShadowMismatch, key)
		} else if expected != *value {
			err = fmt.Errorf("%w: key: %d  value: %q  expected: %q", fault.ErrShadowMismatch, key, *value, expected)
		}
	})
	return err
}

func (r *Runner) expect(ok bool, format string, arguments ...interface{}) error {
	if ok {
		return nil
	}
	return fmt.Errorf("%w: "+format, append([]interface{}{fault.ErrShadowMismatch}, arguments...)...)
}
