// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bitmark-inc/avlmap/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrLengthOne   = fault.LengthError("length one")
	ErrLengthTwo   = fault.LengthError("length two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
	ErrRecordOne   = fault.RecordError("record one")
	ErrRecordTwo   = fault.RecordError("record two")
)

// test that the various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
		record   bool
	}{
		{ErrExistsOne, true, false, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false, false},
		{ErrLengthOne, false, false, true, false, false, false},
		{ErrLengthTwo, false, false, true, false, false, false},
		{ErrNotFoundOne, false, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, true, false},
		{ErrProcessTwo, false, false, false, false, true, false},
		{ErrRecordOne, false, false, false, false, false, true},
		{ErrRecordTwo, false, false, false, false, false, true},
		{fault.ErrNilComparator, false, true, false, false, false, false},
		{fault.ErrUnbalancedTree, false, false, false, false, false, true},
		{errors.New("plain"), false, false, false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
	}
}

// wrapped errors keep their class and identity
func TestWrapped(t *testing.T) {
	err := fmt.Errorf("%w: key: %d", fault.ErrHeightMismatch, 42)

	if !fault.IsErrRecord(err) {
		t.Errorf("wrapped error lost its class: %v", err)
	}
	if fault.IsErrInvalid(err) {
		t.Errorf("wrapped error has wrong class: %v", err)
	}
	if !errors.Is(err, fault.ErrHeightMismatch) {
		t.Errorf("wrapped error not identified: %v", err)
	}
	if errors.Is(err, fault.ErrUnbalancedTree) {
		t.Errorf("wrapped error misidentified: %v", err)
	}
}

// without an initialised channel critical messages go to stdout
func TestCriticalWithoutLogger(t *testing.T) {
	if err := fault.Finalise(); err != fault.ErrNotInitialised {
		t.Fatalf("finalise: actual: %v  expected: %v", err, fault.ErrNotInitialised)
	}
	fault.Critical("message before logger setup")
	fault.Criticalf("value: %d", 12)
	fault.PanicIfError("nothing", nil)
}

// panic helpers log first and then panic with a descriptive message
func TestPanics(t *testing.T) {
	panics := []struct {
		f        func()
		expected string
	}{
		{func() { fault.Panic("plain") }, "plain"},
		{func() { fault.Panicf("value: %d", 7) }, "abort, see last messages in log file"},
		{func() { fault.PanicWithError("setup", fault.ErrNilComparator) }, "setup failed with error: comparator is nil"},
		{func() { fault.PanicIfError("check", fault.ErrUnbalancedTree) }, "check failed with error: balance factor out of range"},
	}

	for i, p := range panics {
		actual := recovered(p.f)
		if p.expected != actual {
			t.Errorf("%d: panic: actual: %q  expected: %q", i, actual, p.expected)
		}
	}
}

// run f and return the string it panicked with
func recovered(f func()) (message string) {
	defer func() {
		if r := recover(); nil != r {
			message = fmt.Sprintf("%v", r)
		}
	}()
	f()
	return ""
}
