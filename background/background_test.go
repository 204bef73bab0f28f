// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/background"
)

// inserts ascending keys into its own tree until stopped
type filler struct {
	tree     *avl.Tree[int, int]
	started  atomic.Bool
	finished bool
}

func (f *filler) Run(args interface{}, shutdown <-chan struct{}) {
	t := args.(*testing.T)
	f.started.Store(true)

	n := 0
loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		f.tree.InsertOrAssign(n, n*n)
		n += 1
		time.Sleep(time.Millisecond)
	}

	if n != f.tree.Count() {
		t.Errorf("count: %d  expected: %d", f.tree.Count(), n)
	}
	f.finished = true
}

func TestBackground(t *testing.T) {

	proc1 := &filler{tree: avl.NewOrdered[int, int]()}
	proc2 := &filler{tree: avl.NewOrdered[int, int]()}

	processes := background.Processes{
		proc1,
		proc2,
	}

	p := background.Start(processes, t)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	for i, proc := range []*filler{proc1, proc2} {
		if !proc.started.Load() {
			t.Fatalf("process[%d] was not started", i)
		}
		if !proc.finished {
			t.Fatalf("process[%d] stop did not wait for completion", i)
		}
		if proc.tree.IsEmpty() {
			t.Fatalf("process[%d] did no work", i)
		}
		if err := proc.tree.Check(); nil != err {
			t.Fatalf("process[%d] tree check failed: %s", i, err)
		}
	}

	// a second stop is harmless
	p.Stop()
}

func TestStopNil(t *testing.T) {
	var p *background.T
	p.Stop()
}
