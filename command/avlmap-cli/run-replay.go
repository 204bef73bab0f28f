// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlmap/workload"
)

type runSummary struct {
	Operations  int               `json:"operations"`
	Applied     int               `json:"applied"`
	Count       int               `json:"count"`
	Height      int               `json:"height"`
	Fingerprint string            `json:"fingerprint"`
	Stats       workload.Snapshot `json:"stats"`
	Queries     []queryResult     `json:"queries,omitempty"`
	Violations  []string          `json:"violations,omitempty"`
}

func runReplay(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := checkNoArguments(c.Args()); nil != err {
		return err
	}

	fileName, err := checkFileName(c.String("file"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "script: %s\n", fileName)
	}

	var input io.Reader = os.Stdin
	if "-" != fileName {
		file, err := os.Open(fileName)
		if nil != err {
			return err
		}
		defer file.Close()
		input = file
	}

	operations, err := workload.ParseScript(input)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "operations: %d\n", len(operations))
	}

	return execute(m, operations, &collector{keepQueries: true}, 1, c.Bool("print"))
}

// run operations through a verifying runner and print the summary
func execute(m *metadata, operations []workload.Operation, observer *collector, checkInterval int, printTree bool) error {

	runner := workload.NewRunner(observer, m.log, nil)
	runner.SetCheckInterval(checkInterval)

	applied, runErr := runner.Run(context.Background(), operations)
	if nil == runErr {
		runErr = runner.VerifyAll()
	}

	tree := runner.Tree()
	if printTree {
		depth := tree.Print(m.e, true)
		if m.verbose {
			fmt.Fprintf(m.e, "depth: %d\n", depth)
		}
	}

	summary := runSummary{
		Operations:  len(operations),
		Applied:     applied,
		Count:       tree.Count(),
		Height:      tree.Height(),
		Fingerprint: workload.Fingerprint(tree),
		Stats:       runner.Stats().Snapshot(),
		Queries:     observer.queries,
		Violations:  observer.violations,
	}
	if err := printJson(m.w, summary); nil != err {
		return err
	}
	return runErr
}
