// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlmap/avl"
)

// the four single rotation cases, each inserts three keys
var rotationCases = []struct {
	name string
	keys []int
}{
	{"right-right", []int{10, 20, 30}},
	{"left-left", []int{30, 20, 10}},
	{"left-right", []int{30, 10, 20}},
	{"right-left", []int{10, 30, 20}},
}

type shapeResult struct {
	Case   string `json:"case"`
	Insert []int  `json:"insert"`
	Root   int    `json:"root"`
	Left   *int   `json:"left"`
	Right  *int   `json:"right"`
	Height int    `json:"height"`
}

func runShapes(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := checkNoArguments(c.Args()); nil != err {
		return err
	}

	results := make([]shapeResult, 0, len(rotationCases))
	for _, rc := range rotationCases {
		tree := avl.NewOrdered[int, string]()
		for _, k := range rc.keys {
			tree.InsertOrAssign(k, fmt.Sprintf("%d", k))
		}
		if err := tree.Check(); nil != err {
			return fmt.Errorf("%s: %w", rc.name, err)
		}

		shape, _ := tree.Shape()
		r := shapeResult{
			Case:   rc.name,
			Insert: rc.keys,
			Root:   shape.Root,
			Height: tree.Height(),
		}
		if shape.HasLeft {
			r.Left = &shape.Left
		}
		if shape.HasRight {
			r.Right = &shape.Right
		}
		results = append(results, r)

		if m.verbose {
			fmt.Fprintf(m.e, "%s:\n", rc.name)
			tree.Print(m.e, false)
		}
	}

	return printJson(m.w, results)
}
