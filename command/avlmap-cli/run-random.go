// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlmap/workload"
)

func runRandom(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := checkNoArguments(c.Args()); nil != err {
		return err
	}

	count, err := checkCount(c.Int("count"))
	if nil != err {
		return err
	}

	profile := workload.DefaultProfile()
	profile.Seed = c.Int64("seed")
	profile.KeyRange = c.Int("range")

	generator, err := workload.NewGenerator(profile)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "profile: %+v\n", profile)
	}

	operations := generator.Batch(count)

	return execute(m, operations, &collector{}, c.Int("check-interval"), c.Bool("print"))
}
