// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

const (
	logFile = "avlmap-cli.log"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// the logger can only be initialised once per process
var logging struct {
	sync.Once
	err error
}

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	logger.Finalise()
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avlmap-cli"
	app.Usage = "exercise and inspect the AVL ordered map"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "log-directory, l",
			Value: os.TempDir(),
			Usage: " write the trace log into `DIR`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "replay",
			Usage:     "apply a script of operations and verify the tree after each change",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*script `FILE` (- for standard input)",
				},
				cli.BoolFlag{
					Name:  "print, p",
					Usage: " draw the final tree",
				},
			},
			Action: runReplay,
		},
		{
			Name:      "random",
			Usage:     "apply a random workload and verify the tree after each change",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, c",
					Value: 10000,
					Usage: " number of operations `COUNT`",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 1,
					Usage: " random seed `SEED`",
				},
				cli.IntFlag{
					Name:  "range, r",
					Value: 1000,
					Usage: " keys are drawn from [0, `RANGE`)",
				},
				cli.IntFlag{
					Name:  "check-interval, i",
					Value: 1,
					Usage: " full check after every `N` changes",
				},
				cli.BoolFlag{
					Name:  "print, p",
					Usage: " draw the final tree",
				},
			},
			Action: runRandom,
		},
		{
			Name:      "shapes",
			Usage:     "show the tree shape after each single rotation case",
			ArgsUsage: " ",
			Flags:     []cli.Flag{},
			Action:    runShapes,
		},
		{
			Name:      "version",
			Usage:     "display avlmap-cli version",
			ArgsUsage: " ",
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		verbose := c.GlobalBool("verbose")

		logging.Do(func() {
			level := "critical"
			if verbose {
				level = "trace"
			}
			logging.err = logger.Initialise(logger.Configuration{
				Directory: c.GlobalString("log-directory"),
				File:      logFile,
				Size:      1048576,
				Count:     10,
				Levels: map[string]string{
					logger.DefaultTag: level,
				},
			})
		})
		if nil != logging.err {
			return logging.err
		}

		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				verbose: verbose,
				log:     logger.New(app.Name),
				e:       c.App.ErrWriter,
				w:       c.App.Writer,
			},
		}
		return nil
	}

	return app
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
