// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/configuration"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/workload"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultBatchSize      = 1000
	defaultMaximumKeys    = 100000
	defaultRate           = 0 // unlimited
	defaultCheckInterval  = 100
	defaultReportInterval = 60 // seconds

	maximumBatchSize = 1000000

	defaultLogDirectory = "log"
	defaultLogFile      = "avlsoak.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - the soak daemon's settings
type Configuration struct {
	DataDirectory  string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile        string               `gluamapper:"pidfile" json:"pidfile"`
	Profile        workload.Profile     `gluamapper:"profile" json:"profile"`
	BatchSize      int                  `gluamapper:"batch_size" json:"batch_size"`
	MaximumKeys    int                  `gluamapper:"max_keys" json:"max_keys"`
	Rate           float64              `gluamapper:"rate" json:"rate"`
	CheckInterval  int                  `gluamapper:"check_interval" json:"check_interval"`
	ReportInterval int                  `gluamapper:"report_interval" json:"report_interval"`
	Logging        logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// copy so that levels from one file do not leak into the next
	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{

		DataDirectory:  defaultDataDirectory,
		PidFile:        "", // no PidFile by default
		Profile:        workload.DefaultProfile(),
		BatchSize:      defaultBatchSize,
		MaximumKeys:    defaultMaximumKeys,
		Rate:           defaultRate,
		CheckInterval:  defaultCheckInterval,
		ReportInterval: defaultReportInterval,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if err := options.Profile.Validate(); nil != err {
		return nil, err
	}
	if options.BatchSize < 1 || options.BatchSize > maximumBatchSize {
		return nil, fmt.Errorf("%w: %d", fault.ErrBatchSize, options.BatchSize)
	}
	if options.MaximumKeys < 1 {
		return nil, fmt.Errorf("%w: %d", fault.ErrMaximumKeys, options.MaximumKeys)
	}
	if options.Rate < 0 {
		options.Rate = defaultRate
	}
	if options.CheckInterval < 1 {
		options.CheckInterval = 1
	}
	if options.ReportInterval < 1 {
		options.ReportInterval = defaultReportInterval
	}

	// ensure absolute data directory
	options.DataDirectory, err = configuration.DataDirectory(configurationFileName, options.DataDirectory)
	if nil != err {
		return nil, err
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = configuration.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// log file must be a simple name within the log directory
	if err := configuration.PlainFileName(options.Logging.File); nil != err {
		return nil, err
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = configuration.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// settings - the parts of the configuration that can change while
// running
type settings struct {
	profile       workload.Profile
	rate          float64
	checkInterval int
	batchSize     int
	maximumKeys   int
}

func (c *Configuration) settings() settings {
	return settings{
		profile:       c.Profile,
		rate:          c.Rate,
		checkInterval: c.CheckInterval,
		batchSize:     c.BatchSize,
		maximumKeys:   c.MaximumKeys,
	}
}
