// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/workload"
)

const (
	reporterLoggerPrefix = "reporter"
)

type report struct {
	Batches  uint64            `json:"batches"`
	Restarts uint64            `json:"restarts"`
	Keys     int64             `json:"keys"`
	Height   int64             `json:"height"`
	Failed   bool              `json:"failed"`
	Stats    workload.Snapshot `json:"stats"`
}

// reporter - background process to log soak progress periodically
type reporter struct {
	log      *logger.L
	interval time.Duration
	stats    *workload.Stats
	status   *status
	previous uint64
}

func newReporter(interval time.Duration, s *soaker, log *logger.L) *reporter {
	if interval <= 0 {
		fault.Panicf("reporter: interval: %v must be positive", interval)
	}
	return &reporter{
		log:      log,
		interval: interval,
		stats:    s.runner.Stats(),
		status:   &s.status,
	}
}

// Run - background process loop
func (r *reporter) Run(args interface{}, shutdown <-chan struct{}) {
	log := r.log

	log.Info("starting…")

	start := time.Now()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case now := <-ticker.C:
			rep := r.report()
			elapsed := now.Sub(start).Seconds()
			log.Infof("operations: %d  rate: %.1f/s  keys: %d  height: %d  restarts: %d",
				rep.Stats.Total,
				float64(rep.Stats.Total-r.previous)/r.interval.Seconds(),
				rep.Keys, rep.Height, rep.Restarts)
			log.Debugf("average rate: %.1f/s", float64(rep.Stats.Total)/elapsed)
			r.previous = rep.Stats.Total
			if rep.Failed {
				log.Critical("soak has failed, see soak log")
			}
		}
	}

	// final summary
	if b, err := json.Marshal(r.report()); nil == err {
		log.Infof("final: %s", b)
	}
	log.Info("shutting down…")
	log.Flush()
}

func (r *reporter) report() report {
	return report{
		Batches:  r.status.batches.Load(),
		Restarts: r.status.restarts.Load(),
		Keys:     r.status.keys.Load(),
		Height:   r.status.height.Load(),
		Failed:   r.status.failed.Load(),
		Stats:    r.stats.Snapshot(),
	}
}
