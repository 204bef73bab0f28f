// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avlmap/workload"
)

const (
	soakLoggerPrefix = "soak"
)

// status - values published by the soak loop for the reporter
type status struct {
	batches  atomic.Uint64
	restarts atomic.Uint64
	keys     atomic.Int64
	height   atomic.Int64
	failed   atomic.Bool
}

// soaker - background process applying random batches to a tree
// and verifying it after every change
type soaker struct {
	log       *logger.L
	runner    *workload.Runner
	generator *workload.Generator
	current   settings
	update    <-chan settings
	status    status
}

func newSoaker(s settings, update <-chan settings, log *logger.L) (*soaker, error) {
	generator, err := workload.NewGenerator(s.profile)
	if nil != err {
		return nil, err
	}
	runner := workload.NewRunner(nil, log, limiterFor(s.rate))
	runner.SetCheckInterval(s.checkInterval)

	return &soaker{
		log:       log,
		runner:    runner,
		generator: generator,
		current:   s,
		update:    update,
	}, nil
}

// nil means unlimited
func limiterFor(opsPerSecond float64) *rate.Limiter {
	if opsPerSecond <= 0 {
		return nil
	}
	burst := int(opsPerSecond)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(opsPerSecond), burst)
}

// Run - background process loop
func (s *soaker) Run(args interface{}, shutdown <-chan struct{}) {
	log := s.log

	log.Info("starting…")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-shutdown
		cancel()
	}()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case next := <-s.update:
			s.apply(next)
		default:
		}

		if err := s.batch(ctx); nil != err {
			if errors.Is(err, context.Canceled) {
				break loop
			}
			s.status.failed.Store(true)
			log.Criticalf("soak stopped: %s", err)
			log.Infof("tree at failure: count: %d  height: %d", s.runner.Tree().Count(), s.runner.Tree().Height())
			// keep the failed tree for inspection, just wait to be stopped
			<-shutdown
			break loop
		}
	}

	log.Info("shutting down…")
	log.Flush()
}

// run one batch and restart the tree if it became too large
func (s *soaker) batch(ctx context.Context) error {
	operations := s.generator.Batch(s.current.batchSize)
	if _, err := s.runner.Run(ctx, operations); nil != err {
		return err
	}
	if err := s.runner.VerifyAll(); nil != err {
		return err
	}

	tree := s.runner.Tree()
	s.status.batches.Add(1)
	s.status.keys.Store(int64(tree.Count()))
	s.status.height.Store(int64(tree.Height()))

	s.log.Debugf("batch: %d  count: %d  height: %d  fingerprint: %s",
		s.status.batches.Load(), tree.Count(), tree.Height(), workload.Fingerprint(tree))

	if tree.Count() > s.current.maximumKeys {
		s.log.Infof("restart: count: %d exceeds: %d", tree.Count(), s.current.maximumKeys)
		s.runner.Reset()
		s.status.restarts.Add(1)
		s.status.keys.Store(0)
		s.status.height.Store(0)
	}
	return nil
}

// switch to new settings, the tree contents are retained
func (s *soaker) apply(next settings) {
	generator, err := workload.NewGenerator(next.profile)
	if nil != err {
		s.log.Errorf("rejected profile: %+v  error: %s", next.profile, err)
		return
	}
	s.generator = generator
	s.runner.SetLimiter(limiterFor(next.rate))
	s.runner.SetCheckInterval(next.checkInterval)
	s.current = next
	s.log.Infof("settings updated: profile: %+v  rate: %g  batch size: %d", next.profile, next.rate, next.batchSize)
}
