// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

const (
	watcherLoggerPrefix = "file-watcher"

	// editors write in several steps, let the file settle first
	defaultSettleDelay = 2 * time.Second
)

// watcherChannels - outputs of the configuration watcher
type watcherChannels struct {
	change chan settings
	remove chan struct{}
}

func newWatcherChannels() watcherChannels {
	return watcherChannels{
		change: make(chan settings, 1),
		remove: make(chan struct{}, 1),
	}
}

// configWatcher - background process to reload the configuration
// file whenever it is written
type configWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	delay    time.Duration
	channels watcherChannels
}

func newConfigWatcher(targetFile string, delay time.Duration, log *logger.L, channels watcherChannels) (*configWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	if err := watcher.Add(filePath); nil != err {
		watcher.Close()
		return nil, err
	}

	return &configWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		delay:    delay,
		channels: channels,
	}, nil
}

// Run - background process loop
func (w *configWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log

	log.Infof("watching: %s", w.filePath)
	defer w.watcher.Close()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case err := <-w.watcher.Errors:
			log.Errorf("watcher error: %s", err)

		case event := <-w.watcher.Events:
			log.Debugf("file event: %v", event)

			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				log.Debugf("event: %q not for: %q, discard", event.Name, w.filePath)
				continue loop
			}

			if watcherEventFileRemove(event) {
				log.Errorf("file: %s removed, stop watching", w.filePath)
				sendEvent(w.channels.remove, struct{}{})
				break loop
			}

			if !watcherEventFileChange(event) {
				continue loop
			}

			select {
			case <-shutdown:
				break loop
			case <-time.After(w.delay):
			}

			options, err := getConfiguration(w.filePath)
			if nil != err {
				log.Errorf("failed to read configuration from: %s  error: %s", w.filePath, err)
				continue loop
			}
			log.Info("sending configuration change")
			replaceEvent(w.channels.change, options.settings())
		}
	}

	log.Info("shutting down…")
	log.Flush()
}

// send unless an event is already pending
func sendEvent(ch chan struct{}, item struct{}) {
	select {
	case ch <- item:
	default:
	}
}

// send, discarding any older pending value
func replaceEvent(ch chan settings, item settings) {
	for {
		select {
		case ch <- item:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
