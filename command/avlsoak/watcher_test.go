// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlmap/background"
)

const (
	watcherTimeout = 5 * time.Second
)

func TestWatcherReload(t *testing.T) {
	dir := t.TempDir()
	fileName := writeConfiguration(t, dir, 1)

	channels := newWatcherChannels()
	w, err := newConfigWatcher(fileName, 10*time.Millisecond, logger.New(watcherLoggerPrefix), channels)
	require.Nil(t, err, "watcher")

	bg := background.Start(background.Processes{w}, nil)
	defer bg.Stop()

	writeConfiguration(t, dir, 777)

	select {
	case s := <-channels.change:
		assert.Equal(t, int64(777), s.profile.Seed, "reloaded seed")
		assert.Equal(t, 500, s.batchSize, "reloaded batch size")
	case <-time.After(watcherTimeout):
		t.Fatal("timeout waiting for change")
	}

	err = os.Remove(fileName)
	require.Nil(t, err, "remove")

	select {
	case <-channels.remove:
	case <-time.After(watcherTimeout):
		t.Fatal("timeout waiting for remove")
	}
}

func TestWatcherMissingFile(t *testing.T) {
	channels := newWatcherChannels()
	w, err := newConfigWatcher(filepath.Join(t.TempDir(), "absent.conf"), time.Millisecond, logger.New(watcherLoggerPrefix), channels)
	assert.Nil(t, w, "watcher returned")
	assert.True(t, os.IsNotExist(err), "error: %v", err)
}

func TestReplaceEvent(t *testing.T) {
	ch := make(chan settings, 1)

	first := testSettings()
	second := testSettings()
	second.batchSize = 1

	replaceEvent(ch, first)
	replaceEvent(ch, second)
	assert.Equal(t, 1, len(ch), "pending")
	assert.Equal(t, second, <-ch, "latest value kept")

	remove := make(chan struct{}, 1)
	sendEvent(remove, struct{}{})
	sendEvent(remove, struct{}{})
	assert.Equal(t, 1, len(remove), "pending remove")
}

func TestWatcherEvents(t *testing.T) {
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Name: "a", Op: fsnotify.Remove}))
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Name: "a", Op: fsnotify.Rename}))
	assert.False(t, watcherEventFileRemove(fsnotify.Event{Name: "a", Op: fsnotify.Write}))

	assert.True(t, watcherEventFileChange(fsnotify.Event{Name: "a", Op: fsnotify.Write}))
	assert.True(t, watcherEventFileChange(fsnotify.Event{Name: "a", Op: fsnotify.Create}))
	assert.False(t, watcherEventFileChange(fsnotify.Event{Name: "a", Op: fsnotify.Chmod}))
}
