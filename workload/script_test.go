// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/workload"
)

func TestParseScript(t *testing.T) {
	script := `
# rotation example
insert 10 ten
insert 20 twenty
insert 30 thirty and more

emplace 20 ignored
   erase 10
find 20
contains 99
`
	operations, err := workload.ParseScript(strings.NewReader(script))
	require.Nil(t, err, "parse error")

	expected := []workload.Operation{
		{Kind: workload.Insert, Key: 10, Value: "ten"},
		{Kind: workload.Insert, Key: 20, Value: "twenty"},
		{Kind: workload.Insert, Key: 30, Value: "thirty and more"},
		{Kind: workload.Emplace, Key: 20, Value: "ignored"},
		{Kind: workload.Erase, Key: 10},
		{Kind: workload.Find, Key: 20},
		{Kind: workload.Contains, Key: 99},
	}
	assert.Equal(t, expected, operations, "operations")
}

func TestParseScriptValueSpacing(t *testing.T) {
	script := "insert 1 a   b\tc\n" +
		"\templace\t2\t\tx \t y\n" +
		"insert   3    leading  \n"

	operations, err := workload.ParseScript(strings.NewReader(script))
	require.Nil(t, err, "parse error")

	expected := []workload.Operation{
		{Kind: workload.Insert, Key: 1, Value: "a   b\tc"},
		{Kind: workload.Emplace, Key: 2, Value: "x \t y"},
		{Kind: workload.Insert, Key: 3, Value: "leading"},
	}
	assert.Equal(t, expected, operations, "values keep inner spacing")
}

func TestParseScriptEmpty(t *testing.T) {
	operations, err := workload.ParseScript(strings.NewReader("\n# nothing\n\n"))
	require.Nil(t, err, "parse error")
	assert.Equal(t, 0, len(operations), "operations")
}

func TestParseScriptErrors(t *testing.T) {
	bad := []struct {
		script string
		line   string
	}{
		{"insert 1 one\nupsert 2 two\n", "line 2"},
		{"insert\n", "line 1"},
		{"insert 1\n", "line 1"},
		{"# comment\nfind x\n", "line 2"},
		{"erase 1 extra\n", "line 1"},
		{"contains 1.5\n", "line 1"},
	}

	for i, b := range bad {
		operations, err := workload.ParseScript(strings.NewReader(b.script))
		assert.Nil(t, operations, "%d: operations returned", i)
		require.NotNil(t, err, "%d: no error for: %q", i, b.script)
		assert.True(t, fault.IsErrInvalid(err), "%d: error class: %v", i, err)
		assert.Contains(t, err.Error(), b.line, "%d: error: %v", i, err)
	}
}
