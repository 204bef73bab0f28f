// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/avlmap/workload"
)

type queryResult struct {
	Operation string `json:"operation"`
	Hit       bool   `json:"hit"`
	Value     string `json:"value,omitempty"`
}

// collector - keeps every violation and optionally the outcome of
// each lookup
type collector struct {
	keepQueries bool
	queries     []queryResult
	violations  []string
}

func (c *collector) Applied(result workload.Result) {
	if !c.keepQueries || result.Operation.Kind.IsMutation() {
		return
	}
	c.queries = append(c.queries, queryResult{
		Operation: result.Operation.String(),
		Hit:       result.Hit,
		Value:     result.Value,
	})
}

func (c *collector) Violation(op workload.Operation, err error) {
	c.violations = append(c.violations, err.Error())
}
