// Copyright 2025 The go-parstd Authors. SPDX-License-Identifier: Apache-2.0

package algo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/parstd/go-parstd/parstd"
	"github.com/parstd/go-parstd/parstd/taskgroup"
	"github.com/parstd/go-parstd/parstd/workerpool"
)

// forEachContext runs f once per Context implementation, so every algorithm
// is validated against the inline stand-in and both parallel backends.
func forEachContext(t *testing.T, f func(t *testing.T, ctx parstd.Context)) {
	t.Helper()

	t.Run("synchronous", func(t *testing.T) {
		f(t, parstd.Synchronous{})
	})

	t.Run("workerpool", func(t *testing.T) {
		pool := workerpool.New(4)
		defer pool.Close()
		f(t, pool)
	})

	t.Run("taskgroup", func(t *testing.T) {
		f(t, taskgroup.New(context.Background(), 4))
	})
}

// iota slice helpers used across the algorithm tests: distinct values make
// mis-staging visible, a single repeated value would not.
func iotaInts(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i + 1
	}
	return s
}

// failingContext fails every submission with a fixed error.
type failingContext struct{ err error }

func (f failingContext) Launch(string, int, func(int)) error { return f.err }
func (f failingContext) Fence(string) error                  { return f.err }

var errBackend = errors.New("backend unavailable")
