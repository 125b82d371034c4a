// Copyright 2025 The go-parstd Authors. SPDX-License-Identifier: Apache-2.0

// Package taskgroup provides a parstd.Context backed by a bounded
// errgroup.Group. Unlike the persistent pool in parstd/workerpool it spawns
// goroutines per launch, but it plugs into a context.Context: cancellation
// of the parent context stops work between items and is reported by Fence.
//
// A Group is cheap enough to create per call site:
//
//	g := taskgroup.New(ctx, runtime.GOMAXPROCS(0))
//	start, err := algo.ShiftRight(g, data, 3)
package taskgroup

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/parstd/go-parstd/parstd"
)

// Group implements parstd.Context over an errgroup.Group with a concurrency
// limit. A Group is reusable across Launch/Fence rounds, but its error is
// sticky: once a fence has reported a failure, every later fence reports it
// again. The zero value is not usable; use New.
type Group struct {
	parent context.Context
	group  *errgroup.Group
	limit  int
}

var _ parstd.Context = (*Group)(nil)

// New creates a Group whose launches run at most limit goroutines at a
// time. If limit <= 0, GOMAXPROCS is used. Work observes cancellation of
// ctx between items; the cause is reported by Fence.
func New(ctx context.Context, limit int) *Group {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g := &errgroup.Group{}
	g.SetLimit(limit)
	return &Group{parent: ctx, group: g, limit: limit}
}

// Launch submits n independent work items covering [0, n), coalesced into
// contiguous chunks of at most limit. Item panics are captured and reported
// by Fence. n <= 0 is a no-op.
func (g *Group) Launch(label string, n int, item func(i int)) error {
	if n <= 0 {
		return nil
	}
	if err := g.parent.Err(); err != nil {
		return fmt.Errorf("taskgroup: launch %q: %w", label, err)
	}

	chunks := min(g.limit, n)
	chunk := (n + chunks - 1) / chunks

	for start := 0; start < n; start += chunk {
		start := start
		end := min(start+chunk, n)
		g.group.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("taskgroup: work item of launch %q panicked: %v", label, r)
				}
			}()
			for i := start; i < end; i++ {
				if cerr := g.parent.Err(); cerr != nil {
					return cerr
				}
				item(i)
			}
			return nil
		})
	}
	return nil
}

// Fence blocks until all launched work has finished and returns the first
// failure observed over the Group's lifetime: a work-item panic or the
// parent context's cancellation cause.
func (g *Group) Fence(label string) error {
	if err := g.group.Wait(); err != nil {
		return fmt.Errorf("taskgroup: fence %q: %w", label, err)
	}
	return nil
}
