// Copyright 2025 The go-parstd Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/parstd/go-parstd/parstd"
	"github.com/parstd/go-parstd/parstd/algo"
	"github.com/parstd/go-parstd/parstd/scratch"
	"github.com/parstd/go-parstd/parstd/taskgroup"
	"github.com/parstd/go-parstd/parstd/workerpool"
)

// benchmark is one timed scenario over a freshly initialized range.
type benchmark interface {
	name() string
	// run mutates s through ctx and returns an error from the backend.
	run(ctx parstd.Context, s []int64) error
	// check compares the mutated range against orig and reports the first
	// violated invariant.
	check(s, orig []int64) error
}

// newContext builds the requested backend. The returned cleanup is non-nil
// only for backends that own resources.
func newContext(backend string, workers int) (parstd.Context, func(), error) {
	switch backend {
	case "pool":
		pool := workerpool.New(workers)
		return pool, pool.Close, nil
	case "taskgroup":
		return taskgroup.New(context.Background(), workers), nil, nil
	case "sync":
		return parstd.Synchronous{}, nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q (want pool, taskgroup or sync)", backend)
	}
}

func runBench(b benchmark) error {
	ctx, cleanup, err := newContext(flagBackend, flagWorkers)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	orig := make([]int64, flagLen)
	for i := range orig {
		orig[i] = int64(i + 1)
	}
	s := make([]int64, flagLen)

	// Correctness pass before timing.
	copy(s, orig)
	if err := b.run(ctx, s); err != nil {
		return fmt.Errorf("%s: %w", b.name(), err)
	}
	if err := b.check(s, orig); err != nil {
		return fmt.Errorf("%s: validation failed: %w", b.name(), err)
	}

	var total time.Duration
	for i := 0; i < flagIters; i++ {
		copy(s, orig)
		start := time.Now()
		if err := b.run(ctx, s); err != nil {
			return fmt.Errorf("%s: iteration %d: %w", b.name(), i, err)
		}
		total += time.Since(start)
	}

	per := total / time.Duration(max(flagIters, 1))
	logger.Info("benchmark complete",
		zap.String("benchmark", b.name()),
		zap.String("backend", flagBackend),
		zap.Int("workers", flagWorkers),
		zap.Int("len", flagLen),
		zap.Int("iters", flagIters),
		zap.Duration("per_iter", per),
		zap.Float64("melems_per_sec", float64(flagLen)/per.Seconds()/1e6),
	)
	return nil
}

type benchShift struct{ n int }

func (benchShift) name() string { return "shift" }

func (b benchShift) run(ctx parstd.Context, s []int64) error {
	_, err := algo.ShiftRight(ctx, s, b.n)
	return err
}

func (b benchShift) check(s, orig []int64) error {
	if b.n >= len(s) {
		return nil
	}
	for i := 0; i < len(s)-b.n; i++ {
		if s[b.n+i] != orig[i] {
			return fmt.Errorf("s[%d] = %d, want %d", b.n+i, s[b.n+i], orig[i])
		}
	}
	return nil
}

type benchRotate struct{ middle int }

func (benchRotate) name() string { return "rotate" }

func (b benchRotate) run(ctx parstd.Context, s []int64) error {
	if b.middle > len(s) {
		return fmt.Errorf("middle %d out of range [0, %d]", b.middle, len(s))
	}
	_, err := algo.Rotate(ctx, s, b.middle)
	return err
}

func (b benchRotate) check(s, orig []int64) error {
	if len(s) == 0 {
		return nil
	}
	for i := range s {
		if want := orig[(i+b.middle)%len(s)]; s[i] != want {
			return fmt.Errorf("s[%d] = %d, want %d", i, s[i], want)
		}
	}
	return nil
}

type benchMove struct {
	// buf recycles the staging destination across iterations.
	buf *scratch.Pool[int64]
}

func (benchMove) name() string { return "move" }

func (b benchMove) run(ctx parstd.Context, s []int64) error {
	dst, err := b.buf.Get(len(s))
	if err != nil {
		return err
	}
	defer b.buf.Put(dst)

	if _, err := algo.Move(ctx, dst, s); err != nil {
		return err
	}
	// Move back so check sees the original content in s.
	_, err = algo.Move(ctx, s, dst)
	return err
}

func (benchMove) check(s, orig []int64) error {
	for i := range s {
		if s[i] != orig[i] {
			return fmt.Errorf("s[%d] = %d, want %d after round trip", i, s[i], orig[i])
		}
	}
	return nil
}
