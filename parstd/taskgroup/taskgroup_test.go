// Copyright 2025 The go-parstd Authors. SPDX-License-Identifier: Apache-2.0

package taskgroup

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestLaunchFence(t *testing.T) {
	g := New(context.Background(), 4)

	n := 100
	results := make([]int, n)

	if err := g.Launch("double", n, func(i int) { results[i] = i * 2 }); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	if err := g.Fence("double"); err != nil {
		t.Fatalf("Fence() error = %v", err)
	}

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestReuseAcrossFences(t *testing.T) {
	g := New(context.Background(), 2)

	var total atomic.Int64
	for round := 0; round < 3; round++ {
		if err := g.Launch("round", 10, func(int) { total.Add(1) }); err != nil {
			t.Fatalf("Launch() error = %v", err)
		}
		if err := g.Fence("round"); err != nil {
			t.Fatalf("Fence() error = %v", err)
		}
	}

	if got := total.Load(); got != 30 {
		t.Errorf("total = %d, want 30", got)
	}
}

func TestFenceReportsPanic(t *testing.T) {
	g := New(context.Background(), 4)

	if err := g.Launch("boom", 8, func(i int) {
		if i == 3 {
			panic("item 3 failed")
		}
	}); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}

	if err := g.Fence("boom"); err == nil {
		t.Fatal("Fence() after panicking launch returned nil")
	}
}

func TestCancelledParent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := New(ctx, 2)
	err := g.Launch("late", 10, func(int) {})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Launch() on cancelled parent error = %v, want context.Canceled", err)
	}
}

func TestLaunchZero(t *testing.T) {
	g := New(context.Background(), 2)

	if err := g.Launch("empty", 0, func(int) { t.Error("item ran") }); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	if err := g.Fence("empty"); err != nil {
		t.Fatalf("Fence() error = %v", err)
	}
}
