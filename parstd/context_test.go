// Copyright 2025 The go-parstd Authors. SPDX-License-Identifier: Apache-2.0

package parstd

import "testing"

func TestSynchronousLaunch(t *testing.T) {
	var ctx Synchronous

	n := 64
	results := make([]int, n)

	if err := ctx.Launch("double", n, func(i int) { results[i] = i * 2 }); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	if err := ctx.Fence("double"); err != nil {
		t.Fatalf("Fence() error = %v", err)
	}

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestSynchronousLaunchEmpty(t *testing.T) {
	var ctx Synchronous

	ran := false
	if err := ctx.Launch("empty", 0, func(int) { ran = true }); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	if err := ctx.Launch("negative", -5, func(int) { ran = true }); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	if ran {
		t.Error("work item ran for a non-positive count")
	}
}

func TestSynchronousRunsInOrder(t *testing.T) {
	var ctx Synchronous

	var order []int
	if err := ctx.Launch("order", 8, func(i int) { order = append(order, i) }); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	for i, got := range order {
		if got != i {
			t.Fatalf("order[%d] = %d, want %d", i, got, i)
		}
	}
}
