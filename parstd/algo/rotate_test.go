// Copyright 2025 The go-parstd Authors. SPDX-License-Identifier: Apache-2.0

package algo_test

import (
	"slices"
	"testing"

	"github.com/parstd/go-parstd/parstd"
	"github.com/parstd/go-parstd/parstd/algo"
)

func TestRotate(t *testing.T) {
	forEachContext(t, func(t *testing.T, ctx parstd.Context) {
		for _, tc := range []struct {
			length, middle int
		}{
			{1, 0}, {1, 1}, {2, 1}, {8, 3}, {100, 1}, {100, 99}, {1000, 333},
		} {
			s := iotaInts(tc.length)
			orig := slices.Clone(s)

			pos, err := algo.Rotate(ctx, s, tc.middle)
			if err != nil {
				t.Fatalf("Rotate(len=%d, middle=%d) error = %v", tc.length, tc.middle, err)
			}
			if want := tc.length - tc.middle; pos != want {
				t.Errorf("Rotate(len=%d, middle=%d) pos = %d, want %d",
					tc.length, tc.middle, pos, want)
			}

			for i := range s {
				want := orig[(i+tc.middle)%tc.length]
				if s[i] != want {
					t.Fatalf("Rotate(len=%d, middle=%d): s[%d] = %d, want %d",
						tc.length, tc.middle, i, s[i], want)
				}
			}
		}
	})
}

func TestRotateNoop(t *testing.T) {
	forEachContext(t, func(t *testing.T, ctx parstd.Context) {
		s := iotaInts(8)
		want := slices.Clone(s)

		for _, middle := range []int{0, len(s)} {
			pos, err := algo.Rotate(ctx, s, middle)
			if err != nil {
				t.Fatalf("Rotate(middle=%d) error = %v", middle, err)
			}
			if wantPos := len(s) - middle; pos != wantPos {
				t.Errorf("Rotate(middle=%d) pos = %d, want %d", middle, pos, wantPos)
			}
			if !slices.Equal(s, want) {
				t.Errorf("Rotate(middle=%d) mutated range: %v", middle, s)
			}
		}
	})
}

func TestRotateOutOfRangePanics(t *testing.T) {
	for _, middle := range []int{-1, 9} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Rotate(middle=%d) did not panic", middle)
				}
			}()
			_, _ = algo.Rotate(parstd.Synchronous{}, iotaInts(8), middle)
		}()
	}
}

func TestReverse(t *testing.T) {
	forEachContext(t, func(t *testing.T, ctx parstd.Context) {
		for _, length := range []int{0, 1, 2, 7, 8, 1000} {
			s := iotaInts(length)
			orig := slices.Clone(s)

			if err := algo.Reverse(ctx, s); err != nil {
				t.Fatalf("Reverse(len=%d) error = %v", length, err)
			}
			for i := range s {
				if s[i] != orig[length-1-i] {
					t.Fatalf("Reverse(len=%d): s[%d] = %d, want %d",
						length, i, s[i], orig[length-1-i])
				}
			}
		}
	})
}

func TestSwapRanges(t *testing.T) {
	forEachContext(t, func(t *testing.T, ctx parstd.Context) {
		a := iotaInts(10)
		b := make([]int, 6)
		for i := range b {
			b[i] = -(i + 1)
		}
		origA := slices.Clone(a)
		origB := slices.Clone(b)

		n, err := algo.SwapRanges(ctx, a, b)
		if err != nil {
			t.Fatalf("SwapRanges() error = %v", err)
		}
		if n != 6 {
			t.Errorf("count = %d, want 6", n)
		}
		for i := 0; i < n; i++ {
			if a[i] != origB[i] || b[i] != origA[i] {
				t.Fatalf("SwapRanges: index %d not exchanged", i)
			}
		}
		if !slices.Equal(a[n:], origA[n:]) {
			t.Error("SwapRanges touched elements beyond the common length")
		}
	})
}

func TestSwapRangesEmpty(t *testing.T) {
	forEachContext(t, func(t *testing.T, ctx parstd.Context) {
		n, err := algo.SwapRanges(ctx, []int{}, iotaInts(4))
		if err != nil {
			t.Fatalf("SwapRanges() error = %v", err)
		}
		if n != 0 {
			t.Errorf("count = %d, want 0", n)
		}
	})
}
