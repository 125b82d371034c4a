// Copyright 2025 The go-parstd Authors. SPDX-License-Identifier: Apache-2.0

package algo

import (
	"github.com/parstd/go-parstd/parstd"
	"github.com/parstd/go-parstd/parstd/scratch"
)

// Rotate left-rotates s so that the element at s[middle] becomes the first
// element and s[middle-1] becomes the last. Unlike the shifts no element is
// vacated. It returns the new position of the element originally first,
// len(s)-middle.
//
// middle must lie in [0, len(s)]; anything else panics. middle == 0 and
// middle == len(s) are no-ops.
//
// Every slot is both a source and a destination, so the whole range is
// staged: drain everything into scratch, fence, then fill each slot from
// its rotated counterpart.
func Rotate[T any](ctx parstd.Context, s []T, middle int) (int, error) {
	if middle < 0 || middle > len(s) {
		panic("algo: Rotate called with middle out of range")
	}
	k := len(s)
	if middle == 0 || middle == k {
		return k - middle, nil
	}

	tmp, err := scratch.Make[T](k)
	if err != nil {
		return 0, err
	}

	if err := ctx.Launch("algo.Rotate drain", k, mover(tmp, s, 0, 0)); err != nil {
		return 0, err
	}
	if err := ctx.Fence("algo.Rotate drain"); err != nil {
		return 0, err
	}

	shift := k - middle
	var zero T
	if err := ctx.Launch("algo.Rotate fill", k, func(i int) {
		j := i + shift
		if j >= k {
			j -= k
		}
		s[j] = tmp[i]
		tmp[i] = zero
	}); err != nil {
		return 0, err
	}
	if err := ctx.Fence("algo.Rotate fill"); err != nil {
		return 0, err
	}
	return shift, nil
}

// Reverse reverses s in place. Work item i swaps s[i] with s[len(s)-1-i];
// the item footprints are disjoint, so a single unordered pass with one
// fence suffices and no scratch buffer is needed.
func Reverse[T any](ctx parstd.Context, s []T) error {
	k := len(s) / 2
	if k == 0 {
		return nil
	}
	last := len(s) - 1
	if err := ctx.Launch("algo.Reverse", k, func(i int) {
		s[i], s[last-i] = s[last-i], s[i]
	}); err != nil {
		return err
	}
	return ctx.Fence("algo.Reverse")
}

// SwapRanges exchanges the first min(len(a), len(b)) elements of a and b
// and returns that count. The ranges must not overlap; with overlapping
// ranges the per-item footprints are no longer disjoint and the result is
// undefined.
func SwapRanges[T any](ctx parstd.Context, a, b []T) (int, error) {
	k := min(len(a), len(b))
	if k == 0 {
		return 0, nil
	}
	if err := ctx.Launch("algo.SwapRanges", k, func(i int) {
		a[i], b[i] = b[i], a[i]
	}); err != nil {
		return 0, err
	}
	if err := ctx.Fence("algo.SwapRanges"); err != nil {
		return 0, err
	}
	return k, nil
}
