// Copyright 2025 The go-parstd Authors. SPDX-License-Identifier: Apache-2.0

package algo

import "github.com/parstd/go-parstd/parstd"

// Move relocates the first min(len(dst), len(src)) elements of src into dst
// and returns that count. Moved-from slots of src are reset to the zero
// value. dst and src must not overlap: for an overlapping shift within one
// slice use ShiftRight or ShiftLeft, which stage through a scratch buffer.
func Move[T any](ctx parstd.Context, dst, src []T) (int, error) {
	k := min(len(dst), len(src))
	if k == 0 {
		return 0, nil
	}
	if err := ctx.Launch("algo.Move", k, mover(dst, src, 0, 0)); err != nil {
		return 0, err
	}
	if err := ctx.Fence("algo.Move"); err != nil {
		return 0, err
	}
	return k, nil
}

// Copy copies the first min(len(dst), len(src)) elements of src into dst
// and returns that count. src is left intact. dst and src must not overlap.
func Copy[T any](ctx parstd.Context, dst, src []T) (int, error) {
	k := min(len(dst), len(src))
	if k == 0 {
		return 0, nil
	}
	if err := ctx.Launch("algo.Copy", k, copier(dst, src, 0, 0)); err != nil {
		return 0, err
	}
	if err := ctx.Fence("algo.Copy"); err != nil {
		return 0, err
	}
	return k, nil
}

// Fill sets every element of s to v.
func Fill[T any](ctx parstd.Context, s []T, v T) error {
	if len(s) == 0 {
		return nil
	}
	if err := ctx.Launch("algo.Fill", len(s), func(i int) { s[i] = v }); err != nil {
		return err
	}
	return ctx.Fence("algo.Fill")
}
