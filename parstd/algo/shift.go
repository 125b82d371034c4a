// Copyright 2025 The go-parstd Authors. SPDX-License-Identifier: Apache-2.0

package algo

import (
	"github.com/parstd/go-parstd/parstd"
	"github.com/parstd/go-parstd/parstd/scratch"
)

// ShiftRight shifts the elements of s right by n positions. The elements
// originally at s[:len(s)-n] end up at s[n:]; the first n slots are vacated.
// It returns the index of the new logical start of the shifted content: n,
// or len(s) when the whole range was displaced.
//
// n must be non-negative; a negative n panics. n == 0 is a no-op returning
// 0. n >= len(s) vacates nothing and returns len(s) without touching s.
//
// The two passes run unordered on ctx with a fence between them, so the
// overlap between the surviving source range s[:len(s)-n] and the
// destination range s[n:] is never observable by a work item.
func ShiftRight[T any](ctx parstd.Context, s []T, n int) (int, error) {
	if n < 0 {
		panic("algo: ShiftRight called with negative shift count")
	}
	if n == 0 {
		return 0, nil
	}
	if n >= len(s) {
		return len(s), nil
	}

	k := len(s) - n
	tmp, err := scratch.Make[T](k)
	if err != nil {
		return 0, err
	}

	// Phase 1: drain the survivors s[:k] into the scratch buffer.
	if err := ctx.Launch("algo.ShiftRight drain", k, mover(tmp, s, 0, 0)); err != nil {
		return 0, err
	}
	if err := ctx.Fence("algo.ShiftRight drain"); err != nil {
		return 0, err
	}

	// Phase 2: fill s[n:] from the scratch buffer.
	if err := ctx.Launch("algo.ShiftRight fill", k, mover(s, tmp, n, 0)); err != nil {
		return 0, err
	}
	if err := ctx.Fence("algo.ShiftRight fill"); err != nil {
		return 0, err
	}
	return n, nil
}

// ShiftLeft shifts the elements of s left by n positions. The elements
// originally at s[n:] end up at s[:len(s)-n]; the last n slots are vacated.
// It returns the index one past the new logical end of the shifted content:
// len(s)-n, len(s) when n == 0, or 0 when the whole range was displaced.
//
// n must be non-negative; a negative n panics. The staging discipline
// mirrors ShiftRight: drain from the tail, fence, fill toward the head.
func ShiftLeft[T any](ctx parstd.Context, s []T, n int) (int, error) {
	if n < 0 {
		panic("algo: ShiftLeft called with negative shift count")
	}
	if n == 0 {
		return len(s), nil
	}
	if n >= len(s) {
		return 0, nil
	}

	k := len(s) - n
	tmp, err := scratch.Make[T](k)
	if err != nil {
		return 0, err
	}

	if err := ctx.Launch("algo.ShiftLeft drain", k, mover(tmp, s, 0, n)); err != nil {
		return 0, err
	}
	if err := ctx.Fence("algo.ShiftLeft drain"); err != nil {
		return 0, err
	}

	if err := ctx.Launch("algo.ShiftLeft fill", k, mover(s, tmp, 0, 0)); err != nil {
		return 0, err
	}
	if err := ctx.Fence("algo.ShiftLeft fill"); err != nil {
		return 0, err
	}
	return k, nil
}
