// Copyright 2025 The go-parstd Authors. SPDX-License-Identifier: Apache-2.0

// Package algo provides parallel range algorithms over a parstd.Context:
// shifts, rotations, moves, copies, fills and swaps on contiguous slices.
//
// Every algorithm follows the same discipline: validate arguments, short
// circuit the trivial cases before acquiring any resource, then run one or
// two unordered parallel passes and fence before returning. Algorithms whose
// source and destination ranges overlap (ShiftRight, ShiftLeft, Rotate)
// stage the surviving elements through a scratch buffer, because a direct
// in-place move under unordered execution would let one work item overwrite
// data another item has not yet read. Draining into a disjoint buffer and
// filling back after a fence removes the ordering dependency entirely.
//
// Elements are moved, not copied: a moved-from slot is reset to the zero
// value of T so pointer-bearing element types do not pin their old
// referents. Callers must nevertheless treat vacated regions as unspecified
// and only rely on the surviving region documented by each function.
//
// The caller owns exclusivity: no other goroutine may read or mutate the
// ranges passed to an algorithm while the call is in flight.
//
// # Example
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	s := []int{0, 1, 2, 3, 4, 5, 6, 7}
//	start, err := algo.ShiftRight(pool, s, 3)
//	// s[start:] is now [0 1 2 3 4], s[:start] is vacated.
package algo
