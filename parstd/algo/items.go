// Copyright 2025 The go-parstd Authors. SPDX-License-Identifier: Apache-2.0

package algo

// Work-item constructors shared by every phase of every algorithm. Each item
// touches exactly one source slot and one destination slot, so items of a
// single launch never conflict with each other.

// mover returns a work item that relocates src[srcOff+i] into dst[dstOff+i]
// and resets the vacated source slot to the zero value.
func mover[T any](dst, src []T, dstOff, srcOff int) func(i int) {
	var zero T
	return func(i int) {
		dst[dstOff+i] = src[srcOff+i]
		src[srcOff+i] = zero
	}
}

// copier returns a work item that copies src[srcOff+i] into dst[dstOff+i],
// leaving the source intact.
func copier[T any](dst, src []T, dstOff, srcOff int) func(i int) {
	return func(i int) {
		dst[dstOff+i] = src[srcOff+i]
	}
}
