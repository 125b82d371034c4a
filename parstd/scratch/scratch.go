// Copyright 2025 The go-parstd Authors. SPDX-License-Identifier: Apache-2.0

// Package scratch manages the temporary buffers the range algorithms stage
// data through. A scratch buffer is owned by exactly one algorithm call: it
// is acquired after the trivial cases have been ruled out, never aliases the
// caller's range, and is released when the call returns.
//
// Allocation happens before any element is moved, so a failed acquisition
// leaves the caller's data untouched.
package scratch

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

var (
	// ErrNegativeCount is returned when a negative element count is
	// requested.
	ErrNegativeCount = errors.New("scratch: negative element count")

	// ErrBudgetExceeded is returned when the requested buffer would exceed
	// the byte budget configured with SetBudget.
	ErrBudgetExceeded = errors.New("scratch: buffer exceeds byte budget")
)

// budget is the maximum size in bytes of a single scratch buffer.
// Zero means unlimited.
var budget atomic.Int64

// SetBudget caps the size in bytes of any single scratch buffer. Zero or
// negative removes the cap. It returns the previous budget.
//
// The budget is a safety valve for callers that shift very large ranges and
// would rather see an error than an allocation of comparable size; it is
// not a pool-wide accounting scheme.
func SetBudget(bytes int64) int64 {
	if bytes < 0 {
		bytes = 0
	}
	return budget.Swap(bytes)
}

// Budget reports the current byte budget. Zero means unlimited.
func Budget() int64 { return budget.Load() }

// Make allocates a zeroed scratch buffer of exactly n elements.
func Make[T any](n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	if err := checkBudget[T](n); err != nil {
		return nil, err
	}
	return make([]T, n), nil
}

func checkBudget[T any](n int) error {
	limit := budget.Load()
	if limit <= 0 {
		return nil
	}
	var zero T
	size := int64(unsafe.Sizeof(zero))
	if size > 0 && int64(n) > limit/size {
		return fmt.Errorf("%w: %d elements of %d bytes, budget %d bytes",
			ErrBudgetExceeded, n, size, limit)
	}
	return nil
}

// Pool recycles scratch buffers of one element type across calls. It is
// safe for concurrent use. Buffers handed out by Get are zeroed, so a
// recycled buffer never leaks a previous call's contents.
//
// The zero value is ready to use.
type Pool[T any] struct {
	p sync.Pool
}

// Get returns a zeroed buffer of length n, reusing a previously Put buffer
// when one with sufficient capacity is available. The same budget rules as
// Make apply.
func (p *Pool[T]) Get(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	if err := checkBudget[T](n); err != nil {
		return nil, err
	}
	if v := p.p.Get(); v != nil {
		buf := v.([]T)
		if cap(buf) >= n {
			buf = buf[:n]
			clear(buf)
			return buf, nil
		}
	}
	return make([]T, n), nil
}

// Put returns a buffer to the pool for reuse. The caller must not touch buf
// afterwards.
func (p *Pool[T]) Put(buf []T) {
	if cap(buf) == 0 {
		return
	}
	p.p.Put(buf[:cap(buf)])
}
