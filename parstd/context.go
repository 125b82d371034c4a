// Copyright 2025 The go-parstd Authors. SPDX-License-Identifier: Apache-2.0

package parstd

// Context is a parallel execution resource: a work-submission capability
// plus a completion-barrier capability.
//
// Implementations must run the n items of a single Launch independently and
// without any ordering guarantee among them. Items must not assume they run
// on the calling goroutine, and must not communicate with other items of the
// same launch.
type Context interface {
	// Launch submits n independent work items covering the index range
	// [0, n). It is an asynchronous request: it may return before any item
	// has run. n <= 0 is a legal no-op. The label is diagnostic only and has
	// no behavioral effect.
	//
	// A non-nil error means the submission itself failed (for example the
	// backend has been closed); in that case no item has been queued.
	Launch(label string, n int, item func(i int)) error

	// Fence blocks until all work launched earlier on this context has
	// completed, and returns the first failure observed while running it.
	// A failure is reported by exactly one Fence call.
	Fence(label string) error
}

// Synchronous is a Context that runs every work item inline, in index
// order, on the calling goroutine. Launch does all the work; Fence is a
// no-op. It has no failure modes of its own: a panicking work item simply
// panics on the caller.
//
// Synchronous exists so the algorithms in parstd/algo can be validated
// without a parallel backend.
type Synchronous struct{}

// Launch runs all n items immediately on the calling goroutine.
func (Synchronous) Launch(_ string, n int, item func(i int)) error {
	for i := 0; i < n; i++ {
		item(i)
	}
	return nil
}

// Fence is a no-op: all work completed during Launch.
func (Synchronous) Fence(_ string) error { return nil }
