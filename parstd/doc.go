// Copyright 2025 The go-parstd Authors. SPDX-License-Identifier: Apache-2.0

// Package parstd defines the execution-context capability used by the
// parallel range algorithms in parstd/algo.
//
// A Context is anything that can run independent work items over an index
// range and later guarantee their completion: a persistent worker pool
// (parstd/workerpool), a bounded task group (parstd/taskgroup), or the
// Synchronous stand-in in this package, which runs everything inline and is
// the reference backend for tests.
//
// The two primitives are deliberately narrow:
//
//	ctx.Launch("drain", k, func(i int) { tmp[i] = s[i] })
//	err := ctx.Fence("drain")
//
// Launch is an asynchronous submission; items may run in any order and on
// any goroutine. Fence is the only serialization point: it blocks until all
// previously launched work on the context has completed and reports any
// failure that occurred while running it.
package parstd
