// Copyright 2025 The go-parstd Authors. SPDX-License-Identifier: Apache-2.0

package parstd

import "errors"

var (
	// ErrContextClosed is returned by Launch when the execution backend has
	// been shut down and can no longer accept work.
	ErrContextClosed = errors.New("parstd: execution context closed")
)
