// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assert checks caller contracts that are programmer errors rather
// than recoverable conditions.
//
// Checks are compiled in only when building with the rngdebug tag:
//
//	go test -tags rngdebug ./...
//
// Without the tag every function in this package is a no-op and the
// behavior of a violated contract is unspecified.
package assert

import "fmt"

// That panics with msg when cond is false and checks are enabled.
func That(cond bool, msg string) {
	if Enabled && !cond {
		panic("contract violation: " + msg)
	}
}

// Thatf is like That but formats its message.
// The arguments are only formatted when the check fails.
func Thatf(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic("contract violation: " + fmt.Sprintf(format, args...))
	}
}
