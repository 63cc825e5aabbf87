// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors implements functions to manipulate errors.
package errors

import (
	"fmt"
)

// Prefix is prepended to every error string produced by this module.
const Prefix = "bilrost: "

// New formats a string according to the format specifier and arguments and
// returns an error that has a "bilrost" prefix.
func New(f string, x ...interface{}) error {
	for i := 0; i < len(x); i++ {
		if e, ok := x[i].(*prefixError); ok {
			x[i] = e.s // avoid "bilrost: " prefix when chaining
		}
	}
	return &prefixError{s: fmt.Sprintf(f, x...)}
}

type prefixError struct{ s string }

func (e *prefixError) Error() string { return Prefix + e.s }

// Panicf panics with a prefixed error. It is reserved for violations of the
// contract between generated field glue and the runtime, never for bad input.
func Panicf(f string, x ...interface{}) {
	panic(New(f, x...))
}
