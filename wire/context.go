// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import "github.com/golang/bilrost/internal/flags"

// DecodeContext carries state through one decode call stack.
// It is passed by value; the zero value starts at the outermost message.
type DecodeContext struct {
	depth int
}

// EnterRecursion returns the context for decoding a nested message.
func (ctx DecodeContext) EnterRecursion() DecodeContext {
	return DecodeContext{depth: ctx.depth + 1}
}

// LimitReached returns ErrRecursionLimitReached if no further nesting is
// allowed at this depth.
func (ctx DecodeContext) LimitReached() error {
	if !flags.NoRecursionLimit && ctx.depth >= flags.RecursionLimit {
		return NewError(ErrRecursionLimitReached)
	}
	return nil
}

// RestrictedContext is the context for distinguished decoding.
//
// RestrictTo is the worst verdict the caller tolerates. Any field whose
// verdict falls below it fails the decode immediately, which pins the error
// to the offending field. The zero value tolerates everything and only reports
// the verdict.
type RestrictedContext struct {
	DecodeContext
	RestrictTo Canonicity
}

// EnterRecursion returns the context for decoding a nested message.
func (ctx RestrictedContext) EnterRecursion() RestrictedContext {
	return RestrictedContext{ctx.DecodeContext.EnterRecursion(), ctx.RestrictTo}
}

// Check returns c, along with an error if c is worse than ctx permits.
func (ctx RestrictedContext) Check(c Canonicity) (Canonicity, error) {
	if c < ctx.RestrictTo {
		return c, c.Err()
	}
	return c, nil
}
