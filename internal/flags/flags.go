// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flags provides a set of flags controlled by build tags.
package flags

// RecursionLimit is the number of nested messages a single decode may
// descend into before failing with a recursion-limit error.
const RecursionLimit = 100

// NoRecursionLimit specifies whether decoding ignores RecursionLimit
// entirely, trusting the input not to nest arbitrarily deep.
//
// This is disabled by default unless built with the "bilrost_norecursionlimit" tag.
//
// WARNING: Without the limit, hostile input can exhaust the goroutine stack.
const NoRecursionLimit = noRecursionLimit
