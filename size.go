// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bilrost

import "github.com/golang/bilrost/wire"

// Size returns the size in bytes of the encoding of m.
func Size(m Message) int {
	return m.RawLen()
}

// SizeLengthDelimited returns the size in bytes of the length-delimited
// encoding of m.
func SizeLengthDelimited(m Message) int {
	n := m.RawLen()
	return wire.SizeVarint(uint64(n)) + n
}
