// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

// AppendFixed32 appends v to b as a little-endian uint32.
func AppendFixed32(b []byte, v uint32) []byte {
	return append(b,
		byte(v>>0),
		byte(v>>8),
		byte(v>>16),
		byte(v>>24))
}

// AppendFixed64 appends v to b as a little-endian uint64.
func AppendFixed64(b []byte, v uint64) []byte {
	return append(b,
		byte(v>>0),
		byte(v>>8),
		byte(v>>16),
		byte(v>>24),
		byte(v>>32),
		byte(v>>40),
		byte(v>>48),
		byte(v>>56))
}

// PrependFixed32 writes v as a little-endian uint32 in front of rb.
func PrependFixed32(rb *ReverseBuffer, v uint32) {
	var scratch [4]byte
	rb.Prepend(AppendFixed32(scratch[:0], v))
}

// PrependFixed64 writes v as a little-endian uint64 in front of rb.
func PrependFixed64(rb *ReverseBuffer, v uint64) {
	var scratch [8]byte
	rb.Prepend(AppendFixed64(scratch[:0], v))
}

func decodeFixed32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func decodeFixed64(b []byte) uint64 {
	return uint64(decodeFixed32(b)) | uint64(decodeFixed32(b[4:]))<<32
}
