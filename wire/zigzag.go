// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

// EncodeZigZag maps a signed integer onto the unsigned integers so that
// values of small magnitude stay small: 0, -1, 1, -2, 2 become 0, 1, 2, 3, 4.
//
// For any v that fits in a narrower signed width, the result equals the
// narrower zigzag mapping, so 64 bits serve every width.
func EncodeZigZag(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}

// DecodeZigZag is the inverse of EncodeZigZag.
func DecodeZigZag(x uint64) int64 {
	return int64(x>>1) ^ -int64(x&1)
}

// EncodeZigZag32 is EncodeZigZag for 32-bit integers.
func EncodeZigZag32(v int32) uint32 {
	return uint32(v<<1) ^ uint32(v>>31)
}

// DecodeZigZag32 is the inverse of EncodeZigZag32.
func DecodeZigZag32(x uint32) int32 {
	return int32(x>>1) ^ -int32(x&1)
}
