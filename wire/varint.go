// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

// MaxVarintLen is the maximum length of an encoded varint.
const MaxVarintLen = 9

// varintLimit[n] is the smallest value whose encoding needs n+1 bytes.
var varintLimit = [MaxVarintLen]uint64{
	0,
	0x80,
	0x4080,
	0x204080,
	0x10204080,
	0x810204080,
	0x40810204080,
	0x2040810204080,
	0x102040810204080,
}

// AppendVarint appends v to b as a varint.
//
// Each byte but the ninth carries seven bits of payload and a continuation
// bit. After emitting a continued byte the remaining value is reduced by one,
// which is what makes the encoding bijective.
func AppendVarint(b []byte, v uint64) []byte {
	for i := 0; i < MaxVarintLen-1; i++ {
		if v < 0x80 {
			return append(b, byte(v))
		}
		b = append(b, byte(v&0x7f)|0x80)
		v = (v >> 7) - 1
	}
	return append(b, byte(v))
}

// PrependVarint writes v as a varint in front of the contents of rb.
func PrependVarint(rb *ReverseBuffer, v uint64) {
	var scratch [MaxVarintLen]byte
	rb.Prepend(AppendVarint(scratch[:0], v))
}

// SizeVarint returns the encoded size of v, between 1 and MaxVarintLen.
func SizeVarint(v uint64) int {
	n := 1
	for n < MaxVarintLen && v >= varintLimit[n] {
		n++
	}
	return n
}

// ConsumeVarint parses b as a varint, reporting its value and length.
// A varint cut short is ErrTruncated; a ninth byte that carries the value
// past 64 bits is ErrInvalidVarint.
func ConsumeVarint(b []byte) (v uint64, n int, err error) {
	for i := 0; i < MaxVarintLen-1; i++ {
		if i >= len(b) {
			return 0, 0, NewError(ErrTruncated)
		}
		c := uint64(b[i])
		v += c << (7 * uint(i))
		if c < 0x80 {
			return v, i + 1, nil
		}
	}
	if len(b) < MaxVarintLen {
		return 0, 0, NewError(ErrTruncated)
	}
	last := uint64(b[MaxVarintLen-1]) << 56
	if v+last < v {
		return 0, 0, NewError(ErrInvalidVarint)
	}
	return v + last, MaxVarintLen, nil
}
