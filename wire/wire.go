// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wire parses and formats the low-level bilrost wire encoding.
//
// A bilrost message is a series of fields. Each field is a key followed by a
// value. The key packs the difference between this field's tag and the
// previous field's tag together with a two-bit wire type:
//
//	key = (tag - previous tag) << 2 | wire type
//
// Because the difference is unsigned, fields always appear in ascending tag
// order and a repeated field's later occurrences have a one byte key.
//
// All integers on the wire are bijective varints: every byte string decodes to
// at most one value and every value has exactly one encoding, so there are no
// overlong forms to reject.
//
// This package does not know anything about messages or field types; see the
// encoding package for the strategies that build on it.
package wire

import "fmt"

// Number is a field tag.
type Number uint32

// MaxNumber is the largest representable field tag.
const MaxNumber Number = 1<<32 - 1

// Type is the wire type of a field value.
type Type uint8

const (
	VarintType  Type = 0
	BytesType   Type = 1
	Fixed32Type Type = 2
	Fixed64Type Type = 3
)

// FixedSize reports the number of bytes a value of this wire type always
// occupies, or 0 if the size varies from value to value.
func (t Type) FixedSize() int {
	switch t {
	case Fixed32Type:
		return 4
	case Fixed64Type:
		return 8
	}
	return 0
}

func (t Type) String() string {
	switch t {
	case VarintType:
		return "varint"
	case BytesType:
		return "length-delimited"
	case Fixed32Type:
		return "fixed32"
	case Fixed64Type:
		return "fixed64"
	}
	return fmt.Sprintf("<unknown wire type %d>", uint8(t))
}

// typeFromKey extracts the wire type from the low bits of a key.
func typeFromKey(key uint64) Type { return Type(key & 3) }

// EncodeKey packs a tag delta and wire type into a key.
func EncodeKey(delta Number, t Type) uint64 {
	return uint64(delta)<<2 | uint64(t&3)
}

// SizeKey returns the size of the key for a field whose tag is delta past the
// preceding field's tag.
func SizeKey(delta Number) int {
	return SizeVarint(uint64(delta) << 2)
}
