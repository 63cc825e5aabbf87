// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import (
	"unicode/utf8"

	"github.com/golang/bilrost/wire"
)

// PlainBytes encodes a byte slice as a length-delimited value. Decoded
// bytes are copied, and an empty value decodes to nil.
type PlainBytes struct{}

func (PlainBytes) WireType() wire.Type    { return wire.BytesType }
func (PlainBytes) IsEmpty(v *[]byte) bool { return len(*v) == 0 }
func (PlainBytes) Clear(v *[]byte)        { *v = nil }

func (PlainBytes) AppendValue(b []byte, v *[]byte) []byte {
	b = wire.AppendVarint(b, uint64(len(*v)))
	return append(b, *v...)
}

func (PlainBytes) PrependValue(rb *wire.ReverseBuffer, v *[]byte) {
	rb.Prepend(*v)
	wire.PrependVarint(rb, uint64(len(*v)))
}

func (PlainBytes) ValueLen(v *[]byte) int {
	return wire.SizeVarint(uint64(len(*v))) + len(*v)
}

func (PlainBytes) DecodeValue(v *[]byte, c wire.Capped, _ wire.DecodeContext) error {
	b, err := c.ConsumeLengthDelimited()
	if err != nil {
		return err
	}
	*v = append([]byte(nil), b...)
	return nil
}

func (e PlainBytes) DecodeValueDistinguished(v *[]byte, c wire.Capped, allowEmpty bool, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	if err := e.DecodeValue(v, c, ctx.DecodeContext); err != nil {
		return wire.NotCanonical, err
	}
	return emptyVerdict(allowEmpty, len(*v) == 0), nil
}

// String encodes a string as its UTF-8 bytes. Decoding bytes that are not
// valid UTF-8 is ErrInvalidValue.
type String struct{}

func (String) WireType() wire.Type    { return wire.BytesType }
func (String) IsEmpty(v *string) bool { return *v == "" }
func (String) Clear(v *string)        { *v = "" }

func (String) AppendValue(b []byte, v *string) []byte {
	b = wire.AppendVarint(b, uint64(len(*v)))
	return append(b, *v...)
}

func (String) PrependValue(rb *wire.ReverseBuffer, v *string) {
	rb.Prepend([]byte(*v))
	wire.PrependVarint(rb, uint64(len(*v)))
}

func (String) ValueLen(v *string) int {
	return wire.SizeVarint(uint64(len(*v))) + len(*v)
}

func (String) DecodeValue(v *string, c wire.Capped, _ wire.DecodeContext) error {
	b, err := c.ConsumeLengthDelimited()
	if err != nil {
		return err
	}
	if !utf8.Valid(b) {
		return errKind(wire.ErrInvalidValue)
	}
	*v = string(b)
	return nil
}

func (e String) DecodeValueDistinguished(v *string, c wire.Capped, allowEmpty bool, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	if err := e.DecodeValue(v, c, ctx.DecodeContext); err != nil {
		return wire.NotCanonical, err
	}
	return emptyVerdict(allowEmpty, *v == ""), nil
}
