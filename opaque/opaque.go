// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opaque represents bilrost data without a schema.
//
// A Message keeps every field as the raw value its wire type describes, so any
// well-formed input decodes into a Message and re-encodes to exactly the same
// bytes. Since the wire format is not self-describing, interpreting a value
// (as a signed integer, a float, a nested message, a packed list, ...) is left
// to the caller.
package opaque

import (
	"fmt"
	"math"

	"github.com/golang/bilrost/encoding"
	"github.com/golang/bilrost/internal/mapsort"
	"github.com/golang/bilrost/wire"
)

// Value is a single field value in its wire form.
type Value struct {
	Type wire.Type
	// Bits is the value of a varint or fixed-width field. A Fixed32Type
	// value uses only the low 32 bits.
	Bits uint64
	// Bytes is the contents of a length-delimited field, without the length.
	Bytes []byte
}

// U64 returns a varint value.
func U64(v uint64) Value { return Value{Type: wire.VarintType, Bits: v} }

// U32 returns a varint value.
func U32(v uint32) Value { return U64(uint64(v)) }

// I64 returns the zig-zag varint value of v.
func I64(v int64) Value { return U64(wire.EncodeZigZag(v)) }

// I32 returns the zig-zag varint value of v.
func I32(v int32) Value { return I64(int64(v)) }

// Bool returns the varint value 0 or 1.
func Bool(v bool) Value {
	if v {
		return U64(1)
	}
	return U64(0)
}

// Fixed32 returns a 4-byte value.
func Fixed32(v uint32) Value { return Value{Type: wire.Fixed32Type, Bits: uint64(v)} }

// Fixed64 returns an 8-byte value.
func Fixed64(v uint64) Value { return Value{Type: wire.Fixed64Type, Bits: v} }

// F32 returns the 4-byte value holding the bits of v.
func F32(v float32) Value { return Fixed32(math.Float32bits(v)) }

// F64 returns the 8-byte value holding the bits of v.
func F64(v float64) Value { return Fixed64(math.Float64bits(v)) }

// Bytes returns a length-delimited value. It does not copy b.
func Bytes(b []byte) Value { return Value{Type: wire.BytesType, Bytes: b} }

// String returns a length-delimited value holding s.
func String(s string) Value { return Bytes([]byte(s)) }

// Of returns the length-delimited value holding the encoding of m.
func Of(m encoding.Message) Value { return Bytes(m.RawAppend(nil)) }

// Packed returns the length-delimited value holding the values of vs back to
// back, as a packed collection encodes them.
func Packed(vs ...Value) Value {
	var b []byte
	for _, v := range vs {
		b = v.appendValue(b)
	}
	return Bytes(b)
}

// Int returns the signed integer of a zig-zag varint.
func (v Value) Int() int64 { return wire.DecodeZigZag(v.Bits) }

// Float returns the floating-point number held by a fixed-width value.
func (v Value) Float() float64 {
	if v.Type == wire.Fixed32Type {
		return float64(math.Float32frombits(uint32(v.Bits)))
	}
	return math.Float64frombits(v.Bits)
}

// Message decodes a length-delimited value as a nested message.
func (v Value) Message() (Message, error) {
	if v.Type != wire.BytesType {
		return nil, wire.NewError(wire.ErrWrongWireType)
	}
	var m Message
	if err := encoding.Merge(&m, wire.NewCapped(v.Bytes), wire.DecodeContext{}); err != nil {
		return nil, err
	}
	return m, nil
}

// Unpack decodes a length-delimited value as a packed collection whose
// elements all have wire type t.
func (v Value) Unpack(t wire.Type) ([]Value, error) {
	if v.Type != wire.BytesType {
		return nil, wire.NewError(wire.ErrWrongWireType)
	}
	c := wire.NewCapped(v.Bytes)
	var vs []Value
	for c.HasRemaining() {
		x, err := decodeValue(t, c)
		if err != nil {
			return nil, err
		}
		vs = append(vs, x)
	}
	return vs, nil
}

func (v Value) String() string {
	switch v.Type {
	case wire.VarintType:
		return fmt.Sprintf("varint(%d)", v.Bits)
	case wire.Fixed32Type:
		return fmt.Sprintf("fixed32(0x%08x)", v.Bits)
	case wire.Fixed64Type:
		return fmt.Sprintf("fixed64(0x%016x)", v.Bits)
	}
	return fmt.Sprintf("bytes(%x)", v.Bytes)
}

func (v Value) appendValue(b []byte) []byte {
	switch v.Type {
	case wire.VarintType:
		return wire.AppendVarint(b, v.Bits)
	case wire.Fixed32Type:
		return wire.AppendFixed32(b, uint32(v.Bits))
	case wire.Fixed64Type:
		return wire.AppendFixed64(b, v.Bits)
	}
	b = wire.AppendVarint(b, uint64(len(v.Bytes)))
	return append(b, v.Bytes...)
}

func (v Value) prependValue(rb *wire.ReverseBuffer) {
	switch v.Type {
	case wire.VarintType:
		wire.PrependVarint(rb, v.Bits)
	case wire.Fixed32Type:
		wire.PrependFixed32(rb, uint32(v.Bits))
	case wire.Fixed64Type:
		wire.PrependFixed64(rb, v.Bits)
	default:
		rb.Prepend(v.Bytes)
		wire.PrependVarint(rb, uint64(len(v.Bytes)))
	}
}

func (v Value) valueLen() int {
	switch v.Type {
	case wire.VarintType:
		return wire.SizeVarint(v.Bits)
	case wire.Fixed32Type:
		return 4
	case wire.Fixed64Type:
		return 8
	}
	return wire.SizeVarint(uint64(len(v.Bytes))) + len(v.Bytes)
}

func decodeValue(t wire.Type, c wire.Capped) (Value, error) {
	switch t {
	case wire.VarintType:
		x, err := c.ConsumeVarint()
		return U64(x), err
	case wire.Fixed32Type:
		x, err := c.ConsumeFixed32()
		return Fixed32(x), err
	case wire.Fixed64Type:
		x, err := c.ConsumeFixed64()
		return Fixed64(x), err
	}
	b, err := c.ConsumeLengthDelimited()
	if err != nil {
		return Value{}, err
	}
	return Bytes(append([]byte(nil), b...)), nil
}

// Message is a message of unknown type: the values of each tag, in the
// order they occurred.
type Message map[wire.Number][]Value

// Insert appends v to the values of tag.
func (m *Message) Insert(tag wire.Number, v Value) {
	if *m == nil {
		*m = make(Message)
	}
	(*m)[tag] = append((*m)[tag], v)
}

func (m *Message) IsEmpty() bool { return len(*m) == 0 }
func (m *Message) Clear()        { *m = nil }

func (m *Message) RawAppend(b []byte) []byte {
	var tw wire.TagWriter
	mapsort.Range(*m, func(tag wire.Number, vs []Value) bool {
		for _, v := range vs {
			b = tw.AppendKey(b, tag, v.Type)
			b = v.appendValue(b)
		}
		return true
	})
	return b
}

func (m *Message) RawPrepend(rb *wire.ReverseBuffer) {
	var tw wire.TagRevWriter
	mapsort.RangeReverse(*m, func(tag wire.Number, vs []Value) bool {
		for i := len(vs) - 1; i >= 0; i-- {
			tw.BeginField(rb, tag, vs[i].Type)
			vs[i].prependValue(rb)
		}
		return true
	})
	tw.Finalize(rb)
}

func (m *Message) RawLen() int {
	var tm wire.TagMeasurer
	n := 0
	mapsort.Range(*m, func(tag wire.Number, vs []Value) bool {
		for _, v := range vs {
			n += tm.KeyLen(tag) + v.valueLen()
		}
		return true
	})
	return n
}

func (m *Message) RawDecodeField(tag wire.Number, t wire.Type, _ bool, c wire.Capped, _ wire.DecodeContext) error {
	v, err := decodeValue(t, c)
	if err != nil {
		return err
	}
	m.Insert(tag, v)
	return nil
}

// RawDecodeFieldDistinguished decodes like RawDecodeField. Every encoding of
// a Message is canonical, since the Message records the exact form.
func (m *Message) RawDecodeFieldDistinguished(tag wire.Number, t wire.Type, dup bool, c wire.Capped, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	if err := m.RawDecodeField(tag, t, dup, c, ctx.DecodeContext); err != nil {
		return wire.NotCanonical, err
	}
	return wire.Canonical, nil
}
