// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import (
	"github.com/golang/bilrost/internal/errors"
	"github.com/golang/bilrost/wire"
)

// General is the default strategy. It picks an encoding by the type of T:
//
//	bool                   Bool
//	int, int8, ... uint64  Varint
//	float32, float64       Fixed
//	string                 String
//	[]byte                 PlainBytes
//	M with *M a Message    MessageValue
//
// Named types are not matched; use the specific strategy for them.
//
// NewGeneral picks the encoding once, and panics for any other T. Holding
// its result in a package-level variable makes a bad T fail when the package
// is initialized. The zero General picks the encoding on every call instead,
// and panics on first use.
type General[T any] struct {
	enc ValueEncoder[T]
}

// NewGeneral returns the General strategy for T with its encoding resolved.
func NewGeneral[T any]() General[T] {
	return General[T]{enc: generalEncoding[T]()}
}

func generalEncoding[T any]() ValueEncoder[T] {
	var p *T
	var e any
	switch any(p).(type) {
	case *bool:
		e = Bool{}
	case *int:
		e = Varint[int]{}
	case *int8:
		e = Varint[int8]{}
	case *int16:
		e = Varint[int16]{}
	case *int32:
		e = Varint[int32]{}
	case *int64:
		e = Varint[int64]{}
	case *uint:
		e = Varint[uint]{}
	case *uint8:
		e = Varint[uint8]{}
	case *uint16:
		e = Varint[uint16]{}
	case *uint32:
		e = Varint[uint32]{}
	case *uint64:
		e = Varint[uint64]{}
	case *float32:
		e = Fixed[float32]{}
	case *float64:
		e = Fixed[float64]{}
	case *string:
		e = String{}
	case *[]byte:
		e = PlainBytes{}
	case Message:
		e = dynMessage[T]{}
	default:
		errors.Panicf("no general encoding for %T", p)
	}
	return e.(ValueEncoder[T])
}

func (g General[T]) get() ValueEncoder[T] {
	if g.enc != nil {
		return g.enc
	}
	return generalEncoding[T]()
}

func (g General[T]) WireType() wire.Type { return g.get().WireType() }
func (g General[T]) IsEmpty(v *T) bool   { return g.get().IsEmpty(v) }
func (g General[T]) Clear(v *T)          { g.get().Clear(v) }

func (g General[T]) AppendValue(b []byte, v *T) []byte { return g.get().AppendValue(b, v) }
func (g General[T]) PrependValue(rb *wire.ReverseBuffer, v *T) {
	g.get().PrependValue(rb, v)
}
func (g General[T]) ValueLen(v *T) int { return g.get().ValueLen(v) }

func (g General[T]) DecodeValue(v *T, c wire.Capped, ctx wire.DecodeContext) error {
	return g.get().DecodeValue(v, c, ctx)
}

func (g General[T]) DecodeValueDistinguished(v *T, c wire.Capped, allowEmpty bool, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	return g.get().DecodeValueDistinguished(v, c, allowEmpty, ctx)
}

// dynMessage is MessageValue for a T known only at run time to be a
// message.
type dynMessage[T any] struct{}

func msg[T any](v *T) Message { return any(v).(Message) }

func (dynMessage[T]) WireType() wire.Type { return wire.BytesType }
func (dynMessage[T]) IsEmpty(v *T) bool   { return msg(v).IsEmpty() }
func (dynMessage[T]) Clear(v *T)          { msg(v).Clear() }

func (dynMessage[T]) AppendValue(b []byte, v *T) []byte {
	m := msg(v)
	b = wire.AppendVarint(b, uint64(m.RawLen()))
	return m.RawAppend(b)
}

func (dynMessage[T]) PrependValue(rb *wire.ReverseBuffer, v *T) { prependMessage(rb, msg(v)) }
func (dynMessage[T]) ValueLen(v *T) int                         { return messageLen(msg(v)) }

func (dynMessage[T]) DecodeValue(v *T, c wire.Capped, ctx wire.DecodeContext) error {
	return decodeMessage(msg(v), c, ctx)
}

func (dynMessage[T]) DecodeValueDistinguished(v *T, c wire.Capped, allowEmpty bool, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	return decodeMessageDistinguished(msg(v), c, allowEmpty, ctx)
}
