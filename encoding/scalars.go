// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import (
	"math"
	"unsafe"

	"github.com/golang/bilrost/wire"
)

// Integer is the set of types the Varint strategy accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// FixedValue is the set of types the Fixed strategy accepts.
type FixedValue interface {
	~int32 | ~uint32 | ~float32 | ~int64 | ~uint64 | ~float64
}

func isSigned[T Integer]() bool {
	var zero T
	return ^zero < zero
}

// Varint encodes integers as varints. Signed types are zig-zag encoded, so
// that small magnitudes of either sign stay short.
//
// Decoding a varint outside the range of T is ErrOutOfDomainValue.
type Varint[T Integer] struct{}

func (Varint[T]) WireType() wire.Type { return wire.VarintType }
func (Varint[T]) IsEmpty(v *T) bool   { return *v == 0 }
func (Varint[T]) Clear(v *T)          { *v = 0 }

func (Varint[T]) toWire(x T) uint64 {
	if isSigned[T]() {
		return wire.EncodeZigZag(int64(x))
	}
	return uint64(x)
}

func (Varint[T]) fromWire(u uint64) (T, error) {
	if isSigned[T]() {
		s := wire.DecodeZigZag(u)
		if x := T(s); int64(x) == s {
			return x, nil
		}
		return 0, errKind(wire.ErrOutOfDomainValue)
	}
	if x := T(u); uint64(x) == u {
		return x, nil
	}
	return 0, errKind(wire.ErrOutOfDomainValue)
}

func (e Varint[T]) AppendValue(b []byte, v *T) []byte {
	return wire.AppendVarint(b, e.toWire(*v))
}

func (e Varint[T]) PrependValue(rb *wire.ReverseBuffer, v *T) {
	wire.PrependVarint(rb, e.toWire(*v))
}

func (e Varint[T]) ValueLen(v *T) int { return wire.SizeVarint(e.toWire(*v)) }

func (e Varint[T]) DecodeValue(v *T, c wire.Capped, _ wire.DecodeContext) error {
	u, err := c.ConsumeVarint()
	if err != nil {
		return err
	}
	x, err := e.fromWire(u)
	if err != nil {
		return err
	}
	*v = x
	return nil
}

func (e Varint[T]) DecodeValueDistinguished(v *T, c wire.Capped, allowEmpty bool, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	if err := e.DecodeValue(v, c, ctx.DecodeContext); err != nil {
		return wire.NotCanonical, err
	}
	return emptyVerdict(allowEmpty, *v == 0), nil
}

// Bool encodes a bool as the varint 0 or 1. Any other varint is
// ErrOutOfDomainValue.
type Bool struct{}

func (Bool) WireType() wire.Type { return wire.VarintType }
func (Bool) IsEmpty(v *bool) bool { return !*v }
func (Bool) Clear(v *bool)        { *v = false }

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func (Bool) AppendValue(b []byte, v *bool) []byte { return append(b, byte(boolBits(*v))) }
func (Bool) PrependValue(rb *wire.ReverseBuffer, v *bool) {
	rb.PrependByte(byte(boolBits(*v)))
}
func (Bool) ValueLen(*bool) int { return 1 }

func (Bool) DecodeValue(v *bool, c wire.Capped, _ wire.DecodeContext) error {
	u, err := c.ConsumeVarint()
	if err != nil {
		return err
	}
	switch u {
	case 0:
		*v = false
	case 1:
		*v = true
	default:
		return errKind(wire.ErrOutOfDomainValue)
	}
	return nil
}

func (e Bool) DecodeValueDistinguished(v *bool, c wire.Capped, allowEmpty bool, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	if err := e.DecodeValue(v, c, ctx.DecodeContext); err != nil {
		return wire.NotCanonical, err
	}
	return emptyVerdict(allowEmpty, !*v), nil
}

// Fixed encodes 32- and 64-bit numbers as little-endian fixed-width values.
// Floats are encoded by their IEEE 754 bits, and a float is empty only when
// all of its bits are zero. Negative zero is therefore a non-empty value, and
// every NaN payload survives a round trip.
type Fixed[T FixedValue] struct{}

func fixedSize[T FixedValue]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

func isFloat[T FixedValue]() bool {
	var one T = 1
	return one/2 != 0
}

func fixedBits[T FixedValue](x T) uint64 {
	switch {
	case isFloat[T]() && fixedSize[T]() == 4:
		return uint64(math.Float32bits(float32(x)))
	case isFloat[T]():
		return math.Float64bits(float64(x))
	case fixedSize[T]() == 4:
		return uint64(uint32(x))
	default:
		return uint64(x)
	}
}

func fixedFromBits[T FixedValue](u uint64) T {
	switch {
	case isFloat[T]() && fixedSize[T]() == 4:
		return T(math.Float32frombits(uint32(u)))
	case isFloat[T]():
		return T(math.Float64frombits(u))
	case fixedSize[T]() == 4:
		return T(uint32(u))
	default:
		return T(u)
	}
}

func (Fixed[T]) WireType() wire.Type {
	if fixedSize[T]() == 4 {
		return wire.Fixed32Type
	}
	return wire.Fixed64Type
}

func (Fixed[T]) IsEmpty(v *T) bool { return fixedBits(*v) == 0 }
func (Fixed[T]) Clear(v *T)        { *v = 0 }

func (Fixed[T]) AppendValue(b []byte, v *T) []byte {
	if fixedSize[T]() == 4 {
		return wire.AppendFixed32(b, uint32(fixedBits(*v)))
	}
	return wire.AppendFixed64(b, fixedBits(*v))
}

func (Fixed[T]) PrependValue(rb *wire.ReverseBuffer, v *T) {
	if fixedSize[T]() == 4 {
		wire.PrependFixed32(rb, uint32(fixedBits(*v)))
		return
	}
	wire.PrependFixed64(rb, fixedBits(*v))
}

func (Fixed[T]) ValueLen(*T) int { return int(fixedSize[T]()) }

func (Fixed[T]) DecodeValue(v *T, c wire.Capped, _ wire.DecodeContext) error {
	var u uint64
	if fixedSize[T]() == 4 {
		x, err := c.ConsumeFixed32()
		if err != nil {
			return err
		}
		u = uint64(x)
	} else {
		x, err := c.ConsumeFixed64()
		if err != nil {
			return err
		}
		u = x
	}
	*v = fixedFromBits[T](u)
	return nil
}

func (e Fixed[T]) DecodeValueDistinguished(v *T, c wire.Capped, allowEmpty bool, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	if err := e.DecodeValue(v, c, ctx.DecodeContext); err != nil {
		return wire.NotCanonical, err
	}
	return emptyVerdict(allowEmpty, e.IsEmpty(v)), nil
}
