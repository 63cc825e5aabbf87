// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import (
	"math"

	"github.com/golang/bilrost/wire"
)

// Enumeration is implemented by enum types: named uint32 types whose
// IsValid method reports whether the receiver is one of the defined
// variants.
type Enumeration interface {
	~uint32
	IsValid() bool
}

// Enum encodes an enumeration as the varint of its number. The variant
// numbered zero is the empty value.
//
// Decoding a number that is not a variant of T, or does not fit in a uint32,
// is ErrOutOfDomainValue.
type Enum[T Enumeration] struct{}

func (Enum[T]) WireType() wire.Type { return wire.VarintType }
func (Enum[T]) IsEmpty(v *T) bool   { return *v == 0 }
func (Enum[T]) Clear(v *T)          { *v = 0 }

func (Enum[T]) AppendValue(b []byte, v *T) []byte {
	return wire.AppendVarint(b, uint64(*v))
}

func (Enum[T]) PrependValue(rb *wire.ReverseBuffer, v *T) {
	wire.PrependVarint(rb, uint64(*v))
}

func (Enum[T]) ValueLen(v *T) int { return wire.SizeVarint(uint64(*v)) }

func (Enum[T]) DecodeValue(v *T, c wire.Capped, _ wire.DecodeContext) error {
	u, err := c.ConsumeVarint()
	if err != nil {
		return err
	}
	if u > math.MaxUint32 || !T(u).IsValid() {
		return errKind(wire.ErrOutOfDomainValue)
	}
	*v = T(u)
	return nil
}

func (e Enum[T]) DecodeValueDistinguished(v *T, c wire.Capped, allowEmpty bool, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	if err := e.DecodeValue(v, c, ctx.DecodeContext); err != nil {
		return wire.NotCanonical, err
	}
	return emptyVerdict(allowEmpty, *v == 0), nil
}
