// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import (
	"github.com/golang/bilrost/internal/errors"
	"github.com/golang/bilrost/wire"
)

// Array encodes a slice of exactly N elements as a packed value. Unlike a
// packed collection it always holds all N elements, and it is empty when
// every element is empty.
//
// Decoding any other number of elements is ErrInvalidValue. Encoding a
// slice whose length is not N panics.
type Array[T any, E ValueEncoder[T]] struct {
	Elem E
	N    int
}

func (a Array[T, E]) check(v []T) {
	if len(v) != a.N {
		errors.Panicf("array of %d elements encoded as an array of %d", len(v), a.N)
	}
}

func (Array[T, E]) WireType() wire.Type { return wire.BytesType }

func (a Array[T, E]) IsEmpty(v *[]T) bool {
	for i := range *v {
		if !a.Elem.IsEmpty(&(*v)[i]) {
			return false
		}
	}
	return true
}

// Clear sets v to N empty elements.
func (a Array[T, E]) Clear(v *[]T) {
	if len(*v) != a.N {
		*v = make([]T, a.N)
	}
	for i := range *v {
		a.Elem.Clear(&(*v)[i])
	}
}

func (a Array[T, E]) contentLen(v []T) int {
	if n := a.Elem.WireType().FixedSize(); n > 0 {
		return n * a.N
	}
	total := 0
	for i := range v {
		total += a.Elem.ValueLen(&v[i])
	}
	return total
}

func (a Array[T, E]) AppendValue(b []byte, v *[]T) []byte {
	a.check(*v)
	b = wire.AppendVarint(b, uint64(a.contentLen(*v)))
	for i := range *v {
		b = a.Elem.AppendValue(b, &(*v)[i])
	}
	return b
}

func (a Array[T, E]) PrependValue(rb *wire.ReverseBuffer, v *[]T) {
	a.check(*v)
	end := rb.Len()
	for i := len(*v) - 1; i >= 0; i-- {
		a.Elem.PrependValue(rb, &(*v)[i])
	}
	wire.PrependVarint(rb, uint64(rb.Len()-end))
}

func (a Array[T, E]) ValueLen(v *[]T) int {
	a.check(*v)
	n := a.contentLen(*v)
	return wire.SizeVarint(uint64(n)) + n
}

// takeRegion reads the packed region. When elements have a fixed size, the
// region must hold exactly N of them.
func (a Array[T, E]) takeRegion(c wire.Capped) (wire.Capped, error) {
	sub, err := c.TakeLengthDelimited()
	if err != nil {
		return sub, err
	}
	if n := a.Elem.WireType().FixedSize(); n > 0 && sub.Remaining() != n*a.N {
		return sub, errKind(wire.ErrInvalidValue)
	}
	return sub, nil
}

func (a Array[T, E]) DecodeValue(v *[]T, c wire.Capped, ctx wire.DecodeContext) error {
	sub, err := a.takeRegion(c)
	if err != nil {
		return err
	}
	out := make([]T, a.N)
	for i := range out {
		if !sub.HasRemaining() {
			return errKind(wire.ErrInvalidValue)
		}
		a.Elem.Clear(&out[i])
		if err := a.Elem.DecodeValue(&out[i], sub, ctx); err != nil {
			return err
		}
	}
	if sub.HasRemaining() {
		return errKind(wire.ErrInvalidValue)
	}
	*v = out
	return nil
}

func (a Array[T, E]) DecodeValueDistinguished(v *[]T, c wire.Capped, allowEmpty bool, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	sub, err := a.takeRegion(c)
	if err != nil {
		return wire.NotCanonical, err
	}
	out := make([]T, a.N)
	canon := wire.Canonical
	for i := range out {
		if !sub.HasRemaining() {
			return wire.NotCanonical, errKind(wire.ErrInvalidValue)
		}
		a.Elem.Clear(&out[i])
		ec, err := a.Elem.DecodeValueDistinguished(&out[i], sub, true, ctx)
		if err != nil {
			return wire.NotCanonical, err
		}
		if err := update(ctx, &canon, ec); err != nil {
			return wire.NotCanonical, err
		}
	}
	if sub.HasRemaining() {
		return wire.NotCanonical, errKind(wire.ErrInvalidValue)
	}
	*v = out
	if a.IsEmpty(v) && !allowEmpty {
		return wire.NotCanonical, nil
	}
	return canon, nil
}
