// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import "github.com/golang/bilrost/wire"

// Packed encodes a collection as one length-delimited value holding its
// elements back to back.
//
// Packed is both a ValueEncoder, so that packed collections can nest inside
// other strategies, and an Encoder for a field holding the collection. As a
// field it also accepts the unpacked form, which distinguished decoding
// reports as NotCanonical.
type Packed[T any, E ValueEncoder[T], C any, PC CollectionPtr[T, C]] struct{ Elem E }

func (Packed[T, E, C, PC]) WireType() wire.Type { return wire.BytesType }
func (Packed[T, E, C, PC]) IsEmpty(v *C) bool   { return PC(v).IsEmpty() }
func (Packed[T, E, C, PC]) Clear(v *C)          { PC(v).Clear() }

// contentLen is the length of the packed elements, without the prefix.
func (p Packed[T, E, C, PC]) contentLen(v *C) int {
	return manyValuesLen[T](p.Elem, PC(v))
}

func manyValuesLen[T any](e ValueEncoder[T], c Collection[T]) int {
	if n := e.WireType().FixedSize(); n > 0 {
		return n * c.Len()
	}
	total := 0
	for x := range c.All() {
		total += e.ValueLen(&x)
	}
	return total
}

func (p Packed[T, E, C, PC]) AppendValue(b []byte, v *C) []byte {
	b = wire.AppendVarint(b, uint64(p.contentLen(v)))
	for x := range PC(v).All() {
		b = p.Elem.AppendValue(b, &x)
	}
	return b
}

func (p Packed[T, E, C, PC]) PrependValue(rb *wire.ReverseBuffer, v *C) {
	end := rb.Len()
	for x := range PC(v).Backward() {
		p.Elem.PrependValue(rb, &x)
	}
	wire.PrependVarint(rb, uint64(rb.Len()-end))
}

func (p Packed[T, E, C, PC]) ValueLen(v *C) int {
	n := p.contentLen(v)
	return wire.SizeVarint(uint64(n)) + n
}

// takeRegion reads the length-delimited region of a packed value. Fixed-size
// elements must divide it exactly.
func (p Packed[T, E, C, PC]) takeRegion(c wire.Capped) (wire.Capped, error) {
	sub, err := c.TakeLengthDelimited()
	if err != nil {
		return sub, err
	}
	if n := p.Elem.WireType().FixedSize(); n > 0 && sub.Remaining()%n != 0 {
		return sub, errKind(wire.ErrTruncated)
	}
	return sub, nil
}

func (p Packed[T, E, C, PC]) DecodeValue(v *C, c wire.Capped, ctx wire.DecodeContext) error {
	sub, err := p.takeRegion(c)
	if err != nil {
		return err
	}
	coll := PC(v)
	for sub.HasRemaining() {
		var x T
		p.Elem.Clear(&x)
		if err := p.Elem.DecodeValue(&x, sub, ctx); err != nil {
			return err
		}
		if err := coll.Insert(x); err != nil {
			return err
		}
	}
	return nil
}

func (p Packed[T, E, C, PC]) DecodeValueDistinguished(v *C, c wire.Capped, allowEmpty bool, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	sub, err := p.takeRegion(c)
	if err != nil {
		return wire.NotCanonical, err
	}
	if !sub.HasRemaining() {
		return emptyVerdict(allowEmpty, true), nil
	}
	coll := distinguishedCollection[T](PC(v))
	canon := wire.Canonical
	for sub.HasRemaining() {
		var x T
		p.Elem.Clear(&x)
		ec, err := p.Elem.DecodeValueDistinguished(&x, sub, true, ctx)
		if err != nil {
			return wire.NotCanonical, err
		}
		if err := update(ctx, &canon, ec); err != nil {
			return wire.NotCanonical, err
		}
		ic, err := coll.InsertDistinguished(x)
		if err != nil {
			return wire.NotCanonical, err
		}
		if err := update(ctx, &canon, ic); err != nil {
			return wire.NotCanonical, err
		}
	}
	return canon, nil
}

func (p Packed[T, E, C, PC]) AppendField(b []byte, tag wire.Number, v *C, tw *wire.TagWriter) []byte {
	if PC(v).IsEmpty() {
		return b
	}
	b = tw.AppendKey(b, tag, wire.BytesType)
	return p.AppendValue(b, v)
}

func (p Packed[T, E, C, PC]) PrependField(rb *wire.ReverseBuffer, tag wire.Number, v *C, tw *wire.TagRevWriter) {
	if PC(v).IsEmpty() {
		return
	}
	tw.BeginField(rb, tag, wire.BytesType)
	p.PrependValue(rb, v)
}

func (p Packed[T, E, C, PC]) FieldLen(tag wire.Number, v *C, tm *wire.TagMeasurer) int {
	if PC(v).IsEmpty() {
		return 0
	}
	return tm.KeyLen(tag) + p.ValueLen(v)
}

func (p Packed[T, E, C, PC]) DecodeField(t wire.Type, duplicated bool, v *C, c wire.Capped, ctx wire.DecodeContext) error {
	if duplicated {
		return errKind(wire.ErrUnexpectedlyRepeated)
	}
	if t == wire.BytesType {
		return p.DecodeValue(v, c, ctx)
	}
	return decodeUnpacked[T](p.Elem, t, PC(v), c, ctx)
}

func (p Packed[T, E, C, PC]) DecodeFieldDistinguished(t wire.Type, duplicated bool, v *C, c wire.Capped, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	if duplicated {
		return wire.NotCanonical, errKind(wire.ErrUnexpectedlyRepeated)
	}
	if t == wire.BytesType {
		return p.DecodeValueDistinguished(v, c, false, ctx)
	}
	if _, err := ctx.Check(wire.NotCanonical); err != nil {
		return wire.NotCanonical, err
	}
	return wire.NotCanonical, decodeUnpacked[T](p.Elem, t, PC(v), c, ctx.DecodeContext)
}
