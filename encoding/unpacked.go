// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import "github.com/golang/bilrost/wire"

// Unpacked encodes a collection as one field occurrence per element, each
// with its own key. Every key after the first repeats the tag, so it is the
// single byte of a zero delta.
//
// Decoding also accepts the packed form unless the elements are themselves
// length-delimited, in which case the two forms cannot be told apart.
// Distinguished decoding reports the packed form as NotCanonical.
type Unpacked[T any, E ValueEncoder[T], C any, PC CollectionPtr[T, C]] struct{ Elem E }

func (p Unpacked[T, E, C, PC]) AppendField(b []byte, tag wire.Number, v *C, tw *wire.TagWriter) []byte {
	t := p.Elem.WireType()
	for x := range PC(v).All() {
		b = tw.AppendKey(b, tag, t)
		b = p.Elem.AppendValue(b, &x)
	}
	return b
}

func (p Unpacked[T, E, C, PC]) PrependField(rb *wire.ReverseBuffer, tag wire.Number, v *C, tw *wire.TagRevWriter) {
	t := p.Elem.WireType()
	for x := range PC(v).Backward() {
		tw.BeginField(rb, tag, t)
		p.Elem.PrependValue(rb, &x)
	}
}

func (p Unpacked[T, E, C, PC]) FieldLen(tag wire.Number, v *C, tm *wire.TagMeasurer) int {
	n := PC(v).Len()
	if n == 0 {
		return 0
	}
	return tm.KeyLen(tag) + manyValuesLen[T](p.Elem, PC(v)) + n - 1
}

func (p Unpacked[T, E, C, PC]) packedForm(t wire.Type) bool {
	return t == wire.BytesType && p.Elem.WireType() != wire.BytesType
}

func (p Unpacked[T, E, C, PC]) DecodeField(t wire.Type, duplicated bool, v *C, c wire.Capped, ctx wire.DecodeContext) error {
	if duplicated {
		return errKind(wire.ErrUnexpectedlyRepeated)
	}
	if p.packedForm(t) {
		return Packed[T, E, C, PC]{p.Elem}.DecodeValue(v, c, ctx)
	}
	return decodeUnpacked[T](p.Elem, t, PC(v), c, ctx)
}

func (p Unpacked[T, E, C, PC]) DecodeFieldDistinguished(t wire.Type, duplicated bool, v *C, c wire.Capped, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	if duplicated {
		return wire.NotCanonical, errKind(wire.ErrUnexpectedlyRepeated)
	}
	if p.packedForm(t) {
		if _, err := ctx.Check(wire.NotCanonical); err != nil {
			return wire.NotCanonical, err
		}
		return wire.NotCanonical, Packed[T, E, C, PC]{p.Elem}.DecodeValue(v, c, ctx.DecodeContext)
	}
	return decodeUnpackedDistinguished[T](p.Elem, t, PC(v), c, ctx)
}

// decodeUnpacked decodes the element whose key has been read, and then every
// element that immediately follows it under the same tag.
func decodeUnpacked[T any](e ValueEncoder[T], t wire.Type, coll Collection[T], c wire.Capped, ctx wire.DecodeContext) error {
	for {
		if err := wire.CheckType(e.WireType(), t); err != nil {
			return err
		}
		var x T
		e.Clear(&x)
		if err := e.DecodeValue(&x, c, ctx); err != nil {
			return err
		}
		if err := coll.Insert(x); err != nil {
			return err
		}
		next, ok := c.PeekRepeatedField()
		if !ok {
			return nil
		}
		t = next
	}
}

func decodeUnpackedDistinguished[T any](e ValueEncoder[T], t wire.Type, coll Collection[T], c wire.Capped, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	dc := distinguishedCollection(coll)
	canon := wire.Canonical
	for {
		if err := wire.CheckType(e.WireType(), t); err != nil {
			return wire.NotCanonical, err
		}
		var x T
		e.Clear(&x)
		ec, err := e.DecodeValueDistinguished(&x, c, true, ctx)
		if err != nil {
			return wire.NotCanonical, err
		}
		if err := update(ctx, &canon, ec); err != nil {
			return wire.NotCanonical, err
		}
		ic, err := dc.InsertDistinguished(x)
		if err != nil {
			return wire.NotCanonical, err
		}
		if err := update(ctx, &canon, ic); err != nil {
			return wire.NotCanonical, err
		}
		next, ok := c.PeekRepeatedField()
		if !ok {
			return canon, nil
		}
		t = next
	}
}
