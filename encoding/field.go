// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import "github.com/golang/bilrost/wire"

// Plain encodes a singular field as one value, omitting it when empty.
type Plain[T any, E ValueEncoder[T]] struct{ Enc E }

func (p Plain[T, E]) AppendField(b []byte, tag wire.Number, v *T, tw *wire.TagWriter) []byte {
	if p.Enc.IsEmpty(v) {
		return b
	}
	b = tw.AppendKey(b, tag, p.Enc.WireType())
	return p.Enc.AppendValue(b, v)
}

func (p Plain[T, E]) PrependField(rb *wire.ReverseBuffer, tag wire.Number, v *T, tw *wire.TagRevWriter) {
	if p.Enc.IsEmpty(v) {
		return
	}
	tw.BeginField(rb, tag, p.Enc.WireType())
	p.Enc.PrependValue(rb, v)
}

func (p Plain[T, E]) FieldLen(tag wire.Number, v *T, tm *wire.TagMeasurer) int {
	if p.Enc.IsEmpty(v) {
		return 0
	}
	return tm.KeyLen(tag) + p.Enc.ValueLen(v)
}

func (p Plain[T, E]) DecodeField(t wire.Type, duplicated bool, v *T, c wire.Capped, ctx wire.DecodeContext) error {
	if duplicated {
		return errKind(wire.ErrUnexpectedlyRepeated)
	}
	if err := wire.CheckType(p.Enc.WireType(), t); err != nil {
		return err
	}
	return p.Enc.DecodeValue(v, c, ctx)
}

func (p Plain[T, E]) DecodeFieldDistinguished(t wire.Type, duplicated bool, v *T, c wire.Capped, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	if duplicated {
		return wire.NotCanonical, errKind(wire.ErrUnexpectedlyRepeated)
	}
	if err := wire.CheckType(p.Enc.WireType(), t); err != nil {
		return wire.NotCanonical, err
	}
	return p.Enc.DecodeValueDistinguished(v, c, false, ctx)
}

// Optional encodes a field held by pointer. A nil pointer is absent; any
// other value is encoded, even if it is empty.
type Optional[T any, E ValueEncoder[T]] struct{ Enc E }

func (p Optional[T, E]) AppendField(b []byte, tag wire.Number, v **T, tw *wire.TagWriter) []byte {
	if *v == nil {
		return b
	}
	b = tw.AppendKey(b, tag, p.Enc.WireType())
	return p.Enc.AppendValue(b, *v)
}

func (p Optional[T, E]) PrependField(rb *wire.ReverseBuffer, tag wire.Number, v **T, tw *wire.TagRevWriter) {
	if *v == nil {
		return
	}
	tw.BeginField(rb, tag, p.Enc.WireType())
	p.Enc.PrependValue(rb, *v)
}

func (p Optional[T, E]) FieldLen(tag wire.Number, v **T, tm *wire.TagMeasurer) int {
	if *v == nil {
		return 0
	}
	return tm.KeyLen(tag) + p.Enc.ValueLen(*v)
}

func (p Optional[T, E]) DecodeField(t wire.Type, duplicated bool, v **T, c wire.Capped, ctx wire.DecodeContext) error {
	if duplicated {
		return errKind(wire.ErrUnexpectedlyRepeated)
	}
	if err := wire.CheckType(p.Enc.WireType(), t); err != nil {
		return err
	}
	x := new(T)
	p.Enc.Clear(x)
	if err := p.Enc.DecodeValue(x, c, ctx); err != nil {
		return err
	}
	*v = x
	return nil
}

func (p Optional[T, E]) DecodeFieldDistinguished(t wire.Type, duplicated bool, v **T, c wire.Capped, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	if duplicated {
		return wire.NotCanonical, errKind(wire.ErrUnexpectedlyRepeated)
	}
	if err := wire.CheckType(p.Enc.WireType(), t); err != nil {
		return wire.NotCanonical, err
	}
	x := new(T)
	p.Enc.Clear(x)
	canon, err := p.Enc.DecodeValueDistinguished(x, c, true, ctx)
	if err != nil {
		return canon, err
	}
	*v = x
	return canon, nil
}

// Always encodes a field unconditionally, even when its value is empty.
// It is used for the members of a oneof, whose presence is held elsewhere.
type Always[T any, E ValueEncoder[T]] struct{ Enc E }

func (p Always[T, E]) AppendField(b []byte, tag wire.Number, v *T, tw *wire.TagWriter) []byte {
	b = tw.AppendKey(b, tag, p.Enc.WireType())
	return p.Enc.AppendValue(b, v)
}

func (p Always[T, E]) PrependField(rb *wire.ReverseBuffer, tag wire.Number, v *T, tw *wire.TagRevWriter) {
	tw.BeginField(rb, tag, p.Enc.WireType())
	p.Enc.PrependValue(rb, v)
}

func (p Always[T, E]) FieldLen(tag wire.Number, v *T, tm *wire.TagMeasurer) int {
	return tm.KeyLen(tag) + p.Enc.ValueLen(v)
}

func (p Always[T, E]) DecodeField(t wire.Type, duplicated bool, v *T, c wire.Capped, ctx wire.DecodeContext) error {
	if duplicated {
		return errKind(wire.ErrUnexpectedlyRepeated)
	}
	if err := wire.CheckType(p.Enc.WireType(), t); err != nil {
		return err
	}
	return p.Enc.DecodeValue(v, c, ctx)
}

func (p Always[T, E]) DecodeFieldDistinguished(t wire.Type, duplicated bool, v *T, c wire.Capped, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	if duplicated {
		return wire.NotCanonical, errKind(wire.ErrUnexpectedlyRepeated)
	}
	if err := wire.CheckType(p.Enc.WireType(), t); err != nil {
		return wire.NotCanonical, err
	}
	return p.Enc.DecodeValueDistinguished(v, c, true, ctx)
}
