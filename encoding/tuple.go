// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import "github.com/golang/bilrost/wire"

// Pair is a tuple of two values.
type Pair[A, B any] struct {
	V0 A
	V1 B
}

// Triple is a tuple of three values.
type Triple[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

// Tuple2 encodes a Pair exactly like a message whose field 0 holds V0 and
// field 1 holds V1, each with its own field strategy. Tuple tags count from
// zero, unlike the fields of most messages.
//
// Clear sets the pair to its Go zero value, so every member must be usable
// from its zero value.
type Tuple2[A, B any, EA Encoder[A], EB Encoder[B]] struct {
	E0 EA
	E1 EB
}

type pairMessage[A, B any, EA Encoder[A], EB Encoder[B]] struct {
	enc *Tuple2[A, B, EA, EB]
	v   *Pair[A, B]
}

func (t *Tuple2[A, B, EA, EB]) msg(v *Pair[A, B]) pairMessage[A, B, EA, EB] {
	return pairMessage[A, B, EA, EB]{t, v}
}

func (m pairMessage[A, B, EA, EB]) IsEmpty() bool { return m.RawLen() == 0 }
func (m pairMessage[A, B, EA, EB]) Clear()        { *m.v = Pair[A, B]{} }

func (m pairMessage[A, B, EA, EB]) RawAppend(b []byte) []byte {
	var tw wire.TagWriter
	b = m.enc.E0.AppendField(b, 0, &m.v.V0, &tw)
	return m.enc.E1.AppendField(b, 1, &m.v.V1, &tw)
}

func (m pairMessage[A, B, EA, EB]) RawPrepend(rb *wire.ReverseBuffer) {
	var tw wire.TagRevWriter
	m.enc.E1.PrependField(rb, 1, &m.v.V1, &tw)
	m.enc.E0.PrependField(rb, 0, &m.v.V0, &tw)
	tw.Finalize(rb)
}

func (m pairMessage[A, B, EA, EB]) RawLen() int {
	var tm wire.TagMeasurer
	return m.enc.E0.FieldLen(0, &m.v.V0, &tm) + m.enc.E1.FieldLen(1, &m.v.V1, &tm)
}

func (m pairMessage[A, B, EA, EB]) RawDecodeField(tag wire.Number, t wire.Type, dup bool, c wire.Capped, ctx wire.DecodeContext) error {
	switch tag {
	case 0:
		return wire.Annotate(m.enc.E0.DecodeField(t, dup, &m.v.V0, c, ctx), "tuple", "0")
	case 1:
		return wire.Annotate(m.enc.E1.DecodeField(t, dup, &m.v.V1, c, ctx), "tuple", "1")
	}
	return SkipUnknown(t, c)
}

func (m pairMessage[A, B, EA, EB]) RawDecodeFieldDistinguished(tag wire.Number, t wire.Type, dup bool, c wire.Capped, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	switch tag {
	case 0:
		canon, err := m.enc.E0.DecodeFieldDistinguished(t, dup, &m.v.V0, c, ctx)
		return CheckField(canon, err, ctx, "tuple", "0")
	case 1:
		canon, err := m.enc.E1.DecodeFieldDistinguished(t, dup, &m.v.V1, c, ctx)
		return CheckField(canon, err, ctx, "tuple", "1")
	}
	return SkipUnknownDistinguished(t, c)
}

func (Tuple2[A, B, EA, EB]) WireType() wire.Type { return wire.BytesType }
func (t Tuple2[A, B, EA, EB]) IsEmpty(v *Pair[A, B]) bool {
	return t.msg(v).IsEmpty()
}
func (Tuple2[A, B, EA, EB]) Clear(v *Pair[A, B]) { *v = Pair[A, B]{} }

func (t Tuple2[A, B, EA, EB]) AppendValue(b []byte, v *Pair[A, B]) []byte {
	m := t.msg(v)
	b = wire.AppendVarint(b, uint64(m.RawLen()))
	return m.RawAppend(b)
}

func (t Tuple2[A, B, EA, EB]) PrependValue(rb *wire.ReverseBuffer, v *Pair[A, B]) {
	prependMessage(rb, t.msg(v))
}

func (t Tuple2[A, B, EA, EB]) ValueLen(v *Pair[A, B]) int { return messageLen(t.msg(v)) }

func (t Tuple2[A, B, EA, EB]) DecodeValue(v *Pair[A, B], c wire.Capped, ctx wire.DecodeContext) error {
	return decodeMessage(t.msg(v), c, ctx)
}

func (t Tuple2[A, B, EA, EB]) DecodeValueDistinguished(v *Pair[A, B], c wire.Capped, allowEmpty bool, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	return decodeMessageDistinguished(t.msg(v), c, allowEmpty, ctx)
}

// Tuple3 is Tuple2 for a Triple, with fields 0 through 2.
type Tuple3[A, B, C any, EA Encoder[A], EB Encoder[B], EC Encoder[C]] struct {
	E0 EA
	E1 EB
	E2 EC
}

type tripleMessage[A, B, C any, EA Encoder[A], EB Encoder[B], EC Encoder[C]] struct {
	enc *Tuple3[A, B, C, EA, EB, EC]
	v   *Triple[A, B, C]
}

func (t *Tuple3[A, B, C, EA, EB, EC]) msg(v *Triple[A, B, C]) tripleMessage[A, B, C, EA, EB, EC] {
	return tripleMessage[A, B, C, EA, EB, EC]{t, v}
}

func (m tripleMessage[A, B, C, EA, EB, EC]) IsEmpty() bool { return m.RawLen() == 0 }
func (m tripleMessage[A, B, C, EA, EB, EC]) Clear()        { *m.v = Triple[A, B, C]{} }

func (m tripleMessage[A, B, C, EA, EB, EC]) RawAppend(b []byte) []byte {
	var tw wire.TagWriter
	b = m.enc.E0.AppendField(b, 0, &m.v.V0, &tw)
	b = m.enc.E1.AppendField(b, 1, &m.v.V1, &tw)
	return m.enc.E2.AppendField(b, 2, &m.v.V2, &tw)
}

func (m tripleMessage[A, B, C, EA, EB, EC]) RawPrepend(rb *wire.ReverseBuffer) {
	var tw wire.TagRevWriter
	m.enc.E2.PrependField(rb, 2, &m.v.V2, &tw)
	m.enc.E1.PrependField(rb, 1, &m.v.V1, &tw)
	m.enc.E0.PrependField(rb, 0, &m.v.V0, &tw)
	tw.Finalize(rb)
}

func (m tripleMessage[A, B, C, EA, EB, EC]) RawLen() int {
	var tm wire.TagMeasurer
	n := m.enc.E0.FieldLen(0, &m.v.V0, &tm)
	n += m.enc.E1.FieldLen(1, &m.v.V1, &tm)
	return n + m.enc.E2.FieldLen(2, &m.v.V2, &tm)
}

func (m tripleMessage[A, B, C, EA, EB, EC]) RawDecodeField(tag wire.Number, t wire.Type, dup bool, c wire.Capped, ctx wire.DecodeContext) error {
	switch tag {
	case 0:
		return wire.Annotate(m.enc.E0.DecodeField(t, dup, &m.v.V0, c, ctx), "tuple", "0")
	case 1:
		return wire.Annotate(m.enc.E1.DecodeField(t, dup, &m.v.V1, c, ctx), "tuple", "1")
	case 2:
		return wire.Annotate(m.enc.E2.DecodeField(t, dup, &m.v.V2, c, ctx), "tuple", "2")
	}
	return SkipUnknown(t, c)
}

func (m tripleMessage[A, B, C, EA, EB, EC]) RawDecodeFieldDistinguished(tag wire.Number, t wire.Type, dup bool, c wire.Capped, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	switch tag {
	case 0:
		canon, err := m.enc.E0.DecodeFieldDistinguished(t, dup, &m.v.V0, c, ctx)
		return CheckField(canon, err, ctx, "tuple", "0")
	case 1:
		canon, err := m.enc.E1.DecodeFieldDistinguished(t, dup, &m.v.V1, c, ctx)
		return CheckField(canon, err, ctx, "tuple", "1")
	case 2:
		canon, err := m.enc.E2.DecodeFieldDistinguished(t, dup, &m.v.V2, c, ctx)
		return CheckField(canon, err, ctx, "tuple", "2")
	}
	return SkipUnknownDistinguished(t, c)
}

func (Tuple3[A, B, C, EA, EB, EC]) WireType() wire.Type { return wire.BytesType }
func (t Tuple3[A, B, C, EA, EB, EC]) IsEmpty(v *Triple[A, B, C]) bool {
	return t.msg(v).IsEmpty()
}
func (Tuple3[A, B, C, EA, EB, EC]) Clear(v *Triple[A, B, C]) { *v = Triple[A, B, C]{} }

func (t Tuple3[A, B, C, EA, EB, EC]) AppendValue(b []byte, v *Triple[A, B, C]) []byte {
	m := t.msg(v)
	b = wire.AppendVarint(b, uint64(m.RawLen()))
	return m.RawAppend(b)
}

func (t Tuple3[A, B, C, EA, EB, EC]) PrependValue(rb *wire.ReverseBuffer, v *Triple[A, B, C]) {
	prependMessage(rb, t.msg(v))
}

func (t Tuple3[A, B, C, EA, EB, EC]) ValueLen(v *Triple[A, B, C]) int {
	return messageLen(t.msg(v))
}

func (t Tuple3[A, B, C, EA, EB, EC]) DecodeValue(v *Triple[A, B, C], c wire.Capped, ctx wire.DecodeContext) error {
	return decodeMessage(t.msg(v), c, ctx)
}

func (t Tuple3[A, B, C, EA, EB, EC]) DecodeValueDistinguished(v *Triple[A, B, C], c wire.Capped, allowEmpty bool, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	return decodeMessageDistinguished(t.msg(v), c, allowEmpty, ctx)
}
