// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testmsgs

import (
	"github.com/golang/bilrost/encoding"
	"github.com/golang/bilrost/wire"
)

// Nested holds other messages, itself recursively, and a oneof.
type Nested struct {
	Inner Scalars                 // 1
	Items encoding.Slice[Scalars] // 2
	Next  *Nested                 // 3
	// Types that are valid to be assigned to Shape:
	//	*Nested_Radius
	//	*Nested_Label
	Shape isNested_Shape // 5, 6
	Note  string         // 7
}

type isNested_Shape interface {
	isNested_Shape()
}

type Nested_Radius struct {
	Radius uint32
}

type Nested_Label struct {
	Label string
}

func (*Nested_Radius) isNested_Shape() {}
func (*Nested_Label) isNested_Shape()  {}

// nestedShape adapts the Shape oneof for the encoding package.
type nestedShape struct{ p *isNested_Shape }

func (o nestedShape) Current() (wire.Number, bool) {
	switch (*o.p).(type) {
	case *Nested_Radius:
		return 5, true
	case *Nested_Label:
		return 6, true
	}
	return 0, false
}

type scalarsValue = encoding.MessageValue[Scalars, *Scalars]

var (
	nestedInner  encoding.Plain[Scalars, scalarsValue]
	nestedItems  encoding.Unpacked[Scalars, scalarsValue, encoding.Slice[Scalars], *encoding.Slice[Scalars]]
	nestedNext   encoding.Optional[Nested, encoding.MessageValue[Nested, *Nested]]
	nestedRadius encoding.Always[uint32, encoding.Varint[uint32]]
	nestedLabel  encoding.Always[string, encoding.String]
	nestedNote   encoding.Plain[string, encoding.String]
)

func (m *Nested) IsEmpty() bool {
	return m.Inner.IsEmpty() && m.Items.IsEmpty() && m.Next == nil && m.Shape == nil && m.Note == ""
}

func (m *Nested) Clear() { *m = Nested{} }

func (m *Nested) RawAppend(b []byte) []byte {
	var tw wire.TagWriter
	b = nestedInner.AppendField(b, 1, &m.Inner, &tw)
	b = nestedItems.AppendField(b, 2, &m.Items, &tw)
	b = nestedNext.AppendField(b, 3, &m.Next, &tw)
	switch x := m.Shape.(type) {
	case *Nested_Radius:
		b = nestedRadius.AppendField(b, 5, &x.Radius, &tw)
	case *Nested_Label:
		b = nestedLabel.AppendField(b, 6, &x.Label, &tw)
	}
	b = nestedNote.AppendField(b, 7, &m.Note, &tw)
	return b
}

func (m *Nested) RawPrepend(rb *wire.ReverseBuffer) {
	var tw wire.TagRevWriter
	nestedNote.PrependField(rb, 7, &m.Note, &tw)
	switch x := m.Shape.(type) {
	case *Nested_Label:
		nestedLabel.PrependField(rb, 6, &x.Label, &tw)
	case *Nested_Radius:
		nestedRadius.PrependField(rb, 5, &x.Radius, &tw)
	}
	nestedNext.PrependField(rb, 3, &m.Next, &tw)
	nestedItems.PrependField(rb, 2, &m.Items, &tw)
	nestedInner.PrependField(rb, 1, &m.Inner, &tw)
	tw.Finalize(rb)
}

func (m *Nested) RawLen() int {
	var tm wire.TagMeasurer
	n := nestedInner.FieldLen(1, &m.Inner, &tm)
	n += nestedItems.FieldLen(2, &m.Items, &tm)
	n += nestedNext.FieldLen(3, &m.Next, &tm)
	switch x := m.Shape.(type) {
	case *Nested_Radius:
		n += nestedRadius.FieldLen(5, &x.Radius, &tm)
	case *Nested_Label:
		n += nestedLabel.FieldLen(6, &x.Label, &tm)
	}
	n += nestedNote.FieldLen(7, &m.Note, &tm)
	return n
}

func (m *Nested) RawDecodeField(tag wire.Number, t wire.Type, dup bool, c wire.Capped, ctx wire.DecodeContext) error {
	switch tag {
	case 1:
		return wire.Annotate(nestedInner.DecodeField(t, dup, &m.Inner, c, ctx), "Nested", "inner")
	case 2:
		return wire.Annotate(nestedItems.DecodeField(t, dup, &m.Items, c, ctx), "Nested", "items")
	case 3:
		return wire.Annotate(nestedNext.DecodeField(t, dup, &m.Next, c, ctx), "Nested", "next")
	case 5:
		err := encoding.DecodeOneof(nestedShape{&m.Shape}, tag, func() error {
			x := new(Nested_Radius)
			if err := nestedRadius.DecodeField(t, dup, &x.Radius, c, ctx); err != nil {
				return err
			}
			m.Shape = x
			return nil
		})
		return wire.Annotate(err, "Nested", "radius")
	case 6:
		err := encoding.DecodeOneof(nestedShape{&m.Shape}, tag, func() error {
			x := new(Nested_Label)
			if err := nestedLabel.DecodeField(t, dup, &x.Label, c, ctx); err != nil {
				return err
			}
			m.Shape = x
			return nil
		})
		return wire.Annotate(err, "Nested", "label")
	case 7:
		return wire.Annotate(nestedNote.DecodeField(t, dup, &m.Note, c, ctx), "Nested", "note")
	}
	return encoding.SkipUnknown(t, c)
}

func (m *Nested) RawDecodeFieldDistinguished(tag wire.Number, t wire.Type, dup bool, c wire.Capped, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	switch tag {
	case 1:
		canon, err := nestedInner.DecodeFieldDistinguished(t, dup, &m.Inner, c, ctx)
		return encoding.CheckField(canon, err, ctx, "Nested", "inner")
	case 2:
		canon, err := nestedItems.DecodeFieldDistinguished(t, dup, &m.Items, c, ctx)
		return encoding.CheckField(canon, err, ctx, "Nested", "items")
	case 3:
		canon, err := nestedNext.DecodeFieldDistinguished(t, dup, &m.Next, c, ctx)
		return encoding.CheckField(canon, err, ctx, "Nested", "next")
	case 5:
		canon, err := encoding.DecodeOneofDistinguished(nestedShape{&m.Shape}, tag, func() (wire.Canonicity, error) {
			x := new(Nested_Radius)
			canon, err := nestedRadius.DecodeFieldDistinguished(t, dup, &x.Radius, c, ctx)
			if err == nil {
				m.Shape = x
			}
			return canon, err
		})
		return encoding.CheckField(canon, err, ctx, "Nested", "radius")
	case 6:
		canon, err := encoding.DecodeOneofDistinguished(nestedShape{&m.Shape}, tag, func() (wire.Canonicity, error) {
			x := new(Nested_Label)
			canon, err := nestedLabel.DecodeFieldDistinguished(t, dup, &x.Label, c, ctx)
			if err == nil {
				m.Shape = x
			}
			return canon, err
		})
		return encoding.CheckField(canon, err, ctx, "Nested", "label")
	case 7:
		canon, err := nestedNote.DecodeFieldDistinguished(t, dup, &m.Note, c, ctx)
		return encoding.CheckField(canon, err, ctx, "Nested", "note")
	}
	return encoding.SkipUnknownDistinguished(t, c)
}
