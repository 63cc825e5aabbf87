// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testmsgs holds message types used by tests throughout the module.
// Their glue is written by hand in the shape a generator would produce.
package testmsgs

import (
	"math"

	"github.com/golang/bilrost/encoding"
	"github.com/golang/bilrost/wire"
)

// Scalars has one field of each scalar strategy.
type Scalars struct {
	U64    uint64  // 1
	I32    int32   // 2
	Flag   bool    // 3
	F32    float32 // 4
	F64    float64 // 5
	SFixed int64   // 6
	Name   string  // 7
	Data   []byte  // 8
	Opt    *uint32 // 9
	Byte   uint8   // 10
}

var (
	scalarsU64    encoding.Plain[uint64, encoding.Varint[uint64]]
	scalarsI32    encoding.Plain[int32, encoding.Varint[int32]]
	scalarsFlag   encoding.Plain[bool, encoding.Bool]
	scalarsF32    encoding.Plain[float32, encoding.Fixed[float32]]
	scalarsF64    = encoding.Plain[float64, encoding.General[float64]]{Enc: encoding.NewGeneral[float64]()}
	scalarsSFixed encoding.Plain[int64, encoding.Fixed[int64]]
	scalarsName   encoding.Plain[string, encoding.String]
	scalarsData   encoding.Plain[[]byte, encoding.PlainBytes]
	scalarsOpt    encoding.Optional[uint32, encoding.Varint[uint32]]
	scalarsByte   encoding.Plain[uint8, encoding.Varint[uint8]]
)

func (m *Scalars) IsEmpty() bool {
	return m.U64 == 0 && m.I32 == 0 && !m.Flag &&
		math.Float32bits(m.F32) == 0 && math.Float64bits(m.F64) == 0 &&
		m.SFixed == 0 && m.Name == "" && len(m.Data) == 0 && m.Opt == nil &&
		m.Byte == 0
}

func (m *Scalars) Clear() { *m = Scalars{} }

func (m *Scalars) RawAppend(b []byte) []byte {
	var tw wire.TagWriter
	b = scalarsU64.AppendField(b, 1, &m.U64, &tw)
	b = scalarsI32.AppendField(b, 2, &m.I32, &tw)
	b = scalarsFlag.AppendField(b, 3, &m.Flag, &tw)
	b = scalarsF32.AppendField(b, 4, &m.F32, &tw)
	b = scalarsF64.AppendField(b, 5, &m.F64, &tw)
	b = scalarsSFixed.AppendField(b, 6, &m.SFixed, &tw)
	b = scalarsName.AppendField(b, 7, &m.Name, &tw)
	b = scalarsData.AppendField(b, 8, &m.Data, &tw)
	b = scalarsOpt.AppendField(b, 9, &m.Opt, &tw)
	b = scalarsByte.AppendField(b, 10, &m.Byte, &tw)
	return b
}

func (m *Scalars) RawPrepend(rb *wire.ReverseBuffer) {
	var tw wire.TagRevWriter
	scalarsByte.PrependField(rb, 10, &m.Byte, &tw)
	scalarsOpt.PrependField(rb, 9, &m.Opt, &tw)
	scalarsData.PrependField(rb, 8, &m.Data, &tw)
	scalarsName.PrependField(rb, 7, &m.Name, &tw)
	scalarsSFixed.PrependField(rb, 6, &m.SFixed, &tw)
	scalarsF64.PrependField(rb, 5, &m.F64, &tw)
	scalarsF32.PrependField(rb, 4, &m.F32, &tw)
	scalarsFlag.PrependField(rb, 3, &m.Flag, &tw)
	scalarsI32.PrependField(rb, 2, &m.I32, &tw)
	scalarsU64.PrependField(rb, 1, &m.U64, &tw)
	tw.Finalize(rb)
}

func (m *Scalars) RawLen() int {
	var tm wire.TagMeasurer
	n := scalarsU64.FieldLen(1, &m.U64, &tm)
	n += scalarsI32.FieldLen(2, &m.I32, &tm)
	n += scalarsFlag.FieldLen(3, &m.Flag, &tm)
	n += scalarsF32.FieldLen(4, &m.F32, &tm)
	n += scalarsF64.FieldLen(5, &m.F64, &tm)
	n += scalarsSFixed.FieldLen(6, &m.SFixed, &tm)
	n += scalarsName.FieldLen(7, &m.Name, &tm)
	n += scalarsData.FieldLen(8, &m.Data, &tm)
	n += scalarsOpt.FieldLen(9, &m.Opt, &tm)
	n += scalarsByte.FieldLen(10, &m.Byte, &tm)
	return n
}

func (m *Scalars) RawDecodeField(tag wire.Number, t wire.Type, dup bool, c wire.Capped, ctx wire.DecodeContext) error {
	var err error
	switch tag {
	case 1:
		err = wire.Annotate(scalarsU64.DecodeField(t, dup, &m.U64, c, ctx), "Scalars", "u64")
	case 2:
		err = wire.Annotate(scalarsI32.DecodeField(t, dup, &m.I32, c, ctx), "Scalars", "i32")
	case 3:
		err = wire.Annotate(scalarsFlag.DecodeField(t, dup, &m.Flag, c, ctx), "Scalars", "flag")
	case 4:
		err = wire.Annotate(scalarsF32.DecodeField(t, dup, &m.F32, c, ctx), "Scalars", "f32")
	case 5:
		err = wire.Annotate(scalarsF64.DecodeField(t, dup, &m.F64, c, ctx), "Scalars", "f64")
	case 6:
		err = wire.Annotate(scalarsSFixed.DecodeField(t, dup, &m.SFixed, c, ctx), "Scalars", "sfixed")
	case 7:
		err = wire.Annotate(scalarsName.DecodeField(t, dup, &m.Name, c, ctx), "Scalars", "name")
	case 8:
		err = wire.Annotate(scalarsData.DecodeField(t, dup, &m.Data, c, ctx), "Scalars", "data")
	case 9:
		err = wire.Annotate(scalarsOpt.DecodeField(t, dup, &m.Opt, c, ctx), "Scalars", "opt")
	case 10:
		err = wire.Annotate(scalarsByte.DecodeField(t, dup, &m.Byte, c, ctx), "Scalars", "byte")
	default:
		err = encoding.SkipUnknown(t, c)
	}
	return err
}

func (m *Scalars) RawDecodeFieldDistinguished(tag wire.Number, t wire.Type, dup bool, c wire.Capped, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	switch tag {
	case 1:
		canon, err := scalarsU64.DecodeFieldDistinguished(t, dup, &m.U64, c, ctx)
		return encoding.CheckField(canon, err, ctx, "Scalars", "u64")
	case 2:
		canon, err := scalarsI32.DecodeFieldDistinguished(t, dup, &m.I32, c, ctx)
		return encoding.CheckField(canon, err, ctx, "Scalars", "i32")
	case 3:
		canon, err := scalarsFlag.DecodeFieldDistinguished(t, dup, &m.Flag, c, ctx)
		return encoding.CheckField(canon, err, ctx, "Scalars", "flag")
	case 4:
		canon, err := scalarsF32.DecodeFieldDistinguished(t, dup, &m.F32, c, ctx)
		return encoding.CheckField(canon, err, ctx, "Scalars", "f32")
	case 5:
		canon, err := scalarsF64.DecodeFieldDistinguished(t, dup, &m.F64, c, ctx)
		return encoding.CheckField(canon, err, ctx, "Scalars", "f64")
	case 6:
		canon, err := scalarsSFixed.DecodeFieldDistinguished(t, dup, &m.SFixed, c, ctx)
		return encoding.CheckField(canon, err, ctx, "Scalars", "sfixed")
	case 7:
		canon, err := scalarsName.DecodeFieldDistinguished(t, dup, &m.Name, c, ctx)
		return encoding.CheckField(canon, err, ctx, "Scalars", "name")
	case 8:
		canon, err := scalarsData.DecodeFieldDistinguished(t, dup, &m.Data, c, ctx)
		return encoding.CheckField(canon, err, ctx, "Scalars", "data")
	case 9:
		canon, err := scalarsOpt.DecodeFieldDistinguished(t, dup, &m.Opt, c, ctx)
		return encoding.CheckField(canon, err, ctx, "Scalars", "opt")
	case 10:
		canon, err := scalarsByte.DecodeFieldDistinguished(t, dup, &m.Byte, c, ctx)
		return encoding.CheckField(canon, err, ctx, "Scalars", "byte")
	default:
		return encoding.SkipUnknownDistinguished(t, c)
	}
}
