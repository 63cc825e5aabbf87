// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/golang/bilrost/encoding"
	"github.com/golang/bilrost/internal/testmsgs"
	"github.com/golang/bilrost/types/civil"
	"github.com/golang/bilrost/wire"
)

// The results of these microbenchmarks are unlikely to correspond well
// to real world peformance. They are mainly useful as a quick check to
// detect unexpected regressions and for profiling specific cases.

const (
	intValue   = 1 << 30
	floatValue = 3.14159265
	strValue   = "hello world"

	listLen = 64
)

func makeScalars() testmsgs.Scalars {
	return testmsgs.Scalars{
		U64: intValue, I32: -intValue, Flag: true, F32: floatValue, F64: floatValue,
		SFixed: intValue, Name: strValue, Data: []byte(strValue), Byte: 7,
	}
}

func makeMessages() []encoding.Message {
	c := &testmsgs.Collections{}
	for i := range listLen {
		c.Packed = append(c.Packed, uint32(i*intValue/listLen))
		c.Names = append(c.Names, fmt.Sprint(strValue, i))
		c.Set.Insert(int64(i - listLen/2))
		c.Tags.Insert(fmt.Sprint(i))
		c.Index.Insert(fmt.Sprint("k", i), uint64(i))
		c.Sorted.Set(uint32(i), strValue)
		c.Floats = append(c.Floats, float64(i)*floatValue)
	}

	n := &testmsgs.Nested{Inner: makeScalars(), Shape: &testmsgs.Nested_Label{Label: strValue}}
	for range listLen / 4 {
		n.Items = append(n.Items, makeScalars())
	}
	n.Next = &testmsgs.Nested{Inner: makeScalars(), Next: &testmsgs.Nested{Note: strValue}}

	e := testmsgs.NewEvent()
	e.Day = civil.DateOf(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	e.Stamp = civil.DateTimeOf(time.Date(2024, time.March, 1, 13, 45, 30, 500, time.UTC))
	for i := range listLen {
		e.Holidays = append(e.Holidays, civil.Date{Year: 2000 + i, Month: time.December, Day: 25})
	}

	s := makeScalars()
	return []encoding.Message{&s, c, n, e}
}

func BenchmarkAppend(b *testing.B) {
	for _, m := range makeMessages() {
		b.Run(fmt.Sprintf("%T", m), func(b *testing.B) {
			var buf []byte
			b.ReportAllocs()
			for range b.N {
				buf = m.RawAppend(buf[:0])
			}
		})
	}
}

func BenchmarkPrepend(b *testing.B) {
	for _, m := range makeMessages() {
		b.Run(fmt.Sprintf("%T", m), func(b *testing.B) {
			var rb wire.ReverseBuffer
			b.ReportAllocs()
			for range b.N {
				rb.Reset()
				m.RawPrepend(&rb)
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	for _, m := range makeMessages() {
		in := m.RawAppend(nil)
		b.Run(fmt.Sprintf("%T", m), func(b *testing.B) {
			got := emptyLike(m)
			b.ReportAllocs()
			for range b.N {
				if err := unmarshal(in, got); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecodeDistinguished(b *testing.B) {
	for _, m := range makeMessages() {
		in := m.RawAppend(nil)
		b.Run(fmt.Sprintf("%T", m), func(b *testing.B) {
			got := emptyLike(m)
			b.ReportAllocs()
			for range b.N {
				if _, err := unmarshalDistinguished(in, got, wire.Canonical); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
