// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opaque_test

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/golang/bilrost/encoding"
	"github.com/golang/bilrost/internal/testmsgs"
	"github.com/golang/bilrost/opaque"
	"github.com/golang/bilrost/wire"
	"github.com/google/go-cmp/cmp"
)

func unhex(s string) []byte {
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		panic(err)
	}
	return b
}

func decode(t *testing.T, b []byte) opaque.Message {
	t.Helper()
	var m opaque.Message
	if err := encoding.Merge(&m, wire.NewCapped(b), wire.DecodeContext{}); err != nil {
		t.Fatalf("Merge(%x): %v", b, err)
	}
	return m
}

func TestDecode(t *testing.T) {
	in := unhex("0400 0001 0d0161 0a01020304 030102030405060708")
	want := opaque.Message{
		1: {opaque.U64(0), opaque.U64(1)},
		4: {opaque.String("a")},
		6: {opaque.Fixed32(0x04030201), opaque.Fixed64(0x0807060504030201)},
	}
	got := decode(t, in)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decoded message mismatch (-want +got):\n%s", diff)
	}

	if b := got.RawAppend(nil); !bytes.Equal(b, in) {
		t.Errorf("RawAppend = %x, want %x", b, in)
	}
	var rb wire.ReverseBuffer
	got.RawPrepend(&rb)
	if !bytes.Equal(rb.Bytes(), in) {
		t.Errorf("RawPrepend = %x, want %x", rb.Bytes(), in)
	}
	if n := got.RawLen(); n != len(in) {
		t.Errorf("RawLen = %d, want %d", n, len(in))
	}

	var d opaque.Message
	canon, err := encoding.MergeDistinguished(&d, wire.NewCapped(in), wire.RestrictedContext{RestrictTo: wire.Canonical})
	if err != nil || canon != wire.Canonical {
		t.Errorf("MergeDistinguished = %v, %v; want canonical", canon, err)
	}
}

func TestRoundTripTyped(t *testing.T) {
	msgs := []encoding.Message{
		&testmsgs.Scalars{U64: 300, I32: -5, F32: 2.5, Name: "x", Data: []byte{0}},
		&testmsgs.Collections{
			Packed: encoding.Slice[uint32]{1, 2, 3},
			Names:  encoding.Slice[string]{"a", "", "c"},
			Index:  encoding.HashMap[string, uint64]{"k": 9},
		},
		&testmsgs.Nested{
			Items: encoding.Slice[testmsgs.Scalars]{{U64: 1}, {}},
			Next:  &testmsgs.Nested{Note: "n"},
			Shape: &testmsgs.Nested_Radius{Radius: 1},
		},
	}
	for _, m := range msgs {
		in := m.RawAppend(nil)
		o := decode(t, in)
		if out := o.RawAppend(nil); !bytes.Equal(out, in) {
			t.Errorf("%T: opaque re-encoding = %x, want %x", m, out, in)
		}
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		v    opaque.Value
		want string
	}{
		{opaque.U64(300), "04ac01"},
		{opaque.I64(-1), "0401"},
		{opaque.I32(1), "0402"},
		{opaque.Bool(true), "0401"},
		{opaque.F32(1), "06 0000803f"},
		{opaque.F64(-2), "07 00000000000000c0"},
		{opaque.String("hi"), "05026869"},
		{opaque.Packed(opaque.U64(100), opaque.U64(200)), "050364c800"},
		{opaque.Of(&testmsgs.Scalars{U64: 42}), "0502042a"},
	}
	for _, tt := range tests {
		var m opaque.Message
		m.Insert(1, tt.v)
		// The first key's delta is the tag.
		got := m.RawAppend(nil)
		if want := unhex(tt.want); !bytes.Equal(got, want) {
			t.Errorf("field 1 = %v: encoded %x, want %x", tt.v, got, want)
		}
	}
}

func TestInterpret(t *testing.T) {
	if got := opaque.I64(-7).Int(); got != -7 {
		t.Errorf("Int = %d, want -7", got)
	}
	if got := opaque.F32(1.5).Float(); got != 1.5 {
		t.Errorf("F32 Float = %v, want 1.5", got)
	}
	if got := opaque.F64(-0.25).Float(); got != -0.25 {
		t.Errorf("F64 Float = %v, want -0.25", got)
	}

	vs, err := opaque.Packed(opaque.U64(100), opaque.U64(200)).Unpack(wire.VarintType)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]opaque.Value{opaque.U64(100), opaque.U64(200)}, vs); diff != "" {
		t.Errorf("Unpack mismatch (-want +got):\n%s", diff)
	}
	if _, err := opaque.Bytes([]byte{1, 2, 3}).Unpack(wire.Fixed32Type); wire.KindOf(err) != wire.ErrTruncated {
		t.Errorf("Unpack of 3 bytes as fixed32: got %v, want truncated", err)
	}

	m, err := opaque.Of(&testmsgs.Scalars{U64: 42, Name: "a"}).Message()
	if err != nil {
		t.Fatal(err)
	}
	want := opaque.Message{1: {opaque.U64(42)}, 7: {opaque.String("a")}}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("Message mismatch (-want +got):\n%s", diff)
	}
	if _, err := opaque.U64(1).Message(); wire.KindOf(err) != wire.ErrWrongWireType {
		t.Errorf("Message of a varint: got %v, want wrong wire type", err)
	}
}

func TestTruncated(t *testing.T) {
	for _, in := range []string{"0a0102", "03010203", "0503", "04ff"} {
		var m opaque.Message
		err := encoding.Merge(&m, wire.NewCapped(unhex(in)), wire.DecodeContext{})
		if wire.KindOf(err) != wire.ErrTruncated {
			t.Errorf("Merge(%s): got %v, want truncated", in, err)
		}
	}
}
