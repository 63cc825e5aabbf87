// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding_test

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/golang/bilrost/encoding"
	"github.com/golang/bilrost/internal/flags"
	"github.com/golang/bilrost/internal/scalar"
	"github.com/golang/bilrost/internal/testmsgs"
	"github.com/golang/bilrost/types/civil"
	"github.com/golang/bilrost/wire"
	"github.com/google/go-cmp/cmp"
)

func unhex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func prepend(m encoding.Message) []byte {
	var rb wire.ReverseBuffer
	m.RawPrepend(&rb)
	return rb.Bytes()
}

func unmarshal(b []byte, m encoding.Message) error {
	m.Clear()
	return encoding.Merge(m, wire.NewCapped(b), wire.DecodeContext{})
}

func unmarshalDistinguished(b []byte, m encoding.Message, restrict wire.Canonicity) (wire.Canonicity, error) {
	m.Clear()
	return encoding.MergeDistinguished(m, wire.NewCapped(b), wire.RestrictedContext{RestrictTo: restrict})
}

// canonicalTest is a message and its one canonical encoding.
type canonicalTest struct {
	desc string
	m    encoding.Message
	want string
	// decoded returns an empty message of the same type.
	decoded func() encoding.Message
}

func scalars() encoding.Message     { return new(testmsgs.Scalars) }
func collections() encoding.Message { return new(testmsgs.Collections) }
func nested() encoding.Message      { return new(testmsgs.Nested) }
func event() encoding.Message       { return testmsgs.NewEvent() }

var canonicalTests = []canonicalTest{
	{desc: "empty", m: &testmsgs.Scalars{}, want: "", decoded: scalars},
	{desc: "u64", m: &testmsgs.Scalars{U64: 42}, want: "042a", decoded: scalars},
	{desc: "negative i32", m: &testmsgs.Scalars{I32: -1}, want: "0801", decoded: scalars},
	{desc: "name after u64", m: &testmsgs.Scalars{U64: 1, Name: "hi"}, want: "040119026869", decoded: scalars},
	{desc: "negative zero float", m: &testmsgs.Scalars{F32: float32(negZero())}, want: "1200000080", decoded: scalars},
	{desc: "present zero optional", m: &testmsgs.Scalars{Opt: scalar.Ptr[uint32](0)}, want: "2400", decoded: scalars},
	{desc: "byte", m: &testmsgs.Scalars{Byte: 255}, want: "28ff00", decoded: scalars},

	{desc: "packed", m: &testmsgs.Collections{Packed: encoding.Slice[uint32]{100, 200}}, want: "050364c800", decoded: collections},
	{desc: "unpacked strings", m: &testmsgs.Collections{Names: encoding.Slice[string]{"a", "b"}}, want: "090161010162", decoded: collections},
	{desc: "sorted set", m: &testmsgs.Collections{Set: encoding.NewSortedSet[int64](5, -1)}, want: "0d02010a", decoded: collections},
	{desc: "hash set", m: &testmsgs.Collections{Tags: encoding.NewHashSet("b", "a")}, want: "110161010162", decoded: collections},
	{desc: "hash map", m: &testmsgs.Collections{Index: encoding.HashMap[string, uint64]{"x": 1}}, want: "1503017801", decoded: collections},
	{desc: "sorted map", m: &testmsgs.Collections{Sorted: encoding.SortedMap[uint32, string]{{Key: 1, Value: "a"}}}, want: "1906010000000161", decoded: collections},
	{desc: "packed fixed", m: &testmsgs.Collections{Floats: encoding.Slice[float64]{1}}, want: "1d08000000000000f03f", decoded: collections},
	{desc: "unpacked varint", m: &testmsgs.Collections{Unpacked: encoding.Slice[int32]{1, -1}}, want: "20020001", decoded: collections},
	{desc: "nested packed", m: &testmsgs.Collections{Matrix: encoding.Slice[encoding.Slice[uint8]]{{1, 2}, nil}}, want: "290201020100", decoded: collections},

	{desc: "inner message", m: &testmsgs.Nested{Inner: testmsgs.Scalars{U64: 1}}, want: "05020401", decoded: nested},
	{desc: "zero oneof member", m: &testmsgs.Nested{Shape: &testmsgs.Nested_Radius{}}, want: "1400", decoded: nested},
	{desc: "label", m: &testmsgs.Nested{Shape: &testmsgs.Nested_Label{Label: "a"}}, want: "190161", decoded: nested},
	{desc: "present empty next", m: &testmsgs.Nested{Next: &testmsgs.Nested{}}, want: "0d00", decoded: nested},
	{desc: "repeated messages", m: &testmsgs.Nested{Items: encoding.Slice[testmsgs.Scalars]{{U64: 1}, {}}}, want: "0902040101 00", decoded: nested},

	{desc: "date", m: &testmsgs.Event{Day: civil.Date{Year: 2024, Month: time.March, Day: 1}, Window: encoding.EmptyLocalProxy[uint32](2)}, want: "0503d01e78", decoded: event},
	{desc: "window", m: &testmsgs.Event{Window: encoding.NewLocalProxy[uint32](1, 2)}, want: "15020102", decoded: event},
	{desc: "window trims zeros", m: &testmsgs.Event{Window: encoding.NewLocalProxy[uint32](1, 0)}, want: "150101", decoded: event},
}

func negZero() float64 { return -1 * zero }

var zero float64

func TestCanonical(t *testing.T) {
	for _, tt := range canonicalTests {
		t.Run(tt.desc, func(t *testing.T) {
			want := unhex(strings.ReplaceAll(tt.want, " ", ""))
			if got := tt.m.RawAppend(nil); !bytes.Equal(got, want) {
				t.Errorf("RawAppend = %x, want %x", got, want)
			}
			if got := prepend(tt.m); !bytes.Equal(got, want) {
				t.Errorf("RawPrepend = %x, want %x", got, want)
			}
			if got := tt.m.RawLen(); got != len(want) {
				t.Errorf("RawLen = %d, want %d", got, len(want))
			}

			got := tt.decoded()
			if err := unmarshal(want, got); err != nil {
				t.Fatalf("Merge: %v", err)
			}
			if diff := cmp.Diff(tt.m, got); diff != "" {
				t.Errorf("Merge mismatch (-want +got):\n%s", diff)
			}

			got = tt.decoded()
			canon, err := unmarshalDistinguished(want, got, wire.Canonical)
			if err != nil || canon != wire.Canonical {
				t.Fatalf("MergeDistinguished = %v, %v; want canonical", canon, err)
			}
			if diff := cmp.Diff(tt.m, got); diff != "" {
				t.Errorf("MergeDistinguished mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Inputs that decode, but not canonically.
var nonCanonicalTests = []struct {
	desc    string
	in      string
	decoded func() encoding.Message
	want    encoding.Message
	canon   wire.Canonicity
}{
	{"explicit zero", "0400", scalars, &testmsgs.Scalars{}, wire.NotCanonical},
	{"unknown field", "5001", scalars, &testmsgs.Scalars{}, wire.HasExtensions},
	{"unknown after known", "042a4c01", scalars, &testmsgs.Scalars{U64: 42}, wire.HasExtensions},
	{"packed as unpacked", "046400c800", collections, &testmsgs.Collections{Packed: encoding.Slice[uint32]{100, 200}}, wire.NotCanonical},
	{"unpacked as packed", "21020201", collections, &testmsgs.Collections{Unpacked: encoding.Slice[int32]{1, -1}}, wire.NotCanonical},
	{"set out of order", "0d020a01", collections, &testmsgs.Collections{Set: encoding.SortedSet[int64]{-1, 5}}, wire.NotCanonical},
	{"map out of order", "190c0200000001620100000001 61", collections, &testmsgs.Collections{
		Sorted: encoding.SortedMap[uint32, string]{{Key: 1, Value: "a"}, {Key: 2, Value: "b"}},
	}, wire.NotCanonical},
	{"empty inner message", "0500", nested, &testmsgs.Nested{}, wire.NotCanonical},
	{"explicit zero in inner message", "05020400", nested, &testmsgs.Nested{}, wire.NotCanonical},
	{"unknown in inner message", "05025001", nested, &testmsgs.Nested{}, wire.HasExtensions},
	{"untrimmed date", "05020000", event, testmsgs.NewEvent(), wire.NotCanonical},
}

func TestNonCanonical(t *testing.T) {
	for _, tt := range nonCanonicalTests {
		t.Run(tt.desc, func(t *testing.T) {
			in := unhex(strings.ReplaceAll(tt.in, " ", ""))

			got := tt.decoded()
			if err := unmarshal(in, got); err != nil {
				t.Fatalf("Merge: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Merge mismatch (-want +got):\n%s", diff)
			}

			got = tt.decoded()
			canon, err := unmarshalDistinguished(in, got, wire.NotCanonical)
			if err != nil || canon != tt.canon {
				t.Fatalf("MergeDistinguished = %v, %v; want %v", canon, err, tt.canon)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MergeDistinguished mismatch (-want +got):\n%s", diff)
			}

			_, err = unmarshalDistinguished(in, tt.decoded(), wire.Canonical)
			if want := tt.canon.Err(); wire.KindOf(err) != wire.KindOf(want) {
				t.Errorf("restricted to canonical: got %v, want %v", err, want)
			}
		})
	}
}

// Inputs that fail to decode in both modes.
var invalidTests = []struct {
	desc    string
	in      string
	decoded func() encoding.Message
	kind    wire.ErrorKind
	path    string
}{
	{"repeated field", "042a002b", scalars, wire.ErrUnexpectedlyRepeated, "Scalars.u64"},
	{"bool out of range", "0c02", scalars, wire.ErrOutOfDomainValue, "Scalars.flag"},
	{"wrong wire type", "0500", scalars, wire.ErrWrongWireType, "Scalars.u64"},
	{"uint8 out of range", "28ac01", scalars, wire.ErrOutOfDomainValue, "Scalars.byte"},
	{"invalid utf-8", "1d01ff", scalars, wire.ErrInvalidValue, "Scalars.name"},
	{"truncated varint", "04", scalars, wire.ErrTruncated, ""},
	{"truncated length", "1d05ff", scalars, wire.ErrTruncated, "Scalars.name"},
	{"set duplicate", "0d020202", collections, wire.ErrUnexpectedlyRepeated, "Collections.set"},
	{"fixed region", "1d03000000", collections, wire.ErrTruncated, "Collections.floats"},
	{"map key repeated", "1506017801017801", collections, wire.ErrUnexpectedlyRepeated, "Collections.index"},
	{"oneof conflict", "1400050161", nested, wire.ErrConflictingFields, "Nested.label"},
	{"oneof repeated", "14000001", nested, wire.ErrUnexpectedlyRepeated, "Nested.radius"},
	{"inner field", "05020c02", nested, wire.ErrOutOfDomainValue, "Nested.inner/Scalars.flag"},
	{"window over capacity", "1503010203", event, wire.ErrInvalidValue, "Event.window"},
	{"day past year end", "0504ce1eda04", event, wire.ErrOutOfDomainValue, "Event.day"},
}

func TestInvalid(t *testing.T) {
	check := func(t *testing.T, err error, kind wire.ErrorKind, path string) {
		t.Helper()
		if wire.KindOf(err) != kind {
			t.Fatalf("got error %v, want kind %v", err, kind)
		}
		if path != "" && !strings.Contains(err.Error(), " "+path+": ") {
			t.Errorf("error %q lacks path %s", err, path)
		}
	}
	for _, tt := range invalidTests {
		t.Run(tt.desc, func(t *testing.T) {
			in := unhex(tt.in)
			check(t, unmarshal(in, tt.decoded()), tt.kind, tt.path)
			_, err := unmarshalDistinguished(in, tt.decoded(), wire.NotCanonical)
			check(t, err, tt.kind, tt.path)
		})
	}
}

func TestRestrictedPath(t *testing.T) {
	_, err := unmarshalDistinguished(unhex("05020400"), nested(), wire.HasExtensions)
	if wire.KindOf(err) != wire.ErrNotCanonical {
		t.Fatalf("got %v, want not canonical", err)
	}
	de, ok := err.(*wire.DecodeError)
	if !ok {
		t.Fatalf("error is %T, not *wire.DecodeError", err)
	}
	want := []wire.PathElem{{Message: "Scalars", Field: "u64"}, {Message: "Nested", Field: "inner"}}
	if diff := cmp.Diff(want, de.Path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}

	canon, err := unmarshalDistinguished(unhex("05025001"), nested(), wire.HasExtensions)
	if err != nil || canon != wire.HasExtensions {
		t.Errorf("unknown field restricted to extensions = %v, %v", canon, err)
	}
}

func TestMergeKeepsFields(t *testing.T) {
	m := &testmsgs.Scalars{U64: 1}
	if err := encoding.Merge(m, wire.NewCapped(unhex("0801")), wire.DecodeContext{}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(&testmsgs.Scalars{U64: 1, I32: -1}, m); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}
}

func chain(n int) *testmsgs.Nested {
	root := new(testmsgs.Nested)
	for m, i := root, 0; i < n; i++ {
		m.Next = new(testmsgs.Nested)
		m = m.Next
	}
	return root
}

func TestRecursionLimit(t *testing.T) {
	if flags.NoRecursionLimit {
		t.Skip("built without a recursion limit")
	}
	ok := chain(flags.RecursionLimit).RawAppend(nil)
	if err := unmarshal(ok, nested()); err != nil {
		t.Errorf("%d nested messages: %v", flags.RecursionLimit, err)
	}
	if _, err := unmarshalDistinguished(ok, nested(), wire.Canonical); err != nil {
		t.Errorf("%d nested messages, distinguished: %v", flags.RecursionLimit, err)
	}

	deep := chain(flags.RecursionLimit + 1).RawAppend(nil)
	if err := unmarshal(deep, nested()); wire.KindOf(err) != wire.ErrRecursionLimitReached {
		t.Errorf("%d nested messages: got %v, want recursion limit", flags.RecursionLimit+1, err)
	}
	if _, err := unmarshalDistinguished(deep, nested(), wire.Canonical); wire.KindOf(err) != wire.ErrRecursionLimitReached {
		t.Errorf("%d nested messages, distinguished: got %v, want recursion limit", flags.RecursionLimit+1, err)
	}
}

func TestPrependMatchesAppend(t *testing.T) {
	day := civil.Date{Year: 1999, Month: time.December, Day: 31}
	msgs := []encoding.Message{
		&testmsgs.Scalars{
			U64: 1 << 40, I32: -7, Flag: true, F32: 1.5, F64: -2.25, SFixed: -9,
			Name: "name", Data: []byte{0, 1, 2}, Opt: scalar.Ptr[uint32](3), Byte: 200,
		},
		&testmsgs.Collections{
			Packed:   encoding.Slice[uint32]{0, 1, 1 << 30},
			Names:    encoding.Slice[string]{"", "x"},
			Set:      encoding.NewSortedSet[int64](3, -3, 0),
			Tags:     encoding.NewHashSet("q", "p", "r"),
			Index:    encoding.HashMap[string, uint64]{"b": 2, "a": 1, "": 0},
			Sorted:   encoding.SortedMap[uint32, string]{{Key: 1, Value: ""}, {Key: 9, Value: "nine"}},
			Floats:   encoding.Slice[float64]{0, 1e100},
			Unpacked: encoding.Slice[int32]{-1 << 31, 1<<31 - 1},
			Blobs:    encoding.Slice[[]byte]{nil, {0xff}},
			Matrix:   encoding.Slice[encoding.Slice[uint8]]{nil, {1}, {2, 3}},
		},
		&testmsgs.Nested{
			Inner: testmsgs.Scalars{Name: "in"},
			Items: encoding.Slice[testmsgs.Scalars]{{}, {U64: 2}},
			Next:  &testmsgs.Nested{Shape: &testmsgs.Nested_Label{Label: "deep"}, Note: "n"},
			Shape: &testmsgs.Nested_Radius{Radius: 10},
			Note:  "note",
		},
		&testmsgs.Event{
			Day:      day,
			At:       civil.Time{Hour: 23, Minute: 59, Second: 59, Nanosecond: 1},
			Stamp:    civil.DateTime{Date: day, Time: civil.Time{Hour: 12}},
			Holidays: encoding.Slice[civil.Date]{{}, day},
			Window:   encoding.NewLocalProxy[uint32](0, 7),
		},
		chain(20),
	}
	for _, m := range msgs {
		a := m.RawAppend(nil)
		if p := prepend(m); !bytes.Equal(a, p) {
			t.Errorf("%T: RawPrepend = %x, RawAppend = %x", m, p, a)
		}
		if n := m.RawLen(); n != len(a) {
			t.Errorf("%T: RawLen = %d, encoded %d bytes", m, n, len(a))
		}
		canon, err := unmarshalDistinguished(a, emptyLike(m), wire.Canonical)
		if err != nil || canon != wire.Canonical {
			t.Errorf("%T: decoding own encoding = %v, %v", m, canon, err)
		}
	}
}

func emptyLike(m encoding.Message) encoding.Message {
	switch m.(type) {
	case *testmsgs.Scalars:
		return scalars()
	case *testmsgs.Collections:
		return collections()
	case *testmsgs.Nested:
		return nested()
	}
	return event()
}

func TestEmptyMessage(t *testing.T) {
	var m encoding.Empty
	if err := unmarshal(unhex("042a0901ff"), &m); err != nil {
		t.Fatal(err)
	}
	canon, err := unmarshalDistinguished(unhex("042a"), &m, wire.NotCanonical)
	if err != nil || canon != wire.HasExtensions {
		t.Errorf("Empty with a field = %v, %v; want has extensions", canon, err)
	}
}
