// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bilrost

import (
	"slices"

	"github.com/golang/bilrost/wire"
)

// MarshalOptions configures the marshaler.
//
// Example usage:
//
//	b := MarshalOptions{Fast: true}.Marshal(m)
type MarshalOptions struct {
	// Fast encodes the message back to front into a reverse buffer, writing
	// each length prefix after the contents it measures. This avoids
	// measuring nested messages more than once. The output is identical.
	Fast bool
}

// Marshal returns the encoding of m.
func Marshal(m Message) []byte {
	return MarshalOptions{}.Marshal(m)
}

// MarshalAppend appends the encoding of m to b.
func MarshalAppend(b []byte, m Message) []byte {
	return MarshalOptions{}.MarshalAppend(b, m)
}

// MarshalFast returns the encoding of m, produced back to front.
func MarshalFast(m Message) []byte {
	return MarshalOptions{Fast: true}.Marshal(m)
}

// MarshalLengthDelimited returns the encoding of m preceded by its length.
func MarshalLengthDelimited(m Message) []byte {
	return MarshalOptions{}.MarshalLengthDelimited(nil, m)
}

// MarshalLengthDelimitedFast is like MarshalLengthDelimited but produces its
// output back to front.
func MarshalLengthDelimitedFast(m Message) []byte {
	return MarshalOptions{Fast: true}.MarshalLengthDelimited(nil, m)
}

// Marshal returns the encoding of m.
func (o MarshalOptions) Marshal(m Message) []byte {
	return o.MarshalAppend(nil, m)
}

// MarshalAppend appends the encoding of m to b.
func (o MarshalOptions) MarshalAppend(b []byte, m Message) []byte {
	if o.Fast {
		var rb wire.ReverseBuffer
		m.RawPrepend(&rb)
		return append(b, rb.Bytes()...)
	}
	b = slices.Grow(b, m.RawLen())
	return m.RawAppend(b)
}

// MarshalLengthDelimited appends the length of the encoding of m followed by
// the encoding itself to b.
func (o MarshalOptions) MarshalLengthDelimited(b []byte, m Message) []byte {
	if o.Fast {
		var rb wire.ReverseBuffer
		m.RawPrepend(&rb)
		wire.PrependVarint(&rb, uint64(rb.Len()))
		return append(b, rb.Bytes()...)
	}
	n := m.RawLen()
	b = slices.Grow(b, wire.SizeVarint(uint64(n))+n)
	b = wire.AppendVarint(b, uint64(n))
	return m.RawAppend(b)
}
