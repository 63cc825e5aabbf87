// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package encoding implements the encoding strategies that map Go values to
// bilrost field values.
//
// A strategy comes in two layers. A ValueEncoder converts one value to and
// from its wire form, without any key. An Encoder writes and reads a whole
// field, keys included, and decides when a field is omitted. The field kinds
// Plain, Optional and Always lift any ValueEncoder into an Encoder; Packed,
// Unpacked and Map are Encoders for collections.
//
// Message glue is written against these types. Each strategy is an empty
// struct (or a struct of strategies), so the glue typically holds them in
// package-level variables:
//
//	var (
//		idField    = encoding.Plain[uint64, encoding.Varint[uint64]]{}
//		namesField = encoding.Unpacked[string, encoding.String, encoding.Slice[string], *encoding.Slice[string]]{}
//	)
//
// Every ValueEncoder must satisfy two rules. The encoding it produces is the
// one canonical encoding of the value, and its distinguished decoder accepts
// exactly that encoding as Canonical. A value is empty when it equals the
// value produced by Clear; empty values of plain fields are never encoded.
package encoding

import (
	"github.com/golang/bilrost/wire"
)

// EmptyState is implemented by types that have a distinguished empty value.
type EmptyState interface {
	// IsEmpty reports whether the receiver is its empty value.
	IsEmpty() bool
	// Clear resets the receiver to its empty value.
	Clear()
}

// ValueEncoder encodes and decodes single values of type T.
//
// Length-delimited encoders include the length prefix in every method:
// AppendValue writes it, ValueLen counts it and DecodeValue reads it.
type ValueEncoder[T any] interface {
	// WireType is the wire type of every encoded value.
	WireType() wire.Type
	IsEmpty(v *T) bool
	Clear(v *T)

	AppendValue(b []byte, v *T) []byte
	PrependValue(rb *wire.ReverseBuffer, v *T)
	ValueLen(v *T) int

	// DecodeValue decodes one value from c into v.
	DecodeValue(v *T, c wire.Capped, ctx wire.DecodeContext) error
	// DecodeValueDistinguished is like DecodeValue but also returns whether
	// the input was canonical. If allowEmpty is false, an empty decoded value
	// is itself non-canonical, since its field should have been omitted.
	DecodeValueDistinguished(v *T, c wire.Capped, allowEmpty bool, ctx wire.RestrictedContext) (wire.Canonicity, error)
}

// Encoder encodes and decodes a whole field of type T.
type Encoder[T any] interface {
	AppendField(b []byte, tag wire.Number, v *T, tw *wire.TagWriter) []byte
	PrependField(rb *wire.ReverseBuffer, tag wire.Number, v *T, tw *wire.TagRevWriter)
	FieldLen(tag wire.Number, v *T, tm *wire.TagMeasurer) int

	// DecodeField decodes an occurrence of the field whose key has been read.
	// duplicated reports that the key repeated the previous field's tag.
	DecodeField(t wire.Type, duplicated bool, v *T, c wire.Capped, ctx wire.DecodeContext) error
	DecodeFieldDistinguished(t wire.Type, duplicated bool, v *T, c wire.Capped, ctx wire.RestrictedContext) (wire.Canonicity, error)
}

// update folds a field verdict into canon and fails early if the context
// does not tolerate it.
func update(ctx wire.RestrictedContext, canon *wire.Canonicity, c wire.Canonicity) error {
	canon.Update(c)
	_, err := ctx.Check(c)
	return err
}

func emptyVerdict(allowEmpty, empty bool) wire.Canonicity {
	if empty && !allowEmpty {
		return wire.NotCanonical
	}
	return wire.Canonical
}

func errKind(k wire.ErrorKind) error { return wire.NewError(k) }
