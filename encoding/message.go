// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import "github.com/golang/bilrost/wire"

// Message is implemented by the glue of every message type.
//
// The Raw methods see only the message's fields, never a length prefix.
// RawAppend and RawLen visit fields in ascending tag order and RawPrepend
// in descending order, each with a fresh tag writer.
type Message interface {
	EmptyState
	RawAppend(b []byte) []byte
	RawPrepend(rb *wire.ReverseBuffer)
	RawLen() int

	// RawDecodeField decodes one occurrence of the field with the given tag,
	// whose key has been read. Unknown tags are skipped with SkipUnknown.
	RawDecodeField(tag wire.Number, t wire.Type, duplicated bool, c wire.Capped, ctx wire.DecodeContext) error
	// RawDecodeFieldDistinguished is like RawDecodeField, returning the
	// field's verdict. Unknown tags are skipped with
	// SkipUnknownDistinguished.
	RawDecodeFieldDistinguished(tag wire.Number, t wire.Type, duplicated bool, c wire.Capped, ctx wire.RestrictedContext) (wire.Canonicity, error)
}

// MessagePtr constrains PM to be a pointer to M implementing Message.
type MessagePtr[M any] interface {
	*M
	Message
}

// Merge decodes fields from c into m until c is exhausted, without clearing
// m first.
func Merge(m Message, c wire.Capped, ctx wire.DecodeContext) error {
	var (
		tr      wire.TagReader
		last    wire.Number
		started bool
	)
	for c.HasRemaining() {
		tag, t, err := tr.DecodeKey(c)
		if err != nil {
			return err
		}
		duplicated := started && tag == last
		started, last = true, tag
		if err := m.RawDecodeField(tag, t, duplicated, c, ctx); err != nil {
			return err
		}
	}
	return nil
}

// MergeDistinguished is like Merge, and returns the worst verdict of any
// field. It stops at the first field whose verdict ctx does not tolerate.
func MergeDistinguished(m Message, c wire.Capped, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	var (
		tr      wire.TagReader
		last    wire.Number
		started bool
	)
	canon := wire.Canonical
	for c.HasRemaining() {
		tag, t, err := tr.DecodeKey(c)
		if err != nil {
			return wire.NotCanonical, err
		}
		duplicated := started && tag == last
		started, last = true, tag
		fc, err := m.RawDecodeFieldDistinguished(tag, t, duplicated, c, ctx)
		if err != nil {
			return wire.NotCanonical, err
		}
		if err := update(ctx, &canon, fc); err != nil {
			return wire.NotCanonical, err
		}
	}
	return canon, nil
}

// SkipUnknown skips the value of a field with an unknown tag.
func SkipUnknown(t wire.Type, c wire.Capped) error {
	return c.SkipField(t)
}

// SkipUnknownDistinguished skips an unknown field and reports HasExtensions.
func SkipUnknownDistinguished(t wire.Type, c wire.Capped) (wire.Canonicity, error) {
	if err := c.SkipField(t); err != nil {
		return wire.NotCanonical, err
	}
	return wire.HasExtensions, nil
}

// CheckField finishes the distinguished decoding of a known field. It applies
// the restriction of ctx to the verdict, and on failure records the field in
// the error's path.
func CheckField(canon wire.Canonicity, err error, ctx wire.RestrictedContext, message, field string) (wire.Canonicity, error) {
	if err == nil {
		canon, err = ctx.Check(canon)
	}
	if err != nil {
		return wire.NotCanonical, wire.Annotate(err, message, field)
	}
	return canon, nil
}

// MessageValue encodes a message as a length-delimited value.
type MessageValue[M any, PM MessagePtr[M]] struct{}

func (MessageValue[M, PM]) WireType() wire.Type { return wire.BytesType }
func (MessageValue[M, PM]) IsEmpty(v *M) bool   { return PM(v).IsEmpty() }
func (MessageValue[M, PM]) Clear(v *M)          { PM(v).Clear() }

func (MessageValue[M, PM]) AppendValue(b []byte, v *M) []byte {
	b = wire.AppendVarint(b, uint64(PM(v).RawLen()))
	return PM(v).RawAppend(b)
}

func (MessageValue[M, PM]) PrependValue(rb *wire.ReverseBuffer, v *M) {
	prependMessage(rb, PM(v))
}

func (MessageValue[M, PM]) ValueLen(v *M) int { return messageLen(PM(v)) }

func (MessageValue[M, PM]) DecodeValue(v *M, c wire.Capped, ctx wire.DecodeContext) error {
	return decodeMessage(PM(v), c, ctx)
}

func (MessageValue[M, PM]) DecodeValueDistinguished(v *M, c wire.Capped, allowEmpty bool, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	return decodeMessageDistinguished(PM(v), c, allowEmpty, ctx)
}

func prependMessage(rb *wire.ReverseBuffer, m Message) {
	end := rb.Len()
	m.RawPrepend(rb)
	wire.PrependVarint(rb, uint64(rb.Len()-end))
}

func messageLen(m Message) int {
	n := m.RawLen()
	return wire.SizeVarint(uint64(n)) + n
}

func decodeMessage(m Message, c wire.Capped, ctx wire.DecodeContext) error {
	if err := ctx.LimitReached(); err != nil {
		return err
	}
	sub, err := c.TakeLengthDelimited()
	if err != nil {
		return err
	}
	return Merge(m, sub, ctx.EnterRecursion())
}

func decodeMessageDistinguished(m Message, c wire.Capped, allowEmpty bool, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	if err := ctx.LimitReached(); err != nil {
		return wire.NotCanonical, err
	}
	sub, err := c.TakeLengthDelimited()
	if err != nil {
		return wire.NotCanonical, err
	}
	if !sub.HasRemaining() {
		return emptyVerdict(allowEmpty, true), nil
	}
	return MergeDistinguished(m, sub, ctx.EnterRecursion())
}

// Empty is the message with no fields. Every field of its input is unknown.
type Empty struct{}

func (*Empty) IsEmpty() bool                     { return true }
func (*Empty) Clear()                            {}
func (*Empty) RawAppend(b []byte) []byte         { return b }
func (*Empty) RawPrepend(rb *wire.ReverseBuffer) {}
func (*Empty) RawLen() int                       { return 0 }

func (*Empty) RawDecodeField(_ wire.Number, t wire.Type, _ bool, c wire.Capped, _ wire.DecodeContext) error {
	return SkipUnknown(t, c)
}

func (*Empty) RawDecodeFieldDistinguished(_ wire.Number, t wire.Type, _ bool, c wire.Capped, _ wire.RestrictedContext) (wire.Canonicity, error) {
	return SkipUnknownDistinguished(t, c)
}
