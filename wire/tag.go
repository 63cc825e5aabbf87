// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"math"

	"github.com/golang/bilrost/internal/errors"
)

// TagWriter tracks the previous tag while a message is appended.
// The zero value is ready at the start of a message.
type TagWriter struct {
	last Number
}

// AppendKey appends the key for a field with the given tag and wire type.
// Fields must be written in ascending tag order; a lower tag panics.
func (w *TagWriter) AppendKey(b []byte, tag Number, t Type) []byte {
	if tag < w.last {
		errors.Panicf("fields encoded out of order: tag %d after %d", tag, w.last)
	}
	delta := tag - w.last
	w.last = tag
	return AppendVarint(b, EncodeKey(delta, t))
}

// TagRevWriter tracks keys while a message is prepended back to front.
//
// A field's key depends on the tag before it, which is not known until the
// next (lower) field is begun. BeginField therefore writes the key of the
// field begun previously, and Finalize writes the key of the first field.
type TagRevWriter struct {
	tag   Number
	typ   Type
	begun bool
}

// BeginField starts a field whose value will be prepended next. Fields must be
// begun in descending tag order; a higher tag panics.
func (w *TagRevWriter) BeginField(rb *ReverseBuffer, tag Number, t Type) {
	if w.begun {
		if tag > w.tag {
			errors.Panicf("fields prepended out of order: tag %d before %d", tag, w.tag)
		}
		PrependVarint(rb, EncodeKey(w.tag-tag, w.typ))
	}
	w.tag, w.typ, w.begun = tag, t, true
}

// Finalize writes the key of the lowest field. It must be called once all of
// a message's fields have been prepended.
func (w *TagRevWriter) Finalize(rb *ReverseBuffer) {
	if !w.begun {
		return
	}
	PrependVarint(rb, EncodeKey(w.tag, w.typ))
	w.begun = false
}

// TagMeasurer computes key sizes the way TagWriter would write them.
type TagMeasurer struct {
	last Number
}

// KeyLen returns the size of the next key and advances as if it were written.
func (m *TagMeasurer) KeyLen(tag Number) int {
	if tag < m.last {
		errors.Panicf("fields measured out of order: tag %d after %d", tag, m.last)
	}
	delta := tag - m.last
	m.last = tag
	return SizeKey(delta)
}

// TagReader tracks the previous tag while a message is decoded.
type TagReader struct {
	last Number
}

// DecodeKey reads a key, returning the absolute tag and the wire type.
func (r *TagReader) DecodeKey(c Capped) (Number, Type, error) {
	key, err := c.ConsumeVarint()
	if err != nil {
		return 0, 0, err
	}
	delta := key >> 2
	if delta > math.MaxUint32 || uint64(r.last)+delta > math.MaxUint32 {
		return 0, 0, NewError(ErrTagOverflowed)
	}
	r.last += Number(delta)
	return r.last, typeFromKey(key), nil
}

// CheckType returns ErrWrongWireType unless got is want.
func CheckType(want, got Type) error {
	if want != got {
		return NewError(ErrWrongWireType)
	}
	return nil
}
