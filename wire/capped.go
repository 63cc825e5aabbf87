// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import "math"

type cursor struct {
	b   []byte
	off int
}

// Capped reads encoded data from a buffer without ever reading past an end
// bound.
//
// A Capped value is a view: copies share one read position with the reader
// they were copied from. TakeLengthDelimited returns a child view over the same
// position whose bound is the end of the length-delimited region, so decoding
// a nested message advances its parent as it goes but can never reach into the
// parent's following fields.
type Capped struct {
	cur *cursor
	end int
}

// NewCapped returns a reader over all of b.
func NewCapped(b []byte) Capped {
	return Capped{cur: &cursor{b: b}, end: len(b)}
}

// Offset reports the read position within the buffer the reader was created
// from.
func (c Capped) Offset() int { return c.cur.off }

// Remaining reports the number of bytes left before the bound.
func (c Capped) Remaining() int { return c.end - c.cur.off }

// HasRemaining reports whether any bytes are left before the bound.
func (c Capped) HasRemaining() bool { return c.cur.off < c.end }

func (c Capped) rest() []byte { return c.cur.b[c.cur.off:c.end] }

// ConsumeVarint reads a varint. Running into the bound is ErrTruncated.
func (c Capped) ConsumeVarint() (uint64, error) {
	v, n, err := ConsumeVarint(c.rest())
	if err != nil {
		return 0, err
	}
	c.cur.off += n
	return v, nil
}

// ConsumeFixed32 reads a little-endian uint32.
func (c Capped) ConsumeFixed32() (uint32, error) {
	if c.Remaining() < 4 {
		return 0, NewError(ErrTruncated)
	}
	v := decodeFixed32(c.rest())
	c.cur.off += 4
	return v, nil
}

// ConsumeFixed64 reads a little-endian uint64.
func (c Capped) ConsumeFixed64() (uint64, error) {
	if c.Remaining() < 8 {
		return 0, NewError(ErrTruncated)
	}
	v := decodeFixed64(c.rest())
	c.cur.off += 8
	return v, nil
}

// ConsumeBytes reads exactly n bytes. The result aliases the input buffer.
func (c Capped) ConsumeBytes(n int) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, NewError(ErrTruncated)
	}
	b := c.cur.b[c.cur.off : c.cur.off+n : c.cur.off+n]
	c.cur.off += n
	return b, nil
}

// TakeLengthDelimited reads a varint length and returns a reader bounded to
// that many following bytes. A length reaching past this reader's own bound
// is ErrTruncated, so child bounds always nest inside their parents.
func (c Capped) TakeLengthDelimited() (Capped, error) {
	n, err := c.ConsumeVarint()
	if err != nil {
		return Capped{}, err
	}
	if n > math.MaxInt {
		return Capped{}, NewError(ErrOversize)
	}
	if n > uint64(c.Remaining()) {
		return Capped{}, NewError(ErrTruncated)
	}
	return Capped{cur: c.cur, end: c.cur.off + int(n)}, nil
}

// ConsumeLengthDelimited reads a varint length and the bytes it covers.
func (c Capped) ConsumeLengthDelimited() ([]byte, error) {
	sub, err := c.TakeLengthDelimited()
	if err != nil {
		return nil, err
	}
	return sub.ConsumeBytes(sub.Remaining())
}

// CheckEnd reports ErrTruncated unless the reader is exactly at its bound.
// Decoders call it after consuming a region whose contents must account for
// every byte.
func (c Capped) CheckEnd() error {
	if c.cur.off != c.end {
		return NewError(ErrTruncated)
	}
	return nil
}

// PeekRepeatedField checks whether the next key repeats the previous field's
// tag. If so it consumes that key and returns its wire type.
func (c Capped) PeekRepeatedField() (Type, bool) {
	if !c.HasRemaining() {
		return 0, false
	}
	if k := c.cur.b[c.cur.off]; k < 4 {
		c.cur.off++
		return Type(k), true
	}
	return 0, false
}

// SkipField skips a value of type t along with any immediately following
// values for the same tag.
func (c Capped) SkipField(t Type) error {
	for {
		if err := c.skipValue(t); err != nil {
			return err
		}
		next, ok := c.PeekRepeatedField()
		if !ok {
			return nil
		}
		t = next
	}
}

func (c Capped) skipValue(t Type) error {
	switch t {
	case VarintType:
		_, err := c.ConsumeVarint()
		return err
	case BytesType:
		sub, err := c.TakeLengthDelimited()
		if err != nil {
			return err
		}
		c.cur.off = sub.end
		return nil
	default:
		_, err := c.ConsumeBytes(t.FixedSize())
		return err
	}
}
