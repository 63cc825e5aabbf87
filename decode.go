// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bilrost

import (
	"github.com/golang/bilrost/encoding"
	"github.com/golang/bilrost/wire"
)

// UnmarshalOptions configures the unmarshaler.
//
// Example usage:
//
//	err := UnmarshalOptions{Distinguished: true, RestrictTo: Canonical}.Unmarshal(b, m)
type UnmarshalOptions struct {
	// Distinguished decodes in distinguished mode, which checks that the
	// input is the canonical encoding of the decoded value.
	Distinguished bool

	// RestrictTo is the worst canonicity a distinguished decode accepts.
	// A field whose verdict falls below it fails the decode with
	// wire.ErrNotCanonical or wire.ErrUnknownField, annotated with the path
	// to that field. The zero value accepts any well-formed input.
	RestrictTo Canonicity
}

// Unmarshal decodes b into m, replacing its contents.
// On error m is left empty.
func Unmarshal(b []byte, m Message) error {
	return UnmarshalOptions{}.Unmarshal(b, m)
}

// UnmarshalLengthDelimited decodes a length-prefixed message from the start
// of b into m and returns the number of bytes consumed.
func UnmarshalLengthDelimited(b []byte, m Message) (int, error) {
	return UnmarshalOptions{}.UnmarshalLengthDelimited(b, m)
}

// UnmarshalDistinguished decodes b into m and reports whether b was the
// canonical encoding of the result.
func UnmarshalDistinguished(b []byte, m Message) (Canonicity, error) {
	return UnmarshalOptions{Distinguished: true}.UnmarshalDistinguished(b, m)
}

// UnmarshalRestricted is like UnmarshalDistinguished, but fails as soon as a
// field's verdict is worse than restrictTo.
func UnmarshalRestricted(b []byte, m Message, restrictTo Canonicity) (Canonicity, error) {
	return UnmarshalOptions{Distinguished: true, RestrictTo: restrictTo}.UnmarshalDistinguished(b, m)
}

// Unmarshal decodes b into m, replacing its contents.
// On error m is left empty.
func (o UnmarshalOptions) Unmarshal(b []byte, m Message) error {
	_, err := o.unmarshal(wire.NewCapped(b), m)
	return err
}

// UnmarshalDistinguished decodes b into m in distinguished mode, regardless
// of o.Distinguished, and returns the verdict.
func (o UnmarshalOptions) UnmarshalDistinguished(b []byte, m Message) (Canonicity, error) {
	o.Distinguished = true
	return o.unmarshal(wire.NewCapped(b), m)
}

// UnmarshalLengthDelimited decodes a length-prefixed message from the start
// of b into m and returns the number of bytes consumed.
func (o UnmarshalOptions) UnmarshalLengthDelimited(b []byte, m Message) (int, error) {
	c := wire.NewCapped(b)
	sub, err := c.TakeLengthDelimited()
	if err != nil {
		m.Clear()
		return 0, err
	}
	if _, err := o.unmarshal(sub, m); err != nil {
		return 0, err
	}
	return c.Offset(), nil
}

func (o UnmarshalOptions) unmarshal(c wire.Capped, m Message) (Canonicity, error) {
	m.Clear()
	var (
		canon = Canonical
		err   error
	)
	if o.Distinguished {
		canon, err = encoding.MergeDistinguished(m, c, wire.RestrictedContext{RestrictTo: o.RestrictTo})
	} else {
		err = encoding.Merge(m, c, wire.DecodeContext{})
	}
	if err != nil {
		m.Clear()
		return NotCanonical, err
	}
	return canon, nil
}
