// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import "github.com/golang/bilrost/wire"

// Oneof is implemented by the glue of a oneof, a group of fields of which at
// most one is present.
//
// The glue usually holds the oneof as a Go interface value with one wrapper
// type per member, and implements Oneof on a small adapter around a pointer
// to it. Members are encoded with the Always field kind, so that a member
// holding an empty value is still present.
type Oneof interface {
	// Current returns the tag of the member held, if any.
	Current() (wire.Number, bool)
}

// DecodeOneof decodes the member with the given tag by calling decode,
// after checking that the oneof holds no member yet. Meeting the same member
// twice is ErrUnexpectedlyRepeated, and meeting a second member is
// ErrConflictingFields.
func DecodeOneof(o Oneof, tag wire.Number, decode func() error) error {
	if err := checkOneof(o, tag); err != nil {
		return err
	}
	return decode()
}

// DecodeOneofDistinguished is DecodeOneof for distinguished decoding.
func DecodeOneofDistinguished(o Oneof, tag wire.Number, decode func() (wire.Canonicity, error)) (wire.Canonicity, error) {
	if err := checkOneof(o, tag); err != nil {
		return wire.NotCanonical, err
	}
	return decode()
}

func checkOneof(o Oneof, tag wire.Number) error {
	cur, ok := o.Current()
	switch {
	case !ok:
		return nil
	case cur == tag:
		return errKind(wire.ErrUnexpectedlyRepeated)
	default:
		return errKind(wire.ErrConflictingFields)
	}
}
