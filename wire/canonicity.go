// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

// Canonicity is the verdict of a distinguished decode on whether the input
// was the one canonical encoding of the value it produced.
//
// Verdicts are ordered from worst to best, and combining two verdicts keeps
// the worse one. NotCanonical and HasExtensions both rule out Canonical but
// remain distinct, since a caller may accept unknown fields while still
// rejecting non-canonical known fields.
type Canonicity int8

const (
	// NotCanonical means some known field was not in canonical form.
	NotCanonical Canonicity = iota
	// HasExtensions means every known field was canonical but unknown fields
	// were present.
	HasExtensions
	// Canonical means the input was exactly the canonical encoding.
	Canonical
)

// Worst returns the worse of c and d.
func (c Canonicity) Worst(d Canonicity) Canonicity {
	return min(c, d)
}

// Update lowers c to d if d is worse.
func (c *Canonicity) Update(d Canonicity) {
	*c = min(*c, d)
}

// Err returns nil if c is Canonical, and otherwise an error of kind
// ErrNotCanonical or ErrUnknownField.
func (c Canonicity) Err() error {
	switch c {
	case Canonical:
		return nil
	case HasExtensions:
		return NewError(ErrUnknownField)
	default:
		return NewError(ErrNotCanonical)
	}
}

// ErrKnown is like Err but tolerates unknown fields.
func (c Canonicity) ErrKnown() error {
	if c == NotCanonical {
		return NewError(ErrNotCanonical)
	}
	return nil
}

func (c Canonicity) String() string {
	switch c {
	case NotCanonical:
		return "not canonical"
	case HasExtensions:
		return "has extensions"
	case Canonical:
		return "canonical"
	}
	return "<invalid canonicity>"
}
