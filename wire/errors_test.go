// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"errors"
	"fmt"
	"testing"
)

func TestDecodeError(t *testing.T) {
	err := NewError(ErrUnexpectedlyRepeated)
	err.Push("Inner", "value").Push("Outer", "items")
	want := "bilrost: failed to decode Outer.items/Inner.value: unexpectedly repeated"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrUnexpectedlyRepeated) {
		t.Errorf("errors.Is(%v, ErrUnexpectedlyRepeated) = false", err)
	}
	if errors.Is(err, ErrTruncated) {
		t.Errorf("errors.Is(%v, ErrTruncated) = true", err)
	}
	wrapped := fmt.Errorf("reading config: %w", err)
	if got := KindOf(errors.Unwrap(wrapped)); got != ErrUnexpectedlyRepeated {
		t.Errorf("KindOf() = %v, want %v", got, ErrUnexpectedlyRepeated)
	}
	if got := KindOf(errors.New("x")); got != ErrOther {
		t.Errorf("KindOf(foreign error) = %v, want %v", got, ErrOther)
	}
}

func TestCanonicity(t *testing.T) {
	c := Canonical
	c.Update(HasExtensions)
	if c != HasExtensions {
		t.Errorf("Canonical updated with HasExtensions = %v", c)
	}
	c.Update(Canonical)
	if c != HasExtensions {
		t.Errorf("HasExtensions updated with Canonical = %v", c)
	}
	c.Update(NotCanonical)
	if c != NotCanonical {
		t.Errorf("HasExtensions updated with NotCanonical = %v", c)
	}
	if got := HasExtensions.Worst(Canonical); got != HasExtensions {
		t.Errorf("Worst = %v, want %v", got, HasExtensions)
	}

	if err := Canonical.Err(); err != nil {
		t.Errorf("Canonical.Err() = %v", err)
	}
	if err := HasExtensions.Err(); !errors.Is(err, ErrUnknownField) {
		t.Errorf("HasExtensions.Err() = %v, want %v", err, ErrUnknownField)
	}
	if err := HasExtensions.ErrKnown(); err != nil {
		t.Errorf("HasExtensions.ErrKnown() = %v", err)
	}
	if err := NotCanonical.ErrKnown(); !errors.Is(err, ErrNotCanonical) {
		t.Errorf("NotCanonical.ErrKnown() = %v, want %v", err, ErrNotCanonical)
	}
}

func TestRestrictedContext(t *testing.T) {
	var ctx RestrictedContext
	for _, c := range []Canonicity{NotCanonical, HasExtensions, Canonical} {
		if _, err := ctx.Check(c); err != nil {
			t.Errorf("zero context Check(%v) = %v", c, err)
		}
	}
	ctx.RestrictTo = Canonical
	if _, err := ctx.Check(HasExtensions); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Check(HasExtensions) restricted to Canonical = %v", err)
	}
	ctx.RestrictTo = HasExtensions
	if _, err := ctx.Check(HasExtensions); err != nil {
		t.Errorf("Check(HasExtensions) restricted to HasExtensions = %v", err)
	}
	if _, err := ctx.Check(NotCanonical); !errors.Is(err, ErrNotCanonical) {
		t.Errorf("Check(NotCanonical) restricted to HasExtensions = %v", err)
	}
}

func TestRecursionLimit(t *testing.T) {
	var ctx DecodeContext
	for i := 0; i < 100; i++ {
		if err := ctx.LimitReached(); err != nil {
			t.Fatalf("LimitReached() at depth %d = %v", i, err)
		}
		ctx = ctx.EnterRecursion()
	}
	if err := ctx.LimitReached(); !errors.Is(err, ErrRecursionLimitReached) {
		t.Errorf("LimitReached() at depth 100 = %v, want %v", err, ErrRecursionLimitReached)
	}
}
