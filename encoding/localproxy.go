// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import (
	"iter"
	"slices"

	"github.com/golang/bilrost/wire"
)

// LocalProxy is a collection with a fixed capacity, used as the proxy of a
// value made of a few numbers such as a date.
//
// Only the first Len elements are live; the rest are the zero value. Trailing
// zero elements are trimmed before encoding, so a LocalProxy encodes as the
// shortest prefix of its elements that determines them all.
type LocalProxy[T comparable] struct {
	items []T
	n     int // live elements; only Insert increases it, up to len(items)
}

// EmptyLocalProxy returns a proxy with room for capacity elements and none
// live. Decoding starts from it.
func EmptyLocalProxy[T comparable](capacity int) LocalProxy[T] {
	return LocalProxy[T]{items: make([]T, capacity)}
}

// NewLocalProxy returns a proxy holding items, with capacity len(items), and
// trailing zero elements trimmed.
func NewLocalProxy[T comparable](items ...T) LocalProxy[T] {
	p := LocalProxy[T]{items: append([]T(nil), items...), n: len(items)}
	var zero T
	for p.n > 0 && p.items[p.n-1] == zero {
		p.n--
	}
	return p
}

// Cap returns the capacity of p.
func (p *LocalProxy[T]) Cap() int { return len(p.items) }

func (p *LocalProxy[T]) IsEmpty() bool { return p.n == 0 }

func (p *LocalProxy[T]) Clear() {
	clear(p.items)
	p.n = 0
}

func (p *LocalProxy[T]) Len() int { return p.n }

func (p *LocalProxy[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range p.items[:p.n] {
			if !yield(x) {
				return
			}
		}
	}
}

func (p *LocalProxy[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := p.n - 1; i >= 0; i-- {
			if !yield(p.items[i]) {
				return
			}
		}
	}
}

// Insert appends x. Exceeding the capacity is ErrInvalidValue. A zero x is
// kept live even if nothing follows it; ItemsDistinguished reports that.
func (p *LocalProxy[T]) Insert(x T) error {
	if p.n >= len(p.items) {
		return errKind(wire.ErrInvalidValue)
	}
	p.items[p.n] = x
	p.n++
	return nil
}

func (p *LocalProxy[T]) InsertDistinguished(x T) (wire.Canonicity, error) {
	if err := p.Insert(x); err != nil {
		return wire.NotCanonical, err
	}
	return wire.Canonical, nil
}

// Items returns all capacity elements, the live ones followed by zero values.
func (p *LocalProxy[T]) Items() []T {
	return append([]T(nil), p.items...)
}

// ItemsDistinguished is like Items, and also reports NotCanonical if the last
// live element is zero, since encoding would have trimmed it.
func (p *LocalProxy[T]) ItemsDistinguished() ([]T, wire.Canonicity) {
	var zero T
	if p.n > 0 && p.items[p.n-1] == zero {
		return p.Items(), wire.NotCanonical
	}
	return p.Items(), wire.Canonical
}

// Equal reports whether p and q have the same capacity and live elements.
func (p LocalProxy[T]) Equal(q LocalProxy[T]) bool {
	return len(p.items) == len(q.items) && slices.Equal(p.items[:p.n], q.items[:q.n])
}
