// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import (
	"cmp"
	"iter"
	"slices"

	"github.com/golang/bilrost/internal/mapsort"
	"github.com/golang/bilrost/wire"
)

// SortedSet is a set kept as an ascending slice without duplicates.
// Its canonical encoding lists the elements in ascending order.
type SortedSet[T cmp.Ordered] []T

// NewSortedSet returns the set of the given elements.
func NewSortedSet[T cmp.Ordered](elems ...T) SortedSet[T] {
	s := slices.Clone(elems)
	slices.Sort(s)
	return slices.Compact(s)
}

// Contains reports whether x is in the set.
func (s SortedSet[T]) Contains(x T) bool {
	_, ok := slices.BinarySearch(s, x)
	return ok
}

func (s *SortedSet[T]) IsEmpty() bool { return len(*s) == 0 }
func (s *SortedSet[T]) Clear()        { *s = nil }
func (s *SortedSet[T]) Len() int      { return len(*s) }

func (s *SortedSet[T]) All() iter.Seq[T] {
	return (*Slice[T])(s).All()
}

func (s *SortedSet[T]) Backward() iter.Seq[T] {
	return (*Slice[T])(s).Backward()
}

// Insert adds x to the set. A duplicate is ErrUnexpectedlyRepeated.
func (s *SortedSet[T]) Insert(x T) error {
	i, found := slices.BinarySearch(*s, x)
	if found {
		return errKind(wire.ErrUnexpectedlyRepeated)
	}
	*s = slices.Insert(*s, i, x)
	return nil
}

// InsertDistinguished is like Insert, but reports NotCanonical if x is not
// greater than every element already present.
func (s *SortedSet[T]) InsertDistinguished(x T) (wire.Canonicity, error) {
	if n := len(*s); n == 0 || cmp.Less((*s)[n-1], x) {
		*s = append(*s, x)
		return wire.Canonical, nil
	}
	if err := s.Insert(x); err != nil {
		return wire.NotCanonical, err
	}
	return wire.NotCanonical, nil
}

// HashSet is a set backed by a Go map.
//
// A map has no order, so a HashSet is encoded in ascending element order
// to keep its encoding independent of iteration order. Distinguished
// decoding rejects duplicates but does not check the order of arrival.
type HashSet[T cmp.Ordered] map[T]struct{}

// NewHashSet returns the set of the given elements.
func NewHashSet[T cmp.Ordered](elems ...T) HashSet[T] {
	s := make(HashSet[T], len(elems))
	for _, x := range elems {
		s[x] = struct{}{}
	}
	return s
}

func (s *HashSet[T]) IsEmpty() bool { return len(*s) == 0 }
func (s *HashSet[T]) Clear()        { *s = nil }
func (s *HashSet[T]) Len() int      { return len(*s) }

func (s *HashSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		mapsort.Range(*s, func(x T, _ struct{}) bool { return yield(x) })
	}
}

func (s *HashSet[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		mapsort.RangeReverse(*s, func(x T, _ struct{}) bool { return yield(x) })
	}
}

// Insert adds x to the set. A duplicate is ErrUnexpectedlyRepeated.
func (s *HashSet[T]) Insert(x T) error {
	if *s == nil {
		*s = make(HashSet[T])
	}
	if _, ok := (*s)[x]; ok {
		return errKind(wire.ErrUnexpectedlyRepeated)
	}
	(*s)[x] = struct{}{}
	return nil
}

func (s *HashSet[T]) InsertDistinguished(x T) (wire.Canonicity, error) {
	if err := s.Insert(x); err != nil {
		return wire.NotCanonical, err
	}
	return wire.Canonical, nil
}
