// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import (
	"iter"

	"github.com/golang/bilrost/internal/errors"
	"github.com/golang/bilrost/wire"
)

// Collection is a container that can be encoded as a repeated field.
//
// All and Backward must visit the same elements in opposite orders, and that
// order is the encoding order. Insert adds a decoded element; it fails with a
// *wire.DecodeError when the container cannot hold it, such as a duplicate
// set element or an element beyond a fixed capacity.
type Collection[T any] interface {
	EmptyState
	Len() int
	All() iter.Seq[T]
	Backward() iter.Seq[T]
	Insert(x T) error
}

// DistinguishedCollection is a Collection whose insertions are also checked
// for canonical order. InsertDistinguished reports NotCanonical when x arrives
// out of the order in which All would visit it.
type DistinguishedCollection[T any] interface {
	Collection[T]
	InsertDistinguished(x T) (wire.Canonicity, error)
}

// Mapping is an associative container that can be encoded as a map field.
// It follows the same rules as Collection, over key/value pairs.
type Mapping[K, V any] interface {
	EmptyState
	Len() int
	All() iter.Seq2[K, V]
	Backward() iter.Seq2[K, V]
	Insert(k K, v V) error
}

// DistinguishedMapping is a Mapping whose insertions are checked for
// canonical key order.
type DistinguishedMapping[K, V any] interface {
	Mapping[K, V]
	InsertDistinguished(k K, v V) (wire.Canonicity, error)
}

// CollectionPtr constrains PC to be a pointer to C implementing Collection.
// Strategies over collections take both, so that decoding can build a C in
// place.
type CollectionPtr[T, C any] interface {
	*C
	Collection[T]
}

// MappingPtr constrains PM to be a pointer to M implementing Mapping.
type MappingPtr[K, V, M any] interface {
	*M
	Mapping[K, V]
}

func distinguishedCollection[T any](c Collection[T]) DistinguishedCollection[T] {
	dc, ok := c.(DistinguishedCollection[T])
	if !ok {
		errors.Panicf("%T does not support distinguished decoding", c)
	}
	return dc
}

func distinguishedMapping[K, V any](m Mapping[K, V]) DistinguishedMapping[K, V] {
	dm, ok := m.(DistinguishedMapping[K, V])
	if !ok {
		errors.Panicf("%T does not support distinguished decoding", m)
	}
	return dm
}

// Slice is the plain sequence Collection. Its order is insertion order, so
// any order is canonical.
type Slice[T any] []T

func (s *Slice[T]) IsEmpty() bool { return len(*s) == 0 }
func (s *Slice[T]) Clear()        { *s = nil }
func (s *Slice[T]) Len() int      { return len(*s) }

func (s *Slice[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range *s {
			if !yield(x) {
				return
			}
		}
	}
}

func (s *Slice[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(*s) - 1; i >= 0; i-- {
			if !yield((*s)[i]) {
				return
			}
		}
	}
}

func (s *Slice[T]) Insert(x T) error {
	*s = append(*s, x)
	return nil
}

func (s *Slice[T]) InsertDistinguished(x T) (wire.Canonicity, error) {
	*s = append(*s, x)
	return wire.Canonical, nil
}
