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

// Entry is one key/value pair of a SortedMap.
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// SortedMap is a map kept as a slice of entries in ascending key order.
type SortedMap[K cmp.Ordered, V any] []Entry[K, V]

func (m SortedMap[K, V]) search(k K) (int, bool) {
	return slices.BinarySearchFunc(m, k, func(e Entry[K, V], k K) int {
		return cmp.Compare(e.Key, k)
	})
}

// Get returns the value stored under k.
func (m SortedMap[K, V]) Get(k K) (V, bool) {
	if i, ok := m.search(k); ok {
		return m[i].Value, true
	}
	var zero V
	return zero, false
}

// Set stores v under k, replacing any previous value.
func (m *SortedMap[K, V]) Set(k K, v V) {
	i, ok := m.search(k)
	if ok {
		(*m)[i].Value = v
		return
	}
	*m = slices.Insert(*m, i, Entry[K, V]{k, v})
}

func (m *SortedMap[K, V]) IsEmpty() bool { return len(*m) == 0 }
func (m *SortedMap[K, V]) Clear()        { *m = nil }
func (m *SortedMap[K, V]) Len() int      { return len(*m) }

func (m *SortedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range *m {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

func (m *SortedMap[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := len(*m) - 1; i >= 0; i-- {
			if !yield((*m)[i].Key, (*m)[i].Value) {
				return
			}
		}
	}
}

// Insert adds an entry. A duplicate key is ErrUnexpectedlyRepeated.
func (m *SortedMap[K, V]) Insert(k K, v V) error {
	i, ok := m.search(k)
	if ok {
		return errKind(wire.ErrUnexpectedlyRepeated)
	}
	*m = slices.Insert(*m, i, Entry[K, V]{k, v})
	return nil
}

// InsertDistinguished is like Insert, but reports NotCanonical unless k is
// greater than every key already present.
func (m *SortedMap[K, V]) InsertDistinguished(k K, v V) (wire.Canonicity, error) {
	if n := len(*m); n == 0 || cmp.Less((*m)[n-1].Key, k) {
		*m = append(*m, Entry[K, V]{k, v})
		return wire.Canonical, nil
	}
	if err := m.Insert(k, v); err != nil {
		return wire.NotCanonical, err
	}
	return wire.NotCanonical, nil
}

// HashMap is a Mapping backed by a Go map. Like HashSet, it is encoded in
// ascending key order, and distinguished decoding checks only for duplicate
// keys.
type HashMap[K cmp.Ordered, V any] map[K]V

func (m *HashMap[K, V]) IsEmpty() bool { return len(*m) == 0 }
func (m *HashMap[K, V]) Clear()        { *m = nil }
func (m *HashMap[K, V]) Len() int      { return len(*m) }

func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) { mapsort.Range(*m, yield) }
}

func (m *HashMap[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) { mapsort.RangeReverse(*m, yield) }
}

// Insert adds an entry. A duplicate key is ErrUnexpectedlyRepeated.
func (m *HashMap[K, V]) Insert(k K, v V) error {
	if *m == nil {
		*m = make(HashMap[K, V])
	}
	if _, ok := (*m)[k]; ok {
		return errKind(wire.ErrUnexpectedlyRepeated)
	}
	(*m)[k] = v
	return nil
}

func (m *HashMap[K, V]) InsertDistinguished(k K, v V) (wire.Canonicity, error) {
	if err := m.Insert(k, v); err != nil {
		return wire.NotCanonical, err
	}
	return wire.Canonical, nil
}
