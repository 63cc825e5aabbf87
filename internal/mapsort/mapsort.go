// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mapsort provides sorted access to Go maps.
//
// Hashed containers have no order of their own, but their encoding must not
// depend on map iteration order, so they are always walked by ascending key.
// Keys are ordered by cmp.Compare, which puts NaN first. NaN keys never equal
// one another, so a map may hold several; their order among themselves is
// unspecified.
package mapsort

import (
	"cmp"
	"slices"
)

// Keys returns the keys of m in ascending order.
func Keys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

type entry[K cmp.Ordered, V any] struct {
	k K
	v V
}

// entries returns the entries of m in ascending key order. Values are taken
// while ranging over m, since a NaN key cannot be looked up again.
func entries[M ~map[K]V, K cmp.Ordered, V any](m M) []entry[K, V] {
	es := make([]entry[K, V], 0, len(m))
	for k, v := range m {
		es = append(es, entry[K, V]{k, v})
	}
	slices.SortFunc(es, func(a, b entry[K, V]) int { return cmp.Compare(a.k, b.k) })
	return es
}

// Range calls f for each entry in m in ascending key order.
// Iteration stops early if f returns false.
func Range[M ~map[K]V, K cmp.Ordered, V any](m M, f func(K, V) bool) {
	for _, e := range entries(m) {
		if !f(e.k, e.v) {
			return
		}
	}
}

// RangeReverse is like Range but visits keys in descending order.
func RangeReverse[M ~map[K]V, K cmp.Ordered, V any](m M, f func(K, V) bool) {
	es := entries(m)
	for i := len(es) - 1; i >= 0; i-- {
		if !f(es[i].k, es[i].v) {
			return
		}
	}
}
