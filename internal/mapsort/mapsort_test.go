// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapsort_test

import (
	"math"
	"testing"

	"github.com/golang/bilrost/internal/mapsort"
	"github.com/google/go-cmp/cmp"
)

func TestRange(t *testing.T) {
	m := map[string]int{"c": 2, "a": 0, "b": 1, "d": 3}
	var got []string
	mapsort.Range(m, func(k string, v int) bool {
		got = append(got, k)
		return true
	})
	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, got); diff != "" {
		t.Errorf("Range order mismatch (-want +got):\n%s", diff)
	}

	got = got[:0]
	mapsort.RangeReverse(m, func(k string, v int) bool {
		got = append(got, k)
		return len(got) < 2
	})
	if diff := cmp.Diff([]string{"d", "c"}, got); diff != "" {
		t.Errorf("RangeReverse order mismatch (-want +got):\n%s", diff)
	}
}

func TestKeysSigned(t *testing.T) {
	m := map[int32]bool{3: true, -7: true, 0: false, 100: true}
	if diff := cmp.Diff([]int32{-7, 0, 3, 100}, mapsort.Keys(m)); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
}

func TestRangeNaN(t *testing.T) {
	m := map[float64]string{math.NaN(): "nan", 2: "two", math.Inf(-1): "-inf"}
	var got []string
	mapsort.Range(m, func(k float64, v string) bool {
		got = append(got, v)
		return true
	})
	if diff := cmp.Diff([]string{"nan", "-inf", "two"}, got); diff != "" {
		t.Errorf("Range values mismatch (-want +got):\n%s", diff)
	}

	got = got[:0]
	mapsort.RangeReverse(m, func(k float64, v string) bool {
		got = append(got, v)
		return true
	})
	if diff := cmp.Diff([]string{"two", "-inf", "nan"}, got); diff != "" {
		t.Errorf("RangeReverse values mismatch (-want +got):\n%s", diff)
	}
}
