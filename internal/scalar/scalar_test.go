// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import "testing"

func TestPtrValue(t *testing.T) {
	p := Ptr(uint32(7))
	if got := Value(p); got != 7 {
		t.Errorf("Value(Ptr(7)) = %d", got)
	}
	if got := Value[string](nil); got != "" {
		t.Errorf("Value(nil) = %q, want empty", got)
	}
}
