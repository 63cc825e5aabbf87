// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import (
	"fmt"
	"time"

	"github.com/golang/bilrost/encoding"
	"github.com/golang/bilrost/wire"
)

// Time is a time of day with nanosecond precision. There are no leap
// seconds. The zero Time is midnight.
type Time struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// TimeOf returns the time of day of t in t's location.
func TimeOf(t time.Time) Time {
	return Time{t.Hour(), t.Minute(), t.Second(), t.Nanosecond()}
}

// IsValid reports whether every component of t is in range.
func (t Time) IsValid() bool {
	return t.Hour >= 0 && t.Hour < 24 &&
		t.Minute >= 0 && t.Minute < 60 &&
		t.Second >= 0 && t.Second < 60 &&
		t.Nanosecond >= 0 && t.Nanosecond < 1e9
}

func (t Time) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanosecond != 0 {
		s += fmt.Sprintf(".%09d", t.Nanosecond)
	}
	return s
}

func timeOf(h, m, s, ns int64) (Time, error) {
	t := Time{int(h), int(m), int(s), int(ns)}
	if !t.IsValid() {
		return Time{}, errDomain()
	}
	return t, nil
}

// TimeProxy is the proxy Time is encoded through.
type TimeProxy = encoding.LocalProxy[uint32]

// TimeEncoding encodes a Time by way of its TimeProxy.
type TimeEncoding = encoding.Proxied[Time, TimeProxy, *Time,
	encoding.Packed[uint32, encoding.Varint[uint32], TimeProxy, *TimeProxy]]

func (t *Time) IsEmpty() bool { return *t == Time{} }
func (t *Time) Clear()        { *t = Time{} }

func (t *Time) NewProxy() TimeProxy { return encoding.EmptyLocalProxy[uint32](4) }

func (t *Time) EncodeProxy() TimeProxy {
	return encoding.NewLocalProxy(uint32(t.Hour), uint32(t.Minute), uint32(t.Second), uint32(t.Nanosecond))
}

func (t *Time) DecodeProxy(p TimeProxy) error {
	x := p.Items()
	v, err := timeOf(int64(x[0]), int64(x[1]), int64(x[2]), int64(x[3]))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t *Time) DecodeProxyDistinguished(p TimeProxy) (wire.Canonicity, error) {
	x, canon := p.ItemsDistinguished()
	v, err := timeOf(int64(x[0]), int64(x[1]), int64(x[2]), int64(x[3]))
	if err != nil {
		return wire.NotCanonical, err
	}
	*t = v
	return canon, nil
}
