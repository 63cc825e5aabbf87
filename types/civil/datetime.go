// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import (
	"time"

	"github.com/golang/bilrost/encoding"
	"github.com/golang/bilrost/wire"
)

// DateTime is a date and a time of day, with no time zone.
type DateTime struct {
	Date Date
	Time Time
}

// DateTimeOf returns the date and time of t in t's location.
func DateTimeOf(t time.Time) DateTime {
	return DateTime{DateOf(t), TimeOf(t)}
}

// In returns the instant dt denotes in loc.
func (dt DateTime) In(loc *time.Location) time.Time {
	d := dt.Date.norm()
	return time.Date(d.Year, d.Month, d.Day, dt.Time.Hour, dt.Time.Minute, dt.Time.Second, dt.Time.Nanosecond, loc)
}

// IsValid reports whether both parts of dt are valid.
func (dt DateTime) IsValid() bool { return dt.Date.IsValid() && dt.Time.IsValid() }

func (dt DateTime) String() string { return dt.Date.String() + "T" + dt.Time.String() }

// DateTimeProxy is the proxy DateTime is encoded through.
type DateTimeProxy = encoding.LocalProxy[int32]

// DateTimeEncoding encodes a DateTime by way of its DateTimeProxy.
type DateTimeEncoding = encoding.Proxied[DateTime, DateTimeProxy, *DateTime,
	encoding.Packed[int32, encoding.Varint[int32], DateTimeProxy, *DateTimeProxy]]

func (dt *DateTime) IsEmpty() bool { return dt.Date.IsEmpty() && dt.Time.IsEmpty() }
func (dt *DateTime) Clear()        { *dt = DateTime{} }

func (dt *DateTime) NewProxy() DateTimeProxy { return encoding.EmptyLocalProxy[int32](6) }

func (dt *DateTime) EncodeProxy() DateTimeProxy {
	t := dt.Date.In(time.UTC)
	tm := dt.Time
	return encoding.NewLocalProxy(
		int32(t.Year()), int32(t.YearDay()-1),
		int32(tm.Hour), int32(tm.Minute), int32(tm.Second), int32(tm.Nanosecond))
}

func (dt *DateTime) fromItems(x []int32) error {
	d, err := dateFromOrdinal(x[0], x[1])
	if err != nil {
		return err
	}
	t, err := timeOf(int64(x[2]), int64(x[3]), int64(x[4]), int64(x[5]))
	if err != nil {
		return err
	}
	*dt = DateTime{d, t}
	return nil
}

func (dt *DateTime) DecodeProxy(p DateTimeProxy) error {
	return dt.fromItems(p.Items())
}

func (dt *DateTime) DecodeProxyDistinguished(p DateTimeProxy) (wire.Canonicity, error) {
	x, canon := p.ItemsDistinguished()
	if err := dt.fromItems(x); err != nil {
		return wire.NotCanonical, err
	}
	return canon, nil
}
