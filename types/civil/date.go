// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package civil provides calendar dates and wall-clock times that carry no
// time zone, along with their bilrost encodings.
//
// Each type is encoded through a proxy of a few integers, packed into one
// length-delimited value with trailing zeros trimmed. A Date is the pair
// [year, day of year counted from zero]; a Time is
// [hour, minute, second, nanosecond]; a DateTime concatenates the two, so
// an encoded Date also decodes as a DateTime at midnight.
package civil

import (
	"fmt"
	"time"

	"github.com/golang/bilrost/encoding"
	"github.com/golang/bilrost/wire"
)

// The range of years a Date can hold.
const (
	MinYear = -262144
	MaxYear = 262143
)

// Date is a day in the proleptic Gregorian calendar.
//
// The zero Date stands for January 1 of year 0, which is the empty value of
// the encoding. Date{Year: 0, Month: time.January, Day: 1} denotes the same
// day and decodes as the zero Date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	if y == 0 && m == time.January && d == 1 {
		return Date{}
	}
	return Date{y, m, d}
}

func (d Date) norm() Date {
	if d == (Date{}) {
		return Date{0, time.January, 1}
	}
	return d
}

// In returns the time at midnight starting d in loc.
func (d Date) In(loc *time.Location) time.Time {
	d = d.norm()
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// IsValid reports whether d names a real day within [MinYear, MaxYear].
func (d Date) IsValid() bool {
	n := d.norm()
	if n.Year < MinYear || n.Year > MaxYear {
		return false
	}
	return DateOf(n.In(time.UTC)).norm() == n
}

// Equal reports whether d and e are the same day.
func (d Date) Equal(e Date) bool { return d.norm() == e.norm() }

// YearDay returns the day of the year of d, in [1, 366].
func (d Date) YearDay() int { return d.In(time.UTC).YearDay() }

func (d Date) String() string {
	n := d.norm()
	return fmt.Sprintf("%04d-%02d-%02d", n.Year, int(n.Month), n.Day)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysIn(year int) int {
	if isLeap(year) {
		return 366
	}
	return 365
}

func errDomain() error { return wire.NewError(wire.ErrOutOfDomainValue) }

// dateFromOrdinal returns the date on day ordinal0 (counted from zero) of year.
func dateFromOrdinal(year, ordinal0 int32) (Date, error) {
	y, o := int(year), int(ordinal0)
	if y < MinYear || y > MaxYear || o < 0 || o >= daysIn(y) {
		return Date{}, errDomain()
	}
	return DateOf(time.Date(y, time.January, 1+o, 0, 0, 0, 0, time.UTC)), nil
}

// DateProxy is the proxy Date is encoded through.
type DateProxy = encoding.LocalProxy[int32]

// DateEncoding encodes a Date by way of its DateProxy.
type DateEncoding = encoding.Proxied[Date, DateProxy, *Date,
	encoding.Packed[int32, encoding.Varint[int32], DateProxy, *DateProxy]]

func (d *Date) IsEmpty() bool { return d.norm() == Date{0, time.January, 1} }
func (d *Date) Clear()        { *d = Date{} }

func (d *Date) NewProxy() DateProxy { return encoding.EmptyLocalProxy[int32](2) }

func (d *Date) EncodeProxy() DateProxy {
	t := d.In(time.UTC)
	return encoding.NewLocalProxy(int32(t.Year()), int32(t.YearDay()-1))
}

func (d *Date) DecodeProxy(p DateProxy) error {
	items := p.Items()
	x, err := dateFromOrdinal(items[0], items[1])
	if err != nil {
		return err
	}
	*d = x
	return nil
}

func (d *Date) DecodeProxyDistinguished(p DateProxy) (wire.Canonicity, error) {
	items, canon := p.ItemsDistinguished()
	x, err := dateFromOrdinal(items[0], items[1])
	if err != nil {
		return wire.NotCanonical, err
	}
	*d = x
	return canon, nil
}
