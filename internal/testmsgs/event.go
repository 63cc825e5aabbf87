// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testmsgs

import (
	"github.com/golang/bilrost/encoding"
	"github.com/golang/bilrost/types/civil"
	"github.com/golang/bilrost/wire"
)

// Event holds proxied fields.
type Event struct {
	Day      civil.Date                  // 1
	At       civil.Time                  // 2
	Stamp    civil.DateTime              // 3
	Holidays encoding.Slice[civil.Date]  // 4
	Window   encoding.LocalProxy[uint32] // 5, at most 2 elements
}

// NewEvent returns an empty Event. The zero Event has no room in Window.
func NewEvent() *Event {
	m := new(Event)
	m.Clear()
	return m
}

var (
	eventDay      encoding.Plain[civil.Date, civil.DateEncoding]
	eventAt       encoding.Plain[civil.Time, civil.TimeEncoding]
	eventStamp    encoding.Plain[civil.DateTime, civil.DateTimeEncoding]
	eventHolidays encoding.Unpacked[civil.Date, civil.DateEncoding, encoding.Slice[civil.Date], *encoding.Slice[civil.Date]]
	eventWindow   encoding.Packed[uint32, encoding.Varint[uint32], encoding.LocalProxy[uint32], *encoding.LocalProxy[uint32]]
)

func (m *Event) IsEmpty() bool {
	return m.Day.IsEmpty() && m.At.IsEmpty() && m.Stamp.IsEmpty() && m.Holidays.IsEmpty() && m.Window.IsEmpty()
}

func (m *Event) Clear() {
	*m = Event{Window: encoding.EmptyLocalProxy[uint32](2)}
}

func (m *Event) RawAppend(b []byte) []byte {
	var tw wire.TagWriter
	b = eventDay.AppendField(b, 1, &m.Day, &tw)
	b = eventAt.AppendField(b, 2, &m.At, &tw)
	b = eventStamp.AppendField(b, 3, &m.Stamp, &tw)
	b = eventHolidays.AppendField(b, 4, &m.Holidays, &tw)
	b = eventWindow.AppendField(b, 5, &m.Window, &tw)
	return b
}

func (m *Event) RawPrepend(rb *wire.ReverseBuffer) {
	var tw wire.TagRevWriter
	eventWindow.PrependField(rb, 5, &m.Window, &tw)
	eventHolidays.PrependField(rb, 4, &m.Holidays, &tw)
	eventStamp.PrependField(rb, 3, &m.Stamp, &tw)
	eventAt.PrependField(rb, 2, &m.At, &tw)
	eventDay.PrependField(rb, 1, &m.Day, &tw)
	tw.Finalize(rb)
}

func (m *Event) RawLen() int {
	var tm wire.TagMeasurer
	n := eventDay.FieldLen(1, &m.Day, &tm)
	n += eventAt.FieldLen(2, &m.At, &tm)
	n += eventStamp.FieldLen(3, &m.Stamp, &tm)
	n += eventHolidays.FieldLen(4, &m.Holidays, &tm)
	n += eventWindow.FieldLen(5, &m.Window, &tm)
	return n
}

func (m *Event) RawDecodeField(tag wire.Number, t wire.Type, dup bool, c wire.Capped, ctx wire.DecodeContext) error {
	switch tag {
	case 1:
		return wire.Annotate(eventDay.DecodeField(t, dup, &m.Day, c, ctx), "Event", "day")
	case 2:
		return wire.Annotate(eventAt.DecodeField(t, dup, &m.At, c, ctx), "Event", "at")
	case 3:
		return wire.Annotate(eventStamp.DecodeField(t, dup, &m.Stamp, c, ctx), "Event", "stamp")
	case 4:
		return wire.Annotate(eventHolidays.DecodeField(t, dup, &m.Holidays, c, ctx), "Event", "holidays")
	case 5:
		return wire.Annotate(eventWindow.DecodeField(t, dup, &m.Window, c, ctx), "Event", "window")
	}
	return encoding.SkipUnknown(t, c)
}

func (m *Event) RawDecodeFieldDistinguished(tag wire.Number, t wire.Type, dup bool, c wire.Capped, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	switch tag {
	case 1:
		canon, err := eventDay.DecodeFieldDistinguished(t, dup, &m.Day, c, ctx)
		return encoding.CheckField(canon, err, ctx, "Event", "day")
	case 2:
		canon, err := eventAt.DecodeFieldDistinguished(t, dup, &m.At, c, ctx)
		return encoding.CheckField(canon, err, ctx, "Event", "at")
	case 3:
		canon, err := eventStamp.DecodeFieldDistinguished(t, dup, &m.Stamp, c, ctx)
		return encoding.CheckField(canon, err, ctx, "Event", "stamp")
	case 4:
		canon, err := eventHolidays.DecodeFieldDistinguished(t, dup, &m.Holidays, c, ctx)
		return encoding.CheckField(canon, err, ctx, "Event", "holidays")
	case 5:
		// Held directly, a LocalProxy keeps a trailing zero as decoded; only
		// proxied types check trimming, through ItemsDistinguished.
		canon, err := eventWindow.DecodeFieldDistinguished(t, dup, &m.Window, c, ctx)
		return encoding.CheckField(canon, err, ctx, "Event", "window")
	}
	return encoding.SkipUnknownDistinguished(t, c)
}
