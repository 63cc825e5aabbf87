// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import "github.com/golang/bilrost/wire"

// Map encodes a Mapping as one length-delimited value holding its entries
// back to back, each entry a key value followed by a value value.
type Map[K, V any, KE ValueEncoder[K], VE ValueEncoder[V], M any, PM MappingPtr[K, V, M]] struct {
	Key   KE
	Value VE
}

func (Map[K, V, KE, VE, M, PM]) WireType() wire.Type { return wire.BytesType }
func (Map[K, V, KE, VE, M, PM]) IsEmpty(v *M) bool   { return PM(v).IsEmpty() }
func (Map[K, V, KE, VE, M, PM]) Clear(v *M)          { PM(v).Clear() }

// entrySize returns the size of every entry, or 0 if entries vary in size.
func (e Map[K, V, KE, VE, M, PM]) entrySize() int {
	k, v := e.Key.WireType().FixedSize(), e.Value.WireType().FixedSize()
	if k == 0 || v == 0 {
		return 0
	}
	return k + v
}

func (e Map[K, V, KE, VE, M, PM]) contentLen(m *M) int {
	if n := e.entrySize(); n > 0 {
		return n * PM(m).Len()
	}
	total := 0
	for k, v := range PM(m).All() {
		total += e.Key.ValueLen(&k) + e.Value.ValueLen(&v)
	}
	return total
}

func (e Map[K, V, KE, VE, M, PM]) AppendValue(b []byte, m *M) []byte {
	b = wire.AppendVarint(b, uint64(e.contentLen(m)))
	for k, v := range PM(m).All() {
		b = e.Key.AppendValue(b, &k)
		b = e.Value.AppendValue(b, &v)
	}
	return b
}

func (e Map[K, V, KE, VE, M, PM]) PrependValue(rb *wire.ReverseBuffer, m *M) {
	end := rb.Len()
	for k, v := range PM(m).Backward() {
		e.Value.PrependValue(rb, &v)
		e.Key.PrependValue(rb, &k)
	}
	wire.PrependVarint(rb, uint64(rb.Len()-end))
}

func (e Map[K, V, KE, VE, M, PM]) ValueLen(m *M) int {
	n := e.contentLen(m)
	return wire.SizeVarint(uint64(n)) + n
}

func (e Map[K, V, KE, VE, M, PM]) takeRegion(c wire.Capped) (wire.Capped, error) {
	sub, err := c.TakeLengthDelimited()
	if err != nil {
		return sub, err
	}
	if n := e.entrySize(); n > 0 && sub.Remaining()%n != 0 {
		return sub, errKind(wire.ErrTruncated)
	}
	return sub, nil
}

func (e Map[K, V, KE, VE, M, PM]) DecodeValue(m *M, c wire.Capped, ctx wire.DecodeContext) error {
	sub, err := e.takeRegion(c)
	if err != nil {
		return err
	}
	mapping := PM(m)
	for sub.HasRemaining() {
		var k K
		e.Key.Clear(&k)
		if err := e.Key.DecodeValue(&k, sub, ctx); err != nil {
			return err
		}
		var v V
		e.Value.Clear(&v)
		if err := e.Value.DecodeValue(&v, sub, ctx); err != nil {
			return err
		}
		if err := mapping.Insert(k, v); err != nil {
			return err
		}
	}
	return nil
}

func (e Map[K, V, KE, VE, M, PM]) DecodeValueDistinguished(m *M, c wire.Capped, allowEmpty bool, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	sub, err := e.takeRegion(c)
	if err != nil {
		return wire.NotCanonical, err
	}
	if !sub.HasRemaining() {
		return emptyVerdict(allowEmpty, true), nil
	}
	mapping := distinguishedMapping[K, V](PM(m))
	canon := wire.Canonical
	for sub.HasRemaining() {
		var k K
		e.Key.Clear(&k)
		kc, err := e.Key.DecodeValueDistinguished(&k, sub, true, ctx)
		if err != nil {
			return wire.NotCanonical, err
		}
		if err := update(ctx, &canon, kc); err != nil {
			return wire.NotCanonical, err
		}
		var v V
		e.Value.Clear(&v)
		vc, err := e.Value.DecodeValueDistinguished(&v, sub, true, ctx)
		if err != nil {
			return wire.NotCanonical, err
		}
		if err := update(ctx, &canon, vc); err != nil {
			return wire.NotCanonical, err
		}
		ic, err := mapping.InsertDistinguished(k, v)
		if err != nil {
			return wire.NotCanonical, err
		}
		if err := update(ctx, &canon, ic); err != nil {
			return wire.NotCanonical, err
		}
	}
	return canon, nil
}

func (e Map[K, V, KE, VE, M, PM]) AppendField(b []byte, tag wire.Number, m *M, tw *wire.TagWriter) []byte {
	if PM(m).IsEmpty() {
		return b
	}
	b = tw.AppendKey(b, tag, wire.BytesType)
	return e.AppendValue(b, m)
}

func (e Map[K, V, KE, VE, M, PM]) PrependField(rb *wire.ReverseBuffer, tag wire.Number, m *M, tw *wire.TagRevWriter) {
	if PM(m).IsEmpty() {
		return
	}
	tw.BeginField(rb, tag, wire.BytesType)
	e.PrependValue(rb, m)
}

func (e Map[K, V, KE, VE, M, PM]) FieldLen(tag wire.Number, m *M, tm *wire.TagMeasurer) int {
	if PM(m).IsEmpty() {
		return 0
	}
	return tm.KeyLen(tag) + e.ValueLen(m)
}

func (e Map[K, V, KE, VE, M, PM]) DecodeField(t wire.Type, duplicated bool, m *M, c wire.Capped, ctx wire.DecodeContext) error {
	if duplicated {
		return errKind(wire.ErrUnexpectedlyRepeated)
	}
	if err := wire.CheckType(wire.BytesType, t); err != nil {
		return err
	}
	return e.DecodeValue(m, c, ctx)
}

func (e Map[K, V, KE, VE, M, PM]) DecodeFieldDistinguished(t wire.Type, duplicated bool, m *M, c wire.Capped, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	if duplicated {
		return wire.NotCanonical, errKind(wire.ErrUnexpectedlyRepeated)
	}
	if err := wire.CheckType(wire.BytesType, t); err != nil {
		return wire.NotCanonical, err
	}
	return e.DecodeValueDistinguished(m, c, false, ctx)
}
