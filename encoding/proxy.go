// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import (
	"github.com/golang/bilrost/internal/errors"
	"github.com/golang/bilrost/wire"
)

// Proxiable is implemented by types that are encoded by way of another
// type, their proxy of type P.
//
// The proxy must be empty exactly when the value is, and EncodeProxy
// followed by DecodeProxy must reproduce the value.
type Proxiable[P any] interface {
	EmptyState
	// NewProxy returns the empty proxy that decoding fills in.
	NewProxy() P
	// EncodeProxy returns the proxy of the receiver.
	EncodeProxy() P
	// DecodeProxy sets the receiver from a decoded proxy. A proxy that
	// corresponds to no value is ErrOutOfDomainValue.
	DecodeProxy(p P) error
}

// DistinguishedProxiable is a Proxiable that can also tell whether a decoded
// proxy is the one EncodeProxy would have produced.
type DistinguishedProxiable[P any] interface {
	Proxiable[P]
	DecodeProxyDistinguished(p P) (wire.Canonicity, error)
}

// ProxiablePtr constrains PT to be a pointer to T implementing Proxiable.
type ProxiablePtr[T, P any] interface {
	*T
	Proxiable[P]
}

// Proxied encodes a T as its proxy P, using the strategy E for the proxy.
type Proxied[T, P any, PT ProxiablePtr[T, P], E ValueEncoder[P]] struct{ Proxy E }

func (e Proxied[T, P, PT, E]) WireType() wire.Type { return e.Proxy.WireType() }
func (Proxied[T, P, PT, E]) IsEmpty(v *T) bool     { return PT(v).IsEmpty() }
func (Proxied[T, P, PT, E]) Clear(v *T)            { PT(v).Clear() }

func (e Proxied[T, P, PT, E]) AppendValue(b []byte, v *T) []byte {
	p := PT(v).EncodeProxy()
	return e.Proxy.AppendValue(b, &p)
}

func (e Proxied[T, P, PT, E]) PrependValue(rb *wire.ReverseBuffer, v *T) {
	p := PT(v).EncodeProxy()
	e.Proxy.PrependValue(rb, &p)
}

func (e Proxied[T, P, PT, E]) ValueLen(v *T) int {
	p := PT(v).EncodeProxy()
	return e.Proxy.ValueLen(&p)
}

func (e Proxied[T, P, PT, E]) DecodeValue(v *T, c wire.Capped, ctx wire.DecodeContext) error {
	p := PT(v).NewProxy()
	if err := e.Proxy.DecodeValue(&p, c, ctx); err != nil {
		return err
	}
	return PT(v).DecodeProxy(p)
}

func (e Proxied[T, P, PT, E]) DecodeValueDistinguished(v *T, c wire.Capped, allowEmpty bool, ctx wire.RestrictedContext) (wire.Canonicity, error) {
	dp, ok := any(PT(v)).(DistinguishedProxiable[P])
	if !ok {
		errors.Panicf("%T does not support distinguished decoding", v)
	}
	p := dp.NewProxy()
	canon, err := e.Proxy.DecodeValueDistinguished(&p, c, allowEmpty, ctx)
	if err != nil {
		return wire.NotCanonical, err
	}
	pc, err := dp.DecodeProxyDistinguished(p)
	if err != nil {
		return wire.NotCanonical, err
	}
	canon.Update(pc)
	return canon, nil
}
