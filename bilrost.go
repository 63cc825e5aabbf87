// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bilrost provides functions operating on bilrost messages.
//
// A bilrost encoding is a sequence of fields in ascending tag order, where
// each key stores the distance from the previous tag. Every value has exactly
// one canonical encoding, and the distinguished decoding functions report
// whether their input was it, so that an encoded message can stand in for
// the value itself when hashing or comparing.
//
// Message types implement encoding.Message. The functions here add the
// usual entry points on top of that interface.
package bilrost

import (
	"github.com/golang/bilrost/encoding"
	"github.com/golang/bilrost/wire"
)

// Message is the interface that all messages implement.
type Message = encoding.Message

// Canonicity is the verdict of a distinguished decode.
type Canonicity = wire.Canonicity

const (
	NotCanonical  = wire.NotCanonical
	HasExtensions = wire.HasExtensions
	Canonical     = wire.Canonical
)
