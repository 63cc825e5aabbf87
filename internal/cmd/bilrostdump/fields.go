// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/bilrost/internal/mapsort"
	"github.com/golang/bilrost/wire"
	"gopkg.in/yaml.v3"
)

// kind is the type a field is hinted to have.
type kind int

const (
	kindNone kind = iota
	kindBool
	kindUint
	kindSint
	kindFixed32
	kindFixed64
	kindSfixed32
	kindSfixed64
	kindFloat32
	kindFloat64
	kindString
	kindBytes
	kindMessage
)

// hintKinds maps the name of each hint, as a flag or a key of a hints file,
// to its kind.
var hintKinds = map[string]kind{
	"bools":     kindBool,
	"uints":     kindUint,
	"sints":     kindSint,
	"fixed32s":  kindFixed32,
	"fixed64s":  kindFixed64,
	"sfixed32s": kindSfixed32,
	"sfixed64s": kindSfixed64,
	"float32s":  kindFloat32,
	"float64s":  kindFloat64,
	"strings":   kindString,
	"bytes":     kindBytes,
	"messages":  kindMessage,
}

var kindNames = [...]string{
	kindNone:     "",
	kindBool:     "bool",
	kindUint:     "uint",
	kindSint:     "sint",
	kindFixed32:  "fixed32",
	kindFixed64:  "fixed64",
	kindSfixed32: "sfixed32",
	kindSfixed64: "sfixed64",
	kindFloat32:  "float32",
	kindFloat64:  "float64",
	kindString:   "string",
	kindBytes:    "bytes",
	kindMessage:  "message",
}

func (k kind) String() string { return kindNames[k] }

// wireType returns the wire type of a single value of kind k.
func (k kind) wireType() wire.Type {
	switch k {
	case kindFixed32, kindSfixed32, kindFloat32:
		return wire.Fixed32Type
	case kindFixed64, kindSfixed64, kindFloat64:
		return wire.Fixed64Type
	case kindString, kindBytes, kindMessage:
		return wire.BytesType
	}
	return wire.VarintType
}

// fields is a tree of fields, keyed by a field number.
// Fields representing messages have sub-fields.
type fields map[wire.Number]*field
type field struct {
	kind kind
	sub  fields // only for kindMessage, or kindNone on the way to one
}

// Set parses s as a comma-separated list of field identifiers and hints each
// as kind k. A field identifier is a dot-separated list of field
// numbers, each relative to the message of the one before.
func (fs *fields) Set(s string, k kind) error {
	if *fs == nil {
		*fs = make(fields)
	}
	for _, s := range strings.Split(s, ",") {
		if err := fs.set("", strings.TrimSpace(s), k); err != nil {
			return err
		}
	}
	return nil
}

func (fs fields) set(prefix, s string, k kind) error {
	if s == "" {
		return nil
	}

	// Parse next field number.
	i := strings.IndexByte(s, '.')
	if i < 0 {
		i = len(s)
	}
	prefix = strings.TrimPrefix(prefix+"."+s[:i], ".")
	n, err := strconv.ParseUint(s[:i], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid field: %v", prefix)
	}
	num := wire.Number(n)
	s = strings.TrimPrefix(s[i:], ".")

	// Handle the current field.
	if fs[num] == nil {
		fs[num] = &field{sub: make(fields)}
	}
	if len(s) == 0 {
		if fs[num].kind != kindNone {
			return fmt.Errorf("field %v already set as %v type", prefix, fs[num].kind)
		}
		fs[num].kind = k
	}
	if err := fs[num].sub.set(prefix, s, k); err != nil {
		return err
	}

	// Verify that only messages can have sub-fields.
	if k2 := fs[num].kind; k2 != kindNone && k2 != kindMessage && len(fs[num].sub) > 0 {
		return fmt.Errorf("field %v of %v type cannot have sub-fields", prefix, k2)
	}
	return nil
}

// lookup returns the hint for num, or nil if there is none.
func (fs fields) lookup(num wire.Number) *field {
	if fs == nil {
		return nil
	}
	return fs[num]
}

// loadHints adds the hints of a YAML document mapping hint names to lists of
// field identifiers, such as:
//
//	messages: ["3", "3.1"]
//	strings: ["1", "3.2"]
func (fs *fields) loadHints(b []byte) error {
	var hints map[string][]string
	if err := yaml.Unmarshal(b, &hints); err != nil {
		return fmt.Errorf("parsing hints: %w", err)
	}
	for _, name := range mapsort.Keys(hints) {
		k, ok := hintKinds[name]
		if !ok {
			return fmt.Errorf("unknown hint %q", name)
		}
		for _, s := range hints[name] {
			if err := fs.Set(s, k); err != nil {
				return err
			}
		}
	}
	return nil
}

// fieldsFlag is the pflag.Value setting one kind of hint.
type fieldsFlag struct {
	fs   *fields
	kind kind
}

func (f fieldsFlag) String() string     { return "" }
func (f fieldsFlag) Type() string       { return "fields" }
func (f fieldsFlag) Set(s string) error { return f.fs.Set(s, f.kind) }
