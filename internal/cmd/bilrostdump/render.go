// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fxamacker/cbor/v2"
	"github.com/golang/bilrost/internal/mapsort"
	"github.com/golang/bilrost/opaque"
	"github.com/golang/bilrost/wire"
)

// node is one rendered field value.
type node struct {
	Tag    uint32  `json:"tag" cbor:"tag"`
	Wire   string  `json:"wire" cbor:"wire"`
	Kind   string  `json:"kind,omitempty" cbor:"kind,omitempty"`
	Value  any     `json:"value,omitempty" cbor:"value,omitempty"`
	Fields []*node `json:"fields,omitempty" cbor:"fields,omitempty"`
}

// result is everything printed for one input.
type result struct {
	Input      string  `json:"input" cbor:"input"`
	Size       int     `json:"size" cbor:"size"`
	Digest     string  `json:"digest,omitempty" cbor:"digest,omitempty"`
	Canonicity string  `json:"canonicity,omitempty" cbor:"canonicity,omitempty"`
	Fields     []*node `json:"fields" cbor:"fields"`
}

// renderer turns an opaque message into nodes, interpreting values by the
// hints it is given.
type renderer struct {
	hints fields
	// canon is lowered to HasExtensions when hints are given and some field
	// has none.
	canon wire.Canonicity
}

func newRenderer(hints fields) *renderer {
	return &renderer{hints: hints, canon: wire.Canonical}
}

func (r *renderer) message(prefix string, m opaque.Message, hints fields) ([]*node, error) {
	var (
		nodes []*node
		err   error
	)
	mapsort.Range(m, func(tag wire.Number, vs []opaque.Value) bool {
		path := strings.TrimPrefix(prefix+"."+strconv.FormatUint(uint64(tag), 10), ".")
		h := hints.lookup(tag)
		if h == nil && len(r.hints) > 0 {
			r.canon.Update(wire.HasExtensions)
		}
		for _, v := range vs {
			var n *node
			if n, err = r.value(path, tag, v, h); err != nil {
				return false
			}
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes, err
}

func (r *renderer) value(path string, tag wire.Number, v opaque.Value, h *field) (*node, error) {
	n := &node{Tag: uint32(tag), Wire: v.Type.String()}
	k := kindNone
	var sub fields
	if h != nil {
		k, sub = h.kind, h.sub
	}
	if k == kindNone && len(sub) > 0 {
		k = kindMessage
	}

	switch {
	case k == kindNone:
		if v.Type == wire.BytesType {
			n.Value = v.Bytes
		} else {
			n.Value = v.Bits
		}
		return n, nil
	case k == kindMessage:
		m, err := v.Message()
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", path, err)
		}
		n.Kind = k.String()
		if n.Fields, err = r.message(path, m, sub); err != nil {
			return nil, err
		}
		return n, nil
	case v.Type == wire.BytesType && k.wireType() != wire.BytesType:
		// A packed collection of scalars.
		vs, err := v.Unpack(k.wireType())
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", path, err)
		}
		list := make([]any, 0, len(vs))
		for _, v := range vs {
			x, err := scalarOf(k, v)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", path, err)
			}
			list = append(list, x)
		}
		n.Kind = "packed " + k.String()
		n.Value = list
		return n, nil
	}

	if v.Type != k.wireType() {
		return nil, fmt.Errorf("field %s: %v value for %v hint: %w", path, v.Type, k, wire.NewError(wire.ErrWrongWireType))
	}
	x, err := scalarOf(k, v)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", path, err)
	}
	n.Kind = k.String()
	n.Value = x
	return n, nil
}

// scalarOf interprets a single value of a wire type matching k.
func scalarOf(k kind, v opaque.Value) (any, error) {
	switch k {
	case kindBool:
		if v.Bits > 1 {
			return nil, wire.NewError(wire.ErrOutOfDomainValue)
		}
		return v.Bits == 1, nil
	case kindUint, kindFixed32, kindFixed64:
		return v.Bits, nil
	case kindSint:
		return v.Int(), nil
	case kindSfixed32:
		return int64(int32(uint32(v.Bits))), nil
	case kindSfixed64:
		return int64(v.Bits), nil
	case kindFloat32, kindFloat64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			// Neither JSON nor the text output has a number for these.
			return strconv.FormatFloat(f, 'g', -1, 64), nil
		}
		return f, nil
	case kindString:
		if !utf8.Valid(v.Bytes) {
			return nil, wire.NewError(wire.ErrInvalidValue)
		}
		return string(v.Bytes), nil
	}
	return v.Bytes, nil
}

// writeText writes res as an indented tree.
func writeText(w io.Writer, res *result) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d bytes\n", res.Input, res.Size)
	if res.Canonicity != "" {
		fmt.Fprintf(&sb, "canonicity: %s\n", res.Canonicity)
	}
	if res.Digest != "" {
		fmt.Fprintf(&sb, "digest: %s\n", res.Digest)
	}
	writeNodes(&sb, res.Fields, 1)
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeNodes(sb *strings.Builder, nodes []*node, depth int) {
	for _, n := range nodes {
		sb.WriteString(strings.Repeat("  ", depth))
		fmt.Fprintf(sb, "%d %s", n.Tag, n.Wire)
		if n.Kind != "" {
			fmt.Fprintf(sb, " %s", n.Kind)
		}
		if n.Kind == kindMessage.String() {
			sb.WriteString(" {\n")
			writeNodes(sb, n.Fields, depth+1)
			sb.WriteString(strings.Repeat("  ", depth))
			sb.WriteString("}\n")
			continue
		}
		sb.WriteString(": ")
		sb.WriteString(formatValue(n.Value))
		sb.WriteByte('\n')
	}
}

func formatValue(v any) string {
	switch v := v.(type) {
	case []byte:
		return fmt.Sprintf("%x", v)
	case string:
		return strconv.Quote(v)
	case []any:
		s := make([]string, len(v))
		for i, x := range v {
			s[i] = formatValue(x)
		}
		return "[" + strings.Join(s, " ") + "]"
	}
	return fmt.Sprint(v)
}

func writeJSON(w io.Writer, res *result) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

var cborEncMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

func writeCBOR(w io.Writer, res *result) error {
	return cborEncMode.NewEncoder(w).Encode(res)
}

// writers maps each output format to its writer.
var writers = map[string]func(io.Writer, *result) error{
	"text": writeText,
	"json": writeJSON,
	"cbor": writeCBOR,
}
