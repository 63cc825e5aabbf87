// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/fxamacker/cbor/v2"
	"github.com/golang/bilrost/opaque"
	"github.com/golang/bilrost/wire"
	"github.com/google/go-cmp/cmp"
	"github.com/zeebo/blake3"
)

func TestFields(t *testing.T) {
	type fieldsKind struct {
		kind   kind
		fields string
	}
	tests := []struct {
		inFields   []fieldsKind
		wantFields fields
		wantErr    string
	}{{
		inFields:   []fieldsKind{{kindMessage, ""}},
		wantFields: fields{},
	}, {
		inFields: []fieldsKind{{kindMessage, "98765432109"}},
		wantErr:  "invalid field: 98765432109",
	}, {
		inFields: []fieldsKind{{kindMessage, "-1"}},
		wantErr:  "invalid field: -1",
	}, {
		inFields: []fieldsKind{{kindMessage, "k"}},
		wantErr:  "invalid field: k",
	}, {
		inFields: []fieldsKind{{kindMessage, "1.2"}, {kindSint, "1"}},
		wantErr:  "field 1 of sint type cannot have sub-fields",
	}, {
		inFields: []fieldsKind{{kindSint, "1"}, {kindMessage, "1.2"}},
		wantErr:  "field 1 of sint type cannot have sub-fields",
	}, {
		inFields: []fieldsKind{{kindUint, "30"}, {kindUint, "30"}},
		wantErr:  "field 30 already set as uint type",
	}, {
		inFields: []fieldsKind{
			{kindSint, "10.20.31"},
			{kindMessage, "  10.20.30, 10.21   "},
			{kindMessage, "10"},
		},
		wantFields: fields{
			10: {kind: kindMessage, sub: fields{
				20: {sub: fields{
					30: {kind: kindMessage, sub: fields{}},
					31: {kind: kindSint, sub: fields{}},
				}},
				21: {kind: kindMessage, sub: fields{}},
			}},
		},
	}}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			var fs fields
			var gotErr error
			for _, fk := range tt.inFields {
				if gotErr = fs.Set(fk.fields, fk.kind); gotErr != nil {
					break
				}
			}
			if gotErr != nil {
				if tt.wantErr == "" || !strings.Contains(gotErr.Error(), tt.wantErr) {
					t.Fatalf("error mismatch: got %v, want %q", gotErr, tt.wantErr)
				}
				return
			}
			if tt.wantErr != "" {
				t.Fatalf("got no error, want %q", tt.wantErr)
			}
			if diff := cmp.Diff(tt.wantFields, fs, cmp.AllowUnexported(field{})); diff != "" {
				t.Errorf("fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadHints(t *testing.T) {
	var fs fields
	err := fs.loadHints([]byte("messages: [\"3\"]\nstrings: [\"1\", \"3.2\"]\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := fields{
		1: {kind: kindString, sub: fields{}},
		3: {kind: kindMessage, sub: fields{
			2: {kind: kindString, sub: fields{}},
		}},
	}
	if diff := cmp.Diff(want, fs, cmp.AllowUnexported(field{})); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}

	if err := fs.loadHints([]byte("widgets: [\"1\"]")); err == nil || !strings.Contains(err.Error(), `unknown hint "widgets"`) {
		t.Errorf("unknown hint: got %v", err)
	}
	if err := fs.loadHints([]byte("[")); err == nil {
		t.Error("malformed hints file accepted")
	}
}

// sample encodes {1: 42, 4: "a", 5: {1: -1 (sint)}, 6: packed [1.5 (float32)]}.
func sample() []byte {
	var inner opaque.Message
	inner.Insert(1, opaque.I64(-1))
	var m opaque.Message
	m.Insert(1, opaque.U64(42))
	m.Insert(4, opaque.String("a"))
	m.Insert(5, opaque.Of(&inner))
	m.Insert(6, opaque.Packed(opaque.F32(1.5)))
	return m.RawAppend(nil)
}

func TestRender(t *testing.T) {
	var hints fields
	for _, h := range []struct {
		k kind
		s string
	}{{kindUint, "1"}, {kindString, "4"}, {kindSint, "5.1"}, {kindFloat32, "6"}} {
		if err := hints.Set(h.s, h.k); err != nil {
			t.Fatal(err)
		}
	}
	m, err := opaque.Bytes(sample()).Message()
	if err != nil {
		t.Fatal(err)
	}

	r := newRenderer(hints)
	got, err := r.message("", m, hints)
	if err != nil {
		t.Fatal(err)
	}
	want := []*node{
		{Tag: 1, Wire: "varint", Kind: "uint", Value: uint64(42)},
		{Tag: 4, Wire: "length-delimited", Kind: "string", Value: "a"},
		{Tag: 5, Wire: "length-delimited", Kind: "message", Fields: []*node{
			{Tag: 1, Wire: "varint", Kind: "sint", Value: int64(-1)},
		}},
		{Tag: 6, Wire: "length-delimited", Kind: "packed float32", Value: []any{1.5}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
	if r.canon != wire.Canonical {
		t.Errorf("canonicity = %v, want canonical", r.canon)
	}

	// Field 1 without a hint is an extension.
	delete(hints, 1)
	r = newRenderer(hints)
	if _, err := r.message("", m, hints); err != nil {
		t.Fatal(err)
	}
	if r.canon != wire.HasExtensions {
		t.Errorf("canonicity = %v, want has extensions", r.canon)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		hint kind
		v    opaque.Value
		want wire.ErrorKind
	}{
		{kindBool, opaque.U64(2), wire.ErrOutOfDomainValue},
		{kindString, opaque.Bytes([]byte{0xff}), wire.ErrInvalidValue},
		{kindFixed32, opaque.U64(1), wire.ErrWrongWireType},
		{kindFixed64, opaque.Bytes([]byte{1, 2, 3}), wire.ErrTruncated},
		{kindMessage, opaque.Bytes([]byte{0x04}), wire.ErrTruncated},
	}
	for _, tt := range tests {
		hints := fields{1: {kind: tt.hint}}
		m := opaque.Message{1: {tt.v}}
		_, err := newRenderer(hints).message("", m, hints)
		if wire.KindOf(unwrap(err)) != tt.want {
			t.Errorf("%v as %v: got %v, want %v", tt.v, tt.hint, err, tt.want)
		}
		if err != nil && !strings.HasPrefix(err.Error(), "field 1: ") {
			t.Errorf("%v as %v: error %q lacks the field path", tt.v, tt.hint, err)
		}
	}
}

// unwrap returns the innermost wrapped error of err.
func unwrap(err error) error {
	for {
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return err
		}
		err = u.Unwrap()
	}
}

func writeInput(t *testing.T, name string, b []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, b, 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRunText(t *testing.T) {
	in := writeInput(t, "a.bin", sample())
	var stdout, stderr bytes.Buffer
	code := run([]string{"--strings", "4", "--messages", "5", "--sints", "5.1", "--distinguished", in}, nil, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr.String())
	}
	want := strings.Join([]string{
		in + ": 15 bytes",
		"canonicity: has extensions",
		"  1 varint: 42",
		`  4 length-delimited string: "a"`,
		"  5 length-delimited message {",
		"    1 varint sint: -1",
		"  }",
		"  6 length-delimited: 0000c03f",
		"",
	}, "\n")
	if diff := cmp.Diff(want, stdout.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--digest"}, bytes.NewReader([]byte{0x04, 0x2a}), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr.String())
	}
	sum := blake3.Sum256([]byte{0x04, 0x2a})
	want := "-: 2 bytes\ndigest: " + hex.EncodeToString(sum[:]) + "\n  1 varint: 42\n"
	if got := stdout.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunStdinError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	good := writeInput(t, "good.bin", []byte{0x04, 0x2a})
	stdin := iotest.ErrReader(errors.New("disk on fire"))
	if code := run([]string{good, "-"}, stdin, &stdout, &stderr); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if stdout.Len() != 0 {
		t.Errorf("unexpected output %q", stdout.String())
	}
	if got := stderr.String(); !strings.Contains(got, "disk on fire") {
		t.Errorf("log %q does not report the read error", got)
	}
}

func TestRunJSON(t *testing.T) {
	a := writeInput(t, "a.bin", []byte{0x04, 0x2a})
	b := writeInput(t, "b.bin", []byte{0x05, 0x01, 0x61})
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--format", "json", "--strings", "1", a, b}, nil, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr.String())
	}

	dec := json.NewDecoder(&stdout)
	var got []result
	for dec.More() {
		var res result
		if err := dec.Decode(&res); err != nil {
			t.Fatal(err)
		}
		got = append(got, res)
	}
	want := []result{
		{Input: a, Size: 2, Fields: []*node{{Tag: 1, Wire: "varint", Value: float64(42)}}},
		{Input: b, Size: 3, Fields: []*node{{Tag: 1, Wire: "length-delimited", Kind: "string", Value: "a"}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunCBOR(t *testing.T) {
	in := writeInput(t, "a.bin", []byte{0x04, 0x2a})
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-f", "cbor", "--distinguished", in}, nil, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr.String())
	}
	var got result
	if err := cbor.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	want := result{
		Input:      in,
		Size:       2,
		Canonicity: "canonical",
		Fields:     []*node{{Tag: 1, Wire: "varint", Value: uint64(42)}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunFailures(t *testing.T) {
	good := writeInput(t, "good.bin", []byte{0x04, 0x2a})
	bad := writeInput(t, "bad.bin", []byte{0x04})
	tests := []struct {
		desc     string
		args     []string
		wantCode int
		wantOut  string
		wantLog  string
	}{
		{"truncated input", []string{good, bad}, 1, good + ": 2 bytes\n  1 varint: 42\n", "truncated"},
		{"missing file", []string{filepath.Join(t.TempDir(), "none")}, 1, "", "dump failed"},
		{"bad hint", []string{"--uints", "x", good}, 2, "", "invalid field: x"},
		{"bad format", []string{"--format", "xml", good}, 2, "", "unknown output format"},
		{"bad log level", []string{"--log-level", "loud", good}, 2, "", `invalid log level "loud"`},
		{"hint mismatch", []string{"--bools", "1", good}, 1, "", "out of domain value"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, nil, &stdout, &stderr); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if got := stdout.String(); got != tt.wantOut {
				t.Errorf("output = %q, want %q", got, tt.wantOut)
			}
			if !strings.Contains(stderr.String(), tt.wantLog) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantLog)
			}
		})
	}
}
