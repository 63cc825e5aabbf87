// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// bilrostdump is a tool for decoding the bilrost wire format.
package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/golang/bilrost"
	"github.com/golang/bilrost/internal/mapsort"
	"github.com/golang/bilrost/opaque"
	"github.com/golang/bilrost/wire"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

const usage = `Usage: bilrostdump [OPTIONS]... [INPUTS]...

Print structured representations of encoded bilrost messages.
Since the wire format is not self-describing, type information about the
message can be provided using flags (e.g., --messages) or a hints file.
Each field list is a comma-separated list of field identifiers,
where each field identifier is a dot-separated list of field numbers,
identifying each field relative to the root message.

For example, "--messages 1,3 --float32s 1.2 --strings 3.1" describes a
message whose field 1 is a message with repeated float32 field 2, and whose
field 3 is a message with string field 1. A scalar hint on a
length-delimited value decodes it as a packed collection.
Fields with sub-field hints are decoded as messages even without a
--messages hint.

The same hints as a file given with --hints:

	messages: ["1", "3"]
	float32s: ["1.2"]
	strings: ["3.1"]

Each input file is decoded as one message; "-" or no inputs reads stdin.

Options:
`

type dumper struct {
	hints         fields
	digest        bool
	distinguished bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("bilrostdump", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	var d dumper
	for _, name := range mapsort.Keys(hintKinds) {
		k := hintKinds[name]
		flags.Var(fieldsFlag{&d.hints, k}, name, fmt.Sprintf("List of %v fields", k))
	}
	hintsFile := flags.String("hints", "", "YAML `file` of field hints")
	format := flags.StringP("format", "f", "text", "Output `format`: text, json or cbor")
	flags.BoolVar(&d.digest, "digest", false, "Print the BLAKE3 digest of each message")
	flags.BoolVar(&d.distinguished, "distinguished", false, "Decode in distinguished mode and print the canonicity")
	logLevel := flags.String("log-level", "warn", "Log `level`: debug, info, warn or error")
	logFormat := flags.String("log-format", "console", "Log `format`: console or json")
	flags.Usage = func() {
		io.WriteString(stderr, usage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger, err := newLogger(stderr, *logLevel, *logFormat)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer logger.Sync()

	write, ok := writers[strings.ToLower(*format)]
	if !ok {
		logger.Error("unknown output format", zap.String("format", *format))
		return 2
	}
	if *hintsFile != "" {
		b, err := os.ReadFile(*hintsFile)
		if err == nil {
			err = d.hints.loadHints(b)
		}
		if err != nil {
			logger.Error("loading hints", zap.String("file", *hintsFile), zap.Error(err))
			return 2
		}
	}

	inputs := flags.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	stdinData := readOnce(stdin)

	// Inputs are decoded concurrently but printed in order.
	results := make([]*result, len(inputs))
	errs := make([]error, len(inputs))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range inputs {
		g.Go(func() error {
			var b []byte
			if name == "-" {
				var err error
				if b, err = stdinData(); err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
			} else if b, errs[i] = os.ReadFile(name); errs[i] != nil {
				return nil
			}
			logger.Debug("decoding", zap.String("input", name), zap.Int("size", len(b)))
			results[i], errs[i] = d.dump(name, b)
			return nil
		})
	}
	// Failures of single inputs are in errs; an unreadable stdin fails them
	// all.
	if err := g.Wait(); err != nil {
		logger.Error("reading input", zap.Error(err))
		return 1
	}

	code := 0
	for i, name := range inputs {
		if errs[i] != nil {
			logger.Error("dump failed", zap.String("input", name), zap.Error(errs[i]))
			code = 1
			continue
		}
		if err := write(stdout, results[i]); err != nil {
			logger.Error("writing output", zap.String("input", name), zap.Error(err))
			return 1
		}
	}
	return code
}

// readOnce returns a function that reads r to the end on its first call and
// returns the same data on every call.
func readOnce(r io.Reader) func() ([]byte, error) {
	var (
		once sync.Once
		b    []byte
		err  error
	)
	return func() ([]byte, error) {
		once.Do(func() { b, err = io.ReadAll(r) })
		return b, err
	}
}

// dump decodes b as an opaque message, checks that it re-encodes to b, and
// renders it.
func (d *dumper) dump(name string, b []byte) (*result, error) {
	var (
		m     opaque.Message
		canon = wire.Canonical
		err   error
	)
	if d.distinguished {
		canon, err = bilrost.UnmarshalDistinguished(b, &m)
	} else {
		err = bilrost.Unmarshal(b, &m)
	}
	if err != nil {
		return nil, err
	}
	if out := bilrost.Marshal(&m); !bytes.Equal(out, b) || bilrost.Size(&m) != len(b) {
		return nil, fmt.Errorf("roundtrip mismatch:\n\tgot:  %d %x\n\twant: %d %x", bilrost.Size(&m), out, len(b), b)
	}

	r := newRenderer(d.hints)
	nodes, err := r.message("", m, d.hints)
	if err != nil {
		return nil, err
	}
	res := &result{Input: name, Size: len(b), Fields: nodes}
	if res.Fields == nil {
		res.Fields = []*node{}
	}
	if d.digest {
		sum := bilrost.Digest(&m)
		res.Digest = hex.EncodeToString(sum[:])
	}
	if d.distinguished {
		res.Canonicity = canon.Worst(r.canon).String()
	}
	return res, nil
}
