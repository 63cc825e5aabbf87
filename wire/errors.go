// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"strings"

	"github.com/golang/bilrost/internal/errors"
)

// ErrorKind classifies a decoding failure.
//
// Each kind is itself an error, so callers can match a *DecodeError with
// errors.Is(err, wire.ErrNotCanonical).
type ErrorKind uint8

const (
	_ ErrorKind = iota
	// ErrTruncated reports input that ended early, or a length-delimited
	// region whose contents did not exactly fill it.
	ErrTruncated
	// ErrInvalidVarint reports a varint too large for 64 bits.
	ErrInvalidVarint
	// ErrOversize reports a length that cannot be represented in memory.
	ErrOversize
	// ErrTagOverflowed reports a tag delta that carries the tag past 32 bits.
	ErrTagOverflowed
	// ErrWrongWireType reports a field whose wire type does not match its
	// encoding.
	ErrWrongWireType
	// ErrUnexpectedlyRepeated reports a singular field that occurred twice,
	// or a duplicate element of a set or key of a map.
	ErrUnexpectedlyRepeated
	// ErrConflictingFields reports two members of a oneof in one message.
	ErrConflictingFields
	// ErrNotCanonical reports input that decoded but is not in canonical form.
	ErrNotCanonical
	// ErrUnknownField reports unknown fields where none are tolerated.
	ErrUnknownField
	// ErrOutOfDomainValue reports decoded bits that are no value of the
	// target type, such as a bool of 2 or a day past the end of its year.
	ErrOutOfDomainValue
	// ErrInvalidValue reports a value that violates a container constraint,
	// such as exceeding a fixed capacity, or a string that is not UTF-8.
	ErrInvalidValue
	// ErrRecursionLimitReached reports messages nested too deeply.
	ErrRecursionLimitReached
	// ErrOther reports any other failure.
	ErrOther
)

var kindNames = [...]string{
	ErrTruncated:             "truncated",
	ErrInvalidVarint:         "invalid varint",
	ErrOversize:              "oversize",
	ErrTagOverflowed:         "tag overflowed",
	ErrWrongWireType:         "wrong wire type",
	ErrUnexpectedlyRepeated:  "unexpectedly repeated",
	ErrConflictingFields:     "conflicting fields",
	ErrNotCanonical:          "not canonical",
	ErrUnknownField:          "unknown field",
	ErrOutOfDomainValue:      "out of domain value",
	ErrInvalidValue:          "invalid value",
	ErrRecursionLimitReached: "recursion limit reached",
	ErrOther:                 "other error",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown error kind"
}

func (k ErrorKind) Error() string { return errors.Prefix + k.String() }

// PathElem names one step from a message into one of its fields.
type PathElem struct {
	Message string
	Field   string
}

// DecodeError is the error returned by all decoding operations.
type DecodeError struct {
	Kind ErrorKind
	// Path is the field path to the failure, innermost field first.
	Path []PathElem
}

// NewError returns a DecodeError of the given kind with an empty path.
func NewError(k ErrorKind) *DecodeError {
	return &DecodeError{Kind: k}
}

func (e *DecodeError) Error() string {
	var sb strings.Builder
	sb.WriteString(errors.Prefix)
	sb.WriteString("failed to decode")
	if len(e.Path) > 0 {
		sb.WriteByte(' ')
		for i := len(e.Path) - 1; i >= 0; i-- {
			p := e.Path[i]
			sb.WriteString(p.Message)
			sb.WriteByte('.')
			sb.WriteString(p.Field)
			if i > 0 {
				sb.WriteByte('/')
			}
		}
	}
	sb.WriteString(": ")
	sb.WriteString(e.Kind.String())
	return sb.String()
}

// Is reports whether target is the ErrorKind of e.
func (e *DecodeError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// Push records that the error occurred within the named field of the named
// message, and returns e.
func (e *DecodeError) Push(message, field string) *DecodeError {
	e.Path = append(e.Path, PathElem{Message: message, Field: field})
	return e
}

// Annotate pushes a path element onto err if it is a *DecodeError and returns
// err. Other errors are returned unchanged.
func Annotate(err error, message, field string) error {
	if e, ok := err.(*DecodeError); ok {
		e.Push(message, field)
	}
	return err
}

// KindOf returns the kind of err if it is a *DecodeError, and ErrOther for
// any other non-nil error.
func KindOf(err error) ErrorKind {
	if e, ok := err.(*DecodeError); ok {
		return e.Kind
	}
	if k, ok := err.(ErrorKind); ok {
		return k
	}
	if err == nil {
		return 0
	}
	return ErrOther
}
