// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs defines the kinds of failure reported by the geometry
// packages, and an error type that carries one of them.
package errs

import (
	"errors"
	"fmt"
)

var (
	// InvalidArgument is the kind of error returned for a non-positive
	// count, mismatched array shapes, or an out-of-range face index.
	InvalidArgument = errors.New("invalid argument")

	// DegenerateGeometry is the kind of error returned when a mesh
	// without faces is passed to a containment test.
	DegenerateGeometry = errors.New("degenerate geometry")

	// GenerationLimitExceeded is the kind of error returned when the
	// attempt cap is reached before enough interior points were found.
	GenerationLimitExceeded = errors.New("generation limit exceeded")
)

// Error is an error of a specific kind with a base error
// describing the details of the failure.
type Error struct {

	// Kind is one of [InvalidArgument], [DegenerateGeometry],
	// or [GenerationLimitExceeded].
	Kind error

	// Base holds the details.
	Base error
}

// New returns a new [*Error] of the given kind with the given text.
func New(kind error, text string) error {
	return &Error{Kind: kind, Base: errors.New(text)}
}

// Errorf returns a new [*Error] of the given kind with the given
// format and arguments. It is the errs equivalent of [fmt.Errorf],
// so %w verbs wrap as usual.
func Errorf(kind error, format string, a ...any) error {
	return &Error{Kind: kind, Base: fmt.Errorf(format, a...)}
}

// Error returns the kind followed by the details.
func (e *Error) Error() string {
	if e.Base == nil {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Base.Error()
}

// Unwrap returns both the kind and the base error, so that
// [errors.Is] matches either of them.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Base}
}

// KindOf returns the kind of the given error, searching its whole
// wrap chain, or nil if it does not carry one.
func KindOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	for _, k := range []error{InvalidArgument, DegenerateGeometry, GenerationLimitExceeded} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
