// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frac

import "github.com/cpmech/gosl/chk"

// Kind classifies an Error returned by Split.
type Kind int

const (
	// InvalidInput means the caller's mesh or Options were rejected before
	// any output was produced: missing field, unrecognized reserved option.
	InvalidInput Kind = iota

	// InternalInvariant means the core detected mesh data that violates an
	// assumption it relies on (e.g. a face shared by more than two cells).
	// The core never returns this as an error; it panics instead (spec.md
	// §7: "a programmer-visible failure (assertion-class), not recovered").
	// The constant exists so callers that do recover() can classify what
	// they caught.
	InternalInvariant

	// IOFailure is never produced by this package; it is reserved for the
	// (external) I/O collaborator, per spec.md §7.
	IOFailure
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case InternalInvariant:
		return "InternalInvariant"
	case IOFailure:
		return "IOFailure"
	}
	return "Unknown"
}

// Error is the error type returned by Split for InvalidInput failures.
type Error struct {
	Kind  Kind
	Stage string
	Msg   string
}

func (e *Error) Error() string {
	return e.Stage + ": " + e.Msg
}

// invalidInput builds an *Error of kind InvalidInput, formatting the message
// through chk.Err the way the teacher builds every returned (non-panic)
// error (fem/fileio.go, fem/element.go, msolid/dp.go, msolid/auxiliary.go).
func invalidInput(stage, format string, args ...interface{}) *Error {
	return &Error{Kind: InvalidInput, Stage: stage, Msg: chk.Err(format, args...).Error()}
}
