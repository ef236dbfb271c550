// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package errors implements functions to manipulate compression errors.
//
// The dictionary structures detect broken invariants deep inside tight loops
// where threading an error value through every call is awkward. Those places
// call Panic, and every public entry point defers Recover so that the panic
// never crosses the API boundary. Only errors raised by Panic are recovered;
// runtime errors and foreign panics propagate unchanged.
//
// Example usage:
//	func Foo() (err error) {
//		defer errors.Recover(&err)
//
//		if rand.Intn(2) == 0 {
//			// Unexpected panics will not be caught by Recover.
//			io.Closer(nil).Close()
//		} else {
//			// Errors thrown by Panic will be caught by Recover.
//			errors.Panic(errors.New("whoopsie"))
//		}
//	}
package errors

import (
	stderrors "errors"
	"strings"
)

const (
	// Unknown indicates that there is no classification for this error.
	Unknown = iota

	// Internal indicates that this error is due to an internal bug, such as
	// a dictionary receiving a key it already holds.
	Internal

	// Invalid indicates that this error is due to the user misusing the API
	// and is indicative of a bug on the user's part.
	Invalid

	// Corrupted indicates that the input stream is corrupted.
	Corrupted

	// Closed indicates that the handlers are closed.
	Closed

	// Mismatch indicates that restored data differs from the original.
	Mismatch
)

var codeMap = map[int]string{
	Unknown:   "unknown error",
	Internal:  "internal error",
	Invalid:   "invalid argument",
	Corrupted: "corrupted input",
	Closed:    "closed handler",
	Mismatch:  "verification mismatch",
}

type Error struct {
	Code int    // The error type
	Pkg  string // Name of the package where the error originated
	Msg  string // Descriptive message about the error (optional)
}

func (e Error) Error() string {
	var ss []string
	for _, s := range []string{e.Pkg, codeMap[e.Code], e.Msg} {
		if s != "" {
			ss = append(ss, s)
		}
	}
	return strings.Join(ss, ": ")
}

func (e Error) IsInternal() bool  { return e.Code == Internal }
func (e Error) IsInvalid() bool   { return e.Code == Invalid }
func (e Error) IsCorrupted() bool { return e.Code == Corrupted }
func (e Error) IsClosed() bool    { return e.Code == Closed }
func (e Error) IsMismatch() bool  { return e.Code == Mismatch }

func IsInternal(err error) bool  { return isCode(err, Internal) }
func IsInvalid(err error) bool   { return isCode(err, Invalid) }
func IsCorrupted(err error) bool { return isCode(err, Corrupted) }
func IsClosed(err error) bool    { return isCode(err, Closed) }
func IsMismatch(err error) bool  { return isCode(err, Mismatch) }

func isCode(err error, code int) bool {
	var cerr Error
	return stderrors.As(err, &cerr) && cerr.Code == code
}

// New returns an unclassified error with the given message.
func New(msg string) error { return Error{Msg: msg} }

// errWrap is used by Panic and Recover to ensure that only errors raised by
// Panic are recovered by Recover.
type errWrap struct{ e *error }

// Recover stores an error raised by Panic into err.
// Any other panic is re-raised.
func Recover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case errWrap:
		*err = *ex.e
	default:
		panic(ex)
	}
}

// Panic raises err so that it may be caught by Recover.
func Panic(err error) {
	panic(errWrap{&err})
}
