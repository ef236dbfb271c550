// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import (
	"github.com/dsnet/lzwdict/dict"
	"github.com/dsnet/lzwdict/internal"
	"github.com/dsnet/lzwdict/internal/errors"
)

// Encoder converts raw bytes into a sequence of LZW codes.
//
// An Encoder performs a single pass. Its dictionary keeps every entry
// learned during that pass and may be inspected afterwards.
type Encoder struct {
	dict  dict.Dictionary
	next  dict.Code // Next code to assign
	limit dict.Code // One past the largest assignable code
	done  bool
}

// NewEncoder returns an Encoder that grows d using codes of the given width.
// The dictionary must be empty.
func NewEncoder(d dict.Dictionary, width int) (*Encoder, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	if d.Len() != 0 {
		return nil, errorf(errors.Invalid, "dictionary is not empty")
	}
	return &Encoder{dict: d, next: dict.NumLiterals, limit: dict.Code(maxCodes(width))}, nil
}

// Encode returns the code sequence for src. It may only be called once.
//
// At each position the longest known match is emitted, and the match
// extended by the following byte becomes the next dictionary entry.
// This is the classic LZW state machine expressed over whole matches
// rather than one byte at a time.
func (e *Encoder) Encode(src []byte) ([]dict.Code, error) {
	if e.done {
		return nil, errorf(errors.Invalid, "encoder already used")
	}
	e.done = true

	var codes []dict.Code
	for pos := 0; pos < len(src); {
		code, n := e.dict.LongestPrefix(src, pos)
		codes = append(codes, code)
		if end := pos + n; end < len(src) && e.next < e.limit {
			if err := e.dict.Insert(src[pos:end+1], e.next); err != nil {
				return codes, err
			}
			e.next++
			if internal.Debug && e.dict.Len() != int(e.next-dict.NumLiterals) {
				panic("lzw: dictionary size out of sync with code assignment")
			}
		}
		pos += n
	}
	return codes, nil
}

// Dictionary returns the dictionary being grown by e.
func (e *Encoder) Dictionary() dict.Dictionary { return e.dict }

// Next returns the next code that would be assigned.
func (e *Encoder) Next() dict.Code { return e.next }

// Full reports whether every code at the configured width has been used.
func (e *Encoder) Full() bool { return e.next >= e.limit }
