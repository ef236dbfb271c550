// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import (
	"strconv"

	"github.com/dsnet/lzwdict/dict"
	"github.com/dsnet/lzwdict/internal"
	"github.com/dsnet/lzwdict/internal/errors"
)

// Decoder converts a sequence of LZW codes back into raw bytes.
//
// It needs only code-to-string lookups, and codes are discovered in the same
// order the encoder assigned them. A flat table indexed by code therefore
// suffices regardless of which dictionary kind produced the stream.
type Decoder struct {
	table [][]byte // table[i] holds the string for code NumLiterals+i
	limit int      // Maximum number of codes, literals included
	prev  []byte   // String for the previously decoded code
}

// NewDecoder returns a Decoder for codes of the given width.
func NewDecoder(width int) (*Decoder, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	return &Decoder{limit: maxCodes(width)}, nil
}

// DecodeCode appends the string for c to dst and records the dictionary
// entry implied by it.
func (d *Decoder) DecodeCode(dst []byte, c dict.Code) ([]byte, error) {
	next := dict.NumLiterals + len(d.table)
	canGrow := len(d.prev) > 0 && next < d.limit

	var entry []byte
	switch {
	case c < dict.NumLiterals:
		entry = internal.Literal(byte(c))
	case int(c) < next:
		entry = d.table[int(c)-dict.NumLiterals]
	case int(c) == next && canGrow:
		// The encoder emitted a code in the same step that it assigned it.
		// That only happens when the string is prev extended by its own
		// first byte.
		entry = extend(d.prev, d.prev[0])
	default:
		return dst, errorf(errors.Corrupted, "code "+strconv.FormatUint(uint64(c), 10)+" out of range")
	}

	dst = append(dst, entry...)
	if canGrow {
		if int(c) == next {
			d.table = append(d.table, entry)
		} else {
			d.table = append(d.table, extend(d.prev, entry[0]))
		}
	}
	d.prev = entry
	return dst, nil
}

// Decode returns the bytes represented by codes.
func (d *Decoder) Decode(codes []dict.Code) ([]byte, error) {
	var out []byte
	for _, c := range codes {
		var err error
		if out, err = d.DecodeCode(out, c); err != nil {
			return out, err
		}
	}
	return out, nil
}

// Len reports the number of multi-byte entries in the table.
func (d *Decoder) Len() int { return len(d.table) }

// Walk calls fn for every multi-byte entry in ascending code order.
func (d *Decoder) Walk(fn func(dict.Code, []byte) bool) {
	for i, s := range d.table {
		if !fn(dict.Code(dict.NumLiterals+i), s) {
			return
		}
	}
}

// extend returns a new string holding s followed by b.
func extend(s []byte, b byte) []byte {
	t := make([]byte, len(s)+1)
	copy(t, s)
	t[len(s)] = b
	return t
}
