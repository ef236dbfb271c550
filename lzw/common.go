// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lzw implements Lempel-Ziv-Welch compression on top of a pluggable
// dictionary.
//
// The encoder grows a dict.Dictionary of the configured kind while it scans
// the input. The decoder independently rebuilds the same code assignments in
// a flat table, so a stream produced with any dictionary kind decodes
// identically.
//
// The compressed format is an 8-byte big-endian header holding the original
// length, followed by fixed-width codes packed most-significant bit first
// and zero-padded to a byte boundary. With the default width of 16 bits each
// code occupies exactly two bytes in big-endian order.
//
// Codes are assigned from 256 upward until the width is exhausted. From then
// on the dictionary stops growing and only known codes are emitted.
package lzw

import (
	"strconv"

	"github.com/dsnet/lzwdict/internal/errors"
)

const (
	MinWidth     = 9  // Smallest code width; one bit beyond the literals
	MaxWidth     = 24 // Largest code width
	DefaultWidth = 16

	headerSize = 8
)

func errorf(code int, msg string) error {
	return errors.Error{Code: code, Pkg: "lzw", Msg: msg}
}

var (
	errClosed    = errorf(errors.Closed, "")
	errTruncated = errorf(errors.Corrupted, "truncated stream")
)

func checkWidth(width int) error {
	if width < MinWidth || width > MaxWidth {
		return errorf(errors.Invalid, "code width "+strconv.Itoa(width)+" out of range")
	}
	return nil
}

// maxCodes returns the number of distinct codes representable at width.
func maxCodes(width int) int { return 1 << uint(width) }
