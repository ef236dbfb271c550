// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import (
	"github.com/dsnet/lzwdict/dict"
	"github.com/dsnet/lzwdict/internal/errors"
)

// appendCodes packs each code into width bits, most-significant bit first,
// and appends the result to dst. The final byte is padded with 0 bits.
func appendCodes(dst []byte, codes []dict.Code, width int) []byte {
	var acc uint64
	var n uint
	w := uint(width)
	for _, c := range codes {
		acc = acc<<w | uint64(c)
		n += w
		for n >= 8 {
			n -= 8
			dst = append(dst, byte(acc>>n))
		}
	}
	if n > 0 {
		dst = append(dst, byte(acc<<(8-n)))
	}
	return dst
}

// codeReader unpacks fixed-width codes from a byte slice.
//
// Running out of input in the middle of a code raises a corrupted stream
// error through errors.Panic; callers must defer errors.Recover.
type codeReader struct {
	buf   []byte
	width uint
	acc   uint64
	n     uint // Number of valid low bits in acc
}

func (cr *codeReader) Init(buf []byte, width int) {
	*cr = codeReader{buf: buf, width: uint(width)}
}

func (cr *codeReader) ReadCode() dict.Code {
	for cr.n < cr.width {
		if len(cr.buf) == 0 {
			errors.Panic(errTruncated)
		}
		cr.acc = cr.acc<<8 | uint64(cr.buf[0])
		cr.buf = cr.buf[1:]
		cr.n += 8
	}
	cr.n -= cr.width
	return dict.Code(cr.acc >> cr.n & (1<<cr.width - 1))
}

// Padded reports whether the unread input is only zero padding.
func (cr *codeReader) Padded() bool {
	return len(cr.buf) == 0 && cr.acc&(1<<cr.n-1) == 0
}
