// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	reWid = regexp.MustCompile("^W[0-9]+$")
	reLen = regexp.MustCompile("^N:[0-9]+$")
	reDec = regexp.MustCompile("^[0-9]+$")
	reHex = regexp.MustCompile("^H:[0-9a-fA-F]{1,8}$")
	reStr = regexp.MustCompile("^S:[^*]+$")
	reRaw = regexp.MustCompile("^X:[0-9a-fA-F]+$")
	reQnt = regexp.MustCompile("[*][0-9]+$")
)

// DecodeCodeGen decodes a CodeGen formatted string.
//
// The CodeGen format describes an LZW code stream as a series of tokens so
// that tests can script streams by hand, including malformed ones, without
// going through the encoder under test.
//
// Tokens are separated by white space of any kind. The '#' character starts a
// comment that runs to the end of the line.
//
// The first token must be of the pattern "W[0-9]+" and sets the code width in
// bits. Codes are packed most-significant bit first.
//
// A token of the pattern "N:[0-9]+" writes the 8-byte big-endian length
// header. It may only appear while the stream is byte-aligned.
//
// A token of the pattern "[0-9]+" or "H:[0-9a-fA-F]{1,8}" writes one code
// given in decimal or hexadecimal. The value must fit within the code width.
//
// A token of the pattern "S:..." writes one code per byte of the remaining
// token text, which is convenient for runs of literal codes.
//
// A token of the pattern "X:[0-9a-fA-F]+" writes literal bytes. It may only
// be used when the stream is byte-aligned.
//
// Any token may carry a trailing "*[0-9]+" quantifier to repeat it.
//
// If the stream does not end on a byte boundary, it is padded with 0 bits.
//
// Example CodeGen string:
//	W16        # 16-bit codes
//	N:4        # Original length is 4 bytes
//	65 256 65  # "A", "AA", "A"
func DecodeCodeGen(str string) ([]byte, error) {
	var toks []string
	for _, s := range strings.Split(str, "\n") {
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		toks = append(toks, strings.Fields(s)...)
	}
	if len(toks) == 0 || !reWid.MatchString(toks[0]) {
		return nil, errors.New("testutil: missing code width token")
	}
	width, err := strconv.Atoi(toks[0][1:])
	if err != nil || width < 1 || width > 32 {
		return nil, errors.New("testutil: invalid code width: " + toks[0])
	}
	toks = toks[1:]

	var cw codeBuffer
	for _, t := range toks {
		rep := 1
		if reQnt.MatchString(t) {
			i := strings.LastIndexByte(t, '*')
			n, err := strconv.Atoi(t[i+1:])
			if err != nil {
				return nil, errors.New("testutil: invalid quantified token: " + t)
			}
			t, rep = t[:i], n
		}

		switch {
		case reLen.MatchString(t):
			n, err := strconv.ParseUint(t[2:], 10, 64)
			if err != nil {
				return nil, errors.New("testutil: invalid length token: " + t)
			}
			var hdr [8]byte
			binary.BigEndian.PutUint64(hdr[:], n)
			for i := 0; i < rep; i++ {
				if err := cw.WriteBytes(hdr[:]); err != nil {
					return nil, err
				}
			}
		case reDec.MatchString(t) || reHex.MatchString(t):
			base, s := 10, t
			if strings.HasPrefix(t, "H:") {
				base, s = 16, t[2:]
			}
			v, err := strconv.ParseUint(s, base, 32)
			if err != nil || v>>uint(width) != 0 {
				return nil, errors.New("testutil: code overflows width: " + t)
			}
			for i := 0; i < rep; i++ {
				cw.WriteCode(uint32(v), uint(width))
			}
		case reStr.MatchString(t):
			for i := 0; i < rep; i++ {
				for _, b := range []byte(t[2:]) {
					cw.WriteCode(uint32(b), uint(width))
				}
			}
		case reRaw.MatchString(t):
			b, err := hex.DecodeString(t[2:])
			if err != nil {
				return nil, errors.New("testutil: invalid raw bytes token: " + t)
			}
			if err := cw.WriteBytes(bytes.Repeat(b, rep)); err != nil {
				return nil, err
			}
		default:
			return nil, errors.New("testutil: invalid token: " + t)
		}
	}
	return cw.Bytes(), nil
}

// codeBuffer is a minimal MSB-first bit packer. It is implemented here so
// that crafted streams do not depend on the writer being tested.
type codeBuffer struct {
	b []byte
	n uint // Number of bits used in the last byte; 0 means aligned
}

func (cb *codeBuffer) WriteBytes(buf []byte) error {
	if cb.n != 0 {
		return errors.New("testutil: unaligned write")
	}
	cb.b = append(cb.b, buf...)
	return nil
}

func (cb *codeBuffer) WriteCode(v uint32, width uint) {
	for i := int(width) - 1; i >= 0; i-- {
		if cb.n == 0 {
			cb.b = append(cb.b, 0x00)
		}
		if v&(1<<uint(i)) != 0 {
			cb.b[len(cb.b)-1] |= 0x80 >> cb.n
		}
		cb.n = (cb.n + 1) % 8
	}
}

func (cb *codeBuffer) Bytes() []byte { return cb.b }
