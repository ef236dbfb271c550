// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz

package lzw

import (
	"bytes"
	"io"

	"github.com/dsnet/lzwdict/dict"
	"github.com/dsnet/lzwdict/internal/errors"
	"github.com/dsnet/lzwdict/lzw"
)

func Fuzz(data []byte) int {
	ok := testDecoder(data)
	for _, width := range []int{lzw.MinWidth, 12, lzw.DefaultWidth} {
		testEncoders(data, width)
	}
	if ok {
		return 1 // Favor valid inputs
	}
	return 0
}

// testDecoder tests that arbitrary input either decodes or is rejected as
// corrupted. Any other failure is a bug.
func testDecoder(data []byte) bool {
	zr, err := lzw.NewReader(bytes.NewReader(data), nil)
	if err != nil {
		panic(err)
	}
	if _, err := io.ReadAll(zr); err != nil {
		if !errors.IsCorrupted(err) {
			panic(err)
		}
		return false
	}
	if err := zr.Close(); err != nil {
		panic(err)
	}
	return true
}

// testEncoders encodes the input with every dictionary kind and checks that
// the outputs are identical and decode back to the input.
func testEncoders(data []byte, width int) {
	var want []byte
	for _, k := range dict.Kinds {
		bb := new(bytes.Buffer)
		zw, err := lzw.NewWriter(bb, &lzw.WriterConfig{Kind: k, Width: width})
		if err != nil {
			panic(err)
		}
		n, err := zw.Write(data)
		if n != len(data) || err != nil {
			panic(err)
		}
		if err := zw.Close(); err != nil {
			panic(err)
		}
		if want == nil {
			want = bb.Bytes()
		} else if !bytes.Equal(bb.Bytes(), want) {
			panic("mismatching streams for " + k.String())
		}
	}

	zr, err := lzw.NewReader(bytes.NewReader(want), &lzw.ReaderConfig{Width: width})
	if err != nil {
		panic(err)
	}
	b, err := io.ReadAll(zr)
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(b, data) {
		panic("mismatching bytes")
	}
}
