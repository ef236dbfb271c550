// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/dsnet/lzwdict/internal/testutil"
)

var corpora = []struct {
	name string
	data []byte
}{
	{"genome", testutil.Genome(testutil.NewRand(0), 1e4)},
	{"synthetic", testutil.Synthetic(1e4)},
	{"source", testutil.SourceLike(testutil.NewRand(1), 1e4)},
	{"random", testutil.NewRand(2).Bytes(1e4)},
	{"empty", nil},
}

// TestCodecs tests that the output of each registered encoder is a valid input
// for each registered decoder. This test runs in O(n^2) where n is the number
// of registered codecs.
func TestCodecs(t *testing.T) {
	for _, c := range corpora {
		c := c
		t.Run(fmt.Sprintf("File:%v", c.name), func(t *testing.T) { testFormats(t, c.data) })
	}
}

func testFormats(t *testing.T, dd []byte) {
	t.Parallel()
	for _, ft := range []int{FormatLZW, FormatFlate, FormatXZ, FormatLZ4} {
		ft := ft
		if len(Encoders[ft]) == 0 || len(Decoders[ft]) == 0 {
			t.Logf("Format:%v: no codecs available", ft)
			continue
		}
		t.Run(fmt.Sprintf("Format:%v", ft), func(t *testing.T) { testEncoders(t, ft, dd) })
	}
}

func testEncoders(t *testing.T, ft int, dd []byte) {
	t.Parallel()
	for _, level := range []int{1, 6} {
		for encName := range Encoders[ft] {
			encName, level := encName, level
			t.Run(fmt.Sprintf("Encoder:%v/Level:%d", encName, level), func(t *testing.T) {
				be := new(bytes.Buffer)
				zw := Encoders[ft][encName](be, level)
				if _, err := io.Copy(zw, bytes.NewReader(dd)); err != nil {
					t.Fatalf("unexpected Write error: %v", err)
				}
				if err := zw.Close(); err != nil {
					t.Fatalf("unexpected Close error: %v", err)
				}
				de := be.Bytes()
				testDecoders(t, ft, level, dd, de)
			})
		}
	}
}

func testDecoders(t *testing.T, ft, level int, dd, de []byte) {
	t.Parallel()
	for decName := range Decoders[ft] {
		decName := decName
		t.Run(fmt.Sprintf("Decoder:%v", decName), func(t *testing.T) {
			bd := new(bytes.Buffer)
			zr := Decoders[ft][decName](bytes.NewReader(de), level)
			if _, err := io.Copy(bd, zr); err != nil {
				t.Fatalf("unexpected Read error: %v", err)
			}
			if err := zr.Close(); err != nil {
				t.Fatalf("unexpected Close error: %v", err)
			}
			if !bytes.Equal(bd.Bytes(), dd) {
				t.Error("data mismatch")
			}
		})
	}
}

// TestLZWIdentical checks that every dictionary kind produces the same
// compressed bytes.
func TestLZWIdentical(t *testing.T) {
	for _, c := range corpora {
		var want []byte
		var ref string
		for name, enc := range Encoders[FormatLZW] {
			got, err := compress(enc, c.data, 4)
			if err != nil {
				t.Fatalf("%s/%s: unexpected error: %v", c.name, name, err)
			}
			if want == nil {
				want, ref = got, name
				continue
			}
			if !bytes.Equal(got, want) {
				t.Errorf("%s: %s output differs from %s output", c.name, name, ref)
			}
		}
	}
}
