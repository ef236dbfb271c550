// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import "bytes"

// Genome returns n bytes of uniformly random DNA bases. The data has a tiny
// alphabet but no long-range structure, so dictionaries grow wide and shallow.
func Genome(r *Rand, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = r.Pick("ACGT")
	}
	return b
}

// Synthetic returns n bytes of highly repetitive data made of long runs of
// 'A', 'B', and 'C'. It is the best case for LZW.
func Synthetic(n int) []byte {
	unit := bytes.Join([][]byte{
		bytes.Repeat([]byte("A"), 1000),
		bytes.Repeat([]byte("B"), 1000),
		bytes.Repeat([]byte("C"), 500),
	}, nil)
	b := bytes.Repeat(unit, n/len(unit)+1)
	return b[:n]
}

var sourceWords = []string{
	"func", "return", "if", "err", "!=", "nil", "for", "range", "var", "type",
	"struct", "int", "byte", "[]byte", "len(", ")", "{", "}", "\n", "\t",
	"package", "import", "const", ":=", "=", "+", "++", "//", "dict", "code",
	"node", "label", "buf", "off", "key", "Insert", "Walk", "Code", " ",
}

// SourceLike returns n bytes that resemble program text: a small vocabulary
// of keywords and identifiers in random order, giving medium repetition.
func SourceLike(r *Rand, n int) []byte {
	var b bytes.Buffer
	for b.Len() < n {
		b.WriteString(sourceWords[r.Intn(len(sourceWords))])
		if r.Intn(3) == 0 {
			b.WriteByte(' ')
		}
	}
	return b.Bytes()[:n]
}
