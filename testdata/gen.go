// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore

// Generates the sample corpora used by the lzw tool and the benchmarks.
//
//	genome.txt     random DNA bases; small alphabet with no long-range structure
//	synthetic.txt  long runs of 'A', 'B', and 'C'; best case for LZW
//	source.txt     the Go sources of this module; medium repetition
//	repeats.bin    random data with many copies from some distance ago
//
// Run from the module root:
//	$ go run testdata/gen.go
package main

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsnet/lzwdict/internal/testutil"
)

const size = 1 << 20

func main() {
	write("genome.txt", testutil.Genome(testutil.NewRand(0), size))
	write("synthetic.txt", testutil.Synthetic(size))
	write("source.txt", sources("dict", "lzw", "internal/driver"))
	write("repeats.bin", repeats(1<<18))
}

func write(name string, b []byte) {
	if err := os.WriteFile(filepath.Join("testdata", name), b, 0664); err != nil {
		panic(err)
	}
}

// sources concatenates the non-test Go files in each directory.
func sources(dirs ...string) []byte {
	var b bytes.Buffer
	for _, dir := range dirs {
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		if err != nil {
			panic(err)
		}
		for _, f := range files {
			if strings.HasSuffix(f, "_test.go") {
				continue
			}
			buf, err := os.ReadFile(f)
			if err != nil {
				panic(err)
			}
			b.WriteString("\n// --- " + filepath.ToSlash(f) + " ---\n")
			b.Write(buf)
		}
	}
	return b.Bytes()
}

// repeats heavily favors LZ77 based compression since a large bulk of its
// data is a copy from some distance ago. LZW only catches the copies whose
// strings it has already seen in full.
func repeats(size int) []byte {
	var b []byte
	var r = rand.New(rand.NewSource(0))

	randLen := func() int {
		p := r.Float32()
		switch {
		case p <= 0.15: // 4..8
			return 4 + r.Int()%4
		case p <= 0.30: // 8..16
			return 8 + r.Int()%8
		case p <= 0.45: // 16..32
			return 16 + r.Int()%16
		case p <= 0.60: // 32..64
			return 32 + r.Int()%32
		case p <= 0.75: // 64..128
			return 64 + r.Int()%64
		case p <= 0.90: // 128..256
			return 128 + r.Int()%128
		default: // 256..512
			return 256 + r.Int()%256
		}
	}

	randDist := func() (d int) {
		for d == 0 || d > len(b) {
			shift := r.Intn(15) // 1..32768 in power of two buckets
			d = 1<<shift + r.Intn(1<<shift)
		}
		return d
	}

	writeRand := func(l int) {
		for i := 0; i < l; i++ {
			b = append(b, byte(r.Int()))
		}
	}

	writeCopy := func(d, l int) {
		for i := 0; i < l; i++ {
			b = append(b, b[len(b)-d])
		}
	}

	writeRand(512)
	for len(b) < size {
		switch p := r.Float32(); {
		case p <= 0.1:
			writeRand(randLen())
		case p <= 0.9:
			d, l := randDist(), randLen()
			for d <= l {
				d, l = randDist(), randLen()
			}
			writeCopy(d, l)
		default:
			writeCopy(randDist(), randLen())
		}
	}
	return b[:size]
}
