// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package dict

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dsnet/lzwdict/internal/errors"
	"github.com/dsnet/lzwdict/internal/testutil"
)

type walkEntry struct {
	Code Code
	Key  string
}

func walkAll(w Walker) (es []walkEntry) {
	w.Walk(func(c Code, k []byte) bool {
		es = append(es, walkEntry{c, string(k)})
		return true
	})
	return es
}

func TestLongestPrefix(t *testing.T) {
	keys := []string{"ab", "abc", "abcd", "bcx", "xyz0", "xy", "xyz", "zz"}

	var vectors = []struct {
		input string
		off   int
		code  Code
		n     int
	}{
		{input: "", off: 0, code: 0, n: 0},
		{input: "a", off: 1, code: 0, n: 0},
		{input: "a", off: 0, code: 'a', n: 1},
		{input: "ab", off: 0, code: 256, n: 2},
		{input: "abc", off: 0, code: 257, n: 3},
		{input: "abce", off: 0, code: 257, n: 3},
		{input: "abcdabcd", off: 0, code: 258, n: 4},
		{input: "abcdabcd", off: 4, code: 258, n: 4},
		{input: "abcdabcd", off: 1, code: 'b', n: 1},
		{input: "bcxyz", off: 0, code: 259, n: 3},
		{input: "bcxyz", off: 2, code: 262, n: 3},
		{input: "xyz", off: 0, code: 262, n: 3},
		{input: "xyz01", off: 0, code: 260, n: 4},
		{input: "xyq", off: 0, code: 261, n: 2},
		{input: "zzz", off: 0, code: 263, n: 2},
		{input: "zzz", off: 2, code: 'z', n: 1},
		{input: "\x00\xff", off: 0, code: 0, n: 1},
		{input: "\x00\xff", off: 1, code: 0xff, n: 1},
	}

	for _, k := range Kinds {
		d := New(k)
		for i, key := range keys {
			if err := d.Insert([]byte(key), Code(NumLiterals+i)); err != nil {
				t.Fatalf("%v: Insert(%q) error: %v", k, key, err)
			}
		}
		if got, want := d.Len(), len(keys); got != want {
			t.Errorf("%v: Len() = %d, want %d", k, got, want)
		}
		for i, v := range vectors {
			code, n := d.LongestPrefix([]byte(v.input), v.off)
			if code != v.code || n != v.n {
				t.Errorf("%v: test %d, LongestPrefix(%q, %d): got (%d, %d), want (%d, %d)",
					k, i, v.input, v.off, code, n, v.code, v.n)
			}
		}
	}
}

func TestInsertErrors(t *testing.T) {
	for _, k := range Kinds {
		d := New(k)
		if err := d.Insert(nil, 256); !errors.IsInvalid(err) {
			t.Errorf("%v: Insert(empty) error: got %v, want invalid", k, err)
		}
		if err := d.Insert([]byte{'q'}, 256); err != ErrDuplicateKey {
			t.Errorf("%v: Insert(single byte) error: got %v, want %v", k, err, ErrDuplicateKey)
		}
		if err := d.Insert([]byte("qr"), 256); err != nil {
			t.Errorf("%v: Insert(qr) error: got %v, want nil", k, err)
		}
		if err := d.Insert([]byte("qr"), 257); err != ErrDuplicateKey {
			t.Errorf("%v: Insert(qr) again error: got %v, want %v", k, err, ErrDuplicateKey)
		}
		if !errors.IsInternal(ErrDuplicateKey) {
			t.Errorf("ErrDuplicateKey is not an internal error")
		}
		if got, want := d.Len(), 1; got != want {
			t.Errorf("%v: Len() = %d, want %d", k, got, want)
		}
	}
}

// TestEquivalence inserts the same random keys into every dictionary and
// checks that all of them answer lookups and walks identically.
func TestEquivalence(t *testing.T) {
	r := testutil.NewRand(0)
	const alphabet = "abcd"
	randString := func(n int) []byte {
		b := make([]byte, n)
		for i := range b {
			b[i] = alphabet[r.Intn(len(alphabet))]
		}
		return b
	}

	ds := make([]Dictionary, len(Kinds))
	for i, k := range Kinds {
		ds[i] = New(k)
	}
	next := Code(NumLiterals)
	for i := 0; i < 500; i++ {
		key := randString(2 + r.Intn(7))
		var errs []error
		for _, d := range ds {
			errs = append(errs, d.Insert(key, next))
		}
		for j := range ds {
			if errs[j] != errs[0] {
				t.Fatalf("insert %q: %v returned %v, %v returned %v", key, Kinds[j], errs[j], Kinds[0], errs[0])
			}
		}
		if errs[0] == nil {
			next++
		}
	}

	input := randString(1 << 12)
	for off := 0; off <= len(input); off++ {
		c0, n0 := ds[0].LongestPrefix(input, off)
		for j, d := range ds[1:] {
			if c, n := d.LongestPrefix(input, off); c != c0 || n != n0 {
				t.Fatalf("LongestPrefix at %d: %v got (%d, %d), %v got (%d, %d)",
					off, Kinds[j+1], c, n, Kinds[0], c0, n0)
			}
		}
	}

	want := walkAll(ds[0])
	if len(want) != int(next-NumLiterals) {
		t.Errorf("walk count: got %d, want %d", len(want), next-NumLiterals)
	}
	for j, d := range ds[1:] {
		if diff := cmp.Diff(want, walkAll(d)); diff != "" {
			t.Errorf("%v Walk mismatch (-%v +%v):\n%s", Kinds[j+1], Kinds[0], Kinds[j+1], diff)
		}
	}
}

func TestWalkStop(t *testing.T) {
	for _, k := range Kinds {
		d := New(k)
		for i, key := range []string{"aa", "ab", "ba", "bb"} {
			d.Insert([]byte(key), Code(NumLiterals+i))
		}
		var cnt int
		d.Walk(func(Code, []byte) bool { cnt++; return cnt < 2 })
		if cnt != 2 {
			t.Errorf("%v: Walk visited %d entries after stop, want 2", k, cnt)
		}
	}
}

func TestWriteTable(t *testing.T) {
	d := NewTrie()
	for i, key := range []string{"AB", "A,B", "\x00\xff", "A\"B\n"} {
		if err := d.Insert([]byte(key), Code(NumLiterals+i)); err != nil {
			t.Fatalf("Insert(%q) error: %v", key, err)
		}
	}
	var buf bytes.Buffer
	if err := WriteTable(&buf, d); err != nil {
		t.Fatalf("WriteTable error: %v", err)
	}
	want := strings.Join([]string{
		"Code,String",
		"256,AB",
		`257,"A,B"`,
		`258,\x00\xff`,
		`259,"A\""B\n"`,
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("WriteTable output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}

	wr := &testutil.BuggyWriter{W: new(bytes.Buffer), N: 4, Err: fmt.Errorf("disk full")}
	if err := WriteTable(wr, d); err == nil {
		t.Errorf("WriteTable to failing writer: got nil error")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(strings.ToUpper(k.String()))
		if err != nil || got != k {
			t.Errorf("ParseKind(%q): got (%v, %v), want (%v, nil)", k.String(), got, err, k)
		}
	}
	if _, err := ParseKind("hashmap"); !errors.IsInvalid(err) {
		t.Errorf("ParseKind(hashmap) error: got %v, want invalid", err)
	}
	if got, want := Kind(7).String(), "kind(7)"; got != want {
		t.Errorf("Kind(7).String() = %q, want %q", got, want)
	}
}

func benchmarkLookup(b *testing.B, k Kind, n int) {
	b.StopTimer()
	input := testutil.Genome(testutil.NewRand(0), n)
	d := New(k)
	next := Code(NumLiterals)
	for off := 0; off < len(input); {
		_, m := d.LongestPrefix(input, off)
		if off+m < len(input) {
			d.Insert(input[off:off+m+1], next)
			next++
		}
		off += m
	}
	b.SetBytes(int64(n))
	b.ReportAllocs()
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		for off := 0; off < len(input); {
			_, m := d.LongestPrefix(input, off)
			off += m
		}
	}
}

func BenchmarkLookupArray1e3(b *testing.B)    { benchmarkLookup(b, KindArray, 1e3) }
func BenchmarkLookupArray1e4(b *testing.B)    { benchmarkLookup(b, KindArray, 1e4) }
func BenchmarkLookupTrie1e3(b *testing.B)     { benchmarkLookup(b, KindTrie, 1e3) }
func BenchmarkLookupTrie1e4(b *testing.B)     { benchmarkLookup(b, KindTrie, 1e4) }
func BenchmarkLookupTrie1e5(b *testing.B)     { benchmarkLookup(b, KindTrie, 1e5) }
func BenchmarkLookupPatricia1e3(b *testing.B) { benchmarkLookup(b, KindPatricia, 1e3) }
func BenchmarkLookupPatricia1e4(b *testing.B) { benchmarkLookup(b, KindPatricia, 1e4) }
func BenchmarkLookupPatricia1e5(b *testing.B) { benchmarkLookup(b, KindPatricia, 1e5) }
