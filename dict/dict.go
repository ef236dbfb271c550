// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package dict implements the string-to-code dictionaries used by the LZW
// encoder.
//
// Three interchangeable structures are provided. Array keeps entries in an
// append-only slice and finds matches by linear scan. Trie is a byte-wise
// prefix tree whose lookups cost time proportional to the match length.
// Patricia is a radix tree whose edges carry multi-byte labels that are split
// on divergence, trading a little lookup work for far fewer nodes.
//
// All three assign the same code to the same string at the same point of an
// encoding pass, so they are indistinguishable from the code stream.
package dict

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/dsnet/lzwdict/internal/errors"
)

// Code is an LZW code. Codes below NumLiterals stand for themselves as single
// bytes. Larger codes are assigned sequentially to multi-byte strings.
type Code uint32

// NumLiterals is the number of single-byte codes pre-registered in every
// dictionary. It is also the first code available for multi-byte strings.
const NumLiterals = 256

// Dictionary maps byte strings to codes.
//
// Every dictionary implicitly holds the NumLiterals single-byte strings.
// Only multi-byte strings may be inserted.
type Dictionary interface {
	// LongestPrefix returns the code and length of the longest key that is a
	// prefix of buf[off:]. For off < len(buf), n is always at least 1.
	// For off >= len(buf), it returns (0, 0).
	LongestPrefix(buf []byte, off int) (code Code, n int)

	// Insert registers key under code.
	// It reports ErrDuplicateKey if key is already present and an Invalid
	// error if key is empty. The caller is responsible for only inserting
	// keys whose length-minus-one prefix is present.
	Insert(key []byte, code Code) error

	// Len reports the number of multi-byte entries.
	Len() int

	// Walk calls fn for every multi-byte entry in ascending code order until
	// fn returns false. The key slice must not be retained.
	Walk(fn func(code Code, key []byte) bool)
}

// Kind selects a Dictionary implementation.
type Kind int

const (
	KindArray Kind = iota
	KindTrie
	KindPatricia
)

// Kinds lists every supported Kind.
var Kinds = []Kind{KindArray, KindTrie, KindPatricia}

var kindNames = map[Kind]string{
	KindArray:    "array",
	KindTrie:     "trie",
	KindPatricia: "patricia",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind returns the Kind with the given name.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return 0, errors.Error{Code: errors.Invalid, Pkg: "dict", Msg: "unknown kind " + s}
}

// New returns an empty Dictionary of the given kind.
func New(k Kind) Dictionary {
	switch k {
	case KindArray:
		return NewArray()
	case KindTrie:
		return NewTrie()
	case KindPatricia:
		return NewPatricia()
	default:
		panic("dict: unknown kind " + k.String())
	}
}

var (
	// ErrDuplicateKey reports an insertion of a key that is already present.
	// The encoder never does this, so seeing it indicates a bug.
	ErrDuplicateKey error = errors.Error{Code: errors.Internal, Pkg: "dict", Msg: "duplicate key"}

	errEmptyKey error = errors.Error{Code: errors.Invalid, Pkg: "dict", Msg: "empty key"}
)

// checkKey validates the arguments common to every Insert.
func checkKey(key []byte) error {
	switch len(key) {
	case 0:
		return errEmptyKey
	case 1:
		return ErrDuplicateKey // Single bytes are always present
	}
	return nil
}

// literal returns the single-byte match at buf[off:].
func literal(buf []byte, off int) (Code, int) {
	if off >= len(buf) {
		return 0, 0
	}
	return Code(buf[off]), 1
}

type entry struct {
	key  []byte
	code Code
}

// walkSorted calls fn on each entry in ascending code order.
func walkSorted(es []entry, fn func(Code, []byte) bool) {
	slices.SortFunc(es, func(x, y entry) int { return cmp.Compare(x.code, y.code) })
	for _, e := range es {
		if !fn(e.code, e.key) {
			return
		}
	}
}
