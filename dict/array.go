// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package dict

import "bytes"

// Array is a Dictionary that stores entries in insertion order and finds
// matches by comparing the input against every entry.
//
// Lookups cost O(E·L) for E entries of average length L. It exists as the
// baseline that Trie and Patricia are measured against.
type Array struct {
	entries []entry
	keys    []byte // Backing storage for all entry keys
}

// NewArray returns an empty Array.
func NewArray() *Array { return new(Array) }

func (a *Array) LongestPrefix(buf []byte, off int) (Code, int) {
	code, n := literal(buf, off)
	if n == 0 {
		return code, n
	}
	rest := buf[off:]
	for i := range a.entries {
		e := &a.entries[i]
		if len(e.key) > n && bytes.HasPrefix(rest, e.key) {
			code, n = e.code, len(e.key)
		}
	}
	return code, n
}

func (a *Array) Insert(key []byte, code Code) error {
	if err := checkKey(key); err != nil {
		return err
	}
	for i := range a.entries {
		if bytes.Equal(a.entries[i].key, key) {
			return ErrDuplicateKey
		}
	}

	// Keys are sliced out of a shared buffer. After the buffer grows, older
	// keys keep referencing the previous backing array.
	if cap(a.keys)-len(a.keys) < len(key) {
		a.keys = make([]byte, 0, 2*cap(a.keys)+len(key))
	}
	lo := len(a.keys)
	a.keys = append(a.keys, key...)
	a.entries = append(a.entries, entry{key: a.keys[lo:len(a.keys):len(a.keys)], code: code})
	return nil
}

func (a *Array) Len() int { return len(a.entries) }

func (a *Array) Walk(fn func(Code, []byte) bool) {
	ordered := true
	for i := 1; i < len(a.entries) && ordered; i++ {
		ordered = a.entries[i-1].code < a.entries[i].code
	}
	if ordered {
		for _, e := range a.entries {
			if !fn(e.code, e.key) {
				return
			}
		}
		return
	}
	walkSorted(a.collect(), fn)
}

func (a *Array) collect() []entry {
	return append([]entry(nil), a.entries...)
}
