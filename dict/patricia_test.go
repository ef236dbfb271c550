// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package dict

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kr/pretty"

	"github.com/dsnet/lzwdict/internal/testutil"
)

// checkPatricia verifies the structural invariants of p:
//   - every non-root edge label is non-empty,
//   - every non-root codeless node has at least two children,
//   - labels of reachable nodes cover the label buffer exactly once.
func checkPatricia(t *testing.T, p *Patricia) {
	t.Helper()
	owner := make([]int32, len(p.labels))
	for i := range owner {
		owner[i] = nilNode
	}
	var reached int
	var visit func(n int32)
	visit = func(n int32) {
		reached++
		nd := p.nodes[n]
		if nd.lo >= nd.hi {
			t.Errorf("node %d: empty label [%d:%d]", n, nd.lo, nd.hi)
		}
		for i := nd.lo; i < nd.hi; i++ {
			if owner[i] != nilNode {
				t.Errorf("label byte %d owned by nodes %d and %d", i, owner[i], n)
			}
			owner[i] = n
		}
		var children int
		for c := nd.child; c != nilNode; c = p.nodes[c].sibling {
			children++
			visit(c)
		}
		if nd.code == noCode && children < 2 {
			t.Errorf("node %d: codeless node with %d children", n, children)
		}
	}
	for b, n := range p.roots {
		if n == nilNode {
			continue
		}
		if got := p.labels[p.nodes[n].lo]; got != byte(b) {
			t.Errorf("root slot %d: label begins with %d", b, got)
		}
		visit(n)
	}
	if reached != len(p.nodes)-1 {
		t.Errorf("reached %d nodes, arena holds %d", reached, len(p.nodes)-1)
	}
	for i, n := range owner {
		if n == nilNode {
			t.Errorf("label byte %d is not owned by any node", i)
		}
	}
	if t.Failed() {
		t.Logf("nodes: %# v", pretty.Formatter(p.nodes))
		t.Logf("labels: %q", p.labels)
	}
}

func TestPatriciaSplit(t *testing.T) {
	type step struct {
		key    string
		code   Code
		nodes  int // Expected arena size after insertion, including root
		splits int // Expected split count after insertion
	}
	var vectors = []struct {
		steps []step
		walk  []walkEntry
	}{{
		// Divergence inside a root edge creates a codeless branch point.
		steps: []step{
			{"abcd", 256, 2, 0},
			{"abxy", 257, 4, 1},
		},
		walk: []walkEntry{{256, "abcd"}, {257, "abxy"}},
	}, {
		// A key that ends exactly on an existing branch point claims it.
		steps: []step{
			{"abcd", 256, 2, 0},
			{"abxy", 257, 4, 1},
			{"ab", 258, 4, 1},
		},
		walk: []walkEntry{{256, "abcd"}, {257, "abxy"}, {258, "ab"}},
	}, {
		// A key that ends inside a label splits it and takes the new node.
		steps: []step{
			{"abcdef", 256, 2, 0},
			{"abc", 257, 3, 1},
			{"abcdxy", 258, 5, 2},
			{"abcd", 259, 5, 2},
		},
		walk: []walkEntry{{256, "abcdef"}, {257, "abc"}, {258, "abcdxy"}, {259, "abcd"}},
	}, {
		// The LZW insertion order only ever splits at the second byte.
		steps: []step{
			{"aa", 256, 2, 0},
			{"ab", 257, 4, 1},
			{"aab", 258, 5, 1},
			{"ac", 259, 6, 1},
			{"ba", 260, 7, 1},
		},
		walk: []walkEntry{{256, "aa"}, {257, "ab"}, {258, "aab"}, {259, "ac"}, {260, "ba"}},
	}}

	for i, v := range vectors {
		p := NewPatricia()
		for j, s := range v.steps {
			if err := p.Insert([]byte(s.key), s.code); err != nil {
				t.Fatalf("test %d, step %d, Insert(%q) error: %v", i, j, s.key, err)
			}
			if got := p.Nodes(); got != s.nodes {
				t.Errorf("test %d, step %d, Nodes() = %d, want %d", i, j, got, s.nodes)
			}
			if got := p.Splits(); got != s.splits {
				t.Errorf("test %d, step %d, Splits() = %d, want %d", i, j, got, s.splits)
			}
			checkPatricia(t, p)
		}
		if diff := cmp.Diff(v.walk, walkAll(p)); diff != "" {
			t.Errorf("test %d, Walk mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestPatriciaCodelessPrefix(t *testing.T) {
	p := NewPatricia()
	p.Insert([]byte("abcd"), 256)
	p.Insert([]byte("abxy"), 257)

	// The branch point for "ab" has no code, so the match falls back to the
	// implicit single byte.
	if code, n := p.LongestPrefix([]byte("abz"), 0); code != 'a' || n != 1 {
		t.Errorf("LongestPrefix(abz) = (%d, %d), want (%d, 1)", code, n, 'a')
	}
	if code, n := p.LongestPrefix([]byte("abxyz"), 0); code != 257 || n != 4 {
		t.Errorf("LongestPrefix(abxyz) = (%d, %d), want (257, 4)", code, n)
	}
	// Input ending inside a label does not match that label.
	if code, n := p.LongestPrefix([]byte("abx"), 0); code != 'a' || n != 1 {
		t.Errorf("LongestPrefix(abx) = (%d, %d), want (%d, 1)", code, n, 'a')
	}
}

// TestPatriciaInvariant grows a tree both by the LZW rule and by arbitrary
// keys and checks the invariants hold throughout.
func TestPatriciaInvariant(t *testing.T) {
	r := testutil.NewRand(1)

	p := NewPatricia()
	input := testutil.Genome(r, 1<<14)
	next := Code(NumLiterals)
	for off := 0; off < len(input); {
		_, n := p.LongestPrefix(input, off)
		if off+n < len(input) {
			if err := p.Insert(input[off:off+n+1], next); err != nil {
				t.Fatalf("Insert at offset %d error: %v", off, err)
			}
			next++
		}
		off += n
	}
	checkPatricia(t, p)
	if p.Splits() == 0 {
		t.Errorf("LZW growth on genome data performed no splits")
	}

	q := NewPatricia()
	for i := 0; i < 2000; i++ {
		key := r.Bytes(2 + r.Intn(6))
		for j := range key {
			key[j] &= 0x03
		}
		if err := q.Insert(key, Code(NumLiterals+i)); err != nil && err != ErrDuplicateKey {
			t.Fatalf("Insert(%x) error: %v", key, err)
		}
	}
	checkPatricia(t, q)
}

func TestPatriciaFewerNodes(t *testing.T) {
	input := testutil.Synthetic(1 << 14)
	tr, pt := NewTrie(), NewPatricia()
	for _, d := range []Dictionary{tr, pt} {
		next := Code(NumLiterals)
		for off := 0; off < len(input); {
			_, n := d.LongestPrefix(input, off)
			if off+n < len(input) {
				d.Insert(input[off:off+n+1], next)
				next++
			}
			off += n
		}
	}
	if tr.Len() != pt.Len() {
		t.Fatalf("Len mismatch: trie %d, patricia %d", tr.Len(), pt.Len())
	}
	if pt.Nodes() >= tr.Nodes() {
		t.Errorf("Nodes: patricia %d, trie %d; want patricia smaller", pt.Nodes(), tr.Nodes())
	}
}
