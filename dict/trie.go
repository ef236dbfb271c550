// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package dict

// noCode marks a node that does not terminate a dictionary entry.
const noCode = ^Code(0)

// nilNode marks an absent node reference in the arenas below.
const nilNode = -1

type trieNode struct {
	code    Code  // Entry code, or noCode
	child   int32 // First child, or nilNode
	sibling int32 // Next sibling, or nilNode
	label   byte  // Byte on the edge from the parent
}

// Trie is a Dictionary organized as a prefix tree with one byte per edge.
//
// Nodes live in a single arena and refer to each other by index. Children of
// a node form a singly linked sibling list, except for the root whose 256
// children are addressed directly by byte value. The single-byte entries are
// materialized eagerly, so every lookup starts one level below the root.
//
// Lookups cost O(L) in the match length, independent of dictionary size.
type Trie struct {
	nodes []trieNode         // nodes[0] is the root (the empty string)
	roots [NumLiterals]int32 // Node index for each single-byte string
	size  int                // Number of multi-byte entries
}

// NewTrie returns a Trie holding only the single-byte entries.
func NewTrie() *Trie {
	t := &Trie{nodes: make([]trieNode, 1, 1+NumLiterals)}
	t.nodes[0] = trieNode{code: noCode, child: nilNode, sibling: nilNode}
	for b := 0; b < NumLiterals; b++ {
		t.roots[b] = int32(len(t.nodes))
		t.nodes = append(t.nodes, trieNode{code: Code(b), child: nilNode, sibling: nilNode, label: byte(b)})
	}
	return t
}

// child returns the child of n along the edge labeled b, or nilNode.
func (t *Trie) child(n int32, b byte) int32 {
	if n == 0 {
		return t.roots[b]
	}
	for c := t.nodes[n].child; c != nilNode; c = t.nodes[c].sibling {
		if t.nodes[c].label == b {
			return c
		}
	}
	return nilNode
}

// addChild links a new codeless node under n along the edge labeled b.
func (t *Trie) addChild(n int32, b byte) int32 {
	c := int32(len(t.nodes))
	t.nodes = append(t.nodes, trieNode{code: noCode, child: nilNode, sibling: t.nodes[n].child, label: b})
	t.nodes[n].child = c
	return c
}

func (t *Trie) LongestPrefix(buf []byte, off int) (Code, int) {
	if off >= len(buf) {
		return 0, 0
	}
	n := t.roots[buf[off]]
	code, cnt := t.nodes[n].code, 1
	for i := off + 1; i < len(buf); i++ {
		if n = t.child(n, buf[i]); n == nilNode {
			break
		}
		if c := t.nodes[n].code; c != noCode {
			code, cnt = c, i-off+1
		}
	}
	return code, cnt
}

func (t *Trie) Insert(key []byte, code Code) error {
	if err := checkKey(key); err != nil {
		return err
	}

	// Under the LZW insertion rule the whole prefix already exists and this
	// loop creates exactly one node. Arbitrary keys may need more.
	n := t.roots[key[0]]
	for _, b := range key[1:] {
		c := t.child(n, b)
		if c == nilNode {
			c = t.addChild(n, b)
		}
		n = c
	}
	if t.nodes[n].code != noCode {
		return ErrDuplicateKey
	}
	t.nodes[n].code = code
	t.size++
	return nil
}

func (t *Trie) Len() int { return t.size }

// Nodes reports the number of nodes in the arena, including the root.
func (t *Trie) Nodes() int { return len(t.nodes) }

func (t *Trie) Walk(fn func(Code, []byte) bool) {
	es := make([]entry, 0, t.size)
	var path []byte
	var visit func(n int32)
	visit = func(n int32) {
		path = append(path, t.nodes[n].label)
		if len(path) > 1 && t.nodes[n].code != noCode {
			es = append(es, entry{key: append([]byte(nil), path...), code: t.nodes[n].code})
		}
		for c := t.nodes[n].child; c != nilNode; c = t.nodes[c].sibling {
			visit(c)
		}
		path = path[:len(path)-1]
	}
	for _, n := range t.roots {
		visit(n)
	}
	walkSorted(es, fn)
}
