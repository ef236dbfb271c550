// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package dict

import (
	"bytes"

	"github.com/dsnet/lzwdict/internal"
)

type patNode struct {
	code    Code   // Entry code, or noCode for a pure branch point
	lo, hi  uint32 // Label of the incoming edge is labels[lo:hi]
	child   int32  // First child, or nilNode
	sibling int32  // Next sibling, or nilNode
}

// Patricia is a Dictionary organized as a radix tree. Each edge carries a
// non-empty multi-byte label, and chains of nodes without branching are
// collapsed into a single edge.
//
// All labels are ranges into one shared byte buffer. Splitting an edge
// therefore only re-slices the existing range and never copies label bytes.
// Nodes live in an arena and refer to each other by index, as in Trie.
//
// The single-byte entries are implicit and occupy no nodes. As a result an
// entry such as "ab" hangs directly off the root as a two-byte edge, and a
// later "ac" splits it at a codeless branch node for "a".
//
// The tree maintains the invariant that every non-root node without a code
// has at least two children.
type Patricia struct {
	nodes  []patNode          // nodes[0] is the root (the empty string)
	labels []byte             // Backing storage for all edge labels
	roots  [NumLiterals]int32 // Root children indexed by first label byte
	size   int                // Number of multi-byte entries
	splits int                // Number of edge splits performed
}

// NewPatricia returns a Patricia tree holding only the single-byte entries.
func NewPatricia() *Patricia {
	p := &Patricia{nodes: []patNode{{code: noCode, child: nilNode, sibling: nilNode}}}
	for i := range p.roots {
		p.roots[i] = nilNode
	}
	return p
}

func (p *Patricia) label(n int32) []byte {
	return p.labels[p.nodes[n].lo:p.nodes[n].hi]
}

// child returns the child of n whose label begins with b, or nilNode.
func (p *Patricia) child(n int32, b byte) int32 {
	if n == 0 {
		return p.roots[b]
	}
	for c := p.nodes[n].child; c != nilNode; c = p.nodes[c].sibling {
		if p.labels[p.nodes[c].lo] == b {
			return c
		}
	}
	return nilNode
}

func (p *Patricia) LongestPrefix(buf []byte, off int) (Code, int) {
	code, cnt := literal(buf, off)
	if cnt == 0 {
		return code, cnt
	}
	rest := buf[off:]
	for n, i := int32(0), 0; i < len(rest); {
		c := p.child(n, rest[i])
		if c == nilNode {
			break
		}
		label := p.label(c)
		if !bytes.HasPrefix(rest[i:], label) {
			break // Input diverges inside the label or ends before it
		}
		n, i = c, i+len(label)
		if p.nodes[n].code != noCode {
			code, cnt = p.nodes[n].code, i
		}
	}
	return code, cnt
}

func (p *Patricia) Insert(key []byte, code Code) error {
	if err := checkKey(key); err != nil {
		return err
	}

	n, i := int32(0), 0
	for {
		c := p.child(n, key[i])
		if c == nilNode {
			p.addLeaf(n, key[i:], code)
			break
		}

		label := p.label(c)
		j := commonPrefix(label, key[i:])
		if j < len(label) {
			// The key diverges from (or ends within) the label.
			m := p.split(n, c, j)
			if i+j == len(key) {
				p.nodes[m].code = code
			} else {
				p.addLeaf(m, key[i+j:], code)
			}
			break
		}

		n, i = c, i+j
		if i == len(key) {
			if p.nodes[n].code != noCode {
				return ErrDuplicateKey
			}
			p.nodes[n].code = code // Existing branch point becomes an entry
			break
		}
	}
	p.size++
	return nil
}

// addLeaf appends a new code-bearing node under n with the given label.
func (p *Patricia) addLeaf(n int32, label []byte, code Code) int32 {
	lo := uint32(len(p.labels))
	p.labels = append(p.labels, label...)
	c := int32(len(p.nodes))
	p.nodes = append(p.nodes, patNode{
		code:    code,
		lo:      lo,
		hi:      uint32(len(p.labels)),
		child:   nilNode,
		sibling: nilNode,
	})
	if n == 0 {
		p.roots[label[0]] = c
	} else {
		p.nodes[c].sibling = p.nodes[n].child
		p.nodes[n].child = c
	}
	return c
}

// split breaks the edge from parent n to child c after j label bytes,
// where 0 < j < len(label(c)). It returns the new codeless node m that sits
// between n and c, owning the first j bytes of the old label.
func (p *Patricia) split(n, c int32, j int) int32 {
	m := int32(len(p.nodes))
	old := p.nodes[c]
	if internal.Debug && (j <= 0 || j >= int(old.hi-old.lo)) {
		panic("dict: split point outside of label")
	}
	mid := old.lo + uint32(j)
	p.nodes = append(p.nodes, patNode{
		code:    noCode,
		lo:      old.lo,
		hi:      mid,
		child:   c,
		sibling: old.sibling,
	})

	// Replace c with m in the child list of n.
	if n == 0 {
		p.roots[p.labels[old.lo]] = m
	} else if p.nodes[n].child == c {
		p.nodes[n].child = m
	} else {
		s := p.nodes[n].child
		for p.nodes[s].sibling != c {
			s = p.nodes[s].sibling
		}
		p.nodes[s].sibling = m
	}

	p.nodes[c].lo = mid
	p.nodes[c].sibling = nilNode
	p.splits++
	return m
}

func (p *Patricia) Len() int { return p.size }

// Nodes reports the number of nodes in the arena, including the root.
func (p *Patricia) Nodes() int { return len(p.nodes) }

// Splits reports the number of edge splits performed so far.
func (p *Patricia) Splits() int { return p.splits }

func (p *Patricia) Walk(fn func(Code, []byte) bool) {
	es := make([]entry, 0, p.size)
	var path []byte
	var visit func(n int32)
	visit = func(n int32) {
		path = append(path, p.label(n)...)
		if p.nodes[n].code != noCode {
			es = append(es, entry{key: append([]byte(nil), path...), code: p.nodes[n].code})
		}
		for c := p.nodes[n].child; c != nilNode; c = p.nodes[c].sibling {
			visit(c)
		}
		path = path[:len(path)-len(p.label(n))]
	}
	for _, n := range p.roots {
		if n != nilNode {
			visit(n)
		}
	}
	walkSorted(es, fn)
}

// commonPrefix returns the length of the longest common prefix of a and b.
func commonPrefix(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
