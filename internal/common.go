// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal is a collection of helpers shared by the LZW packages.
//
// For performance reasons, these helpers lack strong error checking and
// require that the caller ensure that strict invariants are kept.
package internal

// IdentityLUT returns the input key itself.
//
// Slicing it yields the single-byte string for a literal code without
// allocating. Callers must use a full slice expression so that appends
// never write into the table.
var IdentityLUT [256]byte

func init() {
	for i := range IdentityLUT {
		IdentityLUT[i] = uint8(i)
	}
}

// Literal returns the one-byte string for b, backed by IdentityLUT.
func Literal(b byte) []byte {
	return IdentityLUT[b : int(b)+1 : int(b)+1]
}
