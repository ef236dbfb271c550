// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"io"

	"github.com/dsnet/lzwdict/dict"
	"github.com/dsnet/lzwdict/lzw"
)

// LevelWidth maps a compression level to an LZW code width.
// Level 1 is the narrowest width; the result is clamped to the valid range.
func LevelWidth(lvl int) int {
	return min(max(lzw.MinWidth-1+lvl, lzw.MinWidth), lzw.MaxWidth)
}

func init() {
	for _, k := range dict.Kinds {
		k := k
		RegisterEncoder(FormatLZW, k.String(),
			func(w io.Writer, lvl int) io.WriteCloser {
				zw, err := lzw.NewWriter(w, &lzw.WriterConfig{Kind: k, Width: LevelWidth(lvl)})
				if err != nil {
					panic(err)
				}
				return zw
			})
	}
	RegisterDecoder(FormatLZW, "ds",
		func(r io.Reader, lvl int) io.ReadCloser {
			zr, err := lzw.NewReader(r, &lzw.ReaderConfig{Width: LevelWidth(lvl)})
			if err != nil {
				panic(err)
			}
			return zr
		})
}
