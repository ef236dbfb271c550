// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_pc_lib

package bench

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

func init() {
	RegisterEncoder(FormatLZ4, "pc",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw := lz4.NewWriter(w)
			if err := zw.Apply(lz4.CompressionLevelOption(lz4Level(lvl))); err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder(FormatLZ4, "pc",
		func(r io.Reader, _ int) io.ReadCloser {
			return io.NopCloser(lz4.NewReader(r))
		})
}

// lz4Level maps levels 1 through 9 onto the LZ4 high-compression levels.
// Anything else selects the fast compressor.
func lz4Level(lvl int) lz4.CompressionLevel {
	if lvl < 1 || lvl > 9 {
		return lz4.Fast
	}
	return lz4.CompressionLevel(1 << (8 + uint(lvl)))
}
