// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_uk_lib

package bench

import (
	"io"

	"github.com/ulikunitz/xz"
)

func init() {
	RegisterEncoder(FormatXZ, "uk",
		func(w io.Writer, _ int) io.WriteCloser {
			zw, err := xz.NewWriter(w)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder(FormatXZ, "uk",
		func(r io.Reader, _ int) io.ReadCloser {
			zr, err := xz.NewReader(r)
			if err != nil {
				return errReader{err}
			}
			return io.NopCloser(zr)
		})
}

// errReader fails every read with err. The xz reader parses the stream
// header eagerly, so a malformed stream fails before any Read.
type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }
func (r errReader) Close() error             { return r.err }
