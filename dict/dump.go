// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package dict

import (
	"encoding/csv"
	"io"
	"strconv"
)

// Walker is implemented by anything that can enumerate multi-byte entries in
// code order. Every Dictionary is a Walker, and so is the LZW decoder table.
type Walker interface {
	Walk(fn func(code Code, key []byte) bool)
}

// WriteTable writes every multi-byte entry of w as a two-column CSV table.
// The first row is a header. Keys are escaped using Go string literal
// syntax without the surrounding quotes, so non-printable bytes stay legible.
func WriteTable(wr io.Writer, w Walker) error {
	cw := csv.NewWriter(wr)
	if err := cw.Write([]string{"Code", "String"}); err != nil {
		return err
	}
	var err error
	w.Walk(func(code Code, key []byte) bool {
		err = cw.Write([]string{strconv.FormatUint(uint64(code), 10), Escape(key)})
		return err == nil
	})
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// Escape renders key printably.
func Escape(key []byte) string {
	q := strconv.Quote(string(key))
	return q[1 : len(q)-1]
}
