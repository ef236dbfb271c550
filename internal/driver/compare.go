// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package driver

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dsnet/lzwdict/internal/errors"
)

const chunkSize = 1 << 15

// MismatchError reports the first byte at which two streams differ.
type MismatchError struct {
	Offset int64 // Offset of the first differing byte
	Got    int   // Byte from the stream being checked, or -1 at EOF
	Want   int   // Byte from the reference stream, or -1 at EOF
}

func (e *MismatchError) Error() string {
	msg := fmt.Sprintf("offset %d: got %s, want %s", e.Offset, byteString(e.Got), byteString(e.Want))
	return errors.Error{Code: errors.Mismatch, Pkg: "driver", Msg: msg}.Error()
}

func (e *MismatchError) Unwrap() error {
	return errors.Error{Code: errors.Mismatch, Pkg: "driver"}
}

func byteString(v int) string {
	if v < 0 {
		return "EOF"
	}
	return fmt.Sprintf("0x%02x", v)
}

// Compare reads want and got to the end and reports the first difference
// as a *MismatchError. Read failures are returned as is.
func Compare(want, got io.Reader) error {
	bufWant := make([]byte, chunkSize)
	bufGot := make([]byte, chunkSize)
	var off int64
	for {
		nw, err := readChunk(want, bufWant)
		if err != nil {
			return err
		}
		ng, err := readChunk(got, bufGot)
		if err != nil {
			return err
		}

		n := min(nw, ng)
		if i := firstDiff(bufWant[:n], bufGot[:n]); i >= 0 {
			return &MismatchError{Offset: off + int64(i), Got: int(bufGot[i]), Want: int(bufWant[i])}
		}
		if nw != ng {
			e := &MismatchError{Offset: off + int64(n), Got: -1, Want: -1}
			if nw > n {
				e.Want = int(bufWant[n])
			} else {
				e.Got = int(bufGot[n])
			}
			return e
		}
		if n < chunkSize {
			return nil
		}
		off += int64(n)
	}
}

// readChunk fills buf unless the reader ends first.
func readChunk(r io.Reader, buf []byte) (int, error) {
	n, err := io.ReadFull(r, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = nil
	}
	return n, err
}

func firstDiff(a, b []byte) int {
	if bytes.Equal(a, b) {
		return -1
	}
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}
