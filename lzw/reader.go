// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import (
	"encoding/binary"
	"io"

	"github.com/dsnet/lzwdict/internal/errors"
)

// ReaderConfig configures a Reader.
// Passing a nil *ReaderConfig selects DefaultWidth.
type ReaderConfig struct {
	Width int // Code width in bits; 0 means DefaultWidth
}

// A Reader is an io.ReadCloser that decompresses an LZW stream.
//
// The whole compressed stream is consumed and decoded on the first call to
// Read. Any of the dictionary kinds may have produced it.
type Reader struct {
	InputOffset  int64 // Total number of bytes read from underlying io.Reader
	OutputOffset int64 // Total number of bytes emitted from Read

	rd    io.Reader
	width int
	dec   *Decoder
	out   []byte // Decoded data not yet returned by Read
	done  bool   // Whether the stream has been decoded
	err   error
}

// NewReader creates a new Reader reading from the given reader.
func NewReader(r io.Reader, conf *ReaderConfig) (*Reader, error) {
	var lr Reader
	if conf != nil {
		lr.width = conf.Width
	}
	if lr.width == 0 {
		lr.width = DefaultWidth
	}
	if err := checkWidth(lr.width); err != nil {
		return nil, err
	}
	lr.Reset(r)
	return &lr, nil
}

func (lr *Reader) Read(buf []byte) (int, error) {
	if !lr.done && lr.err == nil {
		lr.out, lr.err = lr.decode()
		lr.done = true
		if lr.err != nil {
			lr.out = nil
		}
	}
	if len(lr.out) == 0 {
		if lr.err == nil {
			lr.err = io.EOF
		}
		return 0, lr.err
	}
	n := copy(buf, lr.out)
	lr.out = lr.out[n:]
	lr.OutputOffset += int64(n)
	return n, nil
}

func (lr *Reader) decode() (out []byte, err error) {
	defer errors.Recover(&err)

	in, err := io.ReadAll(lr.rd)
	lr.InputOffset += int64(len(in))
	if err != nil {
		return nil, err
	}
	if len(in) < headerSize {
		return nil, errTruncated
	}
	size := binary.BigEndian.Uint64(in)

	lr.dec, err = NewDecoder(lr.width)
	if err != nil {
		return nil, err
	}
	var cr codeReader
	cr.Init(in[headerSize:], lr.width)

	// The header is untrusted, so it only bounds the initial allocation.
	out = make([]byte, 0, min(size, uint64(len(in))*64))
	for uint64(len(out)) < size {
		if out, err = lr.dec.DecodeCode(out, cr.ReadCode()); err != nil {
			return nil, err
		}
	}
	if uint64(len(out)) != size {
		return nil, errorf(errors.Corrupted, "length mismatch")
	}
	if !cr.Padded() {
		return nil, errorf(errors.Corrupted, "trailing data")
	}
	return out, nil
}

// Decoder returns the decoder used for the stream.
// It is nil until the first call to Read.
func (lr *Reader) Decoder() *Decoder { return lr.dec }

// Close ends the decoding process. Subsequent reads return an error.
// It does not close the underlying io.Reader.
func (lr *Reader) Close() error {
	if lr.err == errClosed || lr.err == io.EOF {
		lr.err = errClosed
		return nil
	}
	err := lr.err
	lr.err = errClosed
	lr.out = nil
	return err
}

// Reset discards the Reader's state and makes it equivalent to the result
// of a call to NewReader with the same configuration, but reading from r.
func (lr *Reader) Reset(r io.Reader) {
	*lr = Reader{rd: r, width: lr.width}
}
