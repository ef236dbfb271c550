// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import (
	"encoding/binary"
	"io"
	"slices"

	"github.com/dsnet/lzwdict/dict"
	"github.com/dsnet/lzwdict/internal/errors"
)

// WriterConfig configures a Writer.
// Passing a nil *WriterConfig selects a Trie dictionary and DefaultWidth.
type WriterConfig struct {
	Kind  dict.Kind // Dictionary structure used for matching
	Width int       // Code width in bits; 0 means DefaultWidth
}

// A Writer is an io.WriteCloser that compresses everything written to it.
//
// The input is buffered in full and encoded when Close is called.
type Writer struct {
	InputOffset  int64 // Total number of bytes issued to Write
	OutputOffset int64 // Total number of bytes written to underlying io.Writer
	NumCodes     int64 // Number of codes emitted

	wr    io.Writer
	kind  dict.Kind
	width int
	buf   []byte
	enc   *Encoder
	err   error
}

// NewWriter creates a new Writer writing to the given writer.
func NewWriter(w io.Writer, conf *WriterConfig) (*Writer, error) {
	var lw Writer
	if conf != nil {
		lw.kind, lw.width = conf.Kind, conf.Width
	} else {
		lw.kind = dict.KindTrie
	}
	if lw.width == 0 {
		lw.width = DefaultWidth
	}
	if err := checkWidth(lw.width); err != nil {
		return nil, err
	}
	if !slices.Contains(dict.Kinds, lw.kind) {
		return nil, errorf(errors.Invalid, "unknown dictionary "+lw.kind.String())
	}
	lw.Reset(w)
	return &lw, nil
}

func (lw *Writer) Write(buf []byte) (int, error) {
	if lw.err != nil {
		return 0, lw.err
	}
	lw.buf = append(lw.buf, buf...)
	lw.InputOffset += int64(len(buf))
	return len(buf), nil
}

// Close encodes all buffered input and writes the compressed stream.
// It does not close the underlying io.Writer.
func (lw *Writer) Close() error {
	if lw.err == errClosed {
		return nil
	}
	if lw.err != nil {
		return lw.err
	}

	lw.enc, lw.err = NewEncoder(dict.New(lw.kind), lw.width)
	if lw.err != nil {
		return lw.err
	}
	codes, err := lw.enc.Encode(lw.buf)
	if err != nil {
		lw.err = err
		return err
	}
	lw.NumCodes = int64(len(codes))

	out := make([]byte, headerSize, headerSize+(len(codes)*lw.width+7)/8)
	binary.BigEndian.PutUint64(out, uint64(len(lw.buf)))
	out = appendCodes(out, codes, lw.width)
	n, err := lw.wr.Write(out)
	lw.OutputOffset += int64(n)
	if err != nil {
		lw.err = err
		return err
	}
	lw.buf = nil
	lw.err = errClosed
	return nil
}

// Dictionary returns the dictionary grown while encoding.
// It is nil until Close has encoded the input.
func (lw *Writer) Dictionary() dict.Dictionary {
	if lw.enc == nil {
		return nil
	}
	return lw.enc.Dictionary()
}

// Reset discards the Writer's state and makes it equivalent to the result
// of a call to NewWriter with the same configuration, but writing to w.
func (lw *Writer) Reset(w io.Writer) {
	*lw = Writer{
		wr:    w,
		kind:  lw.kind,
		width: lw.width,
		buf:   lw.buf[:0],
	}
}
