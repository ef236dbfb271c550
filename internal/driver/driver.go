// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package driver runs a complete compression round trip for one dictionary
// kind: it reads an input file, compresses it, decompresses the result,
// dumps the dictionaries, and verifies the restored bytes.
package driver

import (
	"bufio"
	"bytes"
	"fmt"
	"hash/crc32"
	"io"
	"log/slog"
	"os"
	"time"

	hashutil "github.com/dsnet/golib/hashmerge"
	"github.com/dustin/go-humanize"

	"github.com/dsnet/lzwdict/dict"
	"github.com/dsnet/lzwdict/internal/errors"
	"github.com/dsnet/lzwdict/lzw"
)

// Config describes one round trip.
type Config struct {
	Input       string // Path of the file to compress
	Compressed  string // Path the compressed stream is written to
	Restored    string // Path the decompressed data is written to
	Table       string // Path of the encoder dictionary dump; empty skips it
	DecodeTable string // Path of the decoder table dump; empty skips it

	Kind     dict.Kind // Dictionary used by the encoder
	Width    int       // Code width in bits; 0 means lzw.DefaultWidth
	MaxInput int64     // Largest accepted input size in bytes; 0 means no limit

	Logger *slog.Logger // Nil discards all logging
}

func (cfg *Config) logger() *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Run performs the round trip described by cfg.
//
// Any failure aborts the run. Files opened by Run are closed on every path.
// A restored file that differs from the input yields a *MismatchError.
func Run(cfg Config) (rep *Report, err error) {
	log := cfg.logger().With(slog.String("kind", cfg.Kind.String()))

	if cfg.MaxInput > 0 {
		fi, err := os.Stat(cfg.Input)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		if fi.Size() > cfg.MaxInput {
			msg := fmt.Sprintf("input is %s, limit is %s", humanize.IBytes(uint64(fi.Size())), humanize.IBytes(uint64(cfg.MaxInput)))
			return nil, errors.Error{Code: errors.Invalid, Pkg: "driver", Msg: msg}
		}
	}
	input, err := os.ReadFile(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	log.Debug("loaded input", slog.String("path", cfg.Input), slog.Int("size", len(input)))

	cf, err := os.Create(cfg.Compressed)
	if err != nil {
		return nil, fmt.Errorf("create compressed file: %w", err)
	}
	defer closeFile(cf, &err)
	rf, err := os.Create(cfg.Restored)
	if err != nil {
		return nil, fmt.Errorf("create restored file: %w", err)
	}
	defer closeFile(rf, &err)

	bw := bufio.NewWriter(rf)
	if rep, err = cfg.RoundTrip(input, cf, bw); err != nil {
		return nil, err
	}
	if err := bw.Flush(); err != nil {
		return nil, fmt.Errorf("write restored file: %w", err)
	}

	if cfg.Table != "" {
		if err := writeTable(cfg.Table, rep.enc); err != nil {
			return nil, err
		}
		log.Debug("wrote encoder table", slog.String("path", cfg.Table), slog.Int("entries", rep.DictLen))
	}
	if cfg.DecodeTable != "" {
		if err := writeTable(cfg.DecodeTable, rep.dec); err != nil {
			return nil, err
		}
		log.Debug("wrote decoder table", slog.String("path", cfg.DecodeTable), slog.Int("entries", rep.dec.Len()))
	}

	if err := verify(input, cfg.Restored); err != nil {
		log.Error("verification failed", slog.Any("error", err))
		return rep, err
	}
	log.Info("round trip verified",
		slog.Int64("input", rep.InputSize),
		slog.Int64("compressed", rep.CompressedSize),
		slog.Float64("ratio", rep.Ratio()),
		slog.Duration("encode", rep.EncodeTime),
		slog.Duration("decode", rep.DecodeTime),
		slog.Int("dict", rep.DictLen),
	)
	return rep, nil
}

// RoundTrip compresses input into compressed, rewinds it, and decompresses it
// into restored. It does not compare the restored bytes.
func (cfg *Config) RoundTrip(input []byte, compressed io.ReadWriteSeeker, restored io.Writer) (*Report, error) {
	log := cfg.logger()
	rep := &Report{Kind: cfg.Kind, Width: cfg.Width, InputSize: int64(len(input))}
	if rep.Width == 0 {
		rep.Width = lzw.DefaultWidth
	}

	start := time.Now()
	lw, err := lzw.NewWriter(compressed, &lzw.WriterConfig{Kind: cfg.Kind, Width: rep.Width})
	if err != nil {
		return nil, err
	}
	if _, err := lw.Write(input); err != nil {
		return nil, err
	}
	if err := lw.Close(); err != nil {
		return nil, fmt.Errorf("write compressed stream: %w", err)
	}
	rep.EncodeTime = time.Since(start)
	rep.CompressedSize = lw.OutputOffset
	rep.NumCodes = lw.NumCodes
	rep.enc = lw.Dictionary()
	rep.DictLen = rep.enc.Len()
	if n, ok := rep.enc.(interface{ Nodes() int }); ok {
		rep.Nodes = n.Nodes()
	}
	if p, ok := rep.enc.(*dict.Patricia); ok {
		rep.Splits = p.Splits()
	}
	log.Debug("encoded",
		slog.Int64("codes", rep.NumCodes),
		slog.Int64("size", rep.CompressedSize),
		slog.Duration("elapsed", rep.EncodeTime),
	)

	if _, err := compressed.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind compressed stream: %w", err)
	}

	start = time.Now()
	lr, err := lzw.NewReader(compressed, &lzw.ReaderConfig{Width: rep.Width})
	if err != nil {
		return nil, err
	}
	cw := &crcWriter{w: restored}
	n, err := io.Copy(cw, lr)
	if err != nil {
		return nil, err
	}
	if err := lr.Close(); err != nil {
		return nil, err
	}
	rep.DecodeTime = time.Since(start)
	rep.RestoredSize = n
	rep.dec = lr.Decoder()
	rep.InputCRC = crc32.ChecksumIEEE(input)
	rep.RestoredCRC = cw.crc
	log.Debug("decoded",
		slog.Int64("size", rep.RestoredSize),
		slog.Duration("elapsed", rep.DecodeTime),
	)
	return rep, nil
}

// verify compares the file at path against want.
func verify(want []byte, path string) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open restored file: %w", err)
	}
	defer closeFile(f, &err)
	return Compare(bytes.NewReader(want), bufio.NewReader(f))
}

func writeTable(path string, w dict.Walker) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	defer closeFile(f, &err)
	bw := bufio.NewWriter(f)
	if err := dict.WriteTable(bw, w); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// closeFile closes f and stores the error in err if none is set yet.
func closeFile(f *os.File, err *error) {
	if cerr := f.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("close %s: %w", f.Name(), cerr)
	}
}

// crcWriter computes the CRC-32 of everything written through it.
type crcWriter struct {
	w   io.Writer
	crc uint32
}

func (cw *crcWriter) Write(buf []byte) (int, error) {
	n, err := cw.w.Write(buf)
	cw.crc = hashutil.CombineCRC32(crc32.IEEE, cw.crc, crc32.ChecksumIEEE(buf[:n]), int64(n))
	return n, err
}
