// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command lzw compresses a file with one or more LZW dictionary kinds,
// decompresses the result, and verifies that the round trip is lossless.
//
// For each dictionary kind, the following files are written to the output
// directory: <kind>.lzw, <kind>.restored, <kind>_encoder.csv, and
// <kind>_decoder.csv.
//
// Example usage:
//	$ go run ./internal/tool/lzw -input testdata/genome.txt -dict patricia -v
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/dsnet/lzwdict/dict"
	"github.com/dsnet/lzwdict/internal/driver"
	"github.com/dsnet/lzwdict/lzw"
)

const defaultInput = "testdata/synthetic.txt"

var (
	success = color.New(color.FgGreen, color.Bold)
	failure = color.New(color.FgRed, color.Bold)
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lzw", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f0 := fs.String("dict", "all", "Dictionary to use: array, trie, patricia, or all")
	f1 := fs.String("input", defaultInput, "Path of the file to compress")
	f2 := fs.String("outdir", ".", "Directory to write output files to")
	f3 := fs.Int("width", lzw.DefaultWidth, "Code width in bits")
	f4 := fs.Bool("v", false, "Enable debug logging")
	f5 := fs.String("maxsize", "64MiB", "Largest input accepted; 0 means no limit")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	maxInput, err := humanize.ParseBytes(*f5)
	if err != nil {
		failure.Fprintf(stderr, "FAILURE: invalid -maxsize: %v\n", err)
		return 1
	}

	level := slog.LevelInfo
	if *f4 {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	kinds := dict.Kinds
	if *f0 != "all" {
		k, err := dict.ParseKind(*f0)
		if err != nil {
			failure.Fprintf(stderr, "FAILURE: %v\n", err)
			return 1
		}
		kinds = []dict.Kind{k}
	}
	if err := os.MkdirAll(*f2, 0775); err != nil {
		failure.Fprintf(stderr, "FAILURE: %v\n", err)
		return 1
	}

	for _, k := range kinds {
		name := k.String()
		rep, err := driver.Run(driver.Config{
			Input:       *f1,
			Compressed:  filepath.Join(*f2, name+".lzw"),
			Restored:    filepath.Join(*f2, name+".restored"),
			Table:       filepath.Join(*f2, name+"_encoder.csv"),
			DecodeTable: filepath.Join(*f2, name+"_decoder.csv"),
			Kind:        k,
			Width:       *f3,
			MaxInput:    int64(maxInput),
			Logger:      logger,
		})
		if err != nil {
			failure.Fprintf(stderr, "FAILURE: %s: %v\n", name, err)
			return 1
		}
		fmt.Fprint(stdout, rep)
		success.Fprintf(stdout, "SUCCESS: %s round trip verified\n", name)
	}
	return 0
}
