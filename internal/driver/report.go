// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package driver

import (
	"fmt"
	"strings"
	"time"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/dustin/go-humanize"

	"github.com/dsnet/lzwdict/dict"
	"github.com/dsnet/lzwdict/lzw"
)

// Report summarizes one round trip.
type Report struct {
	Kind  dict.Kind
	Width int

	InputSize      int64
	CompressedSize int64
	RestoredSize   int64
	NumCodes       int64

	DictLen int // Number of multi-byte dictionary entries
	Nodes   int // Arena size for Trie and Patricia; 0 for Array
	Splits  int // Edge splits performed by Patricia

	EncodeTime time.Duration
	DecodeTime time.Duration

	InputCRC    uint32
	RestoredCRC uint32

	enc dict.Dictionary
	dec *lzw.Decoder
}

// Ratio is the compressed size divided by the input size.
// It is 0 for empty input.
func (r *Report) Ratio() float64 {
	if r.InputSize == 0 {
		return 0
	}
	return float64(r.CompressedSize) / float64(r.InputSize)
}

// EncodeRate is the encoder throughput in input bytes per second.
func (r *Report) EncodeRate() float64 { return rate(r.InputSize, r.EncodeTime) }

// DecodeRate is the decoder throughput in output bytes per second.
func (r *Report) DecodeRate() float64 { return rate(r.RestoredSize, r.DecodeTime) }

func rate(n int64, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds()
}

func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (width %d)\n", r.Kind, r.Width)
	fmt.Fprintf(&sb, "\tinput:      %s\n", formatSize(float64(r.InputSize)))
	fmt.Fprintf(&sb, "\tcompressed: %s (%s codes)\n", formatSize(float64(r.CompressedSize)), humanize.Comma(r.NumCodes))
	fmt.Fprintf(&sb, "\tratio:      %.4f\n", r.Ratio())
	fmt.Fprintf(&sb, "\tencode:     %v (%s/s)\n", r.EncodeTime, formatSize(r.EncodeRate()))
	fmt.Fprintf(&sb, "\tdecode:     %v (%s/s)\n", r.DecodeTime, formatSize(r.DecodeRate()))
	fmt.Fprintf(&sb, "\tentries:    %s\n", humanize.Comma(int64(r.DictLen)))
	if r.Nodes > 0 {
		fmt.Fprintf(&sb, "\tnodes:      %s\n", humanize.Comma(int64(r.Nodes)))
	}
	if r.Kind == dict.KindPatricia {
		fmt.Fprintf(&sb, "\tsplits:     %s\n", humanize.Comma(int64(r.Splits)))
	}
	fmt.Fprintf(&sb, "\tcrc32:      %08x\n", r.InputCRC)
	return sb.String()
}

func formatSize(n float64) string {
	return strconv.FormatPrefix(n, strconv.Base1024, 2) + "B"
}
