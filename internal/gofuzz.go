// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz

package internal

// Consistency checks are always on while fuzzing so that a broken dictionary
// invariant crashes the fuzzer instead of producing a silently bad stream.
const Debug = true
