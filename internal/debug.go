// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !gofuzz

package internal

// Debug enables consistency checks that are too costly for normal use.
// They are turned on under the gofuzz build tag.
const Debug = false
