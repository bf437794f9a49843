// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package code implements the family of instantaneous (prefix-free)
// integer codes this module exists to provide: unary, the Elias codes
// (γ, δ, ω), the Boldi-Vigna ζ and streamlined Apostolico-Drovandi π
// codes, Golomb and Rice codes, exponential Golomb codes, and minimal
// binary codes. Each code exposes a Read, Write, and Len function with
// the same signature shape so that the dispatch package can wrap any of
// them uniformly.
package code

import (
	"errors"
	"math/bits"

	"github.com/dsnet/golib/errs"
)

// ilog2 returns floor(log2(n)) for n >= 1.
func ilog2(n uint64) uint {
	return uint(bits.Len64(n) - 1)
}

// lowMask returns a mask for the low n bits, n in [0, 64].
func lowMask(n uint) uint64 {
	if n == 0 {
		return 0
	}
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << n) - 1
}

// errInvalidParam is the sentinel caught by errs.Recover at the public
// API boundary of every function that validates a caller-supplied
// parameter (a Golomb modulus, a minimal binary upper bound) with
// errs.Assert rather than plumbing a distinct error value through
// every return path.
var errInvalidParam = errors.New("code: invalid parameter")

// assertParam panics with errInvalidParam, to be caught by a deferred
// errs.Recover in the calling exported function, when cond is false.
func assertParam(cond bool) {
	errs.Assert(cond, errInvalidParam)
}
