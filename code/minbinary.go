// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"github.com/dsnet/bitcodec/bitio"
	"github.com/dsnet/bitcodec/endian"
	"github.com/dsnet/bitcodec/word"

	"github.com/dsnet/golib/errs"
)

// minBinParams returns s = floor(log2(u)) and t = 2**(s+1) - u for an
// upper bound u > 0.
func minBinParams(u uint64) (s uint, t uint64) {
	s = ilog2(u)
	t = (uint64(1) << (s + 1)) - u
	return s, t
}

// LenMinimalBinary returns the length, in bits, of the minimal binary
// codeword for n < u.
func LenMinimalBinary(n, u uint64) int {
	s, t := minBinParams(u)
	if n < t {
		return int(s)
	}
	return int(s) + 1
}

// ReadMinimalBinary decodes a minimal binary codeword for upper bound
// u > 0. The trailing bit, read only when the s-bit prefix is >= t, is
// read on the side the stream's endianness puts "the right" of the
// prefix; this is what makes the big-endian and little-endian
// codewords for the same value differ in more than bit order.
func ReadMinimalBinary[W word.Word, E endian.Order](r *bitio.Reader[W, E], u uint64) (val uint64, err error) {
	defer errs.Recover(&err)
	assertParam(u > 0)

	s, t := minBinParams(u)
	prefix, err := r.ReadBits(s)
	if err != nil {
		return 0, err
	}
	if prefix < t {
		return prefix, nil
	}
	bit, err := r.ReadBits(1)
	if err != nil {
		return 0, err
	}
	return ((prefix << 1) | bit) - t, nil
}

// WriteMinimalBinary encodes n < u as a minimal binary codeword and
// returns its length.
func WriteMinimalBinary[W word.Word, E endian.Order](w *bitio.Writer[W, E], n, u uint64) (written int, err error) {
	defer errs.Recover(&err)
	assertParam(u > 0 && n < u)

	s, t := minBinParams(u)
	if n < t {
		return w.WriteBits(n, s)
	}
	toWrite := n + t
	n1, err := w.WriteBits(toWrite>>1, s)
	if err != nil {
		return n1, err
	}
	n2, err := w.WriteBits(toWrite&1, 1)
	return n1 + n2, err
}
