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

// LenRice returns the length, in bits, of the Rice codeword for n with
// parameter log2b (b = 2**log2b, log2b < 64).
func LenRice(n uint64, log2b uint) int {
	return int(n>>log2b) + 1 + int(log2b)
}

// ReadRice decodes a Rice codeword: a unary quotient followed by a
// log2b-bit remainder.
func ReadRice[W word.Word, E endian.Order](r *bitio.Reader[W, E], log2b uint) (val uint64, err error) {
	defer errs.Recover(&err)
	assertParam(log2b < 64)

	q, err := r.ReadUnary()
	if err != nil {
		return 0, err
	}
	rem, err := r.ReadBits(log2b)
	if err != nil {
		return 0, err
	}
	return (q << log2b) + rem, nil
}

// WriteRice encodes n as a Rice codeword with parameter log2b and returns
// its length.
func WriteRice[W word.Word, E endian.Order](w *bitio.Writer[W, E], n uint64, log2b uint) (written int, err error) {
	defer errs.Recover(&err)
	assertParam(log2b < 64)

	n1, err := w.WriteUnary(n >> log2b)
	if err != nil {
		return n1, err
	}
	n2, err := w.WriteBits(n&lowMask(log2b), log2b)
	return n1 + n2, err
}
