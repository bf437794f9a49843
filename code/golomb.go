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

// LenGolomb returns the length, in bits, of the Golomb codeword for n
// with modulus b (b > 0).
func LenGolomb(n, b uint64) int {
	return int(n/b) + 1 + LenMinimalBinary(n%b, b)
}

// ReadGolomb decodes a Golomb codeword: a unary quotient followed by a
// minimal binary remainder modulo b.
func ReadGolomb[W word.Word, E endian.Order](r *bitio.Reader[W, E], b uint64) (val uint64, err error) {
	defer errs.Recover(&err)
	assertParam(b > 0)

	q, err := r.ReadUnary()
	if err != nil {
		return 0, err
	}
	rem, err := ReadMinimalBinary(r, b)
	if err != nil {
		return 0, err
	}
	return q*b + rem, nil
}

// WriteGolomb encodes n as a Golomb codeword with modulus b and returns
// its length.
func WriteGolomb[W word.Word, E endian.Order](w *bitio.Writer[W, E], n, b uint64) (written int, err error) {
	defer errs.Recover(&err)
	assertParam(b > 0)

	n1, err := w.WriteUnary(n / b)
	if err != nil {
		return n1, err
	}
	n2, err := WriteMinimalBinary(w, n%b, b)
	return n1 + n2, err
}
