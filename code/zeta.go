// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"github.com/dsnet/bitcodec/bitio"
	"github.com/dsnet/bitcodec/endian"
	"github.com/dsnet/bitcodec/word"
)

// LenZeta returns the length, in bits, of the Boldi-Vigna zeta codeword
// for n with parameter k (k >= 1).
func LenZeta(n uint64, k uint) int {
	m := n + 1
	h := uint64(ilog2(m)) / uint64(k)
	u := uint64(1) << ((h + 1) * uint64(k))
	l := uint64(1) << (h * uint64(k))
	return int(h) + 1 + LenMinimalBinary(m-l, u-l)
}

// ReadZeta decodes a zeta codeword: a unary code of h = floor(log2(n+1)/k)
// followed by a minimal binary code of the remainder.
func ReadZeta[W word.Word, E endian.Order](r *bitio.Reader[W, E], k uint) (uint64, error) {
	h, err := r.ReadUnary()
	if err != nil {
		return 0, err
	}
	u := uint64(1) << ((h + 1) * uint64(k))
	l := uint64(1) << (h * uint64(k))
	rest, err := ReadMinimalBinary(r, u-l)
	if err != nil {
		return 0, err
	}
	return l + rest - 1, nil
}

// WriteZeta encodes n as a zeta codeword with parameter k and returns its
// length.
func WriteZeta[W word.Word, E endian.Order](w *bitio.Writer[W, E], n uint64, k uint) (int, error) {
	m := n + 1
	h := uint64(ilog2(m)) / uint64(k)
	u := uint64(1) << ((h + 1) * uint64(k))
	l := uint64(1) << (h * uint64(k))
	n1, err := w.WriteUnary(h)
	if err != nil {
		return n1, err
	}
	n2, err := WriteMinimalBinary(w, m-l, u-l)
	return n1 + n2, err
}

// readZeta3 is ReadZeta specialized to k=3, the one parameter value the
// accelerated table covers.
func readZeta3[W word.Word, E endian.Order](r *bitio.Reader[W, E]) (uint64, error) {
	return ReadZeta(r, 3)
}

// ReadZetaFast decodes a zeta_3 codeword using the PeekMax-bit
// accelerated table when possible, falling back to ReadZeta for k != 3
// or for codewords that don't fit the table.
func ReadZetaFast[W word.Word, E endian.Order](r *bitio.Reader[W, E], k uint) (uint64, error) {
	if k != 3 {
		return ReadZeta(r, k)
	}
	peek, err := r.PeekBits(bitio.PeekMax)
	if err != nil {
		return 0, err
	}
	if entry, ok := lookupZeta3[E](peek); ok {
		r.SkipBitsAfterPeek(uint(entry.length))
		return entry.value, nil
	}
	return ReadZeta(r, 3)
}
