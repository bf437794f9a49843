// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"github.com/dsnet/bitcodec/bitio"
	"github.com/dsnet/bitcodec/endian"
	"github.com/dsnet/bitcodec/word"
)

// LenOmega returns the length, in bits, of the Elias omega codeword
// for n. The value 2**64-1 is outside the supported domain: the
// recursive length computation on n+1 would overflow.
func LenOmega(n uint64) int {
	return lenOmegaRec(n + 1)
}

func lenOmegaRec(n uint64) int {
	if n <= 1 {
		return 1
	}
	lambda := ilog2(n)
	return lenOmegaRec(uint64(lambda)) + int(lambda) + 1
}

// ReadOmega decodes an omega codeword.
func ReadOmega[W word.Word, E endian.Order](r *bitio.Reader[W, E]) (uint64, error) {
	var n uint64 = 1
	for {
		bit, err := r.PeekBits(1)
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			r.SkipBitsAfterPeek(1)
			return n - 1, nil
		}
		lambda := n
		v, err := r.ReadBits(uint(lambda) + 1)
		if err != nil {
			return 0, err
		}
		if !endian.IsBigEndian[E]() {
			v = (v >> 1) | (uint64(1) << lambda)
		}
		n = v
	}
}

// WriteOmega encodes n as an omega codeword and returns its length. n
// must not be 2**64-1.
func WriteOmega[W word.Word, E endian.Order](w *bitio.Writer[W, E], n uint64) (int, error) {
	written, err := writeOmegaRec[W, E](w, n+1)
	if err != nil {
		return written, err
	}
	n2, err := w.WriteBits(0, 1)
	return written + n2, err
}

func writeOmegaRec[W word.Word, E endian.Order](w *bitio.Writer[W, E], n uint64) (int, error) {
	if n <= 1 {
		return 0, nil
	}
	lambda := ilog2(n)
	if !endian.IsBigEndian[E]() {
		n = ((n << 1) | 1) & lowMask(uint(lambda)+1)
	}
	n1, err := writeOmegaRec[W, E](w, uint64(lambda))
	if err != nil {
		return n1, err
	}
	n2, err := w.WriteBits(n, uint(lambda)+1)
	return n1 + n2, err
}
