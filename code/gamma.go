// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"github.com/dsnet/bitcodec/bitio"
	"github.com/dsnet/bitcodec/endian"
	"github.com/dsnet/bitcodec/word"
)

// LenGamma returns the length, in bits, of the Elias gamma codeword
// for n: 2*floor(log2(n+1)) + 1.
func LenGamma(n uint64) int {
	lambda := ilog2(n + 1)
	return int(2*lambda + 1)
}

// ReadGamma decodes a gamma codeword.
func ReadGamma[W word.Word, E endian.Order](r *bitio.Reader[W, E]) (uint64, error) {
	lambda, err := r.ReadUnary()
	if err != nil {
		return 0, err
	}
	rest, err := r.ReadBits(uint(lambda))
	if err != nil {
		return 0, err
	}
	return rest + (uint64(1) << lambda) - 1, nil
}

// WriteGamma encodes n as a gamma codeword and returns its length.
func WriteGamma[W word.Word, E endian.Order](w *bitio.Writer[W, E], n uint64) (int, error) {
	m := n + 1
	lambda := ilog2(m)
	n1, err := w.WriteUnary(uint64(lambda))
	if err != nil {
		return n1, err
	}
	rest := m - (uint64(1) << lambda)
	n2, err := w.WriteBits(rest, lambda)
	return n1 + n2, err
}

// ReadGammaFast decodes a gamma codeword using the PeekMax-bit
// accelerated table when possible, falling back to ReadGamma. It
// advances the stream by the same amount and returns the same value as
// ReadGamma for every input.
func ReadGammaFast[W word.Word, E endian.Order](r *bitio.Reader[W, E]) (uint64, error) {
	peek, err := r.PeekBits(bitio.PeekMax)
	if err != nil {
		return 0, err
	}
	if entry, ok := lookupGamma[E](peek); ok {
		r.SkipBitsAfterPeek(uint(entry.length))
		return entry.value, nil
	}
	return ReadGamma(r)
}
