// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"github.com/dsnet/bitcodec/bitio"
	"github.com/dsnet/bitcodec/endian"
	"github.com/dsnet/bitcodec/word"
)

// LenDelta returns the length, in bits, of the Elias delta codeword
// for n.
func LenDelta(n uint64) int {
	lambda := ilog2(n + 1)
	return int(lambda) + LenGamma(uint64(lambda))
}

// ReadDelta decodes a delta codeword: a gamma code of lambda followed
// by the low lambda bits of (n+1).
func ReadDelta[W word.Word, E endian.Order](r *bitio.Reader[W, E]) (uint64, error) {
	lambda, err := ReadGamma(r)
	if err != nil {
		return 0, err
	}
	rest, err := r.ReadBits(uint(lambda))
	if err != nil {
		return 0, err
	}
	return rest + (uint64(1) << lambda) - 1, nil
}

// WriteDelta encodes n as a delta codeword and returns its length.
func WriteDelta[W word.Word, E endian.Order](w *bitio.Writer[W, E], n uint64) (int, error) {
	m := n + 1
	lambda := ilog2(m)
	n1, err := WriteGamma(w, uint64(lambda))
	if err != nil {
		return n1, err
	}
	rest := m - (uint64(1) << lambda)
	n2, err := w.WriteBits(rest, uint(lambda))
	return n1 + n2, err
}

// ReadDeltaFast decodes a delta codeword using the PeekMax-bit
// accelerated table when possible, falling back to ReadDelta.
func ReadDeltaFast[W word.Word, E endian.Order](r *bitio.Reader[W, E]) (uint64, error) {
	peek, err := r.PeekBits(bitio.PeekMax)
	if err != nil {
		return 0, err
	}
	if entry, ok := lookupDelta[E](peek); ok {
		r.SkipBitsAfterPeek(uint(entry.length))
		return entry.value, nil
	}
	return ReadDelta(r)
}
