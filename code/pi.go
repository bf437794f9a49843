// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"github.com/dsnet/bitcodec/bitio"
	"github.com/dsnet/bitcodec/endian"
	"github.com/dsnet/bitcodec/word"
)

// LenPi returns the length, in bits, of the streamlined
// Apostolico-Drovandi pi codeword for n with parameter k: the Rice code
// of lambda = floor(log2(n+1)) with parameter k, followed by the low
// lambda bits of n+1.
func LenPi(n uint64, k uint) int {
	m := n + 1
	lambda := ilog2(m)
	return LenRice(uint64(lambda), k) + int(lambda)
}

// ReadPi decodes a pi codeword with parameter k.
func ReadPi[W word.Word, E endian.Order](r *bitio.Reader[W, E], k uint) (uint64, error) {
	lambda, err := ReadRice(r, k)
	if err != nil {
		return 0, err
	}
	rest, err := r.ReadBits(uint(lambda))
	if err != nil {
		return 0, err
	}
	return (uint64(1) << lambda) + rest - 1, nil
}

// WritePi encodes n as a pi codeword with parameter k and returns its
// length.
func WritePi[W word.Word, E endian.Order](w *bitio.Writer[W, E], n uint64, k uint) (int, error) {
	m := n + 1
	lambda := ilog2(m)
	n1, err := WriteRice(w, uint64(lambda), k)
	if err != nil {
		return n1, err
	}
	rest := m &^ (uint64(1) << lambda)
	n2, err := w.WriteBits(rest, uint(lambda))
	return n1 + n2, err
}
