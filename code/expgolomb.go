// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"github.com/dsnet/bitcodec/bitio"
	"github.com/dsnet/bitcodec/endian"
	"github.com/dsnet/bitcodec/word"
)

// LenExpGolomb returns the length, in bits, of the exponential-Golomb
// codeword for n with parameter k: a gamma code of n>>k followed by k
// literal bits. k = 0 degenerates to a plain gamma code.
func LenExpGolomb(n uint64, k uint) int {
	return LenGamma(n>>k) + int(k)
}

// ReadExpGolomb decodes an exponential-Golomb codeword with parameter k.
func ReadExpGolomb[W word.Word, E endian.Order](r *bitio.Reader[W, E], k uint) (uint64, error) {
	hi, err := ReadGamma(r)
	if err != nil {
		return 0, err
	}
	lo, err := r.ReadBits(k)
	if err != nil {
		return 0, err
	}
	return (hi << k) + lo, nil
}

// WriteExpGolomb encodes n as an exponential-Golomb codeword with
// parameter k and returns its length.
func WriteExpGolomb[W word.Word, E endian.Order](w *bitio.Writer[W, E], n uint64, k uint) (int, error) {
	n1, err := WriteGamma(w, n>>k)
	if err != nil {
		return n1, err
	}
	n2, err := w.WriteBits(n&lowMask(k), k)
	return n1 + n2, err
}
