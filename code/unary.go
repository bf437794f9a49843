// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"github.com/dsnet/bitcodec/bitio"
	"github.com/dsnet/bitcodec/endian"
	"github.com/dsnet/bitcodec/word"
)

// LenUnary returns the length, in bits, of the unary codeword for n.
func LenUnary(n uint64) int { return int(n) + 1 }

// ReadUnary reads a unary codeword: n zero bits followed by a one.
func ReadUnary[W word.Word, E endian.Order](r *bitio.Reader[W, E]) (uint64, error) {
	return r.ReadUnary()
}

// WriteUnary writes n zero bits followed by a one, returning n+1.
func WriteUnary[W word.Word, E endian.Order](w *bitio.Writer[W, E], n uint64) (int, error) {
	return w.WriteUnary(n)
}

// ReadUnaryFast decodes a unary codeword using the PeekMax-bit
// accelerated table when possible, falling back to ReadUnary.
func ReadUnaryFast[W word.Word, E endian.Order](r *bitio.Reader[W, E]) (uint64, error) {
	peek, err := r.PeekBits(bitio.PeekMax)
	if err != nil {
		return 0, err
	}
	if entry, ok := lookupUnary[E](peek); ok {
		r.SkipBitsAfterPeek(uint(entry.length))
		return entry.value, nil
	}
	return ReadUnary(r)
}
