// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package dispatch

import (
	"github.com/dsnet/bitcodec/bitio"
	"github.com/dsnet/bitcodec/endian"
	"github.com/dsnet/bitcodec/word"
)

// Packed is implemented by zero-sized marker types that each name one
// fixed code and parameter pair, the way endian.BigEndian and
// endian.LittleEndian each name one fixed endianness. Concrete markers
// live in the codeconst subpackage.
type Packed interface {
	PackedCode() Code
}

// Const is a zero-sized dispatch token whose code is fixed by its type
// parameter K and carries no runtime state. ReadConst, WriteConst, and
// LenConst obtain K's Code from K.PackedCode on each call and pass it to
// Read, Write, or Len, which are not parameterized by K and switch on
// the Code's Kind at run time.
type Const[K Packed] struct{}

func (Const[K]) code() Code {
	var k K
	return k.PackedCode()
}

// ReadConst decodes one value using the code packed into K.
func ReadConst[K Packed, W word.Word, E endian.Order](r *bitio.Reader[W, E]) (uint64, error) {
	var c Const[K]
	return Read[W, E](c.code(), r)
}

// WriteConst encodes n using the code packed into K.
func WriteConst[K Packed, W word.Word, E endian.Order](w *bitio.Writer[W, E], n uint64) (int, error) {
	var c Const[K]
	return Write[W, E](c.code(), w, n)
}

// LenConst returns the bit length of n under the code packed into K.
func LenConst[K Packed](n uint64) int {
	var c Const[K]
	return Len(c.code(), n)
}
