// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package dispatch

import (
	"github.com/dsnet/bitcodec/bitio"
	"github.com/dsnet/bitcodec/endian"
	"github.com/dsnet/bitcodec/word"
)

// Coder is the common surface of the method-based dispatch
// representations: a runtime Switched value and a Func built from a
// Code. Const has no methods and does not satisfy Coder; it is used
// through the free functions ReadConst, WriteConst, and LenConst.
type Coder[W word.Word, E endian.Order] interface {
	Read(r *bitio.Reader[W, E]) (uint64, error)
	Write(w *bitio.Writer[W, E], n uint64) (int, error)
	Len(n uint64) int
}

// Switched adapts a runtime Code value to Coder[W, E], dispatching with
// a switch on every call.
type Switched[W word.Word, E endian.Order] struct {
	Code Code
}

func (s Switched[W, E]) Read(r *bitio.Reader[W, E]) (uint64, error) {
	return Read[W, E](s.Code, r)
}

func (s Switched[W, E]) Write(w *bitio.Writer[W, E], n uint64) (int, error) {
	return Write[W, E](s.Code, w, n)
}

func (s Switched[W, E]) Len(n uint64) int {
	return Len(s.Code, n)
}
