// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package dispatch

import (
	"github.com/dsnet/bitcodec/bitio"
	"github.com/dsnet/bitcodec/endian"
	"github.com/dsnet/bitcodec/word"
)

// Func is a Coder built once from a Code and reused across many
// operations. Each field is a closure over the Code that calls the
// package-level Read, Write, or Len, so every call through a Func still
// runs the switch on the Code's Kind; NewFunc does not resolve the code
// to a direct function at construction.
type Func[W word.Word, E endian.Order] struct {
	read  func(*bitio.Reader[W, E]) (uint64, error)
	write func(*bitio.Writer[W, E], uint64) (int, error)
	len   func(uint64) int
}

// NewFunc builds a Func bound to c.
func NewFunc[W word.Word, E endian.Order](c Code) Func[W, E] {
	return Func[W, E]{
		read:  func(r *bitio.Reader[W, E]) (uint64, error) { return Read[W, E](c, r) },
		write: func(w *bitio.Writer[W, E], n uint64) (int, error) { return Write[W, E](c, w, n) },
		len:   func(n uint64) int { return Len(c, n) },
	}
}

func (f Func[W, E]) Read(r *bitio.Reader[W, E]) (uint64, error) { return f.read(r) }

func (f Func[W, E]) Write(w *bitio.Writer[W, E], n uint64) (int, error) { return f.write(w, n) }

func (f Func[W, E]) Len(n uint64) int { return f.len(n) }
