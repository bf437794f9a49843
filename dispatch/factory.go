// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package dispatch

import (
	"github.com/dsnet/bitcodec/bitio"
	"github.com/dsnet/bitcodec/endian"
	"github.com/dsnet/bitcodec/word"
)

// ReaderFactory produces fresh bit readers over backends obtained from
// a shared backend-producing closure. Go's garbage collector removes
// the need for the borrow-checker workaround a lifetime-bound factory
// requires elsewhere: the factory simply closes over newBackend, and
// every *bitio.Reader[W, E] it returns stays alive for as long as the
// caller holds it.
type ReaderFactory[W word.Word, E endian.Order] struct {
	newBackend func() word.Reader[W]
}

// NewReaderFactory returns a ReaderFactory that calls newBackend once
// per New call.
func NewReaderFactory[W word.Word, E endian.Order](newBackend func() word.Reader[W]) *ReaderFactory[W, E] {
	return &ReaderFactory[W, E]{newBackend: newBackend}
}

// New returns a fresh Reader over a fresh backend.
func (f *ReaderFactory[W, E]) New() *bitio.Reader[W, E] {
	return bitio.NewReader[W, E](f.newBackend())
}
