// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

import (
	"github.com/dsnet/golib/errs"

	"github.com/dsnet/bitcodec/endian"
	"github.com/dsnet/bitcodec/word"
)

const errBadValue = Error("value does not fit in the requested number of bits")

// readWriteSeeker is the capability a backend must have for Writer.SetBitPos
// to perform its read-modify-write cycle.
type readWriteSeeker[W word.Word] interface {
	word.Reader[W]
	word.Writer[W]
	word.Seeker
}

// Writer is a buffered bit writer over a word.Writer[W] backend, with
// bits packed according to E. The zero value is not usable; construct
// with NewWriter.
type Writer[W word.Word, E endian.Order] struct {
	wr    word.Writer[W]
	buf   uint64 // partial word, exactly wbits wide conceptually
	nbits uint   // valid bits currently held in buf, in [0, wbits]
	wbits uint
}

// NewWriter returns a Writer over an already-positioned backend.
func NewWriter[W word.Word, E endian.Order](wr word.Writer[W]) *Writer[W, E] {
	return &Writer[W, E]{wr: wr, wbits: word.Bits[W]()}
}

// insert merges take (<= space left in the current partial word) freshly
// supplied bits, already right-aligned in chunk, into the buffer.
func (w *Writer[W, E]) insert(chunk uint64, take uint) {
	if take == 0 {
		return
	}
	if endian.IsBigEndian[E]() {
		w.buf = (w.buf << take) | chunk
	} else {
		w.buf >>= take
		w.buf |= chunk << (64 - take)
	}
	w.nbits += take
}

// dump emits a full partial word to the backend and resets the buffer.
func (w *Writer[W, E]) dump() error {
	var word W
	if endian.IsBigEndian[E]() {
		word = W(w.buf)
	} else {
		word = W(w.buf >> (64 - w.wbits))
	}
	if err := w.wr.WriteWord(word); err != nil {
		return err
	}
	w.buf = 0
	w.nbits = 0
	return nil
}

// WriteBits appends the low n bits of value (n in [0, 64]) and returns n.
// value must have no bits set above the low n; otherwise WriteBits
// writes nothing and returns an error.
func (w *Writer[W, E]) WriteBits(value uint64, n uint) (written int, err error) {
	defer errs.Recover(&err)
	errs.Assert(n <= 64, errBadCount)
	if n == 0 {
		return 0, nil
	}
	errs.Assert(n == 64 || value>>n == 0, errBadValue)

	remaining := n
	for remaining > 0 {
		space := w.wbits - w.nbits
		take := remaining
		if take > space {
			take = space
		}
		// Big-endian emits the most significant bits of value first,
		// little-endian the least significant ones.
		var chunk uint64
		if endian.IsBigEndian[E]() {
			chunk = (value >> (remaining - take)) & lowMask(take)
		} else {
			chunk = (value >> (n - remaining)) & lowMask(take)
		}
		w.insert(chunk, take)
		remaining -= take
		if w.nbits == w.wbits {
			if derr := w.dump(); derr != nil {
				return int(n - remaining), derr
			}
		}
	}
	return int(n), nil
}

// WriteUnary appends value zeros followed by a one and returns value+1.
// value must not be 2**64 - 1.
func (w *Writer[W, E]) WriteUnary(value uint64) (written int, err error) {
	defer errs.Recover(&err)
	errs.Assert(value != ^uint64(0), errBadValue)

	remaining := value + 1
	for remaining > uint64(w.wbits-w.nbits) {
		space := w.wbits - w.nbits
		w.insert(0, space)
		if derr := w.dump(); derr != nil {
			return 0, derr
		}
		remaining -= uint64(space)
	}
	zeros := uint(remaining - 1)
	if zeros > 0 {
		w.insert(0, zeros)
	}
	w.insert(1, 1)
	if w.nbits == w.wbits {
		if derr := w.dump(); derr != nil {
			return 0, derr
		}
	}
	return int(value + 1), nil
}

// Flush pads the current partial word with zeros and emits it, reporting
// how many meaningful bits (excluding padding) were written. After Flush
// the writer holds no valid bits.
func (w *Writer[W, E]) Flush() (int, error) {
	n := int(w.nbits)
	if w.nbits == 0 {
		return 0, nil
	}
	pad := w.wbits - w.nbits
	w.insert(0, pad)
	if err := w.dump(); err != nil {
		return n, err
	}
	return n, nil
}

// BitPos reports the writer's logical bit position, provided the backend
// implements word.Seeker.
func (w *Writer[W, E]) BitPos() (int64, error) {
	sk, ok := w.wr.(word.Seeker)
	if !ok {
		return 0, Error("backend does not support seeking")
	}
	wpos, err := sk.WordPos()
	if err != nil {
		return 0, err
	}
	return wpos*int64(w.wbits) + int64(w.nbits), nil
}

// SetBitPos flushes any pending partial word, then positions the backend
// at bit p, performing a read-modify-write of the destination word so
// that bits neighboring p are preserved. The backend must implement
// word.Reader[W], word.Writer[W], and word.Seeker. Seeking forward into
// never-written territory is only valid over positions previously
// written by this or an earlier writer.
func (w *Writer[W, E]) SetBitPos(p int64) (err error) {
	defer errs.Recover(&err)
	if _, ferr := w.Flush(); ferr != nil {
		return ferr
	}
	rws, ok := w.wr.(readWriteSeeker[W])
	if !ok {
		return Error("backend does not support seek read-modify-write")
	}

	wb := int64(w.wbits)
	wordIdx := p / wb
	bitOff := uint(p % wb)
	if err := rws.SetWordPos(wordIdx); err != nil {
		return err
	}
	if bitOff == 0 {
		return nil
	}
	existing, err := rws.ReadWord()
	if err != nil {
		return err
	}
	if err := rws.SetWordPos(wordIdx); err != nil {
		return err
	}

	if endian.IsBigEndian[E]() {
		w.buf = uint64(existing) >> (w.wbits - bitOff)
	} else {
		w.buf = (uint64(existing) & lowMask(bitOff)) << (64 - bitOff)
	}
	w.nbits = bitOff
	return nil
}
