// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package endian provides the two zero-sized endianness markers that
// parameterize every bit reader and bit writer in this module.
//
// Endianness here governs the mapping between bit position in a logical
// stream and bit position within a backend word; it is orthogonal to the
// byte order a word backend uses to serialize a word to storage.
package endian

// Order is implemented by BigEndian and LittleEndian. It has exactly two
// inhabitants; callers should not implement it themselves.
type Order interface {
	// bigEndian reports whether bits are packed starting from the most
	// significant position of a word. It is unexported so that Order
	// remains sealed to this package's two marker types.
	bigEndian() bool
}

// BigEndian packs the first bit written into the most significant
// position of the first word.
type BigEndian struct{}

func (BigEndian) bigEndian() bool { return true }

// LittleEndian packs the first bit written into the least significant
// position of the first word.
type LittleEndian struct{}

func (LittleEndian) bigEndian() bool { return false }

// IsBigEndian reports the endianness carried by the zero value of E.
func IsBigEndian[E Order]() bool {
	var e E
	return e.bigEndian()
}
