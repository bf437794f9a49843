// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"sync"

	"github.com/dsnet/bitcodec/bitio"
	"github.com/dsnet/bitcodec/endian"
	"github.com/dsnet/bitcodec/memword"
)

// tableEntry is one slot of a PeekMax-bit accelerated decode table. A
// zero length marks a slot whose codeword either errored or did not
// fit within PeekMax bits; no real codeword has length zero, so zero is
// a safe sentinel.
type tableEntry struct {
	value  uint64
	length uint8
}

var (
	gammaTableBE, gammaTableLE [1 << bitio.PeekMax]tableEntry
	deltaTableBE, deltaTableLE [1 << bitio.PeekMax]tableEntry
	unaryTableBE, unaryTableLE [1 << bitio.PeekMax]tableEntry
	zeta3TableBE, zeta3TableLE [1 << bitio.PeekMax]tableEntry

	tablesOnce sync.Once
)

// ensureTables builds every accelerated decode table exactly once, the
// first time any Fast decoder is used.
func ensureTables() {
	tablesOnce.Do(initTables)
}

func initTables() {
	gammaTableBE = buildTable[endian.BigEndian](ReadGamma[uint8, endian.BigEndian])
	gammaTableLE = buildTable[endian.LittleEndian](ReadGamma[uint8, endian.LittleEndian])
	deltaTableBE = buildTable[endian.BigEndian](ReadDelta[uint8, endian.BigEndian])
	deltaTableLE = buildTable[endian.LittleEndian](ReadDelta[uint8, endian.LittleEndian])
	unaryTableBE = buildTable[endian.BigEndian](ReadUnary[uint8, endian.BigEndian])
	unaryTableLE = buildTable[endian.LittleEndian](ReadUnary[uint8, endian.LittleEndian])
	zeta3TableBE = buildTable[endian.BigEndian](readZeta3[uint8, endian.BigEndian])
	zeta3TableLE = buildTable[endian.LittleEndian](readZeta3[uint8, endian.LittleEndian])
}

// buildTable fills one PeekMax-bit indexed table by, for every possible
// index, writing the index as a PeekMax-bit bit pattern into a tiny
// in-memory backend and then running the ordinary (table-free) decoder
// over it. The decoded length comes from the backend's own bit
// position, which is exact because the backend holds nothing but the
// index bits: a decode that runs past PeekMax bits hits end of stream
// and is excluded from the table rather than guessed at.
func buildTable[E endian.Order](decode func(*bitio.Reader[uint8, E]) (uint64, error)) [1 << bitio.PeekMax]tableEntry {
	var table [1 << bitio.PeekMax]tableEntry
	for idx := range table {
		table[idx] = decodeTableEntry[E](uint64(idx), decode)
	}
	return table
}

func decodeTableEntry[E endian.Order](idx uint64, decode func(*bitio.Reader[uint8, E]) (uint64, error)) tableEntry {
	var words []uint8
	bw := bitio.NewWriter[uint8, E](memword.NewWriter[uint8](&words))
	if _, err := bw.WriteBits(idx, bitio.PeekMax); err != nil {
		return tableEntry{}
	}
	if _, err := bw.Flush(); err != nil {
		return tableEntry{}
	}

	br := bitio.NewReader[uint8, E](memword.NewReader[uint8](words))
	value, err := decode(br)
	if err != nil {
		return tableEntry{}
	}
	pos, err := br.BitPos()
	if err != nil || pos <= 0 || pos > bitio.PeekMax {
		return tableEntry{}
	}
	return tableEntry{value: value, length: uint8(pos)}
}

func lookupIn(table *[1 << bitio.PeekMax]tableEntry, peek uint64) (tableEntry, bool) {
	e := table[peek&((1<<bitio.PeekMax)-1)]
	if e.length == 0 {
		return tableEntry{}, false
	}
	return e, true
}

func lookupGamma[E endian.Order](peek uint64) (tableEntry, bool) {
	ensureTables()
	if endian.IsBigEndian[E]() {
		return lookupIn(&gammaTableBE, peek)
	}
	return lookupIn(&gammaTableLE, peek)
}

func lookupDelta[E endian.Order](peek uint64) (tableEntry, bool) {
	ensureTables()
	if endian.IsBigEndian[E]() {
		return lookupIn(&deltaTableBE, peek)
	}
	return lookupIn(&deltaTableLE, peek)
}

func lookupUnary[E endian.Order](peek uint64) (tableEntry, bool) {
	ensureTables()
	if endian.IsBigEndian[E]() {
		return lookupIn(&unaryTableBE, peek)
	}
	return lookupIn(&unaryTableLE, peek)
}

func lookupZeta3[E endian.Order](peek uint64) (tableEntry, bool) {
	ensureTables()
	if endian.IsBigEndian[E]() {
		return lookupIn(&zeta3TableBE, peek)
	}
	return lookupIn(&zeta3TableLE, peek)
}
