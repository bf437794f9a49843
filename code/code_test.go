// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code_test

import (
	"testing"

	"github.com/dsnet/bitcodec/bitio"
	"github.com/dsnet/bitcodec/code"
	"github.com/dsnet/bitcodec/endian"
	"github.com/dsnet/bitcodec/internal/testutil"
	"github.com/dsnet/bitcodec/memword"
)

// codeUnderTest bundles a code's three operations with the same
// signature shape so round-trip and length-agreement sweeps can run
// generically over every family.
type codeUnderTest struct {
	name  string
	lenFn func(n uint64) int
	// writeBE/readBE/writeLE/readLE close over any extra parameter (k, b, log2b, u).
	writeBE func(w *bitio.Writer[uint8, endian.BigEndian], n uint64) (int, error)
	readBE  func(r *bitio.Reader[uint8, endian.BigEndian]) (uint64, error)
	writeLE func(w *bitio.Writer[uint8, endian.LittleEndian], n uint64) (int, error)
	readLE  func(r *bitio.Reader[uint8, endian.LittleEndian]) (uint64, error)
	values  []uint64
}

func sweepValues() []uint64 {
	vs := []uint64{0, 1, 2, 3, 4, 5, 6, 7, 8, 15, 16, 31, 99, 1000, 1 << 20}
	return vs
}

func allCodes() []codeUnderTest {
	vs := sweepValues()
	return []codeUnderTest{
		{
			name:    "unary",
			lenFn:   code.LenUnary,
			writeBE: code.WriteUnary[uint8, endian.BigEndian],
			readBE:  code.ReadUnary[uint8, endian.BigEndian],
			writeLE: code.WriteUnary[uint8, endian.LittleEndian],
			readLE:  code.ReadUnary[uint8, endian.LittleEndian],
			values:  []uint64{0, 1, 2, 3, 7, 8, 20}, // unbounded codeword length, keep it cheap
		},
		{
			name:    "gamma",
			lenFn:   code.LenGamma,
			writeBE: code.WriteGamma[uint8, endian.BigEndian],
			readBE:  code.ReadGamma[uint8, endian.BigEndian],
			writeLE: code.WriteGamma[uint8, endian.LittleEndian],
			readLE:  code.ReadGamma[uint8, endian.LittleEndian],
			values:  vs,
		},
		{
			name:    "delta",
			lenFn:   code.LenDelta,
			writeBE: code.WriteDelta[uint8, endian.BigEndian],
			readBE:  code.ReadDelta[uint8, endian.BigEndian],
			writeLE: code.WriteDelta[uint8, endian.LittleEndian],
			readLE:  code.ReadDelta[uint8, endian.LittleEndian],
			values:  vs,
		},
		{
			name:  "omega",
			lenFn: code.LenOmega,
			writeBE: func(w *bitio.Writer[uint8, endian.BigEndian], n uint64) (int, error) {
				return code.WriteOmega[uint8, endian.BigEndian](w, n)
			},
			readBE: code.ReadOmega[uint8, endian.BigEndian],
			writeLE: func(w *bitio.Writer[uint8, endian.LittleEndian], n uint64) (int, error) {
				return code.WriteOmega[uint8, endian.LittleEndian](w, n)
			},
			readLE: code.ReadOmega[uint8, endian.LittleEndian],
			values: vs,
		},
		{
			name:  "zeta_k3",
			lenFn: func(n uint64) int { return code.LenZeta(n, 3) },
			writeBE: func(w *bitio.Writer[uint8, endian.BigEndian], n uint64) (int, error) {
				return code.WriteZeta(w, n, 3)
			},
			readBE: func(r *bitio.Reader[uint8, endian.BigEndian]) (uint64, error) {
				return code.ReadZeta(r, 3)
			},
			writeLE: func(w *bitio.Writer[uint8, endian.LittleEndian], n uint64) (int, error) {
				return code.WriteZeta(w, n, 3)
			},
			readLE: func(r *bitio.Reader[uint8, endian.LittleEndian]) (uint64, error) {
				return code.ReadZeta(r, 3)
			},
			values: vs,
		},
		{
			name:  "pi_k2",
			lenFn: func(n uint64) int { return code.LenPi(n, 2) },
			writeBE: func(w *bitio.Writer[uint8, endian.BigEndian], n uint64) (int, error) {
				return code.WritePi(w, n, 2)
			},
			readBE: func(r *bitio.Reader[uint8, endian.BigEndian]) (uint64, error) {
				return code.ReadPi(r, 2)
			},
			writeLE: func(w *bitio.Writer[uint8, endian.LittleEndian], n uint64) (int, error) {
				return code.WritePi(w, n, 2)
			},
			readLE: func(r *bitio.Reader[uint8, endian.LittleEndian]) (uint64, error) {
				return code.ReadPi(r, 2)
			},
			values: vs,
		},
		{
			name:  "rice_log2b2",
			lenFn: func(n uint64) int { return code.LenRice(n, 2) },
			writeBE: func(w *bitio.Writer[uint8, endian.BigEndian], n uint64) (int, error) {
				return code.WriteRice(w, n, 2)
			},
			readBE: func(r *bitio.Reader[uint8, endian.BigEndian]) (uint64, error) {
				return code.ReadRice(r, 2)
			},
			writeLE: func(w *bitio.Writer[uint8, endian.LittleEndian], n uint64) (int, error) {
				return code.WriteRice(w, n, 2)
			},
			readLE: func(r *bitio.Reader[uint8, endian.LittleEndian]) (uint64, error) {
				return code.ReadRice(r, 2)
			},
			values: vs,
		},
		{
			name:  "expgolomb_k3",
			lenFn: func(n uint64) int { return code.LenExpGolomb(n, 3) },
			writeBE: func(w *bitio.Writer[uint8, endian.BigEndian], n uint64) (int, error) {
				return code.WriteExpGolomb(w, n, 3)
			},
			readBE: func(r *bitio.Reader[uint8, endian.BigEndian]) (uint64, error) {
				return code.ReadExpGolomb(r, 3)
			},
			writeLE: func(w *bitio.Writer[uint8, endian.LittleEndian], n uint64) (int, error) {
				return code.WriteExpGolomb(w, n, 3)
			},
			readLE: func(r *bitio.Reader[uint8, endian.LittleEndian]) (uint64, error) {
				return code.ReadExpGolomb(r, 3)
			},
			values: vs,
		},
		{
			name:  "golomb_b5",
			lenFn: func(n uint64) int { return code.LenGolomb(n, 5) },
			writeBE: func(w *bitio.Writer[uint8, endian.BigEndian], n uint64) (int, error) {
				return code.WriteGolomb(w, n, 5)
			},
			readBE: func(r *bitio.Reader[uint8, endian.BigEndian]) (uint64, error) {
				return code.ReadGolomb(r, 5)
			},
			writeLE: func(w *bitio.Writer[uint8, endian.LittleEndian], n uint64) (int, error) {
				return code.WriteGolomb(w, n, 5)
			},
			readLE: func(r *bitio.Reader[uint8, endian.LittleEndian]) (uint64, error) {
				return code.ReadGolomb(r, 5)
			},
			values: vs,
		},
		{
			name:  "minimal_binary_u200",
			lenFn: func(n uint64) int { return code.LenMinimalBinary(n, 200) },
			writeBE: func(w *bitio.Writer[uint8, endian.BigEndian], n uint64) (int, error) {
				return code.WriteMinimalBinary(w, n, 200)
			},
			readBE: func(r *bitio.Reader[uint8, endian.BigEndian]) (uint64, error) {
				return code.ReadMinimalBinary(r, 200)
			},
			writeLE: func(w *bitio.Writer[uint8, endian.LittleEndian], n uint64) (int, error) {
				return code.WriteMinimalBinary(w, n, 200)
			},
			readLE: func(r *bitio.Reader[uint8, endian.LittleEndian]) (uint64, error) {
				return code.ReadMinimalBinary(r, 200)
			},
			values: []uint64{0, 1, 55, 56, 57, 100, 199},
		},
	}
}

func TestRoundTripAndLengthAgreement(t *testing.T) {
	for _, c := range allCodes() {
		c := c
		t.Run(c.name+"/BE", func(t *testing.T) {
			var words []uint8
			w := bitio.NewWriter[uint8, endian.BigEndian](memword.NewWriter[uint8](&words))
			var lens []int
			for _, n := range c.values {
				written, err := c.writeBE(w, n)
				if err != nil {
					t.Fatalf("write(%d) error: %v", n, err)
				}
				if want := c.lenFn(n); written != want {
					t.Errorf("write(%d) returned length %d, want %d", n, written, want)
				}
				lens = append(lens, written)
			}
			if _, err := w.Flush(); err != nil {
				t.Fatal(err)
			}
			r := bitio.NewReader[uint8, endian.BigEndian](memword.NewReader[uint8](words))
			for i, n := range c.values {
				got, err := c.readBE(r)
				if err != nil {
					t.Fatalf("read #%d error: %v", i, err)
				}
				if got != n {
					t.Errorf("read #%d = %d, want %d", i, got, n)
				}
			}
			_ = lens
		})
		t.Run(c.name+"/LE", func(t *testing.T) {
			var words []uint8
			w := bitio.NewWriter[uint8, endian.LittleEndian](memword.NewWriter[uint8](&words))
			for _, n := range c.values {
				written, err := c.writeLE(w, n)
				if err != nil {
					t.Fatalf("write(%d) error: %v", n, err)
				}
				if want := c.lenFn(n); written != want {
					t.Errorf("write(%d) returned length %d, want %d", n, written, want)
				}
			}
			if _, err := w.Flush(); err != nil {
				t.Fatal(err)
			}
			r := bitio.NewReader[uint8, endian.LittleEndian](memword.NewReader[uint8](words))
			for i, n := range c.values {
				got, err := c.readLE(r)
				if err != nil {
					t.Fatalf("read #%d error: %v", i, err)
				}
				if got != n {
					t.Errorf("read #%d = %d, want %d", i, got, n)
				}
			}
		})
	}
}

// TestBitPatternsBE checks the exact flushed bit pattern for a handful
// of codes whose layout is simple enough to derive by hand: the
// codeword occupies the top len(n) bits of the flushed word.
func TestBitPatternsBE(t *testing.T) {
	cases := []struct {
		name    string
		n       uint64
		length  int
		pattern uint8 // top `length` bits, right-aligned
		write   func(w *bitio.Writer[uint8, endian.BigEndian]) (int, error)
	}{
		{"unary/3", 3, 4, 0b0001, func(w *bitio.Writer[uint8, endian.BigEndian]) (int, error) {
			return code.WriteUnary(w, 3)
		}},
		{"gamma/0", 0, 1, 0b1, func(w *bitio.Writer[uint8, endian.BigEndian]) (int, error) {
			return code.WriteGamma(w, 0)
		}},
		{"gamma/4", 4, 5, 0b00101, func(w *bitio.Writer[uint8, endian.BigEndian]) (int, error) {
			return code.WriteGamma(w, 4)
		}},
		{"rice/log2b2/5", 5, 4, 0b0101, func(w *bitio.Writer[uint8, endian.BigEndian]) (int, error) {
			return code.WriteRice(w, 5, 2)
		}},
	}
	for _, c := range cases {
		var words []uint8
		w := bitio.NewWriter[uint8, endian.BigEndian](memword.NewWriter[uint8](&words))
		n, err := c.write(w)
		if err != nil {
			t.Fatalf("%s: write error: %v", c.name, err)
		}
		if n != c.length {
			t.Errorf("%s: write returned length %d, want %d", c.name, n, c.length)
		}
		if _, err := w.Flush(); err != nil {
			t.Fatal(err)
		}
		got := words[0] >> (8 - uint(c.length))
		if got != c.pattern {
			t.Errorf("%s: top %d bits = %04b, want %04b", c.name, c.length, got, c.pattern)
		}
	}
}

// TestBitPatternsLE mirrors TestBitPatternsBE: the codeword occupies
// the bottom len(n) bits of the flushed word.
func TestBitPatternsLE(t *testing.T) {
	cases := []struct {
		name    string
		length  int
		pattern uint8
		write   func(w *bitio.Writer[uint8, endian.LittleEndian]) (int, error)
	}{
		{"unary/3", 4, 0b1000, func(w *bitio.Writer[uint8, endian.LittleEndian]) (int, error) {
			return code.WriteUnary(w, 3)
		}},
		{"gamma/0", 1, 0b1, func(w *bitio.Writer[uint8, endian.LittleEndian]) (int, error) {
			return code.WriteGamma(w, 0)
		}},
		{"gamma/4", 5, 0b01100, func(w *bitio.Writer[uint8, endian.LittleEndian]) (int, error) {
			return code.WriteGamma(w, 4)
		}},
	}
	for _, c := range cases {
		var words []uint8
		w := bitio.NewWriter[uint8, endian.LittleEndian](memword.NewWriter[uint8](&words))
		if _, err := c.write(w); err != nil {
			t.Fatalf("%s: write error: %v", c.name, err)
		}
		if _, err := w.Flush(); err != nil {
			t.Fatal(err)
		}
		mask := uint8(1<<uint(c.length)) - 1
		got := words[0] & mask
		if got != c.pattern {
			t.Errorf("%s: bottom %d bits = %0*b, want %0*b", c.name, c.length, c.length, got, c.length, c.pattern)
		}
	}
}

// TestMixedGammaSequence encodes a mixed sequence of values with gamma
// in big-endian, then decodes and checks both the values and the total
// length consumed.
func TestMixedGammaSequence(t *testing.T) {
	seq := []uint64{0, 1, 2, 3, 4, 5, 6, 7, 15, 99, 999, 999999}
	var words []uint8
	w := bitio.NewWriter[uint8, endian.BigEndian](memword.NewWriter[uint8](&words))
	wantBits := 0
	for _, n := range seq {
		written, err := code.WriteGamma(w, n)
		if err != nil {
			t.Fatal(err)
		}
		wantBits += written
	}
	if _, err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	r := bitio.NewReader[uint8, endian.BigEndian](memword.NewReader[uint8](words))
	gotBits := 0
	for i, want := range seq {
		startPos, _ := r.BitPos()
		got, err := code.ReadGamma(r)
		if err != nil {
			t.Fatalf("decode #%d error: %v", i, err)
		}
		if got != want {
			t.Errorf("decode #%d = %d, want %d", i, got, want)
		}
		endPos, _ := r.BitPos()
		gotBits += int(endPos - startPos)
	}
	if gotBits != wantBits {
		t.Errorf("total consumed bits = %d, want %d", gotBits, wantBits)
	}
}

// TestSeekAndReread writes a stream of gamma codes, recording the bit
// position before each, then verifies that seeking the reader to any
// recorded position and decoding yields the originally written value.
func TestSeekAndReread(t *testing.T) {
	rng := testutil.NewRand(1)
	const count = 1000
	values := make([]uint64, count)
	positions := make([]int64, count)

	var words []uint32
	w := bitio.NewWriter[uint32, endian.BigEndian](memword.NewWriter[uint32](&words))
	for i := range values {
		values[i] = uint64(rng.Intn(1 << 10))
		positions[i], _ = w.BitPos()
		if _, err := code.WriteGamma(w, values[i]); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	r := bitio.NewReader[uint32, endian.BigEndian](memword.NewReader[uint32](words))
	for i, pos := range positions {
		if err := r.SetBitPos(pos); err != nil {
			t.Fatalf("#%d: SetBitPos(%d) error: %v", i, pos, err)
		}
		got, err := code.ReadGamma(r)
		if err != nil {
			t.Fatalf("#%d: ReadGamma error: %v", i, err)
		}
		if got != values[i] {
			t.Errorf("#%d: ReadGamma at pos %d = %d, want %d", i, pos, got, values[i])
		}
	}
}

// TestGammaBitGenFixture builds the gamma(4) big-endian codeword two
// independent ways — via code.WriteGamma and via a hand-authored
// BitGen fixture, ">>> >00101" (big-endian byte packing, with the
// 5-bit binary token itself marked big-endian so it isn't bit-reversed
// before packing) — and checks they agree.
func TestGammaBitGenFixture(t *testing.T) {
	want := testutil.MustDecodeBitGen(">>> >00101")

	var words []uint8
	w := bitio.NewWriter[uint8, endian.BigEndian](memword.NewWriter[uint8](&words))
	if _, err := code.WriteGamma(w, 4); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if len(want) != len(words) || want[0] != words[0] {
		t.Fatalf("BitGen fixture = %#x, code.WriteGamma(4) = %#x", want, words)
	}

	r := bitio.NewReader[uint8, endian.BigEndian](memword.NewReader[uint8](want))
	got, err := code.ReadGamma(r)
	if err != nil {
		t.Fatal(err)
	}
	if got != 4 {
		t.Errorf("ReadGamma(BitGen fixture) = %d, want 4", got)
	}
}

// TestEquivalenceClasses checks that the length functions of equivalent
// code families agree at matching parameters: pi_0 == zeta_1 == gamma,
// and exp-Golomb with k=0 == gamma. Codewords are not compared.
func TestEquivalenceClasses(t *testing.T) {
	for _, n := range sweepValues() {
		if got, want := code.LenPi(n, 0), code.LenGamma(n); got != want {
			t.Errorf("LenPi(%d, 0) = %d, want LenGamma(%d) = %d", n, got, n, want)
		}
		if got, want := code.LenZeta(n, 1), code.LenGamma(n); got != want {
			t.Errorf("LenZeta(%d, 1) = %d, want LenGamma(%d) = %d", n, got, n, want)
		}
		if got, want := code.LenExpGolomb(n, 0), code.LenGamma(n); got != want {
			t.Errorf("LenExpGolomb(%d, 0) = %d, want LenGamma(%d) = %d", n, got, n, want)
		}
	}
}

func TestPrefixFreedom(t *testing.T) {
	vs := sweepValues()
	for _, n1 := range vs {
		for _, n2 := range vs {
			if n1 == n2 {
				continue
			}
			var words []uint8
			w := bitio.NewWriter[uint8, endian.BigEndian](memword.NewWriter[uint8](&words))
			if _, err := code.WriteGamma(w, n1); err != nil {
				t.Fatal(err)
			}
			len1, _ := w.BitPos()
			if _, err := code.WriteGamma(w, n2); err != nil {
				t.Fatal(err)
			}
			if _, err := w.Flush(); err != nil {
				t.Fatal(err)
			}
			r := bitio.NewReader[uint8, endian.BigEndian](memword.NewReader[uint8](words))
			got, err := code.ReadGamma(r)
			if err != nil {
				t.Fatal(err)
			}
			if got != n1 {
				t.Errorf("codeword for %d, read back as prefix of codeword for %d, decoded as %d", n1, n2, got)
			}
			pos, _ := r.BitPos()
			if pos != len1 {
				t.Errorf("decoding n1=%d consumed %d bits, want exactly %d (no bleeding into n2's codeword)", n1, pos, len1)
			}
		}
	}
}
