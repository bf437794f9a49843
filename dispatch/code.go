// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package dispatch provides three ways to carry "which code to use"
// through a program: a runtime-switched Code value, a compile-time
// Const token, and a reusable Func built once from either. All three
// agree on every input and are built on the same code package
// primitives.
package dispatch

import (
	"github.com/dsnet/bitcodec/bitio"
	"github.com/dsnet/bitcodec/code"
	"github.com/dsnet/bitcodec/endian"
	"github.com/dsnet/bitcodec/word"

	"golang.org/x/exp/constraints"
)

// Kind identifies a code family, independent of any numeric parameter
// it may carry.
type Kind uint8

const (
	KindUnary Kind = iota
	KindGamma
	KindDelta
	KindOmega
	KindZeta
	KindPi
	KindGolomb
	KindRice
	KindExpGolomb
)

// Code is a runtime value identifying one code and, where applicable,
// its numeric parameter (Golomb's b, Rice's log2b, zeta/pi/exp-Golomb's
// k). It is the "occasional use" dispatch regime: a Code is cheap to
// store and compare, and every operation on it goes through a switch.
type Code struct {
	Kind  Kind
	Param uint64
}

func Unary() Code { return Code{Kind: KindUnary} }
func Gamma() Code { return Code{Kind: KindGamma} }
func Delta() Code { return Code{Kind: KindDelta} }
func Omega() Code { return Code{Kind: KindOmega} }

func Zeta[T constraints.Unsigned](k T) Code { return Code{Kind: KindZeta, Param: uint64(k)} }
func Pi[T constraints.Unsigned](k T) Code   { return Code{Kind: KindPi, Param: uint64(k)} }
func Golomb[T constraints.Unsigned](b T) Code {
	return Code{Kind: KindGolomb, Param: uint64(b)}
}
func Rice[T constraints.Unsigned](log2b T) Code {
	return Code{Kind: KindRice, Param: uint64(log2b)}
}
func ExpGolomb[T constraints.Unsigned](k T) Code {
	return Code{Kind: KindExpGolomb, Param: uint64(k)}
}

// Read decodes one value of c's code from r.
func Read[W word.Word, E endian.Order](c Code, r *bitio.Reader[W, E]) (uint64, error) {
	switch c.Kind {
	case KindUnary:
		return code.ReadUnary(r)
	case KindGamma:
		return code.ReadGamma(r)
	case KindDelta:
		return code.ReadDelta(r)
	case KindOmega:
		return code.ReadOmega(r)
	case KindZeta:
		return code.ReadZeta(r, uint(c.Param))
	case KindPi:
		return code.ReadPi(r, uint(c.Param))
	case KindGolomb:
		return code.ReadGolomb(r, c.Param)
	case KindRice:
		return code.ReadRice(r, uint(c.Param))
	case KindExpGolomb:
		return code.ReadExpGolomb(r, uint(c.Param))
	default:
		panic("dispatch: unknown code kind")
	}
}

// Write encodes n using c's code into w.
func Write[W word.Word, E endian.Order](c Code, w *bitio.Writer[W, E], n uint64) (int, error) {
	switch c.Kind {
	case KindUnary:
		return code.WriteUnary(w, n)
	case KindGamma:
		return code.WriteGamma(w, n)
	case KindDelta:
		return code.WriteDelta(w, n)
	case KindOmega:
		return code.WriteOmega(w, n)
	case KindZeta:
		return code.WriteZeta(w, n, uint(c.Param))
	case KindPi:
		return code.WritePi(w, n, uint(c.Param))
	case KindGolomb:
		return code.WriteGolomb(w, n, c.Param)
	case KindRice:
		return code.WriteRice(w, n, uint(c.Param))
	case KindExpGolomb:
		return code.WriteExpGolomb(w, n, uint(c.Param))
	default:
		panic("dispatch: unknown code kind")
	}
}

// Len returns the bit length of n under c's code, without reading or
// writing anything.
func Len(c Code, n uint64) int {
	switch c.Kind {
	case KindUnary:
		return code.LenUnary(n)
	case KindGamma:
		return code.LenGamma(n)
	case KindDelta:
		return code.LenDelta(n)
	case KindOmega:
		return code.LenOmega(n)
	case KindZeta:
		return code.LenZeta(n, uint(c.Param))
	case KindPi:
		return code.LenPi(n, uint(c.Param))
	case KindGolomb:
		return code.LenGolomb(n, c.Param)
	case KindRice:
		return code.LenRice(n, uint(c.Param))
	case KindExpGolomb:
		return code.LenExpGolomb(n, uint(c.Param))
	default:
		panic("dispatch: unknown code kind")
	}
}
