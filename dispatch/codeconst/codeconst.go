// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package codeconst defines zero-sized dispatch.Packed markers for the
// handful of code-and-parameter pairs common enough to warrant a
// compile-time dispatch.Const token: the parameterless codes, and one
// parameterization each of zeta, pi, and Rice. A program needing another
// code or parameter (including any Golomb or exponential Golomb code)
// defines its own marker the same way.
package codeconst

import "github.com/dsnet/bitcodec/dispatch"

type Gamma struct{}

func (Gamma) PackedCode() dispatch.Code { return dispatch.Gamma() }

type Delta struct{}

func (Delta) PackedCode() dispatch.Code { return dispatch.Delta() }

type Omega struct{}

func (Omega) PackedCode() dispatch.Code { return dispatch.Omega() }

type Unary struct{}

func (Unary) PackedCode() dispatch.Code { return dispatch.Unary() }

// Zeta3 is the zeta code with k=3, the parameterization covered by the
// accelerated decode tables.
type Zeta3 struct{}

func (Zeta3) PackedCode() dispatch.Code { return dispatch.Zeta(uint64(3)) }

// Rice8 is the Rice code with log2b=3 (b=8).
type Rice8 struct{}

func (Rice8) PackedCode() dispatch.Code { return dispatch.Rice(uint64(3)) }

// Pi2 is the streamlined pi code with k=2.
type Pi2 struct{}

func (Pi2) PackedCode() dispatch.Code { return dispatch.Pi(uint64(2)) }
