// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package zigzag implements the bijection between signed 64-bit
// integers and naturals used to feed signed values through codes that
// only know how to encode naturals.
package zigzag

// ToNat maps a signed integer to its zig-zag natural encoding:
// 0, -1, 1, -2, 2, ... map to 0, 1, 2, 3, 4, ...
func ToNat(x int64) uint64 {
	return (uint64(x) << 1) ^ uint64(x>>63)
}

// ToInt inverts ToNat.
func ToInt(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}
