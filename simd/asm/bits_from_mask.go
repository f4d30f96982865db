// Copyright 2025 go-simdchar Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package asm

import "encoding/binary"

// BitsFromMask packs one bit per byte lane into an integer, bit i coming
// from lane i. The input must be lane-uniform: each lane all-ones or
// all-zeros, as produced by the comparison kernels. Mixed lane patterns
// give meaningless results.
//
// This is the portable mask extraction; it also serves as the movemask on
// targets without a native byte-movemask instruction (NEON).
//
// Algorithm, per 64-bit half:
//  1. AND with 0x0101010101010101 to keep bit 0 of each byte
//  2. Multiply by 0x0102040810204080 so byte i's bit lands at bit 56+i
//  3. Shift the packed 8 bits down from the top byte
func BitsFromMask(v Uint8x16) uint64 {
	lo := binary.LittleEndian.Uint64(v[0:8])
	hi := binary.LittleEndian.Uint64(v[8:16])

	const mask = 0x0101010101010101
	const magic = 0x0102040810204080

	lo = ((lo & mask) * magic) >> 56
	hi = ((hi & mask) * magic) >> 56

	return lo | hi<<8
}

// BitsFromMask32 is BitsFromMask for 32-lane vectors.
func BitsFromMask32(v Uint8x32) uint64 {
	const mask = 0x0101010101010101
	const magic = 0x0102040810204080

	var out uint64
	for i := 0; i < 4; i++ {
		q := binary.LittleEndian.Uint64(v[i*8 : i*8+8])
		out |= ((q & mask) * magic) >> 56 << (8 * i)
	}
	return out
}
