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

package simd

// Mmask is an integer bitmask extracted from a Logical register. Groups
// of MmaskBitsPerElement bits correspond to one lane each, lane 0 in the
// least significant group.
type Mmask uint64

// MmaskBitsPerElement is the number of mask bits per lane. Every backend
// extracts exactly one bit per lane (PMOVMSKB on x86, the multiply-gather
// extraction on NEON), so this is a package constant rather than a
// per-backend one.
const MmaskBitsPerElement = 1

// setLowerBits returns a mask with the low n bits set. n ranges over
// [0, 64]; the full-width case is handled explicitly rather than leaning
// on shift semantics.
func setLowerBits(n int) Mmask {
	if n >= 64 {
		return ^Mmask(0)
	}
	return Mmask(1)<<uint(n) - 1
}

// ClearIgnored zeroes the bit groups of the first ex.First and last
// ex.Last lanes of a cardinal-lane mask, leaving the middle untouched.
func ClearIgnored(m Mmask, cardinal int, ex IgnoreExtrema) Mmask {
	m &^= setLowerBits(ex.First * MmaskBitsPerElement)
	m &= setLowerBits((cardinal - ex.Last) * MmaskBitsPerElement)
	return m
}
