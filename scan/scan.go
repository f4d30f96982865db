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

//go:build !noasm && (amd64 || arm64)

package scan

import (
	"math/bits"

	"github.com/ajroetker/go-simdchar/simd"
)

// The loop shape is the same for every scanner here: full vectors from
// the front, then one overlapped reload of the final vector with the
// already-scanned lanes ignored. Every load stays inside b, so no
// allocation-padding assumptions are needed; the ignore mask keeps the
// overlap from double-reporting.

// IndexByte returns the index of the first occurrence of c in b, or -1
// if c is not present.
func IndexByte(b []byte, c byte) int {
	if len(b) < simd.Cardinal {
		return indexByteGeneric(b, c)
	}
	p := simd.Char
	i := 0
	for ; i+simd.Cardinal <= len(b); i += simd.Cardinal {
		log := p.Equal(p.Loadu(&b[i], simd.IgnoreNone{}), c)
		if m := p.Movemask(log); m != 0 {
			return i + bits.TrailingZeros64(uint64(m))
		}
	}
	if i == len(b) {
		return -1
	}
	tail := len(b) - simd.Cardinal
	ig := simd.IgnoreExtrema{First: i - tail}
	log := p.Equal(p.Loada(&b[tail], ig), c)
	if m := p.Clear(p.Movemask(log), ig); m != 0 {
		return tail + bits.TrailingZeros64(uint64(m))
	}
	return -1
}

// IndexByte2 returns the index of the first occurrence of c1 or c2 in b,
// or -1 if neither is present. Both comparisons run on the same loaded
// register.
func IndexByte2(b []byte, c1, c2 byte) int {
	if len(b) < simd.Cardinal {
		return indexByte2Generic(b, c1, c2)
	}
	p := simd.Char
	i := 0
	for ; i+simd.Cardinal <= len(b); i += simd.Cardinal {
		reg := p.Loadu(&b[i], simd.IgnoreNone{})
		log := p.LogicalOr(p.Equal(reg, c1), p.Equal(reg, c2))
		if m := p.Movemask(log); m != 0 {
			return i + bits.TrailingZeros64(uint64(m))
		}
	}
	if i == len(b) {
		return -1
	}
	tail := len(b) - simd.Cardinal
	ig := simd.IgnoreExtrema{First: i - tail}
	reg := p.Loada(&b[tail], ig)
	log := p.LogicalOr(p.Equal(reg, c1), p.Equal(reg, c2))
	if m := p.Clear(p.Movemask(log), ig); m != 0 {
		return tail + bits.TrailingZeros64(uint64(m))
	}
	return -1
}

// IndexLE returns the index of the first byte in b that is <= max under
// unsigned interpretation, or -1 if every byte is greater.
func IndexLE(b []byte, max byte) int {
	if len(b) < simd.Cardinal {
		return indexLEGeneric(b, max)
	}
	p := simd.Char
	i := 0
	for ; i+simd.Cardinal <= len(b); i += simd.Cardinal {
		log := p.LeUnsigned(p.Loadu(&b[i], simd.IgnoreNone{}), max)
		if m := p.Movemask(log); m != 0 {
			return i + bits.TrailingZeros64(uint64(m))
		}
	}
	if i == len(b) {
		return -1
	}
	tail := len(b) - simd.Cardinal
	ig := simd.IgnoreExtrema{First: i - tail}
	log := p.LeUnsigned(p.Loada(&b[tail], ig), max)
	if m := p.Clear(p.Movemask(log), ig); m != 0 {
		return tail + bits.TrailingZeros64(uint64(m))
	}
	return -1
}

// CountByte returns the number of occurrences of c in b.
func CountByte(b []byte, c byte) int {
	if len(b) < simd.Cardinal {
		return countByteGeneric(b, c)
	}
	p := simd.Char
	n := 0
	i := 0
	for ; i+simd.Cardinal <= len(b); i += simd.Cardinal {
		log := p.Equal(p.Loadu(&b[i], simd.IgnoreNone{}), c)
		n += bits.OnesCount64(uint64(p.Movemask(log)))
	}
	if i == len(b) {
		return n
	}
	tail := len(b) - simd.Cardinal
	ig := simd.IgnoreExtrema{First: i - tail}
	log := p.Equal(p.Loada(&b[tail], ig), c)
	n += bits.OnesCount64(uint64(p.Clear(p.Movemask(log), ig)))
	return n
}

// Contains reports whether c occurs in b.
func Contains(b []byte, c byte) bool {
	return IndexByte(b, c) >= 0
}
