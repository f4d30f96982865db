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

//go:build !noasm && amd64

package asm

// 16-lane kernels, implemented in sse2_amd64.s. SSE2 only; no SSE4 or
// AVX instructions so these run on any amd64 CPU.

//go:noescape
func ld_unsafe_u8x16(p *byte, out *Uint8x16)

//go:noescape
func cmpeq_u8x16(v *Uint8x16, c byte, out *Uint8x16)

//go:noescape
func leu_u8x16(v *Uint8x16, c byte, out *Uint8x16)

//go:noescape
func or_u8x16(x, y, out *Uint8x16)

//go:noescape
func movemask_u8x16(v *Uint8x16) uint64

// UnsafeLoadUint8x16 reads 16 bytes starting at p, bit-identical to
// LoadUint8x16. The load happens in assembly, so race/asan/msan
// instrumentation never sees the bytes read; callers use this for edge
// loads whose out-of-logical-range lanes are masked out before use. The
// 16 bytes must still lie within a valid allocation.
func UnsafeLoadUint8x16(p *byte) Uint8x16 {
	var out Uint8x16
	ld_unsafe_u8x16(p, &out)
	return out
}

// Equal compares every lane against c. Result lanes are 0xFF where
// equal, 0x00 elsewhere.
func (v Uint8x16) Equal(c byte) Uint8x16 {
	var out Uint8x16
	cmpeq_u8x16(&v, c, &out)
	return out
}

// LessEqual tests lane <= c as unsigned bytes. x86 has no unsigned byte
// compare, so the kernel tests min(lane, c) == lane instead.
func (v Uint8x16) LessEqual(c byte) Uint8x16 {
	var out Uint8x16
	leu_u8x16(&v, c, &out)
	return out
}

// Or returns the lane-wise OR of v and o.
func (v Uint8x16) Or(o Uint8x16) Uint8x16 {
	var out Uint8x16
	or_u8x16(&v, &o, &out)
	return out
}

// MoveMask packs the high bit of every lane into bits 0..15 (PMOVMSKB).
func (v Uint8x16) MoveMask() uint64 {
	return movemask_u8x16(&v)
}
