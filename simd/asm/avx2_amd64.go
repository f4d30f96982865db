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

// 32-lane AVX2 kernels, implemented in avx2_amd64.s. These assemble on
// any amd64 target; running them requires an AVX2 CPU, which callers
// assert either at runtime or by building with GOAMD64=v3.

//go:noescape
func ld_unsafe_u8x32(p *byte, out *Uint8x32)

//go:noescape
func cmpeq_u8x32(v *Uint8x32, c byte, out *Uint8x32)

//go:noescape
func leu_u8x32(v *Uint8x32, c byte, out *Uint8x32)

//go:noescape
func or_u8x32(x, y, out *Uint8x32)

//go:noescape
func movemask_u8x32(v *Uint8x32) uint64

// UnsafeLoadUint8x32 reads 32 bytes starting at p, bit-identical to
// LoadUint8x32 but invisible to race/asan/msan instrumentation. See
// UnsafeLoadUint8x16.
func UnsafeLoadUint8x32(p *byte) Uint8x32 {
	var out Uint8x32
	ld_unsafe_u8x32(p, &out)
	return out
}

// Equal compares every lane against c. Result lanes are 0xFF where
// equal, 0x00 elsewhere.
func (v Uint8x32) Equal(c byte) Uint8x32 {
	var out Uint8x32
	cmpeq_u8x32(&v, c, &out)
	return out
}

// LessEqual tests lane <= c as unsigned bytes, via the same min trick as
// the 16-lane kernel.
func (v Uint8x32) LessEqual(c byte) Uint8x32 {
	var out Uint8x32
	leu_u8x32(&v, c, &out)
	return out
}

// Or returns the lane-wise OR of v and o.
func (v Uint8x32) Or(o Uint8x32) Uint8x32 {
	var out Uint8x32
	or_u8x32(&v, &o, &out)
	return out
}

// MoveMask packs the high bit of every lane into bits 0..31 (VPMOVMSKB).
func (v Uint8x32) MoveMask() uint64 {
	return movemask_u8x32(&v)
}
