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

// Package asm provides the raw byte-vector types and the per-architecture
// kernels behind the simd package. The types use fixed-size byte-array
// backing so values pass cheaply between Go and assembly.
//
// Nothing here performs bounds checking; callers own the memory they hand
// to the load functions.
package asm

import "unsafe"

// Uint8x16 is a 128-bit vector of 16 unsigned byte lanes.
type Uint8x16 [16]byte

// Uint8x32 is a 256-bit vector of 32 unsigned byte lanes.
type Uint8x32 [32]byte

// LoadUint8x16 reads 16 bytes starting at p. The load is unaligned-safe.
// All 16 bytes must be addressable.
func LoadUint8x16(p *byte) Uint8x16 {
	return *(*Uint8x16)(unsafe.Pointer(p))
}

// LoadUint8x32 reads 32 bytes starting at p. The load is unaligned-safe.
// All 32 bytes must be addressable.
func LoadUint8x32(p *byte) Uint8x32 {
	return *(*Uint8x32)(unsafe.Pointer(p))
}

// BroadcastUint8x16 returns a vector with every lane set to c.
func BroadcastUint8x16(c byte) Uint8x16 {
	var v Uint8x16
	for i := range v {
		v[i] = c
	}
	return v
}

// BroadcastUint8x32 returns a vector with every lane set to c.
func BroadcastUint8x32(c byte) Uint8x32 {
	var v Uint8x32
	for i := range v {
		v[i] = c
	}
	return v
}

// Bytes returns the lane values in index order.
func (v Uint8x16) Bytes() [16]byte { return v }

// Bytes returns the lane values in index order.
func (v Uint8x32) Bytes() [32]byte { return v }
