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

//go:build !noasm && arm64

package simd

import "github.com/ajroetker/go-simdchar/simd/asm"

// NEON is the 16-lane arm64 primitive set. Unlike x86 it has a native
// unsigned compare, and its Any uses a horizontal add instead of a
// movemask.
type NEON struct{}

func (NEON) Cardinal() int { return 16 }

func (NEON) Loadu(p *byte, _ IgnoreNone) asm.Uint8x16 {
	return asm.LoadUint8x16(p)
}

func (NEON) UnsafeLoadu(p *byte, _ IgnoreNone) asm.Uint8x16 {
	return asm.UnsafeLoadUint8x16(p)
}

func (NEON) Equal(reg asm.Uint8x16, c byte) asm.Uint8x16 {
	return reg.Equal(c)
}

func (NEON) LeUnsigned(reg asm.Uint8x16, c byte) asm.Uint8x16 {
	return reg.LessEqual(c)
}

func (NEON) LogicalOr(x, y asm.Uint8x16) asm.Uint8x16 {
	return x.Or(y)
}

func (NEON) Any(log asm.Uint8x16, _ IgnoreNone) bool {
	return log.AnyTrue()
}

func (NEON) Movemask(log asm.Uint8x16) Mmask {
	return Mmask(log.MoveMask())
}

func (NEON) ToArray(reg asm.Uint8x16) []byte {
	buf := reg.Bytes()
	return buf[:]
}

// NEONPlatform is the complete 16-lane arm64 platform.
type NEONPlatform = Platform[asm.Uint8x16, NEON]
