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

package simd

import "github.com/ajroetker/go-simdchar/simd/asm"

// AVX2 is the 32-lane x86 primitive set. The type exists on every amd64
// build so both x86 backends can be tested side by side; executing its
// operations requires an AVX2 CPU.
type AVX2 struct{}

func (AVX2) Cardinal() int { return 32 }

func (AVX2) Loadu(p *byte, _ IgnoreNone) asm.Uint8x32 {
	return asm.LoadUint8x32(p)
}

func (AVX2) UnsafeLoadu(p *byte, _ IgnoreNone) asm.Uint8x32 {
	return asm.UnsafeLoadUint8x32(p)
}

func (AVX2) Equal(reg asm.Uint8x32, c byte) asm.Uint8x32 {
	return reg.Equal(c)
}

func (AVX2) LeUnsigned(reg asm.Uint8x32, c byte) asm.Uint8x32 {
	return reg.LessEqual(c)
}

func (AVX2) LogicalOr(x, y asm.Uint8x32) asm.Uint8x32 {
	return x.Or(y)
}

func (AVX2) Any(log asm.Uint8x32, _ IgnoreNone) bool {
	return log.MoveMask() != 0
}

func (AVX2) Movemask(log asm.Uint8x32) Mmask {
	return Mmask(log.MoveMask())
}

func (AVX2) ToArray(reg asm.Uint8x32) []byte {
	buf := reg.Bytes()
	return buf[:]
}

// AVX2Platform is the complete 32-lane x86 platform.
type AVX2Platform = Platform[asm.Uint8x32, AVX2]
