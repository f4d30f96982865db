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

// SSE2 is the 16-lane x86 primitive set. SSE2 is architectural baseline
// on amd64, so these operations run on any amd64 CPU.
type SSE2 struct{}

func (SSE2) Cardinal() int { return 16 }

func (SSE2) Loadu(p *byte, _ IgnoreNone) asm.Uint8x16 {
	return asm.LoadUint8x16(p)
}

func (SSE2) UnsafeLoadu(p *byte, _ IgnoreNone) asm.Uint8x16 {
	return asm.UnsafeLoadUint8x16(p)
}

func (SSE2) Equal(reg asm.Uint8x16, c byte) asm.Uint8x16 {
	return reg.Equal(c)
}

func (SSE2) LeUnsigned(reg asm.Uint8x16, c byte) asm.Uint8x16 {
	return reg.LessEqual(c)
}

func (SSE2) LogicalOr(x, y asm.Uint8x16) asm.Uint8x16 {
	return x.Or(y)
}

func (SSE2) Any(log asm.Uint8x16, _ IgnoreNone) bool {
	return log.MoveMask() != 0
}

func (SSE2) Movemask(log asm.Uint8x16) Mmask {
	return Mmask(log.MoveMask())
}

func (SSE2) ToArray(reg asm.Uint8x16) []byte {
	buf := reg.Bytes()
	return buf[:]
}

// SSE2Platform is the complete 16-lane x86 platform.
type SSE2Platform = Platform[asm.Uint8x16, SSE2]
