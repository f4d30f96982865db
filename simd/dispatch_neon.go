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

// HasCharPlatform reports at compile time that a real platform was
// resolved for this target.
const HasCharPlatform = true

// CharPlatform is the platform resolved for this compile target.
type CharPlatform = NEONPlatform

// Reg is the resolved platform's register type.
type Reg = asm.Uint8x16

// Logical is the resolved platform's comparison-result type.
type Logical = asm.Uint8x16

// Cardinal is the lane count of the resolved platform's register.
const Cardinal = 16

// Char is a ready-to-use instance of the resolved platform.
var Char CharPlatform

// Supported reports whether the host CPU can execute the instruction set
// this binary was compiled for. NEON is part of the arm64 baseline.
func Supported() bool { return true }
