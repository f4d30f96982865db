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

package asm

import "testing"

func TestAnyTrueUint8x16(t *testing.T) {
	var v Uint8x16
	if v.AnyTrue() {
		t.Fatal("AnyTrue(zero) = true")
	}
	for i := range v {
		v = Uint8x16{}
		v[i] = 0xff
		if !v.AnyTrue() {
			t.Fatalf("AnyTrue with lane %d set = false", i)
		}
	}
	for i := range v {
		v[i] = 0xff
	}
	if !v.AnyTrue() {
		t.Fatal("AnyTrue(all set) = false")
	}
}
