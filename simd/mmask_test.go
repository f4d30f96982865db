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

import (
	"math/bits"
	"testing"
)

func TestSetLowerBits(t *testing.T) {
	tests := []struct {
		n    int
		want Mmask
	}{
		{0, 0},
		{1, 0x1},
		{4, 0xf},
		{16, 0xffff},
		{32, 0xffffffff},
		{63, 0x7fffffffffffffff},
		{64, 0xffffffffffffffff},
	}
	for _, tc := range tests {
		if got := setLowerBits(tc.n); got != tc.want {
			t.Errorf("setLowerBits(%d) = %#x, want %#x", tc.n, got, tc.want)
		}
	}
}

func TestClearIgnored(t *testing.T) {
	const full = Mmask(0xffff) // all 16 lanes set

	tests := []struct {
		name     string
		m        Mmask
		cardinal int
		ex       IgnoreExtrema
		want     Mmask
	}{
		{"identity", full, 16, IgnoreExtrema{}, full},
		{"first two", full, 16, IgnoreExtrema{First: 2}, 0xfffc},
		{"last three", full, 16, IgnoreExtrema{Last: 3}, 0x1fff},
		{"both ends", full, 16, IgnoreExtrema{First: 4, Last: 4}, 0x0ff0},
		{"all ignored", full, 16, IgnoreExtrema{First: 8, Last: 8}, 0},
		{"wide identity", ^Mmask(0), 64, IgnoreExtrema{}, ^Mmask(0)},
		{"wide last", ^Mmask(0), 64, IgnoreExtrema{Last: 1}, 0x7fffffffffffffff},
		{"sparse", 0x8421, 16, IgnoreExtrema{First: 1, Last: 1}, 0x0420},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClearIgnored(tc.m, tc.cardinal, tc.ex); got != tc.want {
				t.Errorf("ClearIgnored(%#x, %d, %+v) = %#x, want %#x",
					tc.m, tc.cardinal, tc.ex, got, tc.want)
			}
		})
	}
}

func TestClearIgnoredExhaustive16(t *testing.T) {
	// For every valid split of a 16-lane register, the surviving bit count
	// of a full mask must be exactly the non-ignored lane count, and the
	// surviving bits must be the contiguous middle run.
	const full = Mmask(0xffff)
	for first := 0; first <= 16; first++ {
		for last := 0; first+last <= 16; last++ {
			ex := IgnoreExtrema{First: first, Last: last}
			got := ClearIgnored(full, 16, ex)
			keep := 16 - first - last
			if bits.OnesCount64(uint64(got)) != keep {
				t.Fatalf("ClearIgnored(full, 16, %+v): %d bits survive, want %d",
					ex, bits.OnesCount64(uint64(got)), keep)
			}
			want := setLowerBits(keep) << uint(first)
			if got != want {
				t.Fatalf("ClearIgnored(full, 16, %+v) = %#x, want %#x", ex, got, want)
			}
		}
	}
}
