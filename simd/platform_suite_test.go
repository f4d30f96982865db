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

	"github.com/stretchr/testify/require"
)

// testCharPlatform runs the backend-independent behavioral suite against
// one platform instantiation. Every backend test file calls it; the suite
// only uses the exported Platform surface so it exercises the derived
// operations together with the primitives underneath.
func testCharPlatform[R any, O Ops[R]](t *testing.T, p Platform[R, O]) {
	n := p.Cardinal()
	require.True(t, n == 16 || n == 32, "cardinal %d", n)

	// mkbuf builds exactly one register's worth of bytes; every load in
	// the suite covers the whole buffer.
	mkbuf := func(fill func(i int) byte) []byte {
		b := make([]byte, n)
		for i := range b {
			b[i] = fill(i)
		}
		return b
	}

	t.Run("LoadToArray", func(t *testing.T) {
		b := mkbuf(func(i int) byte { return byte(i + 1) })
		reg := p.Loadu(&b[0], IgnoreNone{})
		require.Equal(t, b, p.ToArray(reg))

		ureg := p.UnsafeLoadu(&b[0], IgnoreNone{})
		require.Equal(t, b, p.ToArray(ureg))
	})

	t.Run("LoadaDelegation", func(t *testing.T) {
		b := mkbuf(func(i int) byte { return byte(0xf0 ^ i) })
		whole := p.Loada(&b[0], IgnoreNone{})
		edge := p.Loada(&b[0], IgnoreExtrema{First: 3})
		require.Equal(t, p.ToArray(whole), p.ToArray(edge))
		require.Equal(t, b, p.ToArray(whole))
	})

	t.Run("EqualSingleMatch", func(t *testing.T) {
		// "aaaaXaaa..." with the one odd byte at lane 4.
		b := mkbuf(func(i int) byte { return 'a' })
		b[4] = 'X'
		reg := p.Loadu(&b[0], IgnoreNone{})

		log := p.Equal(reg, 'X')
		require.True(t, p.Any(log, IgnoreNone{}))
		m := p.Movemask(log)
		require.Equal(t, Mmask(1)<<4, m)
		require.Equal(t, 4, bits.TrailingZeros64(uint64(m)))

		miss := p.Equal(reg, 'Z')
		require.False(t, p.Any(miss, IgnoreNone{}))
		require.Equal(t, Mmask(0), p.Movemask(miss))
	})

	t.Run("EqualLaneUniform", func(t *testing.T) {
		b := mkbuf(func(i int) byte { return byte(i) })
		log := p.Equal(p.Loadu(&b[0], IgnoreNone{}), 7)
		for i, lane := range p.ToArray(log) {
			if i == 7 {
				require.Equal(t, byte(0xff), lane, "lane %d", i)
			} else {
				require.Equal(t, byte(0), lane, "lane %d", i)
			}
		}
	})

	t.Run("LeUnsignedExhaustive", func(t *testing.T) {
		// All 256x256 (lane value, threshold) pairs, checked through the
		// lane-uniform comparison result.
		b := make([]byte, n)
		for v := 0; v < 256; v += n {
			for i := range b {
				b[i] = byte(v + i)
			}
			reg := p.Loadu(&b[0], IgnoreNone{})
			for c := 0; c < 256; c++ {
				log := p.LeUnsigned(reg, byte(c))
				lanes := p.ToArray(log)
				for i, lane := range lanes {
					want := byte(0)
					if int(b[i]) <= c {
						want = 0xff
					}
					if lane != want {
						t.Fatalf("LeUnsigned: lane value %d vs %d: got %#x, want %#x",
							b[i], c, lane, want)
					}
				}
			}
		}
	})

	t.Run("LogicalOr", func(t *testing.T) {
		b := mkbuf(func(i int) byte { return byte(i % 4) })
		reg := p.Loadu(&b[0], IgnoreNone{})
		e1 := p.Equal(reg, 1)
		e2 := p.Equal(reg, 2)

		or := p.LogicalOr(e1, e2)
		m1, m2 := p.Movemask(e1), p.Movemask(e2)
		require.Equal(t, m1|m2, p.Movemask(or))
		require.Equal(t, Mmask(0), m1&m2)

		// Idempotent and commutative on lane-uniform inputs.
		require.Equal(t, p.ToArray(or), p.ToArray(p.LogicalOr(or, or)))
		require.Equal(t, p.ToArray(or), p.ToArray(p.LogicalOr(e2, e1)))
	})

	t.Run("AnyIgnoreExtrema", func(t *testing.T) {
		// Matches only inside ignored regions must not count.
		b := mkbuf(func(i int) byte { return 'a' })
		b[0], b[1] = 'X', 'X'
		b[n-1] = 'X'
		reg := p.Loadu(&b[0], IgnoreNone{})
		log := p.Equal(reg, 'X')

		require.True(t, p.Any(log, IgnoreNone{}))
		require.True(t, p.Any(log, IgnoreExtrema{First: 1}))
		require.False(t, p.Any(log, IgnoreExtrema{First: 2, Last: 1}))

		// A surviving middle match is still seen through the same ignore.
		b[5] = 'X'
		log = p.Equal(p.Loadu(&b[0], IgnoreNone{}), 'X')
		require.True(t, p.Any(log, IgnoreExtrema{First: 2, Last: 1}))
	})

	t.Run("ClearEdgeLoad", func(t *testing.T) {
		// Overlapped edge load: the head of the register repeats bytes a
		// previous full vector already covered, and Clear drops them.
		b := mkbuf(func(i int) byte { return 'X' })
		reg := p.Loadu(&b[0], IgnoreNone{})
		log := p.Equal(reg, 'X')
		m := p.Movemask(log)

		ig := IgnoreExtrema{First: 3}
		cleared := p.Clear(m, ig)
		require.Equal(t, m&^setLowerBits(3), cleared)
		require.Equal(t, n-3, bits.OnesCount64(uint64(cleared)))
		require.Equal(t, m, p.Clear(m, IgnoreNone{}))
	})
}
