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

// Ops is the primitive operation set one instruction family provides.
// R is the family's register type; comparison results reuse it, each lane
// all-ones or all-zeros. Implementations are stateless empty structs so a
// zero value is always ready to use.
type Ops[R any] interface {
	// Cardinal returns the number of byte lanes in R.
	Cardinal() int

	// Loadu reads Cardinal bytes starting at p, unaligned-safe. All
	// Cardinal bytes must be addressable; there is no bounds checking
	// here.
	Loadu(p *byte, ig IgnoreNone) R

	// UnsafeLoadu is bit-identical to Loadu but suppresses memory-safety
	// instrumentation for the read. The bytes must still lie within a
	// valid allocation.
	UnsafeLoadu(p *byte, ig IgnoreNone) R

	// Equal compares every lane against c.
	Equal(reg R, c byte) R

	// LeUnsigned tests lane <= c, treating lanes as unsigned bytes.
	LeUnsigned(reg R, c byte) R

	// LogicalOr ORs two comparison results lane-wise.
	LogicalOr(x, y R) R

	// Any reports whether at least one lane of a lane-uniform register
	// is all-ones, using the family's native reduction.
	Any(log R, ig IgnoreNone) bool

	// Movemask extracts MmaskBitsPerElement bits per lane from a
	// lane-uniform register.
	Movemask(log R) Mmask

	// ToArray returns the lane values in index order. Debug and test
	// helper only; never on a hot path.
	ToArray(reg R) []byte
}

// Platform layers the derived, backend-independent operations over a
// primitive set. It is what callers use; the zero value is ready.
type Platform[R any, O Ops[R]] struct {
	ops O
}

// Cardinal returns the number of byte lanes in the platform's register.
func (p Platform[R, O]) Cardinal() int { return p.ops.Cardinal() }

// Loadu reads Cardinal bytes starting at ptr. See Ops.Loadu.
func (p Platform[R, O]) Loadu(ptr *byte, ig IgnoreNone) R {
	return p.ops.Loadu(ptr, ig)
}

// UnsafeLoadu reads Cardinal bytes starting at ptr without the read being
// visible to instrumentation. See Ops.UnsafeLoadu.
func (p Platform[R, O]) UnsafeLoadu(ptr *byte, ig IgnoreNone) R {
	return p.ops.UnsafeLoadu(ptr, ig)
}

// Loada performs an aligned load. There is no point generating aligned
// load instructions on these platforms, so it delegates to the unaligned
// loads: the plain one when every lane is meaningful, the
// instrumentation-suppressed one for edge loads whose ignored lanes may
// sit outside the logical range but inside the allocation.
func (p Platform[R, O]) Loada(ptr *byte, ig Ignore) R {
	if _, partial := ig.(IgnoreExtrema); partial {
		return p.ops.UnsafeLoadu(ptr, IgnoreNone{})
	}
	return p.ops.Loadu(ptr, IgnoreNone{})
}

// Equal compares every lane of reg against c.
func (p Platform[R, O]) Equal(reg R, c byte) R {
	return p.ops.Equal(reg, c)
}

// LeUnsigned tests lane <= c, treating lanes as unsigned bytes.
func (p Platform[R, O]) LeUnsigned(reg R, c byte) R {
	return p.ops.LeUnsigned(reg, c)
}

// LogicalOr ORs two comparison results lane-wise.
func (p Platform[R, O]) LogicalOr(x, y R) R {
	return p.ops.LogicalOr(x, y)
}

// Movemask extracts the lane bitmask from a lane-uniform register.
func (p Platform[R, O]) Movemask(log R) Mmask {
	return p.ops.Movemask(log)
}

// Clear zeroes the mask bits of ignored lanes. With IgnoreNone it is the
// identity.
func (p Platform[R, O]) Clear(m Mmask, ig Ignore) Mmask {
	if ex, partial := ig.(IgnoreExtrema); partial {
		return ClearIgnored(m, p.ops.Cardinal(), ex)
	}
	return m
}

// Any reports whether any non-ignored lane of log is all-ones. The
// IgnoreNone case uses the backend's native reduction; the extrema case
// goes through Movemask and Clear, which is what makes registers loaded
// across a buffer edge safe to probe.
func (p Platform[R, O]) Any(log R, ig Ignore) bool {
	if ex, partial := ig.(IgnoreExtrema); partial {
		return ClearIgnored(p.ops.Movemask(log), p.ops.Cardinal(), ex) != 0
	}
	return p.ops.Any(log, IgnoreNone{})
}

// ToArray returns reg's lane values in index order, for tests and
// diagnostics.
func (p Platform[R, O]) ToArray(reg R) []byte {
	return p.ops.ToArray(reg)
}
