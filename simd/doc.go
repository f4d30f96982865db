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

// Package simd exposes a common interface for SIMD operations on bytes
// across SSE2, AVX2 and ARM NEON, selected at compile time.
//
// Exactly one backend is resolved per build:
//
//   - amd64 with GOAMD64=v3 or higher: AVX2, 32 byte lanes
//   - amd64 otherwise: SSE2, 16 byte lanes
//   - arm64: NEON, 16 byte lanes
//   - anything else (or the noasm tag): no platform; CharPlatform is the
//     Unsupported marker and HasCharPlatform is false
//
// There is no runtime fallback or feature probing. Code that depends on a
// platform must be excluded behind HasCharPlatform (build tags mirroring
// the ones above are the usual way); instantiating operations against the
// Unsupported marker does not compile. Supported reports
// whether the host CPU can actually execute the instruction set the
// binary was compiled for.
//
// # Types
//
//   - Reg: a register of Cardinal packed byte lanes, produced only by
//     loads or lane operations
//   - Logical: the result of a per-lane comparison; each lane is all-ones
//     or all-zeros. It shares Reg's representation today but is named
//     separately because a future backend could split them
//   - Mmask: an integer with MmaskBitsPerElement bits per lane, extracted
//     from a Logical by Movemask
//
// # Operations
//
// Loads:
//
//   - Loadu(ptr, IgnoreNone) - unaligned-safe load of Cardinal bytes
//   - UnsafeLoadu(ptr, IgnoreNone) - same result, but invisible to
//     race/asan/msan instrumentation; for reads whose trailing lanes are
//     garbage that a later ignore mask discards
//   - Loada(ptr, ignore) - aligned load. Delegates to the unaligned
//     forms: on these platforms unaligned loads are just as fast and not
//     branching on alignment is worth more
//
// Register ops: Equal and LeUnsigned compare every lane against a
// broadcast byte. Logical ops: LogicalOr combines two comparison
// results; Any reports whether any non-ignored lane matched; Movemask
// and Clear expose the underlying bitmask with ignore handling; ToArray
// is a debug helper that materializes a register's lanes in index order.
//
// All operations are pure and total given addressable inputs. Reading
// outside a valid allocation, or feeding a non-lane-uniform register to
// Any or Movemask, is undefined behavior rather than a reported error:
// this layer sits on hot paths and carries no runtime checks.
package simd
