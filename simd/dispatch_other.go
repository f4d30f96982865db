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

//go:build noasm || (!amd64 && !arm64)

package simd

// No byte platform exists for this target (or the noasm tag disabled
// them). CharPlatform resolves to the Unsupported marker, which carries
// no operations, so code that tries to use it does not compile.
// Dependent code must be excluded behind HasCharPlatform.

// HasCharPlatform reports at compile time that no platform was resolved
// for this target.
const HasCharPlatform = false

// Unsupported is the explicit marker type for targets without a
// platform. It deliberately has no methods, no register types and no
// Cardinal.
type Unsupported struct{}

// CharPlatform is the platform resolved for this compile target.
type CharPlatform = Unsupported

// Supported reports whether the host CPU can execute a resolved
// platform; without one it is always false.
func Supported() bool { return false }
