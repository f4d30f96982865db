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

package scan

// Scalar implementations. These serve inputs shorter than one vector and
// targets without a byte platform.

func indexByteGeneric(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}
	return -1
}

func indexByte2Generic(b []byte, c1, c2 byte) int {
	for i, x := range b {
		if x == c1 || x == c2 {
			return i
		}
	}
	return -1
}

func indexLEGeneric(b []byte, max byte) int {
	for i, x := range b {
		if x <= max {
			return i
		}
	}
	return -1
}

func countByteGeneric(b []byte, c byte) int {
	n := 0
	for _, x := range b {
		if x == c {
			n++
		}
	}
	return n
}
