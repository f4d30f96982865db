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

package scan

import "bytes"

// IndexByte returns the index of the first occurrence of c in b, or -1
// if c is not present.
func IndexByte(b []byte, c byte) int {
	return bytes.IndexByte(b, c)
}

// IndexByte2 returns the index of the first occurrence of c1 or c2 in b,
// or -1 if neither is present.
func IndexByte2(b []byte, c1, c2 byte) int {
	return indexByte2Generic(b, c1, c2)
}

// IndexLE returns the index of the first byte in b that is <= max under
// unsigned interpretation, or -1 if every byte is greater.
func IndexLE(b []byte, max byte) int {
	return indexLEGeneric(b, max)
}

// CountByte returns the number of occurrences of c in b.
func CountByte(b []byte, c byte) int {
	return countByteGeneric(b, c)
}

// Contains reports whether c occurs in b.
func Contains(b []byte, c byte) bool {
	return bytes.IndexByte(b, c) >= 0
}
