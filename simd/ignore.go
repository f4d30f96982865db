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

// Ignore describes which lanes of a partial load or compare carry garbage
// and must not influence results. It is a closed sum: the only
// implementations are IgnoreNone and IgnoreExtrema.
type Ignore interface {
	ignore()
}

// IgnoreNone marks every lane as meaningful.
type IgnoreNone struct{}

// IgnoreExtrema marks the first First and last Last lanes as garbage.
// Counts are in lanes, not bits. First + Last must not exceed the
// register's cardinal.
type IgnoreExtrema struct {
	First, Last int
}

func (IgnoreNone) ignore()    {}
func (IgnoreExtrema) ignore() {}
