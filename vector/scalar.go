// Copyright 2025 go-vecmath Authors
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

package vector

import "github.com/chewxy/math32"

// EqualULPs is the per-lane tolerance used by the Equal methods, in multiples
// of float32 machine epsilon. It absorbs the rounding differences between
// backends, not geometric error.
const EqualULPs = 100

const float32Epsilon = 0x1p-23

// realEqual compares with an absolute epsilon near zero and a relative one
// elsewhere.
func realEqual(a, b float32, ulps int) bool {
	if a == b {
		return true
	}
	diff := math32.Abs(a - b)
	tol := float32Epsilon * float32(ulps)
	if diff <= tol {
		return true
	}
	return diff <= tol*math32.Max(math32.Abs(a), math32.Abs(b))
}
