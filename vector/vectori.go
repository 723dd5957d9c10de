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

// Vectori is four int32 lanes, produced by the lane-wise comparisons. A true
// lane is nonzero: 1 on the fallback backend and all bits set (-1) on the
// SIMD backends, matching what the hardware compare produces.
type Vectori struct {
	x, y, z, w int32
}

// VectoriNew returns (x, y, z, w).
func VectoriNew(x, y, z, w int32) Vectori {
	return Vectori{x, y, z, w}
}

// VectoriZero returns (0, 0, 0, 0).
func VectoriZero() Vectori { return Vectori{} }

// VectoriOne returns (1, 1, 1, 1).
func VectoriOne() Vectori { return Vectori{1, 1, 1, 1} }

// X returns lane 0.
func (v Vectori) X() int32 { return v.x }

// Y returns lane 1.
func (v Vectori) Y() int32 { return v.y }

// Z returns lane 2.
func (v Vectori) Z() int32 { return v.z }

// W returns lane 3.
func (v Vectori) W() int32 { return v.w }

// Component returns lane c, which must be in 0..3.
func (v Vectori) Component(c int) int32 {
	assertComponent(c)
	switch c & 3 {
	case 0:
		return v.x
	case 1:
		return v.y
	case 2:
		return v.z
	default:
		return v.w
	}
}

// And returns the lane-wise bitwise and.
func (v Vectori) And(v1 Vectori) Vectori {
	return Vectori{v.x & v1.x, v.y & v1.y, v.z & v1.z, v.w & v1.w}
}

// Or returns the lane-wise bitwise or.
func (v Vectori) Or(v1 Vectori) Vectori {
	return Vectori{v.x | v1.x, v.y | v1.y, v.z | v1.z, v.w | v1.w}
}

// All reports whether every lane is nonzero.
func (v Vectori) All() bool {
	return v.x != 0 && v.y != 0 && v.z != 0 && v.w != 0
}

// Any reports whether at least one lane is nonzero.
func (v Vectori) Any() bool {
	return v.x != 0 || v.y != 0 || v.z != 0 || v.w != 0
}
