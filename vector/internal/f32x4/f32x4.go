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

// Package f32x4 models a 128-bit NEON register holding four float32 lanes.
//
// Methods are named after the AArch64 instructions they stand for (VADDQ,
// VPADDQ, ZIP1, ...) so kernels written against this type read like the
// intrinsics they replace. Everything is plain Go on a [4]float32. The gc
// compiler does not vectorize, so each method lowers to four scalar FP
// instructions: this package fixes the lane layout and the order in which
// the NEON kernels combine lanes, not the instructions they execute.
//
// TODO: generate Add, Mul, MulAdd, MulLane, PairwiseAdd, Zip1 and Zip2 as
// NEON assembly with goat, the way hwy/asm wraps its f32x4 kernels.
package f32x4

import "github.com/chewxy/math32"

// Float32x4 is a four lane float32 register.
type Float32x4 [4]float32

// Broadcast is VDUPQ_N_F32.
func Broadcast(f float32) Float32x4 { return Float32x4{f, f, f, f} }

// Load is VLD1Q_F32 from a fixed array.
func Load(p *[4]float32) Float32x4 { return Float32x4(*p) }

// LoadSlice reads the first four elements of s. It panics if len(s) < 4.
func LoadSlice(s []float32) Float32x4 {
	_ = s[3]
	return Float32x4{s[0], s[1], s[2], s[3]}
}

// Store is VST1Q_F32 into a fixed array.
func (v Float32x4) Store(p *[4]float32) { *p = v }

// StoreSlice writes the lanes to s[0:4]. It panics if len(s) < 4.
func (v Float32x4) StoreSlice(s []float32) {
	_ = s[3]
	s[0], s[1], s[2], s[3] = v[0], v[1], v[2], v[3]
}

// Get is VGETQ_LANE_F32.
func (v Float32x4) Get(i int) float32 { return v[i&3] }

// With is VSETQ_LANE_F32.
func (v Float32x4) With(i int, f float32) Float32x4 {
	v[i&3] = f
	return v
}

// Add performs element-wise addition.
func (v Float32x4) Add(u Float32x4) Float32x4 {
	return Float32x4{v[0] + u[0], v[1] + u[1], v[2] + u[2], v[3] + u[3]}
}

// Sub performs element-wise subtraction.
func (v Float32x4) Sub(u Float32x4) Float32x4 {
	return Float32x4{v[0] - u[0], v[1] - u[1], v[2] - u[2], v[3] - u[3]}
}

// Mul performs element-wise multiplication.
func (v Float32x4) Mul(u Float32x4) Float32x4 {
	return Float32x4{v[0] * u[0], v[1] * u[1], v[2] * u[2], v[3] * u[3]}
}

// Div performs element-wise division.
func (v Float32x4) Div(u Float32x4) Float32x4 {
	return Float32x4{v[0] / u[0], v[1] / u[1], v[2] / u[2], v[3] / u[3]}
}

// Min returns the element-wise minimum.
func (v Float32x4) Min(u Float32x4) Float32x4 {
	return Float32x4{min(v[0], u[0]), min(v[1], u[1]), min(v[2], u[2]), min(v[3], u[3])}
}

// Max returns the element-wise maximum.
func (v Float32x4) Max(u Float32x4) Float32x4 {
	return Float32x4{max(v[0], u[0]), max(v[1], u[1]), max(v[2], u[2]), max(v[3], u[3])}
}

// Sqrt computes the element-wise square root.
func (v Float32x4) Sqrt() Float32x4 {
	return Float32x4{math32.Sqrt(v[0]), math32.Sqrt(v[1]), math32.Sqrt(v[2]), math32.Sqrt(v[3])}
}

// Neg negates every lane.
func (v Float32x4) Neg() Float32x4 { return Float32x4{-v[0], -v[1], -v[2], -v[3]} }

// Abs computes the element-wise absolute value.
func (v Float32x4) Abs() Float32x4 {
	return Float32x4{math32.Abs(v[0]), math32.Abs(v[1]), math32.Abs(v[2]), math32.Abs(v[3])}
}

// MulAdd returns v*u + acc, like VMLAQ_F32.
func (v Float32x4) MulAdd(u, acc Float32x4) Float32x4 {
	return Float32x4{
		v[0]*u[0] + acc[0],
		v[1]*u[1] + acc[1],
		v[2]*u[2] + acc[2],
		v[3]*u[3] + acc[3],
	}
}

// MulLane multiplies every lane of v by lane i of u, like VMULQ_LANEQ_F32.
func (v Float32x4) MulLane(u Float32x4, i int) Float32x4 {
	return v.Mul(u.DupLane(i))
}

// PairwiseAdd is VPADDQ_F32: (v0+v1, v2+v3, u0+u1, u2+u3).
func (v Float32x4) PairwiseAdd(u Float32x4) Float32x4 {
	return Float32x4{v[0] + v[1], v[2] + v[3], u[0] + u[1], u[2] + u[3]}
}

// Zip1 interleaves the low halves: (v0, u0, v1, u1).
func (v Float32x4) Zip1(u Float32x4) Float32x4 {
	return Float32x4{v[0], u[0], v[1], u[1]}
}

// Zip2 interleaves the high halves: (v2, u2, v3, u3).
func (v Float32x4) Zip2(u Float32x4) Float32x4 {
	return Float32x4{v[2], u[2], v[3], u[3]}
}

// DupLane broadcasts lane i, like VDUPQ_LANEQ_F32.
func (v Float32x4) DupLane(i int) Float32x4 { return Broadcast(v[i&3]) }

// ReduceAdd is VADDVQ_F32, pairing lanes the way the instruction does.
func (v Float32x4) ReduceAdd() float32 { return (v[0] + v[1]) + (v[2] + v[3]) }
