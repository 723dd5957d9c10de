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

import "unsafe"

// Vector is four float32 lanes (x, y, z, w). The w lane is either a fourth
// coordinate or a marker; the axis constructors and Origo set it to 1.
//
// The in-register representation depends on the compiled backend. Use the
// accessors or Lanes to read values.
type Vector struct {
	r reg
}

// New returns (x, y, z, w).
func New(x, y, z, w float32) Vector {
	return Vector{rset(x, y, z, w)}
}

// Uniform returns a vector with every lane set to s.
func Uniform(s float32) Vector {
	return Vector{rsplat(s)}
}

// Zero returns (0, 0, 0, 0).
func Zero() Vector { return Vector{rsplat(0)} }

// One returns (1, 1, 1, 1).
func One() Vector { return Vector{rsplat(1)} }

// Half returns (0.5, 0.5, 0.5, 0.5).
func Half() Vector { return Vector{rsplat(0.5)} }

// Two returns (2, 2, 2, 2).
func Two() Vector { return Vector{rsplat(2)} }

// Origo returns the homogeneous origin (0, 0, 0, 1).
func Origo() Vector { return Vector{rset(0, 0, 0, 1)} }

// XAxis returns (1, 0, 0, 1).
func XAxis() Vector { return Vector{rset(1, 0, 0, 1)} }

// YAxis returns (0, 1, 0, 1).
func YAxis() Vector { return Vector{rset(0, 1, 0, 1)} }

// ZAxis returns (0, 0, 1, 1).
func ZAxis() Vector { return Vector{rset(0, 0, 1, 1)} }

// Aligned loads four floats from p, which must be 16-byte aligned. A
// misaligned p panics unless built with vector_noassert, in which case the
// behaviour is undefined.
func Aligned(p *[4]float32) Vector {
	assertAligned(unsafe.Pointer(p))
	return Vector{rload(p)}
}

// AlignedSlice is Aligned for the first four elements of s.
func AlignedSlice(s []float32) Vector {
	return Aligned((*[4]float32)(s))
}

// Unaligned loads the first four elements of s with no alignment
// requirement. The result is bit-identical to Aligned on the same data.
func Unaligned(s []float32) Vector {
	return Vector{rloadSlice(s)}
}

// StoreAligned writes the lanes to p, which must be 16-byte aligned.
func (v Vector) StoreAligned(p *[4]float32) {
	assertAligned(unsafe.Pointer(p))
	rstore(v.r, p)
}

// StoreUnaligned writes the lanes to the first four elements of s.
func (v Vector) StoreUnaligned(s []float32) {
	rstoreSlice(v.r, s)
}

// Lanes returns the four lanes as an array.
func (v Vector) Lanes() [4]float32 {
	return rlanes(v.r)
}

// X returns lane 0.
func (v Vector) X() float32 { return rlane(v.r, 0) }

// Y returns lane 1.
func (v Vector) Y() float32 { return rlane(v.r, 1) }

// Z returns lane 2.
func (v Vector) Z() float32 { return rlane(v.r, 2) }

// W returns lane 3.
func (v Vector) W() float32 { return rlane(v.r, 3) }

// Component returns lane c, which must be in 0..3.
func (v Vector) Component(c int) float32 {
	assertComponent(c)
	return rlane(v.r, c&3)
}

// SetComponent returns a copy of v with lane c replaced by f. The other three
// lanes are unchanged.
func (v Vector) SetComponent(c int, f float32) Vector {
	assertComponent(c)
	return Vector{rwith(v.r, c&3, f)}
}

// Add returns v + v1.
func (v Vector) Add(v1 Vector) Vector { return Vector{radd(v.r, v1.r)} }

// Sub returns v - v1.
func (v Vector) Sub(v1 Vector) Vector { return Vector{rsub(v.r, v1.r)} }

// Mul returns the lane-wise product.
func (v Vector) Mul(v1 Vector) Vector { return Vector{rmul(v.r, v1.r)} }

// Div returns the lane-wise quotient.
func (v Vector) Div(v1 Vector) Vector { return Vector{rdiv(v.r, v1.r)} }

// Neg returns -v.
func (v Vector) Neg() Vector { return Vector{rneg(v.r)} }

// MulAdd returns v*v1 + v2. Backends with fused multiply-add may round once.
func (v Vector) MulAdd(v1, v2 Vector) Vector { return Vector{rmuladd(v.r, v1.r, v2.r)} }

// Scale returns v*s.
func (v Vector) Scale(s float32) Vector { return Vector{rmul(v.r, rsplat(s))} }

// Sqrt returns the lane-wise square root.
func (v Vector) Sqrt() Vector { return Vector{rsqrt(v.r)} }

// Abs returns the lane-wise absolute value.
func (v Vector) Abs() Vector { return Vector{rabs(v.r)} }

// Min returns the lane-wise minimum.
func (v Vector) Min(v1 Vector) Vector { return Vector{rmin(v.r, v1.r)} }

// Max returns the lane-wise maximum.
func (v Vector) Max(v1 Vector) Vector { return Vector{rmax(v.r, v1.r)} }

// Dot returns the 4-lane dot product broadcast to every lane.
func (v Vector) Dot(v1 Vector) Vector { return Vector{kdot(v.r, v1.r)} }

// Dot3 returns the xyz dot product broadcast to every lane.
func (v Vector) Dot3(v1 Vector) Vector { return Vector{kdot3(v.r, v1.r)} }

// Cross3 returns the xyz cross product. The w lane is 1 on the fallback
// backend and unspecified elsewhere.
func (v Vector) Cross3(v1 Vector) Vector { return Vector{kcross3(v.r, v1.r)} }

// Normalize scales v to unit 4-lane length. A zero vector yields NaN or Inf
// lanes.
func (v Vector) Normalize() Vector { return Vector{knormalize(v.r)} }

// Normalize3 scales xyz to unit length and leaves w unchanged.
func (v Vector) Normalize3() Vector { return Vector{knormalize3(v.r)} }

// Length returns the 4-lane length broadcast to every lane.
func (v Vector) Length() Vector { return Vector{klength(v.r)} }

// LengthFast is Length with a lower precision allowance. No backend is
// currently less precise than Length.
func (v Vector) LengthFast() Vector { return Vector{klengthFast(v.r)} }

// LengthSqr returns the squared 4-lane length broadcast to every lane.
func (v Vector) LengthSqr() Vector { return Vector{kdot(v.r, v.r)} }

// Length3 returns the xyz length broadcast to every lane.
func (v Vector) Length3() Vector { return Vector{klength3(v.r)} }

// Length3Fast is Length3 with a lower precision allowance.
func (v Vector) Length3Fast() Vector { return Vector{klength3Fast(v.r)} }

// Length3Sqr returns the squared xyz length broadcast to every lane.
func (v Vector) Length3Sqr() Vector { return Vector{kdot3(v.r, v.r)} }

// Shuffle permutes the lanes of v: output lane i is v[m.Lanes()[i]].
func (v Vector) Shuffle(m Mask) Vector { return Vector{rshuffle(v.r, m)} }

// Shuffle2 takes output x and y from v and output z and w from v1, each
// selected by the corresponding field of m.
func (v Vector) Shuffle2(v1 Vector, m Mask) Vector { return Vector{rshuffle2(v.r, v1.r, m)} }

// Lerp interpolates from v towards to. t is not clamped.
func (v Vector) Lerp(to Vector, t float32) Vector { return Vector{klerp(v.r, to.r, t)} }

// Project returns the projection of v onto the direction at.
func (v Vector) Project(at Vector) Vector { return Vector{kproject(v.r, at.r)} }

// Project3 projects the xyz part of v onto at and keeps v.w.
func (v Vector) Project3(at Vector) Vector { return Vector{kproject3(v.r, at.r)} }

// Reflect mirrors v about the direction at.
func (v Vector) Reflect(at Vector) Vector { return Vector{kreflect(v.r, at.r)} }

// Reflect3 mirrors the xyz part of v about at and keeps v.w.
func (v Vector) Reflect3(at Vector) Vector { return Vector{kreflect3(v.r, at.r)} }

// Rotate multiplies v as a row vector by the upper-left 3x3 of m. The
// translation row is ignored and v.w is kept.
func (v Vector) Rotate(m Matrix) Vector { return Vector{krotate(v.r, &m)} }

// Transform multiplies v as a row vector by all of m.
func (v Vector) Transform(m Matrix) Vector { return Vector{ktransform(v.r, &m)} }

// Equal reports whether every lane of v is within EqualULPs of v1.
func (v Vector) Equal(v1 Vector) bool {
	a, b := rlanes(v.r), rlanes(v1.r)
	return realEqual(a[0], b[0], EqualULPs) &&
		realEqual(a[1], b[1], EqualULPs) &&
		realEqual(a[2], b[2], EqualULPs) &&
		realEqual(a[3], b[3], EqualULPs)
}

// ExactEqual compares lanes for exact IEEE equality.
func (v Vector) ExactEqual(v1 Vector) Vectori { return rcmp(v.r, v1.r, cmpEqual) }

// LessEqual compares lanes with <=.
func (v Vector) LessEqual(v1 Vector) Vectori { return rcmp(v.r, v1.r, cmpLessEqual) }

// Less compares lanes with <.
func (v Vector) Less(v1 Vector) Vectori { return rcmp(v.r, v1.r, cmpLess) }

// GreaterEqual compares lanes with >=.
func (v Vector) GreaterEqual(v1 Vector) Vectori { return rcmp(v.r, v1.r, cmpGreaterEqual) }

// Greater compares lanes with >.
func (v Vector) Greater(v1 Vector) Vectori { return rcmp(v.r, v1.r, cmpGreater) }
