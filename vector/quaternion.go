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

// Quaternion shares the Vector layout: (x, y, z) is the imaginary part and w
// the real part. Rotations are unit quaternions, but normalization is never
// enforced; call Normalize after Add, Sub or Scale.
type Quaternion Vector

// QuaternionNew returns x*i + y*j + z*k + w.
func QuaternionNew(x, y, z, w float32) Quaternion {
	return Quaternion{rset(x, y, z, w)}
}

// QuaternionZero returns (0, 0, 0, 0).
func QuaternionZero() Quaternion { return Quaternion{rsplat(0)} }

// QuaternionIdentity returns (0, 0, 0, 1).
func QuaternionIdentity() Quaternion { return Quaternion{rset(0, 0, 0, 1)} }

// QuaternionAligned loads from p, which must be 16-byte aligned.
func QuaternionAligned(p *[4]float32) Quaternion {
	assertAligned(unsafe.Pointer(p))
	return Quaternion{rload(p)}
}

// QuaternionUnaligned loads the first four elements of s.
func QuaternionUnaligned(s []float32) Quaternion {
	return Quaternion{rloadSlice(s)}
}

// QuaternionFromVector reinterprets v.
func QuaternionFromVector(v Vector) Quaternion { return Quaternion(v) }

// Vector reinterprets q.
func (q Quaternion) Vector() Vector { return Vector(q) }

// X returns the i coefficient.
func (q Quaternion) X() float32 { return rlane(q.r, 0) }

// Y returns the j coefficient.
func (q Quaternion) Y() float32 { return rlane(q.r, 1) }

// Z returns the k coefficient.
func (q Quaternion) Z() float32 { return rlane(q.r, 2) }

// W returns the real part.
func (q Quaternion) W() float32 { return rlane(q.r, 3) }

// Lanes returns (x, y, z, w).
func (q Quaternion) Lanes() [4]float32 { return rlanes(q.r) }

// Conjugate negates the imaginary part.
func (q Quaternion) Conjugate() Quaternion { return Quaternion{kquatConjugate(q.r)} }

// Inverse returns the conjugate divided by the squared norm, so that
// q.Mul(q.Inverse()) is the identity for any nonzero q.
func (q Quaternion) Inverse() Quaternion { return Quaternion{kquatInverse(q.r)} }

// Neg negates all four lanes. The result represents the same rotation.
func (q Quaternion) Neg() Quaternion { return Quaternion{rneg(q.r)} }

// Normalize scales q to unit length.
func (q Quaternion) Normalize() Quaternion { return Quaternion{knormalize(q.r)} }

// Add returns the lane-wise sum, not renormalized.
func (q Quaternion) Add(q1 Quaternion) Quaternion { return Quaternion{radd(q.r, q1.r)} }

// Sub returns the lane-wise difference, not renormalized.
func (q Quaternion) Sub(q1 Quaternion) Quaternion { return Quaternion{rsub(q.r, q1.r)} }

// Scale multiplies all four lanes by s.
func (q Quaternion) Scale(s float32) Quaternion { return Quaternion{rmul(q.r, rsplat(s))} }

// Dot returns the 4-lane dot product.
func (q Quaternion) Dot(q1 Quaternion) float32 { return rlane(kdot(q.r, q1.r), 0) }

// Mul composes rotations: rotating by q.Mul(q1) rotates by q first and then by
// q1. In Hamilton notation the result is q1*q.
func (q Quaternion) Mul(q1 Quaternion) Quaternion { return Quaternion{kquatMul(q.r, q1.r)} }

// Slerp interpolates along the shorter great arc from q towards q1. When the
// quaternions are on opposite hemispheres q1 is negated first, so t=1 may
// return -q1. When the arc is degenerate the (possibly negated) target is
// returned directly.
func (q Quaternion) Slerp(q1 Quaternion, t float32) Quaternion {
	return Quaternion{quaternionSlerpBase(q.r, q1.r, t)}
}

// Rotate rotates the xyz part of v by the unit quaternion q. Do not depend on
// the w lane of the result.
func (q Quaternion) Rotate(v Vector) Vector {
	return Vector{quaternionRotateBase(q.r, v.r)}
}

// Equal reports whether every lane is within EqualULPs.
func (q Quaternion) Equal(q1 Quaternion) bool {
	return Vector(q).Equal(Vector(q1))
}

// QuaternionFromMatrix extracts the rotation of the upper-left 3x3 of m using
// the trace method, branching on the largest diagonal element when the trace
// is not positive. The result is normalized; it may be the negation of the
// quaternion the matrix was built from.
func QuaternionFromMatrix(m Matrix) Quaternion {
	return Quaternion{quaternionFromMatrixBase(&m)}
}

// QuaternionRotatingVector returns the unit quaternion rotating the direction
// from onto the direction to. Antiparallel inputs have no unique answer and
// yield NaN lanes.
func QuaternionRotatingVector(from, to Vector) Quaternion {
	return Quaternion{quaternionRotatingVectorBase(from.r, to.r)}
}
