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

// DualQuaternion is a rigid transform encoded as a real (rotation) part and a
// dual part carrying the translation.
type DualQuaternion struct {
	q [2]Quaternion
}

// DualQuaternionIdentity returns the transform that changes nothing.
func DualQuaternionIdentity() DualQuaternion {
	return DualQuaternion{[2]Quaternion{QuaternionIdentity(), QuaternionZero()}}
}

// DualQuaternionFromRotationTranslation returns the transform that rotates by
// the unit quaternion rot and then translates by the xyz of t.
func DualQuaternionFromRotationTranslation(rot Quaternion, t Vector) DualQuaternion {
	tq := Quaternion{rwith(t.r, 3, 0)}
	return DualQuaternion{[2]Quaternion{rot, rot.Mul(tq).Scale(0.5)}}
}

// Real returns the rotation part.
func (dq DualQuaternion) Real() Quaternion { return dq.q[0] }

// Dual returns the translation-carrying part.
func (dq DualQuaternion) Dual() Quaternion { return dq.q[1] }

// Rotation is an alias for Real.
func (dq DualQuaternion) Rotation() Quaternion { return dq.q[0] }

// Translation recovers the translation as (x, y, z, 0).
func (dq DualQuaternion) Translation() Vector {
	t := dq.q[0].Conjugate().Mul(dq.q[1]).Scale(2)
	return Vector{rwith(t.r, 3, 0)}
}

// Mul composes transforms: applying dq.Mul(dq1) applies dq first and then dq1.
func (dq DualQuaternion) Mul(dq1 DualQuaternion) DualQuaternion {
	r0, d0 := dq.q[0], dq.q[1]
	r1, d1 := dq1.q[0], dq1.q[1]
	return DualQuaternion{[2]Quaternion{
		r0.Mul(r1),
		d0.Mul(r1).Add(r0.Mul(d1)),
	}}
}

// Normalize scales both parts by the inverse length of the real part.
func (dq DualQuaternion) Normalize() DualQuaternion {
	inv := rdiv(rsplat(1), klength(dq.q[0].r))
	return DualQuaternion{[2]Quaternion{
		{rmul(dq.q[0].r, inv)},
		{rmul(dq.q[1].r, inv)},
	}}
}

// TransformPoint rotates the xyz of v and then translates it. The w lane of
// v is kept.
func (dq DualQuaternion) TransformPoint(v Vector) Vector {
	r := dq.q[0].Rotate(v).Add(dq.Translation())
	return Vector{ksplice(r.r, v.r)}
}

// Equal reports whether both parts are Equal.
func (dq DualQuaternion) Equal(dq1 DualQuaternion) bool {
	return dq.q[0].Equal(dq1.q[0]) && dq.q[1].Equal(dq1.q[1])
}
