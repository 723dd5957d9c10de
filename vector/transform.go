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

// Transform is a uniform scale, then a rotation, then a translation. The
// scale is stored in the w lane of the translation vector.
type Transform struct {
	rotation    Quaternion
	translation Vector
}

// TransformIdentity returns the transform that changes nothing.
func TransformIdentity() Transform {
	return Transform{QuaternionIdentity(), Origo()}
}

// NewTransform combines a unit rotation, the xyz of translation and a scale.
func NewTransform(rotation Quaternion, translation Vector, scale float32) Transform {
	return Transform{rotation, translation.SetComponent(3, scale)}
}

// Rotation returns the rotation.
func (t Transform) Rotation() Quaternion { return t.rotation }

// Translation returns (x, y, z, scale).
func (t Transform) Translation() Vector { return t.translation }

// Scale returns the uniform scale.
func (t Transform) Scale() float32 { return t.translation.W() }

// Matrix returns scale*rotation with the translation in row 3.
func (t Transform) Matrix() Matrix {
	m := MatrixFromQuaternion(t.rotation)
	s := rsplat(t.Scale())
	m.row[0].r = rmul(m.row[0].r, s)
	m.row[1].r = rmul(m.row[1].r, s)
	m.row[2].r = rmul(m.row[2].r, s)
	m.row[3] = t.translation.SetComponent(3, 1)
	return m
}

// Apply transforms the point v. The w lane of v is kept.
func (t Transform) Apply(v Vector) Vector {
	p := t.rotation.Rotate(v.Scale(t.Scale())).Add(t.translation)
	return Vector{ksplice(p.r, v.r)}
}

// DualQuaternion converts the rotation and translation. The scale is dropped.
func (t Transform) DualQuaternion() DualQuaternion {
	return DualQuaternionFromRotationTranslation(t.rotation, t.translation)
}
