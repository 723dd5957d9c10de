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

// Matrix is a 4x4 row-major matrix of float32. Row i, column j is element
// 4*i+j of Array, At(i, j) and Row(i).Component(j); the views are computed
// from one canonical storage of four row vectors.
//
// With the row vector convention a point p is transformed as p*M, so the
// translation of an affine matrix is row 3.
type Matrix struct {
	row [4]Vector
}

// MatrixZero returns the all-zero matrix.
func MatrixZero() Matrix {
	z := Zero()
	return Matrix{[4]Vector{z, z, z, z}}
}

// MatrixIdentity returns the identity matrix.
func MatrixIdentity() Matrix {
	return Matrix{[4]Vector{
		New(1, 0, 0, 0),
		New(0, 1, 0, 0),
		New(0, 0, 1, 0),
		New(0, 0, 0, 1),
	}}
}

// MatrixFromRows builds a matrix from four row vectors.
func MatrixFromRows(r0, r1, r2, r3 Vector) Matrix {
	return Matrix{[4]Vector{r0, r1, r2, r3}}
}

// MatrixAligned loads 16 row-major floats from p, which must be 16-byte
// aligned.
func MatrixAligned(p *[16]float32) Matrix {
	assertAligned(unsafe.Pointer(p))
	return Matrix{[4]Vector{
		{rload((*[4]float32)(p[0:4]))},
		{rload((*[4]float32)(p[4:8]))},
		{rload((*[4]float32)(p[8:12]))},
		{rload((*[4]float32)(p[12:16]))},
	}}
}

// MatrixUnaligned loads the first 16 row-major floats of s.
func MatrixUnaligned(s []float32) Matrix {
	_ = s[15]
	return Matrix{[4]Vector{
		{rloadSlice(s[0:4])},
		{rloadSlice(s[4:8])},
		{rloadSlice(s[8:12])},
		{rloadSlice(s[12:16])},
	}}
}

// MatrixScaling returns diag(v.x, v.y, v.z, 1).
func MatrixScaling(v Vector) Matrix {
	l := v.Lanes()
	return MatrixScalingScalar(l[0], l[1], l[2])
}

// MatrixScalingScalar returns diag(x, y, z, 1).
func MatrixScalingScalar(x, y, z float32) Matrix {
	return Matrix{[4]Vector{
		New(x, 0, 0, 0),
		New(0, y, 0, 0),
		New(0, 0, z, 0),
		New(0, 0, 0, 1),
	}}
}

// MatrixTranslation returns the identity with row 3 set to (v.x, v.y, v.z, 1).
func MatrixTranslation(v Vector) Matrix {
	m := MatrixIdentity()
	m.row[3] = v.SetComponent(3, 1)
	return m
}

// MatrixTranslationScalar returns the identity with row 3 set to (x, y, z, 1).
func MatrixTranslationScalar(x, y, z float32) Matrix {
	m := MatrixIdentity()
	m.row[3] = New(x, y, z, 1)
	return m
}

// MatrixFromQuaternion returns the rotation matrix of the unit quaternion q.
// Row 3 and column 3 are those of the identity.
func MatrixFromQuaternion(q Quaternion) Matrix {
	return matrixFromQuaternionBase(q.r)
}

// Row returns row i, which must be in 0..3.
func (m Matrix) Row(i int) Vector {
	assertComponent(i)
	return m.row[i&3]
}

// WithRow returns a copy of m with row i replaced by v.
func (m Matrix) WithRow(i int, v Vector) Matrix {
	assertComponent(i)
	m.row[i&3] = v
	return m
}

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) float32 {
	return m.Row(i).Component(j)
}

// Array returns the 16 elements in row-major order.
func (m Matrix) Array() [16]float32 {
	var a [16]float32
	for i := range m.row {
		rstore(m.row[i].r, (*[4]float32)(a[4*i:4*i+4]))
	}
	return a
}

// Frows returns the elements as a [row][column] array.
func (m Matrix) Frows() [4][4]float32 {
	return [4][4]float32{
		rlanes(m.row[0].r),
		rlanes(m.row[1].r),
		rlanes(m.row[2].r),
		rlanes(m.row[3].r),
	}
}

// StoreAligned writes the 16 elements to p, which must be 16-byte aligned.
func (m Matrix) StoreAligned(p *[16]float32) {
	assertAligned(unsafe.Pointer(p))
	for i := range m.row {
		rstore(m.row[i].r, (*[4]float32)(p[4*i:4*i+4]))
	}
}

// StoreUnaligned writes the 16 elements to the start of s.
func (m Matrix) StoreUnaligned(s []float32) {
	_ = s[15]
	for i := range m.row {
		rstoreSlice(m.row[i].r, s[4*i:4*i+4])
	}
}

// Transpose returns the transpose of m.
func (m Matrix) Transpose() Matrix {
	return kmatrixTranspose(&m)
}

// Add returns the row-wise sum.
func (m Matrix) Add(m1 Matrix) Matrix {
	return Matrix{[4]Vector{
		m.row[0].Add(m1.row[0]),
		m.row[1].Add(m1.row[1]),
		m.row[2].Add(m1.row[2]),
		m.row[3].Add(m1.row[3]),
	}}
}

// Sub returns the row-wise difference.
func (m Matrix) Sub(m1 Matrix) Matrix {
	return Matrix{[4]Vector{
		m.row[0].Sub(m1.row[0]),
		m.row[1].Sub(m1.row[1]),
		m.row[2].Sub(m1.row[2]),
		m.row[3].Sub(m1.row[3]),
	}}
}

// Mul returns the matrix product m*m1. Transforming by the product is the
// same as transforming by m and then by m1.
func (m Matrix) Mul(m1 Matrix) Matrix {
	return kmatrixMul(&m, &m1)
}

// Translation returns row 3.
func (m Matrix) Translation() Vector {
	return m.row[3]
}

// Rotate is v.Rotate(m).
func (m Matrix) Rotate(v Vector) Vector {
	return Vector{krotate(v.r, &m)}
}

// Transform is v.Transform(m).
func (m Matrix) Transform(v Vector) Vector {
	return Vector{ktransform(v.r, &m)}
}

// Equal reports whether every row is Equal.
func (m Matrix) Equal(m1 Matrix) bool {
	return m.row[0].Equal(m1.row[0]) &&
		m.row[1].Equal(m1.row[1]) &&
		m.row[2].Equal(m1.row[2]) &&
		m.row[3].Equal(m1.row[3])
}
