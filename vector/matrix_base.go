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

func matrixTransposeBase(m *Matrix) Matrix {
	f := m.Frows()
	return Matrix{[4]Vector{
		New(f[0][0], f[1][0], f[2][0], f[3][0]),
		New(f[0][1], f[1][1], f[2][1], f[3][1]),
		New(f[0][2], f[1][2], f[2][2], f[3][2]),
		New(f[0][3], f[1][3], f[2][3], f[3][3]),
	}}
}

func matrixMulBase(m0, m1 *Matrix) Matrix {
	a, b := m0.Frows(), m1.Frows()
	var out [4][4]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = a[r][0]*b[0][c] + a[r][1]*b[1][c] + a[r][2]*b[2][c] + a[r][3]*b[3][c]
		}
	}
	return Matrix{[4]Vector{
		{rload(&out[0])},
		{rload(&out[1])},
		{rload(&out[2])},
		{rload(&out[3])},
	}}
}

// matrixMulRowsBase multiplies by broadcasting each lane of a row of m0
// against the rows of m1, the shape used by the SIMD backends.
func matrixMulRowsBase(m0, m1 *Matrix) Matrix {
	var ret Matrix
	for i := range ret.row {
		a := m0.row[i].r
		r := rmul(rshuffle(a, MaskXXXX), m1.row[0].r)
		r = rmuladd(rshuffle(a, MaskYYYY), m1.row[1].r, r)
		r = rmuladd(rshuffle(a, MaskZZZZ), m1.row[2].r, r)
		r = rmuladd(rshuffle(a, MaskWWWW), m1.row[3].r, r)
		ret.row[i].r = r
	}
	return ret
}

func matrixFromQuaternionBase(q reg) Matrix {
	l := rlanes(q)
	x, y, z, w := l[0], l[1], l[2], l[3]

	tx, ty, tz := 2*x, 2*y, 2*z
	tsx, tsy, tsz := tx*w, ty*w, tz*w
	txx, txy, txz := tx*x, ty*x, tz*x
	tyy, tyz, tzz := ty*y, tz*y, tz*z

	return Matrix{[4]Vector{
		New(1-(tyy+tzz), txy+tsz, txz-tsy, 0),
		New(txy-tsz, 1-(txx+tzz), tyz+tsx, 0),
		New(txz+tsy, tyz-tsx, 1-(txx+tyy), 0),
		New(0, 0, 0, 1),
	}}
}
