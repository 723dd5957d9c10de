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

//go:build arm64 && !purego

package vector

// kmatrixTranspose uses two rounds of ZIP1/ZIP2.
func kmatrixTranspose(m *Matrix) Matrix {
	r0, r1, r2, r3 := m.row[0].r, m.row[1].r, m.row[2].r, m.row[3].r
	t0, t1 := r0.Zip1(r2), r0.Zip2(r2)
	t2, t3 := r1.Zip1(r3), r1.Zip2(r3)
	return Matrix{row: [4]Vector{
		{t0.Zip1(t2)},
		{t0.Zip2(t2)},
		{t1.Zip1(t3)},
		{t1.Zip2(t3)},
	}}
}

// kmatrixMul accumulates each output row as a combination of m1's rows
// weighted by the lanes of the matching m0 row.
func kmatrixMul(m0, m1 *Matrix) Matrix {
	var out Matrix
	for i := range 4 {
		a := m0.row[i].r
		r := m1.row[0].r.MulLane(a, 0)
		r = m1.row[1].r.MulAdd(a.DupLane(1), r)
		r = m1.row[2].r.MulAdd(a.DupLane(2), r)
		out.row[i].r = m1.row[3].r.MulAdd(a.DupLane(3), r)
	}
	return out
}
