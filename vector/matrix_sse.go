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

//go:build amd64 && goexperiment.simd && !purego

package vector

// kmatrixTranspose interleaves row pairs and then picks the even and odd
// lanes of each half, the classic _MM_TRANSPOSE4_PS sequence.
func kmatrixTranspose(m *Matrix) Matrix {
	t0 := rshuffle2(m.row[0].r, m.row[1].r, MaskXYXY)
	t2 := rshuffle2(m.row[0].r, m.row[1].r, MaskZWZW)
	t1 := rshuffle2(m.row[2].r, m.row[3].r, MaskXYXY)
	t3 := rshuffle2(m.row[2].r, m.row[3].r, MaskZWZW)
	return Matrix{row: [4]Vector{
		{rshuffle2(t0, t1, MaskXZXZ)},
		{rshuffle2(t0, t1, MaskYWYW)},
		{rshuffle2(t2, t3, MaskXZXZ)},
		{rshuffle2(t2, t3, MaskYWYW)},
	}}
}

func kmatrixMul(m0, m1 *Matrix) Matrix { return matrixMulRowsBase(m0, m1) }
