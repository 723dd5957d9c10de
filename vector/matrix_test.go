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

import (
	"testing"

	"github.com/chewxy/math32"
)

var matrixData = [16]float32{
	1, -2, 3, -4,
	-5, 6, -7, 8,
	9, 10, 11, 12,
	-13, -14, -15, -16,
}

func TestMatrixLoadStore(t *testing.T) {
	buf := AlignedFloats(16)
	copy(buf, matrixData[:])
	m := MatrixAligned((*[16]float32)(buf))
	if !m.Equal(MatrixUnaligned(matrixData[:])) {
		t.Errorf("MatrixAligned and MatrixUnaligned differ:\n%v\n%v", m, MatrixUnaligned(matrixData[:]))
	}
	if got := m.Array(); got != matrixData {
		t.Errorf("Array: got %v, want %v", got, matrixData)
	}

	out := AlignedFloats(16)
	m.StoreAligned((*[16]float32)(out))
	tail := make([]float32, 17)
	m.StoreUnaligned(tail[1:])
	for i := range 16 {
		if out[i] != matrixData[i] || tail[i+1] != matrixData[i] {
			t.Errorf("store element %d: got %v and %v, want %v", i, out[i], tail[i+1], matrixData[i])
		}
	}
}

func TestMatrixViews(t *testing.T) {
	m := MatrixUnaligned(matrixData[:])
	f := m.Frows()
	for i := range 4 {
		for j := range 4 {
			want := matrixData[4*i+j]
			if got := m.At(i, j); got != want {
				t.Errorf("At(%d, %d): got %v, want %v", i, j, got, want)
			}
			if got := m.Row(i).Component(j); got != want {
				t.Errorf("Row(%d).Component(%d): got %v, want %v", i, j, got, want)
			}
			if got := f[i][j]; got != want {
				t.Errorf("Frows[%d][%d]: got %v, want %v", i, j, got, want)
			}
		}
	}
	fields := []float32{
		m.M00(), m.M01(), m.M02(), m.M03(),
		m.M10(), m.M11(), m.M12(), m.M13(),
		m.M20(), m.M21(), m.M22(), m.M23(),
		m.M30(), m.M31(), m.M32(), m.M33(),
	}
	for i, got := range fields {
		if got != matrixData[i] {
			t.Errorf("M%d%d: got %v, want %v", i/4, i%4, got, matrixData[i])
		}
	}

	w := m.WithRow(2, One())
	if !w.Row(2).Equal(One()) || !w.Row(1).Equal(m.Row(1)) {
		t.Errorf("WithRow(2): got\n%v", w)
	}
	if m.Row(2).Equal(One()) {
		t.Errorf("WithRow modified the receiver")
	}
}

func TestMatrixTranspose(t *testing.T) {
	m := MatrixUnaligned(matrixData[:])
	tr := m.Transpose()
	want := [4][4]float32{
		{1, -5, 9, -13},
		{-2, 6, 10, -14},
		{3, -7, 11, -15},
		{-4, 8, 12, -16},
	}
	if got := tr.Frows(); got != want {
		t.Errorf("Transpose: got %v, want %v", got, want)
	}
	if !tr.Transpose().Equal(m) {
		t.Errorf("Transpose is not an involution")
	}
}

func TestMatrixMul(t *testing.T) {
	s := MatrixScalingScalar(2, 3, 4)
	tr := MatrixTranslationScalar(1, 2, 3)

	tests := []struct {
		name string
		got  Matrix
		want Matrix
	}{
		{"Identity", MatrixIdentity().Mul(MatrixUnaligned(matrixData[:])), MatrixUnaligned(matrixData[:])},
		{"IdentityRight", MatrixUnaligned(matrixData[:]).Mul(MatrixIdentity()), MatrixUnaligned(matrixData[:])},
		{"ScaleThenTranslate", s.Mul(tr), MatrixFromRows(
			New(2, 0, 0, 0), New(0, 3, 0, 0), New(0, 0, 4, 0), New(1, 2, 3, 1))},
		{"TranslateThenScale", tr.Mul(s), MatrixFromRows(
			New(2, 0, 0, 0), New(0, 3, 0, 0), New(0, 0, 4, 0), New(2, 6, 12, 1))},
		{"ZeroLeft", MatrixZero().Mul(s), MatrixZero()},
		{"ZeroRight", MatrixUnaligned(matrixData[:]).Mul(MatrixZero()), MatrixZero()},
	}
	for _, tc := range tests {
		if !tc.got.Equal(tc.want) {
			t.Errorf("%s: got\n%v\nwant\n%v", tc.name, tc.got, tc.want)
		}
	}

	// Transforming by the product is transforming by each in turn.
	p := New(1, -1, 2, 1)
	if got, want := p.Transform(s.Mul(tr)), p.Transform(s).Transform(tr); !almostEqual(got, want) {
		t.Errorf("Transform by product: got %v, want %v", got, want)
	}
	checkLanes(t, "ScaleThenTranslate point", p.Transform(s.Mul(tr)), [4]float32{3, -1, 11, 1})
}

func TestMatrixAddSub(t *testing.T) {
	m := MatrixUnaligned(matrixData[:])
	sum := m.Add(m)
	for i := range 4 {
		checkLanes(t, "Add", sum.Row(i), m.Row(i).Scale(2).Lanes())
	}
	if !m.Sub(m).Equal(MatrixZero()) {
		t.Errorf("m - m: got\n%v", m.Sub(m))
	}
}

func TestMatrixTranslationAccessor(t *testing.T) {
	m := MatrixTranslation(New(4, 5, 6, 99))
	checkLanes(t, "Translation", m.Translation(), [4]float32{4, 5, 6, 1})
	checkLanes(t, "Rotate ignores translation", m.Rotate(XAxis()), [4]float32{1, 0, 0, 1})
	checkLanes(t, "Transform", m.Transform(Origo()), [4]float32{4, 5, 6, 1})
	checkLanes(t, "MatrixScaling", MatrixScaling(New(2, 3, 4, 9)).Transform(One()), [4]float32{2, 3, 4, 1})
}

func TestMatrixFromQuaternion(t *testing.T) {
	if !MatrixFromQuaternion(QuaternionIdentity()).Equal(MatrixIdentity()) {
		t.Errorf("identity quaternion does not give the identity matrix")
	}

	// A quarter turn about z takes x to y.
	q := quatAxisZ(math32.Pi / 2)
	m := MatrixFromQuaternion(q)
	if got := XAxis().Rotate(m); !almostEqual(got, New(0, 1, 0, 1)) {
		t.Errorf("quarter turn about z: got %v, want (0, 1, 0, 1)", got)
	}

	qs := []Quaternion{
		quatAxisX(0.3),
		quatAxisY(-1.2),
		quatAxisZ(2.5),
		QuaternionNew(0.1, 0.7, -0.3, 0.4).Normalize(),
	}
	v := New(0.5, -2, 3, 1)
	for _, q := range qs {
		if got, want := v.Rotate(MatrixFromQuaternion(q)), q.Rotate(v); !almostEqual(got.SetComponent(3, 1), want.SetComponent(3, 1)) {
			t.Errorf("matrix and quaternion rotation of %v by %v: got %v, want %v", v, q, got, want)
		}
	}

	q0, q1 := qs[0], qs[3]
	if got, want := MatrixFromQuaternion(q0.Mul(q1)), MatrixFromQuaternion(q0).Mul(MatrixFromQuaternion(q1)); !almostEqualMatrix(got, want) {
		t.Errorf("MatrixFromQuaternion(q0*q1): got\n%v\nwant\n%v", got, want)
	}
}

func BenchmarkMatrixMul(b *testing.B) {
	m0 := MatrixUnaligned(matrixData[:])
	m1 := MatrixFromQuaternion(quatAxisY(0.7))
	var sink Matrix
	for b.Loop() {
		sink = m0.Mul(m1)
	}
	_ = sink
}

func BenchmarkMatrixTranspose(b *testing.B) {
	m := MatrixUnaligned(matrixData[:])
	var sink Matrix
	for b.Loop() {
		sink = m.Transpose()
	}
	_ = sink
}
