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
	"math"
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		got  Vector
		want [4]float32
	}{
		{"New", New(1, 2, 3, 4), [4]float32{1, 2, 3, 4}},
		{"Uniform", Uniform(-3), [4]float32{-3, -3, -3, -3}},
		{"Zero", Zero(), [4]float32{0, 0, 0, 0}},
		{"One", One(), [4]float32{1, 1, 1, 1}},
		{"Half", Half(), [4]float32{0.5, 0.5, 0.5, 0.5}},
		{"Two", Two(), [4]float32{2, 2, 2, 2}},
		{"Origo", Origo(), [4]float32{0, 0, 0, 1}},
		{"XAxis", XAxis(), [4]float32{1, 0, 0, 1}},
		{"YAxis", YAxis(), [4]float32{0, 1, 0, 1}},
		{"ZAxis", ZAxis(), [4]float32{0, 0, 1, 1}},
	}
	for _, tc := range tests {
		if got := tc.got.Lanes(); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestLoadStore(t *testing.T) {
	buf := AlignedFloats(8)
	if !IsAligned(buf) {
		t.Fatalf("AlignedFloats: first element is not %d-byte aligned", Alignment)
	}
	copy(buf, []float32{1, 2, 3, 4, 5, 6, 7, 8})

	a := AlignedSlice(buf)
	u := Unaligned(buf[1:])
	checkLanes(t, "AlignedSlice", a, [4]float32{1, 2, 3, 4})
	checkLanes(t, "Unaligned", u, [4]float32{2, 3, 4, 5})
	if !a.ExactEqual(Unaligned(buf)).All() {
		t.Errorf("Aligned and Unaligned loads differ on the same data")
	}

	out := AlignedFloats(4)
	a.Add(One()).StoreAligned((*[4]float32)(out))
	if want := []float32{2, 3, 4, 5}; !slicesEqual(out, want) {
		t.Errorf("StoreAligned: got %v, want %v", out, want)
	}

	tail := make([]float32, 6)
	u.StoreUnaligned(tail[2:])
	if want := []float32{0, 0, 2, 3, 4, 5}; !slicesEqual(tail, want) {
		t.Errorf("StoreUnaligned: got %v, want %v", tail, want)
	}
}

func TestLoadAlignmentAgreement(t *testing.T) {
	special := []float32{
		float32(math.Copysign(0, -1)),
		math.Float32frombits(0x00000001), // smallest subnormal
		math.Float32frombits(0x007fffff), // largest subnormal
		math.Float32frombits(0x80000010),
		math.MaxFloat32,
		float32(math.Inf(1)),
		float32(math.Inf(-1)),
	}
	r := rand.New(rand.NewPCG(9, 10))
	buf := AlignedFloats(64)
	for round := range 20 {
		for i := range buf {
			f := math.Float32frombits(r.Uint32())
			for f != f {
				f = math.Float32frombits(r.Uint32())
			}
			buf[i] = f
		}
		for i, f := range special {
			buf[(round*7+i*5)%len(buf)] = f
		}

		for off := 0; off+4 <= len(buf); off += 4 {
			a, u := AlignedSlice(buf[off:]), Unaligned(buf[off:])
			if !a.ExactEqual(u).All() {
				t.Errorf("round %d offset %d: aligned %v and unaligned %v differ", round, off, a, u)
			}
			la, lu := a.Lanes(), u.Lanes()
			for c := range 4 {
				want := math.Float32bits(buf[off+c])
				if math.Float32bits(la[c]) != want || math.Float32bits(lu[c]) != want {
					t.Errorf("round %d offset %d lane %d: got %#x and %#x, want %#x",
						round, off, c, math.Float32bits(la[c]), math.Float32bits(lu[c]), want)
				}
			}
		}
		// Unaligned reads at the misaligned offsets see the same bits.
		for off := range len(buf) - 3 {
			if off%4 == 0 {
				continue
			}
			lu := Unaligned(buf[off:]).Lanes()
			for c := range 4 {
				if math.Float32bits(lu[c]) != math.Float32bits(buf[off+c]) {
					t.Errorf("round %d unaligned offset %d lane %d: got %g, want %g", round, off, c, lu[c], buf[off+c])
				}
			}
		}
	}
}

func TestMisalignedLoadPanics(t *testing.T) {
	if !assertEnabled {
		t.Skip("assertions disabled by vector_noassert")
	}
	buf := AlignedFloats(8)
	defer func() {
		if recover() == nil {
			t.Errorf("AlignedSlice on a misaligned slice did not panic")
		}
	}()
	_ = AlignedSlice(buf[1:])
}

func slicesEqual(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestComponents(t *testing.T) {
	v := New(1, 2, 3, 4)
	if v.X() != 1 || v.Y() != 2 || v.Z() != 3 || v.W() != 4 {
		t.Errorf("accessors: got (%v, %v, %v, %v), want (1, 2, 3, 4)", v.X(), v.Y(), v.Z(), v.W())
	}
	for c := range 4 {
		if got, want := v.Component(c), float32(c+1); got != want {
			t.Errorf("Component(%d): got %v, want %v", c, got, want)
		}
		w := v.SetComponent(c, -9)
		for o := range 4 {
			want := float32(o + 1)
			if o == c {
				want = -9
			}
			if got := w.Component(o); got != want {
				t.Errorf("SetComponent(%d) lane %d: got %v, want %v", c, o, got, want)
			}
		}
	}
	if v.Lanes() != [4]float32{1, 2, 3, 4} {
		t.Errorf("SetComponent modified the receiver: %v", v)
	}
}

func TestComponentOutOfRangePanics(t *testing.T) {
	if !assertEnabled {
		t.Skip("assertions disabled by vector_noassert")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("Component(4) did not panic")
		}
	}()
	_ = One().Component(4)
}

func TestArithmetic(t *testing.T) {
	a := New(1, 2, 3, 4)
	b := New(5, 6, 7, 8)
	tests := []struct {
		name string
		got  Vector
		want [4]float32
	}{
		{"Add", a.Add(b), [4]float32{6, 8, 10, 12}},
		{"Sub", b.Sub(a), [4]float32{4, 4, 4, 4}},
		{"Mul", a.Mul(b), [4]float32{5, 12, 21, 32}},
		{"Div", b.Div(a), [4]float32{5, 3, 7.0 / 3.0, 2}},
		{"Neg", a.Neg(), [4]float32{-1, -2, -3, -4}},
		{"MulAdd", a.MulAdd(b, One()), [4]float32{6, 13, 22, 33}},
		{"Scale", a.Scale(0.5), [4]float32{0.5, 1, 1.5, 2}},
		{"Sqrt", New(1, 4, 9, 16).Sqrt(), [4]float32{1, 2, 3, 4}},
		{"Abs", New(-1, 2, -3, 0).Abs(), [4]float32{1, 2, 3, 0}},
		{"Min", New(1, 9, -3, 4).Min(New(2, 2, 2, 2)), [4]float32{1, 2, -3, 2}},
		{"Max", New(1, 9, -3, 4).Max(New(2, 2, 2, 2)), [4]float32{2, 9, 2, 4}},
	}
	for _, tc := range tests {
		checkLanes(t, tc.name, tc.got, tc.want)
	}
}

func TestDotAndLength(t *testing.T) {
	a := New(1, 2, 3, 4)
	b := New(5, 6, 7, 8)
	tests := []struct {
		name string
		got  Vector
		want float32
	}{
		{"Dot", a.Dot(b), 70},
		{"Dot3", a.Dot3(b), 38},
		{"Length", New(1, 2, 2, 4).Length(), 5},
		{"LengthFast", New(1, 2, 2, 4).LengthFast(), 5},
		{"LengthSqr", New(1, 2, 2, 4).LengthSqr(), 25},
		{"Length3", New(2, 3, 6, 9).Length3(), 7},
		{"Length3Fast", New(2, 3, 6, 9).Length3Fast(), 7},
		{"Length3Sqr", New(2, 3, 6, 9).Length3Sqr(), 49},
	}
	for _, tc := range tests {
		// Scalar results are broadcast to every lane.
		checkLanes(t, tc.name, tc.got, [4]float32{tc.want, tc.want, tc.want, tc.want})
	}
}

func TestCross3(t *testing.T) {
	tests := []struct {
		a, b Vector
		want [3]float32
	}{
		{XAxis(), YAxis(), [3]float32{0, 0, 1}},
		{YAxis(), ZAxis(), [3]float32{1, 0, 0}},
		{ZAxis(), XAxis(), [3]float32{0, 1, 0}},
		{YAxis(), XAxis(), [3]float32{0, 0, -1}},
		{New(1, 2, 3, 0), New(4, 5, 6, 0), [3]float32{-3, 6, -3}},
	}
	for _, tc := range tests {
		if got := xyz(tc.a.Cross3(tc.b)); got != tc.want {
			t.Errorf("%v.Cross3(%v): got %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	v := New(0, -3, 7, -10)
	l := math32.Sqrt(158)
	checkLanes(t, "Normalize", v.Normalize(), [4]float32{0, -3 / l, 7 / l, -10 / l})

	l3 := math32.Sqrt(58)
	checkLanes(t, "Normalize3", v.Normalize3(), [4]float32{0, -3 / l3, 7 / l3, -10})

	if got := v.Normalize().Length().X(); math32.Abs(got-1) > 1e-5 {
		t.Errorf("Normalize length: got %v, want 1", got)
	}
}

func TestLerp(t *testing.T) {
	from := New(0, 0, 0, 0)
	to := New(2, 4, 6, 8)
	tests := []struct {
		t    float32
		want [4]float32
	}{
		{0, [4]float32{0, 0, 0, 0}},
		{0.25, [4]float32{0.5, 1, 1.5, 2}},
		{1, [4]float32{2, 4, 6, 8}},
	}
	for _, tc := range tests {
		if got := from.Lerp(to, tc.t); !almostEqual(got, New(tc.want[0], tc.want[1], tc.want[2], tc.want[3])) {
			t.Errorf("Lerp(%v): got %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestProjectReflect(t *testing.T) {
	tests := []struct {
		name string
		got  Vector
		want [4]float32
	}{
		{"Project", New(3, 4, 0, 0).Project(New(2, 0, 0, 0)), [4]float32{3, 0, 0, 0}},
		{"Project3", New(3, 4, 5, 9).Project3(New(0, 0, 2, 7)), [4]float32{0, 0, 5, 9}},
		{"Reflect", New(1, 1, 0, 0).Reflect(New(1, 0, 0, 0)), [4]float32{1, -1, 0, 0}},
		{"Reflect3", New(1, 1, 0, 5).Reflect3(New(1, 0, 0, 3)), [4]float32{1, -1, 0, 5}},
	}
	for _, tc := range tests {
		checkLanes(t, tc.name, tc.got, tc.want)
	}
}

func TestRotateTransform(t *testing.T) {
	rot := MatrixUnaligned([]float32{
		0, 2, 0, 11,
		0, 0, 3, 12,
		1, 0, 0, 13,
		7, 8, 9, 10,
	})
	xform := MatrixUnaligned([]float32{
		0, 2, 0, 0,
		0, 0, 3, 0,
		1, 0, 0, 0,
		-1, 2, 5, 1,
	})
	tests := []struct {
		name string
		got  Vector
		want [4]float32
	}{
		{"Rotate/x", XAxis().Rotate(rot), [4]float32{0, 2, 0, 1}},
		{"Rotate/y", YAxis().Rotate(rot), [4]float32{0, 0, 3, 1}},
		{"Rotate/z", ZAxis().Rotate(rot), [4]float32{1, 0, 0, 1}},
		{"Rotate/keepsW", New(1, 1, 1, -6).Rotate(rot), [4]float32{1, 2, 3, -6}},
		{"Transform/x", XAxis().Transform(xform), [4]float32{-1, 4, 5, 1}},
		{"Transform/y", YAxis().Transform(xform), [4]float32{-1, 2, 8, 1}},
		{"Transform/z", ZAxis().Transform(xform), [4]float32{0, 2, 5, 1}},
		{"Transform/direction", New(1, 0, 0, 0).Transform(xform), [4]float32{0, 2, 0, 0}},
	}
	for _, tc := range tests {
		checkLanes(t, tc.name, tc.got, tc.want)
	}
}

func TestShuffle(t *testing.T) {
	a := New(0, 1, 2, 3)
	b := New(10, 11, 12, 13)
	checkLanes(t, "Shuffle(XYZW)", a.Shuffle(MaskXYZW), [4]float32{0, 1, 2, 3})
	checkLanes(t, "Shuffle(WZYX)", a.Shuffle(MaskWZYX), [4]float32{3, 2, 1, 0})
	checkLanes(t, "Shuffle(YYYY)", a.Shuffle(MaskYYYY), [4]float32{1, 1, 1, 1})
	checkLanes(t, "Shuffle2(XYXY)", a.Shuffle2(b, MaskXYXY), [4]float32{0, 1, 10, 11})
	checkLanes(t, "Shuffle2(WZYX)", a.Shuffle2(b, MaskWZYX), [4]float32{3, 2, 11, 10})

	// Every mask agrees with its decoded lanes.
	for m := range 256 {
		mask := Mask(m)
		l := mask.Lanes()
		want := [4]float32{float32(l[0]), float32(l[1]), float32(l[2]), float32(l[3])}
		if got := a.Shuffle(mask).Lanes(); got != want {
			t.Errorf("Shuffle(%s): got %v, want %v", mask, got, want)
		}
	}
}

func TestComparisons(t *testing.T) {
	a := New(1, 2, 3, 4)
	b := Uniform(2)
	tests := []struct {
		name string
		got  Vectori
		want [4]bool
	}{
		{"ExactEqual", a.ExactEqual(b), [4]bool{false, true, false, false}},
		{"LessEqual", a.LessEqual(b), [4]bool{true, true, false, false}},
		{"Less", a.Less(b), [4]bool{true, false, false, false}},
		{"GreaterEqual", a.GreaterEqual(b), [4]bool{false, true, true, true}},
		{"Greater", a.Greater(b), [4]bool{false, false, true, true}},
	}
	for _, tc := range tests {
		for c := range 4 {
			if got := tc.got.Component(c) != 0; got != tc.want[c] {
				t.Errorf("%s lane %d: got %v, want %v", tc.name, c, got, tc.want[c])
			}
		}
	}
	if !a.LessEqual(b).Or(a.Greater(b)).All() {
		t.Errorf("LessEqual | Greater should cover every lane")
	}
	if a.Less(b).And(a.Greater(b)).Any() {
		t.Errorf("Less & Greater should be empty")
	}
}

func TestEqual(t *testing.T) {
	a := New(1, -2, 1000, 0)
	if !a.Equal(a) {
		t.Errorf("Equal is not reflexive for %v", a)
	}
	eps := float32(float32Epsilon)
	if !a.Equal(a.Add(New(eps, -eps, 1000*eps, 10*eps))) {
		t.Errorf("Equal rejected a difference within EqualULPs")
	}
	if a.Equal(a.Add(New(0, 0, 0, 0.001))) {
		t.Errorf("Equal accepted a difference of 0.001 near zero")
	}
	if a.Equal(a.Add(New(0.01, 0, 0, 0))) {
		t.Errorf("Equal accepted a difference of 0.01 at 1")
	}
}

func BenchmarkDot(b *testing.B) {
	v0 := New(1, 2, 3, 4)
	v1 := New(5, 6, 7, 8)
	var sink Vector
	for b.Loop() {
		sink = v0.Dot(v1)
	}
	_ = sink
}

func BenchmarkShuffle(b *testing.B) {
	v0 := New(1, 2, 3, 4)
	v1 := New(5, 6, 7, 8)
	var sink Vector
	for b.Loop() {
		sink = v0.Shuffle2(v1, MaskZZWW).Shuffle(MaskWZYX)
	}
	_ = sink
}

func BenchmarkLess(b *testing.B) {
	v0 := New(1, 2, 3, 4)
	v1 := New(4, 3, 2, 1)
	var sink Vectori
	for b.Loop() {
		sink = v0.Less(v1)
	}
	_ = sink
}

func BenchmarkNormalize3(b *testing.B) {
	v := New(0, -3, 7, -10)
	var sink Vector
	for b.Loop() {
		sink = v.Normalize3()
	}
	_ = sink
}

func BenchmarkTransform(b *testing.B) {
	m := MatrixTranslationScalar(1, 2, 3)
	v := XAxis()
	var sink Vector
	for b.Loop() {
		sink = v.Transform(m)
	}
	_ = sink
}
