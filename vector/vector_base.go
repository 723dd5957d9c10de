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

// Shared kernels, written only in terms of the register primitives every
// backend provides (rset, radd, rshuffle, ...) and the overridable kernels
// (kdot, knormalize, ksplice, ...). A backend that has nothing better to
// offer for an operation delegates its k-function to the base version here.

type cmpOp uint8

const (
	cmpEqual cmpOp = iota
	cmpLessEqual
	cmpLess
	cmpGreaterEqual
	cmpGreater
)

func cmpLane(a, b float32, op cmpOp) int32 {
	var ok bool
	switch op {
	case cmpEqual:
		ok = a == b
	case cmpLessEqual:
		ok = a <= b
	case cmpLess:
		ok = a < b
	case cmpGreaterEqual:
		ok = a >= b
	case cmpGreater:
		ok = a > b
	}
	if ok {
		return laneTrue
	}
	return 0
}

func cmpBase(a, b reg, op cmpOp) Vectori {
	la, lb := rlanes(a), rlanes(b)
	return Vectori{
		cmpLane(la[0], lb[0], op),
		cmpLane(la[1], lb[1], op),
		cmpLane(la[2], lb[2], op),
		cmpLane(la[3], lb[3], op),
	}
}

func dotBase(a, b reg) reg {
	l := rlanes(rmul(a, b))
	return rsplat((l[0] + l[1]) + (l[2] + l[3]))
}

func dot3Base(a, b reg) reg {
	l := rlanes(rmul(a, b))
	return rsplat(l[0] + l[1] + l[2])
}

func cross3Base(a, b reg) reg {
	ayzx := rshuffle(a, MaskYZXW)
	byzx := rshuffle(b, MaskYZXW)
	azxy := rshuffle(a, MaskZXYW)
	bzxy := rshuffle(b, MaskZXYW)
	return rsub(rmul(ayzx, bzxy), rmul(azxy, byzx))
}

// spliceBase returns the xyz lanes of xyz with the w lane of w.
func spliceBase(xyz, w reg) reg {
	s := rshuffle2(xyz, w, MaskZZWW)
	return rshuffle2(xyz, s, MaskXYXW)
}

func normalizeBase(v reg) reg {
	return rdiv(v, rsqrt(kdot(v, v)))
}

func normalize3Base(v reg) reg {
	return ksplice(rdiv(v, rsqrt(kdot3(v, v))), v)
}

func lengthBase(v reg) reg {
	return rsqrt(kdot(v, v))
}

func length3Base(v reg) reg {
	return rsqrt(kdot3(v, v))
}

func lerpBase(from, to reg, t float32) reg {
	s := rsplat(t)
	return radd(rmul(s, to), rsub(from, rmul(s, from)))
}

func projectBase(v, at reg) reg {
	n := knormalize(at)
	return rmul(n, kdot(n, v))
}

func project3Base(v, at reg) reg {
	n := knormalize3(at)
	return ksplice(rmul(n, kdot3(n, v)), v)
}

func reflectBase(v, at reg) reg {
	n := knormalize(at)
	return rsub(rmul(n, rmul(kdot(n, v), rsplat(2))), v)
}

func reflect3Base(v, at reg) reg {
	n := knormalize3(at)
	r := rsub(rmul(n, rmul(kdot3(n, v), rsplat(2))), v)
	return ksplice(r, v)
}

func rotateBase(v reg, m *Matrix) reg {
	r := rmul(m.row[0].r, rshuffle(v, MaskXXXX))
	r = rmuladd(m.row[1].r, rshuffle(v, MaskYYYY), r)
	r = rmuladd(m.row[2].r, rshuffle(v, MaskZZZZ), r)
	return ksplice(r, v)
}

func transformBase(v reg, m *Matrix) reg {
	r := rmul(m.row[0].r, rshuffle(v, MaskXXXX))
	r = rmuladd(m.row[1].r, rshuffle(v, MaskYYYY), r)
	r = rmuladd(m.row[2].r, rshuffle(v, MaskZZZZ), r)
	return rmuladd(m.row[3].r, rshuffle(v, MaskWWWW), r)
}

// shuffleLanes applies m to l. Backends without a native permute go through
// memory with it.
func shuffleLanes(l [4]float32, m Mask) [4]float32 {
	return [4]float32{l[m&3], l[(m>>2)&3], l[(m>>4)&3], l[(m>>6)&3]}
}

// shuffle2Lanes applies m with x and y taken from a and z and w from b.
func shuffle2Lanes(a, b [4]float32, m Mask) [4]float32 {
	return [4]float32{a[m&3], a[(m>>2)&3], b[(m>>4)&3], b[(m>>6)&3]}
}
