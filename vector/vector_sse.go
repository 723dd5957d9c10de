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

import (
	"math"
	"simd/archsimd"
)

// Register primitives shared by the SSE2, SSE3 and SSE4 builds. archsimd
// encodes 128-bit operations with VEX prefixes, see HostSupported.

type reg = archsimd.Float32x4

// rset inserts the lanes one at a time with VPINSRD.
func rset(x, y, z, w float32) reg {
	var u archsimd.Uint32x4
	return u.SetElem(0, math.Float32bits(x)).
		SetElem(1, math.Float32bits(y)).
		SetElem(2, math.Float32bits(z)).
		SetElem(3, math.Float32bits(w)).
		AsFloat32x4()
}

// rsplat inserts f into lane 0 and spreads it with SHUFPS. BroadcastFloat32x4
// would need AVX2 for the register form of VBROADCASTSS.
func rsplat(f float32) reg {
	var u archsimd.Uint32x4
	v := u.SetElem(0, math.Float32bits(f)).AsFloat32x4()
	return v.SelectFromPair(0, 0, 4, 4, v)
}

func rload(p *[4]float32) reg { return archsimd.LoadFloat32x4(p) }

func rloadSlice(s []float32) reg { return archsimd.LoadFloat32x4Slice(s) }

func rstore(r reg, p *[4]float32) { r.Store(p) }

func rstoreSlice(r reg, s []float32) { r.StoreSlice(s) }

func rlanes(r reg) [4]float32 {
	var a [4]float32
	r.Store(&a)
	return a
}

func rlane(r reg, c int) float32 {
	u := r.AsUint32x4()
	switch c & 3 {
	case 0:
		return math.Float32frombits(u.GetElem(0))
	case 1:
		return math.Float32frombits(u.GetElem(1))
	case 2:
		return math.Float32frombits(u.GetElem(2))
	default:
		return math.Float32frombits(u.GetElem(3))
	}
}

func rwith(r reg, c int, f float32) reg {
	u, b := r.AsUint32x4(), math.Float32bits(f)
	switch c & 3 {
	case 0:
		u = u.SetElem(0, b)
	case 1:
		u = u.SetElem(1, b)
	case 2:
		u = u.SetElem(2, b)
	default:
		u = u.SetElem(3, b)
	}
	return u.AsFloat32x4()
}

func radd(a, b reg) reg { return a.Add(b) }

func rsub(a, b reg) reg { return a.Sub(b) }

func rmul(a, b reg) reg { return a.Mul(b) }

func rdiv(a, b reg) reg { return a.Div(b) }

func rneg(a reg) reg { return reg{}.Sub(a) }

// rmuladd is unfused; FMA is not part of any SSE level.
func rmuladd(a, b, c reg) reg { return a.Mul(b).Add(c) }

func rsqrt(a reg) reg { return a.Sqrt() }

func rabs(a reg) reg { return a.Max(rneg(a)) }

func rmin(a, b reg) reg { return a.Min(b) }

func rmax(a, b reg) reg { return a.Max(b) }

// rshuffle and rshuffle2 are SHUFPS: a Mask holds the same four 2-bit
// selectors as the instruction's immediate, lanes 0 and 1 taken from the
// first operand and lanes 2 and 3 from the second.
func rshuffle(a reg, m Mask) reg {
	return a.SelectFromPair(uint8(m)&3, uint8(m>>2)&3, 4|uint8(m>>4)&3, 4|uint8(m>>6)&3, a)
}

func rshuffle2(a, b reg, m Mask) reg {
	return a.SelectFromPair(uint8(m)&3, uint8(m>>2)&3, 4|uint8(m>>4)&3, 4|uint8(m>>6)&3, b)
}

// rcmp is CMPPS. The compare mask selects all-ones lanes, so a true lane
// reads as -1.
func rcmp(a, b reg, op cmpOp) Vectori {
	var m archsimd.Mask32x4
	switch op {
	case cmpEqual:
		m = a.Equal(b)
	case cmpLessEqual:
		m = a.LessEqual(b)
	case cmpLess:
		m = a.Less(b)
	case cmpGreaterEqual:
		m = a.GreaterEqual(b)
	default:
		m = a.Greater(b)
	}
	ones := [4]int32{laneTrue, laneTrue, laneTrue, laneTrue}
	var l [4]int32
	archsimd.LoadInt32x4(&ones).Merge(archsimd.Int32x4{}, m).Store(&l)
	return Vectori{l[0], l[1], l[2], l[3]}
}

func kcross3(a, b reg) reg { return cross3Base(a, b) }

func klerp(from, to reg, t float32) reg { return lerpBase(from, to, t) }

func kproject(v, at reg) reg { return projectBase(v, at) }

func kreflect(v, at reg) reg { return reflectBase(v, at) }

func krotate(v reg, m *Matrix) reg { return rotateBase(v, m) }

func ktransform(v reg, m *Matrix) reg { return transformBase(v, m) }
