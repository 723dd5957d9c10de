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

import "github.com/ajroetker/go-vecmath/vector/internal/f32x4"

// NEON kernels are written against the f32x4 register model: pairwise folds
// for sums, zips for the transpose and lane-broadcast multiply-accumulate for
// matrix products. Today f32x4 is plain Go, so this selects the kernel shape
// and the -1 true lane rather than the vector instructions themselves.

const currentBackend = BackendNEON

const laneTrue int32 = -1

type reg = f32x4.Float32x4

func rset(x, y, z, w float32) reg { return reg{x, y, z, w} }

func rsplat(f float32) reg { return f32x4.Broadcast(f) }

func rload(p *[4]float32) reg { return f32x4.Load(p) }

func rloadSlice(s []float32) reg { return f32x4.LoadSlice(s) }

func rstore(r reg, p *[4]float32) { r.Store(p) }

func rstoreSlice(r reg, s []float32) { r.StoreSlice(s) }

func rlanes(r reg) [4]float32 { return r }

func rlane(r reg, c int) float32 { return r.Get(c) }

func rwith(r reg, c int, f float32) reg { return r.With(c, f) }

func radd(a, b reg) reg { return a.Add(b) }

func rsub(a, b reg) reg { return a.Sub(b) }

func rmul(a, b reg) reg { return a.Mul(b) }

func rdiv(a, b reg) reg { return a.Div(b) }

func rneg(a reg) reg { return a.Neg() }

func rmuladd(a, b, c reg) reg { return a.MulAdd(b, c) }

func rsqrt(a reg) reg { return a.Sqrt() }

func rabs(a reg) reg { return a.Abs() }

func rmin(a, b reg) reg { return a.Min(b) }

func rmax(a, b reg) reg { return a.Max(b) }

func rshuffle(a reg, m Mask) reg { return shuffleLanes(a, m) }

func rshuffle2(a, b reg, m Mask) reg { return shuffle2Lanes(a, b, m) }

func rcmp(a, b reg, op cmpOp) Vectori { return cmpBase(a, b, op) }

// ksplice copies lane 3 of w into xyz, like VCOPYQ_LANEQ_F32.
func ksplice(xyz, w reg) reg { return xyz.With(3, w.Get(3)) }

func kdot(a, b reg) reg {
	p := a.Mul(b)
	p = p.PairwiseAdd(p)
	return p.PairwiseAdd(p)
}

func kdot3(a, b reg) reg {
	p := a.Mul(b)
	s := p.PairwiseAdd(p)
	return f32x4.Broadcast(s.Get(0) + p.Get(2))
}

func kcross3(a, b reg) reg { return cross3Base(a, b) }

func knormalize(v reg) reg { return v.Div(kdot(v, v).Sqrt()) }

func knormalize3(v reg) reg { return ksplice(v.Div(kdot3(v, v).Sqrt()), v) }

func klength(v reg) reg { return kdot(v, v).Sqrt() }

func klengthFast(v reg) reg { return klength(v) }

func klength3(v reg) reg { return kdot3(v, v).Sqrt() }

func klength3Fast(v reg) reg { return klength3(v) }

// klerp is from + (to-from)*t as a single multiply-accumulate.
func klerp(from, to reg, t float32) reg {
	return to.Sub(from).MulAdd(f32x4.Broadcast(t), from)
}

func kproject(v, at reg) reg { return projectBase(v, at) }

func kproject3(v, at reg) reg { return project3Base(v, at) }

func kreflect(v, at reg) reg { return reflectBase(v, at) }

func kreflect3(v, at reg) reg { return reflect3Base(v, at) }

func krotate(v reg, m *Matrix) reg {
	r := m.row[0].r.MulLane(v, 0)
	r = m.row[1].r.MulAdd(v.DupLane(1), r)
	r = m.row[2].r.MulAdd(v.DupLane(2), r)
	return ksplice(r, v)
}

func ktransform(v reg, m *Matrix) reg {
	r := m.row[0].r.MulLane(v, 0)
	r = m.row[1].r.MulAdd(v.DupLane(1), r)
	r = m.row[2].r.MulAdd(v.DupLane(2), r)
	return m.row[3].r.MulAdd(v.DupLane(3), r)
}
