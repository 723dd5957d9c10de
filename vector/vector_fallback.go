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

//go:build purego || !(amd64 || arm64) || (amd64 && !goexperiment.simd)

package vector

import "github.com/chewxy/math32"

// Portable scalar kernels. Lanes are plain struct fields, so every operation
// is written out per component and the compiler keeps them in registers.

const currentBackend = BackendFallback

const laneTrue int32 = 1

type reg struct {
	x, y, z, w float32
}

func rset(x, y, z, w float32) reg { return reg{x, y, z, w} }

func rsplat(f float32) reg { return reg{f, f, f, f} }

func rload(p *[4]float32) reg { return reg{p[0], p[1], p[2], p[3]} }

// rloadSlice reads one lane at a time.
func rloadSlice(s []float32) reg {
	_ = s[3]
	return reg{s[0], s[1], s[2], s[3]}
}

func rstore(r reg, p *[4]float32) { p[0], p[1], p[2], p[3] = r.x, r.y, r.z, r.w }

func rstoreSlice(r reg, s []float32) {
	_ = s[3]
	s[0], s[1], s[2], s[3] = r.x, r.y, r.z, r.w
}

func rlanes(r reg) [4]float32 { return [4]float32{r.x, r.y, r.z, r.w} }

func rlane(r reg, c int) float32 {
	switch c {
	case 0:
		return r.x
	case 1:
		return r.y
	case 2:
		return r.z
	default:
		return r.w
	}
}

func rwith(r reg, c int, f float32) reg {
	switch c {
	case 0:
		r.x = f
	case 1:
		r.y = f
	case 2:
		r.z = f
	default:
		r.w = f
	}
	return r
}

func radd(a, b reg) reg { return reg{a.x + b.x, a.y + b.y, a.z + b.z, a.w + b.w} }

func rsub(a, b reg) reg { return reg{a.x - b.x, a.y - b.y, a.z - b.z, a.w - b.w} }

func rmul(a, b reg) reg { return reg{a.x * b.x, a.y * b.y, a.z * b.z, a.w * b.w} }

func rdiv(a, b reg) reg { return reg{a.x / b.x, a.y / b.y, a.z / b.z, a.w / b.w} }

func rneg(a reg) reg { return reg{-a.x, -a.y, -a.z, -a.w} }

func rmuladd(a, b, c reg) reg {
	return reg{a.x*b.x + c.x, a.y*b.y + c.y, a.z*b.z + c.z, a.w*b.w + c.w}
}

func rsqrt(a reg) reg {
	return reg{math32.Sqrt(a.x), math32.Sqrt(a.y), math32.Sqrt(a.z), math32.Sqrt(a.w)}
}

func rabs(a reg) reg {
	return reg{math32.Abs(a.x), math32.Abs(a.y), math32.Abs(a.z), math32.Abs(a.w)}
}

func rmin(a, b reg) reg { return reg{min(a.x, b.x), min(a.y, b.y), min(a.z, b.z), min(a.w, b.w)} }

func rmax(a, b reg) reg { return reg{max(a.x, b.x), max(a.y, b.y), max(a.z, b.z), max(a.w, b.w)} }

func rshuffle(a reg, m Mask) reg {
	l := shuffleLanes(rlanes(a), m)
	return reg{l[0], l[1], l[2], l[3]}
}

func rcmp(a, b reg, op cmpOp) Vectori { return cmpBase(a, b, op) }

func rshuffle2(a, b reg, m Mask) reg {
	l := shuffle2Lanes(rlanes(a), rlanes(b), m)
	return reg{l[0], l[1], l[2], l[3]}
}

func ksplice(xyz, w reg) reg { return reg{xyz.x, xyz.y, xyz.z, w.w} }

func kdot(a, b reg) reg {
	return rsplat(a.x*b.x + a.y*b.y + a.z*b.z + a.w*b.w)
}

func kdot3(a, b reg) reg {
	return rsplat(a.x*b.x + a.y*b.y + a.z*b.z)
}

func kcross3(a, b reg) reg {
	return reg{a.y*b.z - a.z*b.y, a.z*b.x - a.x*b.z, a.x*b.y - a.y*b.x, 1}
}

func knormalize(v reg) reg {
	inv := 1 / math32.Sqrt(v.x*v.x+v.y*v.y+v.z*v.z+v.w*v.w)
	return reg{v.x * inv, v.y * inv, v.z * inv, v.w * inv}
}

func knormalize3(v reg) reg {
	inv := 1 / math32.Sqrt(v.x*v.x+v.y*v.y+v.z*v.z)
	return reg{v.x * inv, v.y * inv, v.z * inv, v.w}
}

func klength(v reg) reg { return rsplat(math32.Sqrt(v.x*v.x + v.y*v.y + v.z*v.z + v.w*v.w)) }

func klengthFast(v reg) reg { return klength(v) }

func klength3(v reg) reg { return rsplat(math32.Sqrt(v.x*v.x + v.y*v.y + v.z*v.z)) }

func klength3Fast(v reg) reg { return klength3(v) }

func klerp(from, to reg, t float32) reg {
	return reg{
		from.x + (to.x-from.x)*t,
		from.y + (to.y-from.y)*t,
		from.z + (to.z-from.z)*t,
		from.w + (to.w-from.w)*t,
	}
}

func kproject(v, at reg) reg { return projectBase(v, at) }

func kproject3(v, at reg) reg { return project3Base(v, at) }

func kreflect(v, at reg) reg { return reflectBase(v, at) }

func kreflect3(v, at reg) reg { return reflect3Base(v, at) }

func krotate(v reg, m *Matrix) reg {
	f := m.Frows()
	return reg{
		f[0][0]*v.x + f[1][0]*v.y + f[2][0]*v.z,
		f[0][1]*v.x + f[1][1]*v.y + f[2][1]*v.z,
		f[0][2]*v.x + f[1][2]*v.y + f[2][2]*v.z,
		v.w,
	}
}

func ktransform(v reg, m *Matrix) reg {
	f := m.Frows()
	return reg{
		f[0][0]*v.x + f[1][0]*v.y + f[2][0]*v.z + f[3][0]*v.w,
		f[0][1]*v.x + f[1][1]*v.y + f[2][1]*v.z + f[3][1]*v.w,
		f[0][2]*v.x + f[1][2]*v.y + f[2][2]*v.z + f[3][2]*v.w,
		f[0][3]*v.x + f[1][3]*v.y + f[2][3]*v.z + f[3][3]*v.w,
	}
}

func kmatrixTranspose(m *Matrix) Matrix { return matrixTransposeBase(m) }

func kmatrixMul(m0, m1 *Matrix) Matrix { return matrixMulBase(m0, m1) }

func kquatConjugate(q reg) reg { return reg{-q.x, -q.y, -q.z, q.w} }

// kquatInverse scales xyz by -1/|q|² and w by 1/|q|².
func kquatInverse(q reg) reg {
	inv := 1 / (q.x*q.x + q.y*q.y + q.z*q.z + q.w*q.w)
	return reg{-q.x * inv, -q.y * inv, -q.z * inv, q.w * inv}
}

func kquatMul(q0, q1 reg) reg { return quaternionMulBase(q0, q1) }
