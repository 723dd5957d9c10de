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

import "github.com/chewxy/math32"

func quaternionConjugateBase(q reg) reg {
	return rmul(q, rset(-1, -1, -1, 1))
}

func quaternionInverseBase(q reg) reg {
	return rdiv(q, rmul(kdot(q, q), rset(-1, -1, -1, 1)))
}

func quaternionMulBase(q0, q1 reg) reg {
	a, b := rlanes(q0), rlanes(q1)
	return rset(
		b[3]*a[0]+b[0]*a[3]+b[1]*a[2]-b[2]*a[1],
		b[3]*a[1]-b[0]*a[2]+b[1]*a[3]+b[2]*a[0],
		b[3]*a[2]+b[0]*a[1]-b[1]*a[0]+b[2]*a[3],
		b[3]*a[3]-b[0]*a[0]-b[1]*a[1]-b[2]*a[2],
	)
}

// quaternionMulShuffleBase is the Hamilton product written with lane
// broadcasts and sign masks, for backends with cheap shuffles.
func quaternionMulShuffleBase(q0, q1 reg) reg {
	w := rmul(rshuffle(q1, MaskWWWW), q0)
	x := rmul(rmul(rshuffle(q1, MaskXXXX), rshuffle(q0, MaskWZYX)), rset(1, -1, 1, -1))
	y := rmul(rmul(rshuffle(q1, MaskYYYY), rshuffle(q0, MaskZWXY)), rset(1, 1, -1, -1))
	z := rmul(rmul(rshuffle(q1, MaskZZZZ), rshuffle(q0, MaskYXWZ)), rset(-1, 1, 1, -1))
	return radd(radd(w, x), radd(y, z))
}

func quaternionSlerpBase(q0, q1 reg, t float32) reg {
	cos := rlane(kdot(q0, q1), 0)
	qd := q1
	if cos < 0 {
		qd = rneg(q1)
		cos = rlane(kdot(q0, qd), 0)
	}

	var angle float32
	if cos > -1 {
		if cos >= 1 {
			return qd
		}
		angle = math32.Acos(cos)
	} else {
		angle = math32.Pi
	}

	s := math32.Sin(angle)
	if angle == 0 || s == 0 {
		return qd
	}
	c0 := math32.Sin((1-t)*angle) / s
	c1 := math32.Sin(t*angle) / s
	return radd(rmul(q0, rsplat(c0)), rmul(qd, rsplat(c1)))
}

func quaternionRotateBase(q, v reg) reg {
	qw := rshuffle(q, MaskWWWW)
	v1 := rmuladd(v, qw, kcross3(q, v))
	v2 := kcross3(v1, q)
	d := kdot3(q, v)
	r := rsub(rmuladd(v1, qw, rmul(q, d)), v2)
	return ksplice(r, v)
}

// quaternionFromMatrixBase is Shoemake's trace method.
func quaternionFromMatrixBase(m *Matrix) reg {
	f := m.Frows()
	trace := f[0][0] + f[1][1] + f[2][2]

	if trace > 0 {
		root := math32.Sqrt(trace + 1)
		w := 0.5 * root
		root = 0.5 / root
		return knormalize(rset(
			(f[1][2]-f[2][1])*root,
			(f[2][0]-f[0][2])*root,
			(f[0][1]-f[1][0])*root,
			w,
		))
	}

	next := [3]int{1, 2, 0}
	i := 0
	if f[1][1] > f[0][0] {
		i = 1
	}
	if f[2][2] > f[i][i] {
		i = 2
	}
	j := next[i]
	k := next[j]

	var q [4]float32
	root := math32.Sqrt(f[i][i] - f[j][j] - f[k][k] + 1)
	q[i] = 0.5 * root
	root = 0.5 / root
	q[j] = (f[i][j] + f[j][i]) * root
	q[k] = (f[i][k] + f[k][i]) * root
	q[3] = (f[j][k] - f[k][j]) * root
	return knormalize(rload(&q))
}

func quaternionRotatingVectorBase(from, to reg) reg {
	axis := kcross3(from, to)
	lf := rlane(kdot3(from, from), 0)
	lt := rlane(kdot3(to, to), 0)
	w := math32.Sqrt(lf*lt) + rlane(kdot3(from, to), 0)
	return knormalize(rwith(axis, 3, w))
}
