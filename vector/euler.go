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
	"fmt"

	"github.com/chewxy/math32"
)

// EulerOrder packs an axis sequence into four fields:
//
//	bit 0:    frame, 0 static (extrinsic) or 1 rotating (intrinsic)
//	bit 1:    repeat, set when the last axis equals the first
//	bit 2:    parity, set when the axis sequence is odd
//	bits 3-4: the inner axis (0=X, 1=Y, 2=Z)
//
// Only the 24 named constants are valid.
type EulerOrder uint32

const (
	eulerAxisX = 0
	eulerAxisY = 1
	eulerAxisZ = 2

	eulerStatic   = 0
	eulerRotating = 1
	eulerNoRepeat = 0
	eulerRepeat   = 1
	eulerEven     = 0
	eulerOdd      = 1
)

// The 24 axis orders. The suffix s marks static axes, r rotating axes.
const (
	EulerXYZs EulerOrder = ((eulerAxisX<<1+eulerEven)<<1+eulerNoRepeat)<<1 + eulerStatic
	EulerXYXs EulerOrder = ((eulerAxisX<<1+eulerEven)<<1+eulerRepeat)<<1 + eulerStatic
	EulerXZYs EulerOrder = ((eulerAxisX<<1+eulerOdd)<<1+eulerNoRepeat)<<1 + eulerStatic
	EulerXZXs EulerOrder = ((eulerAxisX<<1+eulerOdd)<<1+eulerRepeat)<<1 + eulerStatic
	EulerYZXs EulerOrder = ((eulerAxisY<<1+eulerEven)<<1+eulerNoRepeat)<<1 + eulerStatic
	EulerYZYs EulerOrder = ((eulerAxisY<<1+eulerEven)<<1+eulerRepeat)<<1 + eulerStatic
	EulerYXZs EulerOrder = ((eulerAxisY<<1+eulerOdd)<<1+eulerNoRepeat)<<1 + eulerStatic
	EulerYXYs EulerOrder = ((eulerAxisY<<1+eulerOdd)<<1+eulerRepeat)<<1 + eulerStatic
	EulerZXYs EulerOrder = ((eulerAxisZ<<1+eulerEven)<<1+eulerNoRepeat)<<1 + eulerStatic
	EulerZXZs EulerOrder = ((eulerAxisZ<<1+eulerEven)<<1+eulerRepeat)<<1 + eulerStatic
	EulerZYXs EulerOrder = ((eulerAxisZ<<1+eulerOdd)<<1+eulerNoRepeat)<<1 + eulerStatic
	EulerZYZs EulerOrder = ((eulerAxisZ<<1+eulerOdd)<<1+eulerRepeat)<<1 + eulerStatic

	EulerZYXr EulerOrder = ((eulerAxisX<<1+eulerEven)<<1+eulerNoRepeat)<<1 + eulerRotating
	EulerXYXr EulerOrder = ((eulerAxisX<<1+eulerEven)<<1+eulerRepeat)<<1 + eulerRotating
	EulerYZXr EulerOrder = ((eulerAxisX<<1+eulerOdd)<<1+eulerNoRepeat)<<1 + eulerRotating
	EulerXZXr EulerOrder = ((eulerAxisX<<1+eulerOdd)<<1+eulerRepeat)<<1 + eulerRotating
	EulerXZYr EulerOrder = ((eulerAxisY<<1+eulerEven)<<1+eulerNoRepeat)<<1 + eulerRotating
	EulerYZYr EulerOrder = ((eulerAxisY<<1+eulerEven)<<1+eulerRepeat)<<1 + eulerRotating
	EulerZXYr EulerOrder = ((eulerAxisY<<1+eulerOdd)<<1+eulerNoRepeat)<<1 + eulerRotating
	EulerYXYr EulerOrder = ((eulerAxisY<<1+eulerOdd)<<1+eulerRepeat)<<1 + eulerRotating
	EulerYXZr EulerOrder = ((eulerAxisZ<<1+eulerEven)<<1+eulerNoRepeat)<<1 + eulerRotating
	EulerZXZr EulerOrder = ((eulerAxisZ<<1+eulerEven)<<1+eulerRepeat)<<1 + eulerRotating
	EulerXYZr EulerOrder = ((eulerAxisZ<<1+eulerOdd)<<1+eulerNoRepeat)<<1 + eulerRotating
	EulerZYZr EulerOrder = ((eulerAxisZ<<1+eulerOdd)<<1+eulerRepeat)<<1 + eulerRotating

	// EulerDefault is the order used when none is given.
	EulerDefault = EulerXYZs
)

var eulerOrderNames = map[EulerOrder]string{
	EulerXYZs: "XYZs", EulerXYXs: "XYXs", EulerXZYs: "XZYs", EulerXZXs: "XZXs",
	EulerYZXs: "YZXs", EulerYZYs: "YZYs", EulerYXZs: "YXZs", EulerYXYs: "YXYs",
	EulerZXYs: "ZXYs", EulerZXZs: "ZXZs", EulerZYXs: "ZYXs", EulerZYZs: "ZYZs",
	EulerZYXr: "ZYXr", EulerXYXr: "XYXr", EulerYZXr: "YZXr", EulerXZXr: "XZXr",
	EulerXZYr: "XZYr", EulerYZYr: "YZYr", EulerZXYr: "ZXYr", EulerYXYr: "YXYr",
	EulerYXZr: "YXZr", EulerZXZr: "ZXZr", EulerXYZr: "XYZr", EulerZYZr: "ZYZr",
}

// Valid reports whether o is one of the 24 named orders.
func (o EulerOrder) Valid() bool {
	_, ok := eulerOrderNames[o]
	return ok
}

// String returns the order name, e.g. "XYZs".
func (o EulerOrder) String() string {
	if name, ok := eulerOrderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("EulerOrder(%d)", uint32(o))
}

// Rotating reports whether the axes move with the body.
func (o EulerOrder) Rotating() bool { return o&1 == eulerRotating }

// Repeats reports whether the last axis equals the first.
func (o EulerOrder) Repeats() bool { return (o>>1)&1 == eulerRepeat }

// OddParity reports whether the axis permutation is odd.
func (o EulerOrder) OddParity() bool { return (o>>2)&1 == eulerOdd }

// Axes returns the inner axis i and the two axes j and k that complete the
// permutation, as lane indices.
func (o EulerOrder) Axes() (i, j, k int) {
	safe := [4]int{0, 1, 2, 0}
	next := [4]int{1, 2, 0, 1}
	n := int(o>>2) & 1
	i = safe[(o>>3)&3]
	j = next[(i+n)&3]
	k = next[(i+1-n)&3]
	return i, j, k
}

// EulerAngles is three rotation angles in radians with the order they are
// applied in.
type EulerAngles struct {
	angles Vector
	order  EulerOrder
}

// NewEulerAngles packs three angles and an order, which must be Valid.
func NewEulerAngles(rx, ry, rz float32, order EulerOrder) EulerAngles {
	return EulerAnglesFromVector(New(rx, ry, rz, 0), order)
}

// EulerAnglesFromVector takes the angles from the xyz lanes of v.
func EulerAnglesFromVector(v Vector, order EulerOrder) EulerAngles {
	if assertEnabled && !order.Valid() {
		panic(fmt.Sprintf("vector: invalid Euler order %d", uint32(order)))
	}
	return EulerAngles{angles: v.SetComponent(3, 0), order: order}
}

// Angles returns the angles in the xyz lanes, with w zero.
func (e EulerAngles) Angles() Vector { return e.angles }

// Order returns the axis order.
func (e EulerAngles) Order() EulerOrder { return e.order }

// Quaternion converts the angles with Shoemake's generalized algorithm. The
// result is normalized.
func (e EulerAngles) Quaternion() Quaternion {
	i, j, k := e.order.Axes()
	a := e.angles.Lanes()
	if e.order.Rotating() {
		a[0], a[2] = a[2], a[0]
	}
	odd := e.order.OddParity()
	if odd {
		a[1] = -a[1]
	}

	ti, tj, th := a[0]*0.5, a[1]*0.5, a[2]*0.5
	ci, cj, ch := math32.Cos(ti), math32.Cos(tj), math32.Cos(th)
	si, sj, sh := math32.Sin(ti), math32.Sin(tj), math32.Sin(th)
	cc, cs := ci*ch, ci*sh
	sc, ss := si*ch, si*sh

	var q [4]float32
	if e.order.Repeats() {
		q[i] = cj * (cs + sc)
		q[j] = sj * (cc + ss)
		q[k] = sj * (cs - sc)
		q[3] = cj * (cc - ss)
	} else {
		q[i] = cj*sc - sj*cs
		q[j] = cj*ss + sj*cc
		q[k] = cj*cs - sj*sc
		q[3] = cj*cc + sj*ss
	}
	if odd {
		q[j] = -q[j]
	}
	return Quaternion{knormalize(rload(&q))}
}

// Matrix returns the rotation matrix of the angles.
func (e EulerAngles) Matrix() Matrix {
	return MatrixFromQuaternion(e.Quaternion())
}
