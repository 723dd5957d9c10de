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
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// almostEqualTolerance bounds the summed absolute lane difference accepted
// by the geometric tests. It is far looser than EqualULPs and covers
// accumulated rounding through trigonometry and chained products.
const almostEqualTolerance = 0.0075

var approxLanes = cmpopts.EquateApprox(0, 1e-5)

func laneDistance(a, b [4]float32) float32 {
	var d float32
	for i := range a {
		d += math32.Abs(a[i] - b[i])
	}
	return d
}

func almostEqual(a, b Vector) bool {
	return laneDistance(a.Lanes(), b.Lanes()) <= almostEqualTolerance
}

func almostEqualQuat(a, b Quaternion) bool {
	return laneDistance(a.Lanes(), b.Lanes()) <= almostEqualTolerance
}

// almostEqualRotation accepts q and -q, which encode the same rotation.
func almostEqualRotation(a, b Quaternion) bool {
	return almostEqualQuat(a, b) || almostEqualQuat(a, b.Neg())
}

func almostEqualMatrix(a, b Matrix) bool {
	for i := range 4 {
		if !almostEqual(a.Row(i), b.Row(i)) {
			return false
		}
	}
	return true
}

func xyz(v Vector) [3]float32 {
	l := v.Lanes()
	return [3]float32{l[0], l[1], l[2]}
}

func checkLanes(t *testing.T, name string, got Vector, want [4]float32) {
	t.Helper()
	if diff := cmp.Diff(want, got.Lanes(), approxLanes); diff != "" {
		t.Errorf("%s: got %v, want %v (-want +got):\n%s", name, got, want, diff)
	}
}

func quatAxisX(a float32) Quaternion {
	return QuaternionNew(math32.Sin(a/2), 0, 0, math32.Cos(a/2))
}

func quatAxisY(a float32) Quaternion {
	return QuaternionNew(0, math32.Sin(a/2), 0, math32.Cos(a/2))
}

func quatAxisZ(a float32) Quaternion {
	return QuaternionNew(0, 0, math32.Sin(a/2), math32.Cos(a/2))
}
