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
	"strings"
)

// String renders v as "(x, y, z, w)" with six decimals per lane.
func (v Vector) String() string {
	l := rlanes(v.r)
	return fmt.Sprintf("(%.6f, %.6f, %.6f, %.6f)", l[0], l[1], l[2], l[3])
}

// String renders q like a Vector.
func (q Quaternion) String() string {
	return Vector(q).String()
}

// String renders v as "(x, y, z, w)".
func (v Vectori) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", v.x, v.y, v.z, v.w)
}

// String renders the four rows on separate lines.
func (m Matrix) String() string {
	var sb strings.Builder
	for i := range m.row {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(m.row[i].String())
	}
	return sb.String()
}

// String renders the angles followed by the order name.
func (e EulerAngles) String() string {
	l := rlanes(e.angles.r)
	return fmt.Sprintf("(%.6f, %.6f, %.6f) %s", l[0], l[1], l[2], e.order)
}

// String renders the real and dual parts.
func (dq DualQuaternion) String() string {
	return dq.q[0].String() + " + ε" + dq.q[1].String()
}

// String renders rotation, translation and scale.
func (t Transform) String() string {
	l := rlanes(t.translation.r)
	return fmt.Sprintf("rotation %s translation (%.6f, %.6f, %.6f) scale %.6f",
		t.rotation, l[0], l[1], l[2], l[3])
}
