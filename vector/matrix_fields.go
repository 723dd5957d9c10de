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

// Named element accessors. Mij is row i, column j.

func (m Matrix) M00() float32 { return rlane(m.row[0].r, 0) }

func (m Matrix) M01() float32 { return rlane(m.row[0].r, 1) }

func (m Matrix) M02() float32 { return rlane(m.row[0].r, 2) }

func (m Matrix) M03() float32 { return rlane(m.row[0].r, 3) }

func (m Matrix) M10() float32 { return rlane(m.row[1].r, 0) }

func (m Matrix) M11() float32 { return rlane(m.row[1].r, 1) }

func (m Matrix) M12() float32 { return rlane(m.row[1].r, 2) }

func (m Matrix) M13() float32 { return rlane(m.row[1].r, 3) }

func (m Matrix) M20() float32 { return rlane(m.row[2].r, 0) }

func (m Matrix) M21() float32 { return rlane(m.row[2].r, 1) }

func (m Matrix) M22() float32 { return rlane(m.row[2].r, 2) }

func (m Matrix) M23() float32 { return rlane(m.row[2].r, 3) }

func (m Matrix) M30() float32 { return rlane(m.row[3].r, 0) }

func (m Matrix) M31() float32 { return rlane(m.row[3].r, 1) }

func (m Matrix) M32() float32 { return rlane(m.row[3].r, 2) }

func (m Matrix) M33() float32 { return rlane(m.row[3].r, 3) }
