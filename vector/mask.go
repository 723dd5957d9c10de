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

//go:generate go run ../cmd/maskgen --output mask_table.go --package vector

// Mask is a packed shuffle selector. Bits 0-1 pick the source lane for output
// x, bits 2-3 for y, bits 4-5 for z and bits 6-7 for w, so
// Mask = (w<<6)|(z<<4)|(y<<2)|x.
//
// The named constants in mask_table.go cover all 256 combinations and are the
// intended way to spell a mask. Kernels take the mask by value and inline, so
// a constant mask folds to a fixed permutation.
type Mask uint8

// MakeMask builds a mask from four source lane indices in 0..3.
func MakeMask(x, y, z, w int) Mask {
	return Mask((w&3)<<6 | (z&3)<<4 | (y&3)<<2 | x&3)
}

// Lanes decodes the source lane for each output lane.
func (m Mask) Lanes() [4]int {
	return [4]int{int(m & 3), int(m>>2) & 3, int(m>>4) & 3, int(m>>6) & 3}
}

// String returns the constant name without its prefix, e.g. "XYZW".
func (m Mask) String() string {
	const names = "XYZW"
	l := m.Lanes()
	return string([]byte{names[l[0]], names[l[1]], names[l[2]], names[l[3]]})
}
