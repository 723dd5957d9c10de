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
	"unsafe"
)

// Alignment is the byte alignment required by the Aligned loaders and stores.
const Alignment = 16

func assertAligned(p unsafe.Pointer) {
	if assertEnabled && uintptr(p)%Alignment != 0 {
		panic(fmt.Sprintf("vector: pointer %p is not %d-byte aligned", p, Alignment))
	}
}

func assertComponent(c int) {
	if assertEnabled && uint(c) > 3 {
		panic(fmt.Sprintf("vector: component index %d out of range [0,3]", c))
	}
}

// AlignedFloats returns a zeroed slice of n float32 whose first element is
// 16-byte aligned, suitable for AlignedSlice and MatrixAligned.
func AlignedFloats(n int) []float32 {
	const pad = Alignment / 4
	buf := make([]float32, n+pad)
	off := 0
	if rem := uintptr(unsafe.Pointer(&buf[0])) % Alignment; rem != 0 {
		off = int((Alignment - rem) / 4)
	}
	return buf[off : off+n : off+n]
}

// IsAligned reports whether the first element of s is 16-byte aligned.
func IsAligned(s []float32) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&s[0]))%Alignment == 0
}
