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

//go:build amd64 && goexperiment.simd && !purego && !amd64.v2

package vector

// Kernels shared by the SSE2 and SSE3 builds, which differ only in how the
// horizontal sums inside kdot and kdot3 are formed.

func ksplice(xyz, w reg) reg { return spliceBase(xyz, w) }

func knormalize(v reg) reg {
	return rmul(v, rdiv(rsplat(1), rsqrt(kdot(v, v))))
}

func knormalize3(v reg) reg {
	return ksplice(rmul(v, rdiv(rsplat(1), rsqrt(kdot3(v, v)))), v)
}

func klength(v reg) reg { return lengthBase(v) }

func klengthFast(v reg) reg { return lengthBase(v) }

func klength3(v reg) reg { return length3Base(v) }

func klength3Fast(v reg) reg { return length3Base(v) }

func kproject3(v, at reg) reg { return project3Base(v, at) }

func kreflect3(v, at reg) reg { return reflect3Base(v, at) }
