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

//go:build amd64 && goexperiment.simd && !purego && amd64.v2

package vector

const currentBackend = BackendSSE4

const laneTrue int32 = -1

// dp4 and dp3 produce what DPPS does with masks 0xFF and 0x7F: the sum of
// all four (or the xyz) products in every lane. archsimd has no DPPS, so the
// products are folded with HADDPS.
func dp4(a, b reg) reg {
	p := a.Mul(b)
	p = p.AddPairs(p)
	return p.AddPairs(p)
}

func dp3(a, b reg) reg {
	p := a.Mul(b).SelectFromPair(0, 1, 2, 4, reg{})
	p = p.AddPairs(p)
	return p.AddPairs(p)
}

// blendW is BLENDPS with mask 8: xyz from a, w from b.
func blendW(a, b reg) reg { return a.SelectFromPair(0, 1, 2, 7, b) }

func ksplice(xyz, w reg) reg { return blendW(xyz, w) }

func kdot(a, b reg) reg { return dp4(a, b) }

func kdot3(a, b reg) reg { return dp3(a, b) }

func knormalize(v reg) reg { return rdiv(v, rsqrt(dp4(v, v))) }

// knormalize3 divides the xyz lanes only and keeps w from v.
func knormalize3(v reg) reg {
	return blendW(rdiv(v, rsqrt(dp3(v, v))), v)
}

func klength(v reg) reg { return rsqrt(dp4(v, v)) }

func klengthFast(v reg) reg { return klength(v) }

func klength3(v reg) reg { return rsqrt(dp3(v, v)) }

func klength3Fast(v reg) reg { return klength3(v) }

func kproject3(v, at reg) reg {
	n := knormalize3(at)
	return blendW(rmul(n, dp3(n, v)), v)
}

func kreflect3(v, at reg) reg {
	n := knormalize3(at)
	r := rsub(rmul(n, rmul(dp3(n, v), rsplat(2))), v)
	return blendW(r, v)
}
