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

//go:build amd64 && goexperiment.simd && !purego && !amd64.v2 && sse3

package vector

const currentBackend = BackendSSE3

const laneTrue int32 = -1

// kdot is two HADDPS folds; with both operands equal every lane of the
// second fold holds the full sum.
func kdot(a, b reg) reg {
	r := a.Mul(b)
	r = r.AddPairs(r)
	return r.AddPairs(r)
}

func kdot3(a, b reg) reg {
	r := a.Mul(b).SelectFromPair(0, 1, 2, 4, reg{})
	r = r.AddPairs(r)
	return r.AddPairs(r)
}
