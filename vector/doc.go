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

// Package vector provides 4-lane float32 vectors, 4x4 row-major matrices and
// quaternions backed by one of several numeric kernel sets.
//
// Exactly one kernel set is compiled into a binary. The choice is made by
// build constraints, never at run time:
//
//	GOEXPERIMENT=simd GOAMD64=v2 go build          // SSE4
//	GOEXPERIMENT=simd GOAMD64=v1 go build -tags sse3  // SSE3
//	GOEXPERIMENT=simd GOAMD64=v1 go build          // SSE2
//	GOARCH=arm64 go build                          // NEON
//	go build -tags purego                          // Fallback
//
// Every kernel set implements the same contract. Vectors are row vectors, so
// a vector is transformed as v*M and a translation lives in row 3 of a
// matrix. Dot products and lengths are broadcast to all four lanes so the
// result can feed further vector arithmetic without a scalar round trip.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-vecmath/vector"
//
//	q := vector.NewEulerAngles(0, 0, math32.Pi/2, vector.EulerXYZs).Quaternion()
//	m := vector.MatrixFromQuaternion(q).Mul(vector.MatrixTranslationScalar(1, 2, 3))
//	p := vector.XAxis().Transform(m) // (1, 3, 3, 1)
//
// All values are immutable and every operation is safe for concurrent use.
package vector
