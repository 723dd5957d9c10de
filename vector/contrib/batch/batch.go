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

// Package batch applies vector operations to slices of vectors.
//
// Reductions over many vectors (summed dot products, norms, distances) are
// done on the flattened lanes with github.com/viterin/vek/vek32, which picks
// its own AVX2/NEON kernels at run time. Per-vector geometry (rotate,
// transform, normalize) goes through the vector package and therefore uses
// whichever backend that package was compiled with.
package batch

import (
	"errors"
	"fmt"
	"math"

	"github.com/ajroetker/go-vecmath/vector"
	"github.com/viterin/vek/vek32"
)

var (
	// ErrLengthMismatch is returned when two inputs must have the same
	// number of vectors, or a flat slice is not a whole number of vectors.
	ErrLengthMismatch = errors.New("batch: length mismatch")

	// ErrEmpty is returned by reductions that have no value for zero vectors.
	ErrEmpty = errors.New("batch: no vectors")
)

// Lanes is the number of float32 values per vector in a flat slice.
const Lanes = 4

// Flatten copies the lanes of vs into one slice, vector after vector.
func Flatten(vs []vector.Vector) []float32 {
	flat := make([]float32, len(vs)*Lanes)
	for i, v := range vs {
		v.StoreUnaligned(flat[i*Lanes:])
	}
	return flat
}

// Unflatten is the inverse of Flatten.
func Unflatten(flat []float32) ([]vector.Vector, error) {
	if len(flat)%Lanes != 0 {
		return nil, fmt.Errorf("%w: %d floats is not a multiple of %d", ErrLengthMismatch, len(flat), Lanes)
	}
	vs := make([]vector.Vector, len(flat)/Lanes)
	for i := range vs {
		vs[i] = vector.Unaligned(flat[i*Lanes:])
	}
	return vs, nil
}

func flattenPair(a, b []vector.Vector) ([]float32, []float32, error) {
	if len(a) != len(b) {
		return nil, nil, fmt.Errorf("%w: %d and %d vectors", ErrLengthMismatch, len(a), len(b))
	}
	return Flatten(a), Flatten(b), nil
}

// Dot returns the sum of the four-lane dot products of a[i] and b[i].
func Dot(a, b []vector.Vector) (float32, error) {
	fa, fb, err := flattenPair(a, b)
	if err != nil {
		return 0, err
	}
	if len(fa) == 0 {
		return 0, nil
	}
	return vek32.Dot(fa, fb), nil
}

// Norm returns the Euclidean norm of all lanes of vs taken together.
func Norm(vs []vector.Vector) float32 {
	if len(vs) == 0 {
		return 0
	}
	return vek32.Norm(Flatten(vs))
}

// Distance returns the Euclidean distance between the flattened inputs.
func Distance(a, b []vector.Vector) (float32, error) {
	fa, fb, err := flattenPair(a, b)
	if err != nil {
		return 0, err
	}
	if len(fa) == 0 {
		return 0, nil
	}
	return vek32.Distance(fa, fb), nil
}

// CosineSimilarity compares the flattened inputs. It is 0 when either side
// is all zeros.
func CosineSimilarity(a, b []vector.Vector) (float32, error) {
	fa, fb, err := flattenPair(a, b)
	if err != nil {
		return 0, err
	}
	if len(fa) == 0 {
		return 0, nil
	}
	// vek32 yields NaN for zero vectors.
	sim := vek32.CosineSimilarity(fa, fb)
	if math.IsNaN(float64(sim)) {
		return 0, nil
	}
	return sim, nil
}

// Scale returns every vector multiplied by s. vs is not modified.
func Scale(vs []vector.Vector, s float32) []vector.Vector {
	flat := Flatten(vs)
	vek32.MulNumber_Inplace(flat, s)
	out, _ := Unflatten(flat)
	return out
}

// Centroid returns the lane-wise mean of vs.
func Centroid(vs []vector.Vector) (vector.Vector, error) {
	if len(vs) == 0 {
		return vector.Zero(), ErrEmpty
	}
	acc := make([]float32, Lanes)
	for _, v := range vs {
		lanes := v.Lanes()
		vek32.Add_Inplace(acc, lanes[:])
	}
	vek32.DivNumber_Inplace(acc, float32(len(vs)))
	return vector.Unaligned(acc), nil
}

// TransformAll returns v.Transform(m) for every v.
func TransformAll(vs []vector.Vector, m vector.Matrix) []vector.Vector {
	out := make([]vector.Vector, len(vs))
	for i, v := range vs {
		out[i] = v.Transform(m)
	}
	return out
}

// RotateAll returns q.Rotate(v) for every v, keeping each w lane.
func RotateAll(vs []vector.Vector, q vector.Quaternion) []vector.Vector {
	out := make([]vector.Vector, len(vs))
	for i, v := range vs {
		out[i] = q.Rotate(v).SetComponent(3, v.W())
	}
	return out
}

// Normalize3All returns v.Normalize3() for every v.
func Normalize3All(vs []vector.Vector) []vector.Vector {
	out := make([]vector.Vector, len(vs))
	for i, v := range vs {
		out[i] = v.Normalize3()
	}
	return out
}

// RuntimeInfo describes the kernels in use.
type RuntimeInfo struct {
	// Backend is the compiled backend of the vector package.
	Backend vector.Backend

	// Features are the CPU features vek32 detected.
	Features []string

	// Accelerated reports whether vek32 uses SIMD kernels.
	Accelerated bool
}

// Info reports the backend and acceleration status.
func Info() RuntimeInfo {
	info := vek32.Info()
	return RuntimeInfo{
		Backend:     vector.Current(),
		Features:    info.CPUFeatures,
		Accelerated: info.Acceleration,
	}
}
