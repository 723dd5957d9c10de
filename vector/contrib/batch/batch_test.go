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

package batch

import (
	"testing"

	"github.com/ajroetker/go-vecmath/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []vector.Vector {
	return []vector.Vector{
		vector.New(1, 2, 3, 4),
		vector.New(-1, 0, 2, 1),
		vector.New(0, 5, -3, 2),
	}
}

func TestFlattenRoundTrip(t *testing.T) {
	vs := sample()
	flat := Flatten(vs)
	require.Len(t, flat, len(vs)*Lanes)
	assert.Equal(t, []float32{1, 2, 3, 4}, flat[:4])
	assert.Equal(t, []float32{0, 5, -3, 2}, flat[8:])

	back, err := Unflatten(flat)
	require.NoError(t, err)
	require.Len(t, back, len(vs))
	for i := range vs {
		assert.Equal(t, vs[i].Lanes(), back[i].Lanes(), "vector %d", i)
	}

	_, err = Unflatten(flat[:5])
	require.ErrorIs(t, err, ErrLengthMismatch)

	empty, err := Unflatten(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDot(t *testing.T) {
	vs := sample()
	got, err := Dot(vs, vs)
	require.NoError(t, err)

	var want float32
	for _, v := range vs {
		want += v.Dot(v).X()
	}
	assert.InDelta(t, want, got, 1e-4)

	_, err = Dot(vs, vs[:2])
	assert.ErrorIs(t, err, ErrLengthMismatch)

	got, err = Dot(nil, nil)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestNormAndDistance(t *testing.T) {
	vs := []vector.Vector{vector.New(3, 0, 0, 0), vector.New(0, 4, 0, 0)}
	assert.InDelta(t, 5, Norm(vs), 1e-5)
	assert.Zero(t, Norm(nil))

	zero := []vector.Vector{vector.Zero(), vector.Zero()}
	d, err := Distance(vs, zero)
	require.NoError(t, err)
	assert.InDelta(t, 5, d, 1e-5)

	_, err = Distance(vs, zero[:1])
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestCosineSimilarity(t *testing.T) {
	vs := sample()
	sim, err := CosineSimilarity(vs, vs)
	require.NoError(t, err)
	assert.InDelta(t, 1, sim, 1e-5)

	sim, err = CosineSimilarity(vs, Scale(vs, -2))
	require.NoError(t, err)
	assert.InDelta(t, -1, sim, 1e-5)

	zero := []vector.Vector{vector.Zero(), vector.Zero(), vector.Zero()}
	sim, err = CosineSimilarity(vs, zero)
	require.NoError(t, err)
	assert.Zero(t, sim)
}

func TestScale(t *testing.T) {
	vs := sample()
	scaled := Scale(vs, 0.5)
	require.Len(t, scaled, len(vs))
	for i := range vs {
		assert.Equal(t, vs[i].Scale(0.5).Lanes(), scaled[i].Lanes(), "vector %d", i)
	}
	assert.Equal(t, [4]float32{1, 2, 3, 4}, vs[0].Lanes(), "input was modified")
}

func TestCentroid(t *testing.T) {
	c, err := Centroid(sample())
	require.NoError(t, err)
	lanes := c.Lanes()
	assert.InDeltaSlice(t, []float32{0, 7.0 / 3.0, 2.0 / 3.0, 7.0 / 3.0}, lanes[:], 1e-5)

	_, err = Centroid(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestTransformAll(t *testing.T) {
	m := vector.MatrixTranslationScalar(1, 2, 3)
	pts := []vector.Vector{vector.Origo(), vector.XAxis()}
	got := TransformAll(pts, m)
	require.Len(t, got, 2)
	assert.Equal(t, [4]float32{1, 2, 3, 1}, got[0].Lanes())
	assert.Equal(t, [4]float32{2, 2, 3, 1}, got[1].Lanes())
	assert.Empty(t, TransformAll(nil, m))
}

func TestRotateAll(t *testing.T) {
	q := vector.QuaternionIdentity()
	vs := sample()
	got := RotateAll(vs, q)
	for i := range vs {
		want, lanes := vs[i].Lanes(), got[i].Lanes()
		assert.InDeltaSlice(t, want[:], lanes[:], 1e-6, "vector %d", i)
	}
}

func TestNormalize3All(t *testing.T) {
	got := Normalize3All([]vector.Vector{vector.New(0, 3, 4, 7)})
	require.Len(t, got, 1)
	lanes := got[0].Lanes()
	assert.InDeltaSlice(t, []float32{0, 0.6, 0.8, 7}, lanes[:], 1e-6)
}

func TestInfo(t *testing.T) {
	info := Info()
	assert.Equal(t, vector.Current(), info.Backend)
	t.Logf("backend %s, vek32 features %v, accelerated %v", info.Backend, info.Features, info.Accelerated)
}
