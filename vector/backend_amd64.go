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

//go:build amd64

package vector

import "golang.org/x/sys/cpu"

// The x86 backends are written with simd/archsimd, whose 128-bit forms are
// VEX encoded, so every level also needs AVX on the host.
func hostSupports(b Backend) bool {
	switch b {
	case BackendFallback:
		return true
	case BackendSSE2:
		return cpu.X86.HasSSE2 && cpu.X86.HasAVX
	case BackendSSE3:
		return cpu.X86.HasSSE3 && cpu.X86.HasAVX
	case BackendSSE4:
		return cpu.X86.HasSSE41 && cpu.X86.HasSSE42 && cpu.X86.HasAVX
	default:
		return false
	}
}

func hostFeatures() []string {
	var features []string
	flags := []struct {
		name string
		has  bool
	}{
		{"sse2", cpu.X86.HasSSE2},
		{"sse3", cpu.X86.HasSSE3},
		{"ssse3", cpu.X86.HasSSSE3},
		{"sse4.1", cpu.X86.HasSSE41},
		{"sse4.2", cpu.X86.HasSSE42},
		{"avx", cpu.X86.HasAVX},
		{"fma", cpu.X86.HasFMA},
	}
	for _, f := range flags {
		if f.has {
			features = append(features, f.name)
		}
	}
	return features
}
