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

// Backend identifies a numeric kernel set.
type Backend int

const (
	// BackendFallback is the portable scalar kernel set.
	BackendFallback Backend = iota

	// BackendSSE2 uses 128-bit x86 vectors with shuffle based reductions.
	BackendSSE2

	// BackendSSE3 is SSE2 with horizontal-add reductions.
	BackendSSE3

	// BackendSSE4 uses dot-product and blend shaped kernels.
	BackendSSE4

	// BackendNEON uses the ARM pairwise-add and fused multiply-add kernels.
	BackendNEON
)

// String returns a human-readable name for the backend.
func (b Backend) String() string {
	switch b {
	case BackendFallback:
		return "fallback"
	case BackendSSE2:
		return "sse2"
	case BackendSSE3:
		return "sse3"
	case BackendSSE4:
		return "sse4"
	case BackendNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Version is the library version, in semantic versioning form.
const Version = "1.0.0"

// Current returns the backend compiled into this binary.
func Current() Backend {
	return currentBackend
}

// HostSupported reports whether the running CPU implements the instruction
// sets the compiled backend was built for. It never changes which kernels
// run; a false result means the binary was built for a different machine.
func HostSupported() bool {
	return hostSupports(currentBackend)
}

// Features returns the CPU feature flags relevant to the backends on this
// architecture, as reported by the host.
func Features() []string {
	return hostFeatures()
}
