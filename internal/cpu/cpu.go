// Package cpu provides CPU feature detection for transform kernel selection.
//
// Detection is performed lazily on the first call to DetectFeatures and the
// result is cached. Callers that need a different feature set build a
// Features value and use its Mask directly.
package cpu

import (
	"strings"
	"sync"
)

// Features describes CPU capabilities relevant to DCT kernel selection.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE2   bool
	HasSSE3   bool
	HasSSSE3  bool
	HasSSE41  bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool

	// ARM SIMD features
	HasNEON bool

	// ForceGeneric disables every accelerated kernel.
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

// Mask is a capability bitmask. A kernel declares the bits it requires and
// runs only when every one of them is present in the detected mask.
type Mask uint32

// Capability bits.
const (
	SSE2 Mask = 1 << iota
	SSE3
	SSSE3
	SSE41
	AVX
	AVX2
	AVX512
	NEON
)

var maskNames = []struct {
	bit  Mask
	name string
}{
	{SSE2, "sse2"},
	{SSE3, "sse3"},
	{SSSE3, "ssse3"},
	{SSE41, "sse4.1"},
	{AVX, "avx"},
	{AVX2, "avx2"},
	{AVX512, "avx512"},
	{NEON, "neon"},
}

// String lists the set bits, separated by '|'.
func (m Mask) String() string {
	if m == 0 {
		return "none"
	}

	parts := make([]string, 0, len(maskNames))
	for _, n := range maskNames {
		if m&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}

	return strings.Join(parts, "|")
}

// Satisfies reports whether every bit in required is available in m.
func (m Mask) Satisfies(required Mask) bool {
	return required&^m == 0
}

// Missing returns the bits of required that m lacks.
func (m Mask) Missing(required Mask) Mask {
	return required &^ m
}

// Mask converts the feature set to a capability bitmask.
// ForceGeneric yields an empty mask.
func (f Features) Mask() Mask {
	if f.ForceGeneric {
		return 0
	}

	var m Mask

	flags := []struct {
		has bool
		bit Mask
	}{
		{f.HasSSE2, SSE2},
		{f.HasSSE3, SSE3},
		{f.HasSSSE3, SSSE3},
		{f.HasSSE41, SSE41},
		{f.HasAVX, AVX},
		{f.HasAVX2, AVX2},
		{f.HasAVX512, AVX512},
		{f.HasNEON, NEON},
	}
	for _, fl := range flags {
		if fl.has {
			m |= fl.bit
		}
	}

	return m
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
)

// DetectFeatures returns the CPU features available on the current system.
func DetectFeatures() Features {
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})

	return detectedFeatures
}

// Available is shorthand for DetectFeatures().Mask().
func Available() Mask {
	return DetectFeatures().Mask()
}
