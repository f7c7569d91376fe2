// Package cpuinfo reports the CPU features relevant to plain-Go XOR
// loops autovectorizing well, for the evenodd encode and bench commands
// to log. It never changes the engine's behavior; raid6's inner
// loops stay scalar Go and rely on the compiler, not on anything
// reported here.
package cpuinfo

import "github.com/klauspost/cpuid/v2"

// Features summarizes the XOR-relevant SIMD capability of the host.
type Features struct {
	BrandName string
	HasAVX2   bool
	HasSSE2   bool
	HasAVX512 bool
}

// Detect reads the current host's CPU features.
func Detect() Features {
	return Features{
		BrandName: cpuid.CPU.BrandName,
		HasAVX2:   cpuid.CPU.Supports(cpuid.AVX2),
		HasSSE2:   cpuid.CPU.Supports(cpuid.SSE2),
		HasAVX512: cpuid.CPU.Supports(cpuid.AVX512F),
	}
}

// String renders the features the way the bench command logs them.
func (f Features) String() string {
	s := f.BrandName + ":"
	if f.HasAVX512 {
		s += " avx512"
	}
	if f.HasAVX2 {
		s += " avx2"
	}
	if f.HasSSE2 {
		s += " sse2"
	}
	return s
}
