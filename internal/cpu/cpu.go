// Package cpu provides CPU feature detection for summation kernel selection.
//
// Only the SIMD extensions that the kernels actually target are tracked:
// SSE2 on amd64 and NEON (Advanced SIMD) on arm64. Both are part of the
// architectural baseline, so detection mostly matters for tests that force a
// particular dispatch path.
//
// Detection is performed lazily on the first call to DetectFeatures() and the
// results are cached for subsequent calls.
package cpu

import (
	"sync"
)

// SIMDLevel represents a SIMD instruction set extension level.
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD optimization (pure Go lanes).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (128-bit, 4 x int32 lanes).
	SIMDSSE2

	// SIMDNEON indicates ARM NEON / Advanced SIMD (128-bit, 4 x int32 lanes).
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2 bool // amd64 baseline
	HasNEON bool // arm64 baseline

	// ForceGeneric disables all SIMD kernels.
	ForceGeneric bool

	Architecture string // runtime.GOARCH
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	// forcedFeatures overrides hardware detection (tests, SUMBENCH_FORCE_GENERIC).
	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
// It is safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// SetForcedFeatures overrides CPU feature detection with f.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ForceGeneric keeps the detected architecture but disables every SIMD level.
func ForceGeneric() {
	f := DetectFeatures()
	f.ForceGeneric = true
	SetForcedFeatures(f)
}

// ResetDetection clears any forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports reports whether features allow kernels built for level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
