package kernels

import (
	"sync"

	"github.com/cwbudde/algo-sumbench/internal/cpu"
	"github.com/cwbudde/algo-sumbench/internal/kernels/registry"
)

var (
	vectorizedImpl         registry.SumFn
	vectorizedUnrolledImpl registry.SumFn
	implName               string
	dispatchOnce           sync.Once
)

func initDispatch() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernels: no vectorized implementation registered (missing generic fallback?)")
	}
	if entry.Vectorized == nil || entry.VectorizedUnrolled == nil {
		panic("kernels: selected implementation " + entry.Name + " missing an operation")
	}

	vectorizedImpl = entry.Vectorized
	vectorizedUnrolledImpl = entry.VectorizedUnrolled
	implName = entry.Name
}

// Vectorized returns the sum of a[:n] using 4 x int32 SIMD lanes over the
// first n - n mod 4 elements and a scalar tail for the rest. Loads do not
// require alignment.
func Vectorized(n int, a []int32) int32 {
	dispatchOnce.Do(initDispatch)
	return vectorizedImpl(a[:n])
}

// VectorizedUnrolled returns the sum of a[:n] processing four SIMD-width
// chunks per iteration.
func VectorizedUnrolled(n int, a []int32) int32 {
	dispatchOnce.Do(initDispatch)
	return vectorizedUnrolledImpl(a[:n])
}

// Implementation returns the name of the registry entry the vectorized
// kernels dispatch to ("sse2", "neon" or "generic").
func Implementation() string {
	dispatchOnce.Do(initDispatch)
	return implName
}
