// Package kernels provides the int32 summation kernels measured by the
// benchmark.
//
// Every kernel computes the same thing, the wrapping (two's complement) sum
// of a[:n], and differs only in how the loop is shaped:
//
//   - Naive: one addition per element.
//   - Unrolled: four scalar additions per iteration plus a tail loop.
//   - Vectorized: 4 x int32 SIMD lanes, horizontal reduction, tail loop.
//   - VectorizedUnrolled: four SIMD accumulators per iteration, then single
//     vectors, reduction and tail loop.
//
// The vectorized kernels dispatch through the registry to SSE2 (amd64), NEON
// (arm64) or the pure Go lane fallback, chosen once from the detected CPU
// features.
//
// All kernels require 0 <= n <= len(a). There is no further validation: an n
// past the end of a panics with the usual bounds error.
package kernels

// Func computes the sum of the first n elements of a.
type Func func(n int, a []int32) int32

// Kernel pairs a kernel with its display name.
type Kernel struct {
	Name string
	Fn   Func
}

// All returns the four kernels in benchmark order.
func All() []Kernel {
	return []Kernel{
		{Name: "naive", Fn: Naive},
		{Name: "unrolled", Fn: Unrolled},
		{Name: "vectorized", Fn: Vectorized},
		{Name: "vectorized unrolled", Fn: VectorizedUnrolled},
	}
}
