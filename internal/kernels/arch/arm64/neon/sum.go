//go:build arm64 && !purego

package neon

import "github.com/cwbudde/algo-sumbench/internal/kernels/lanes"

// Vectorized returns the wrapping sum of a using NEON instructions.
func Vectorized(a []int32) int32 {
	body := lanes.Body(len(a))

	var acc lanes.Vec4
	if body > 0 {
		accumulateNEON(&acc, a[:body])
	}

	return acc.Reduce() + lanes.Tail(a[body:])
}

// VectorizedUnrolled returns the wrapping sum of a using four NEON
// accumulators per 64-byte block.
func VectorizedUnrolled(a []int32) int32 {
	body := lanes.Body(len(a))

	var acc lanes.Vec4
	if body > 0 {
		accumulateUnrolledNEON(&acc, a[:body])
	}

	return acc.Reduce() + lanes.Tail(a[body:])
}

// Implemented in sum_arm64.s. len(a) must be a multiple of 4.
//
//go:noescape
func accumulateNEON(acc *lanes.Vec4, a []int32)

//go:noescape
func accumulateUnrolledNEON(acc *lanes.Vec4, a []int32)
