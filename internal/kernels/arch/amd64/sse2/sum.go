//go:build amd64 && !purego

package sse2

import "github.com/cwbudde/algo-sumbench/internal/kernels/lanes"

// Vectorized returns the wrapping sum of a. The vector body runs in one XMM
// accumulator; the lanes are stored, reduced and the tail added in Go.
func Vectorized(a []int32) int32 {
	body := lanes.Body(len(a))

	var acc lanes.Vec4
	if body > 0 {
		accumulateSSE2(&acc, a[:body])
	}

	return acc.Reduce() + lanes.Tail(a[body:])
}

// VectorizedUnrolled is Vectorized with four XMM accumulators over 64-byte
// blocks. Leftover 16-byte chunks go to the first accumulator.
func VectorizedUnrolled(a []int32) int32 {
	body := lanes.Body(len(a))

	var acc lanes.Vec4
	if body > 0 {
		accumulateUnrolledSSE2(&acc, a[:body])
	}

	return acc.Reduce() + lanes.Tail(a[body:])
}

// accumulateSSE2 stores the lane-wise sum of a into acc. len(a) must be a
// multiple of 4. Implemented in sum_amd64.s.
//
//go:noescape
func accumulateSSE2(acc *lanes.Vec4, a []int32)

// accumulateUnrolledSSE2 is accumulateSSE2 with four accumulators.
// Implemented in sum_amd64.s.
//
//go:noescape
func accumulateUnrolledSSE2(acc *lanes.Vec4, a []int32)
