// Package generic implements the vectorized summation kernels on top of the
// portable lanes.Vec4 type.
//
// The lane arithmetic is plain Go, so the speedup over the scalar kernels
// depends on the compiler keeping the four accumulators in registers. Expect
// these kernels to be close to the unrolled scalar loop rather than to the
// SSE2 or NEON versions.
package generic

import "github.com/cwbudde/algo-sumbench/internal/kernels/lanes"

// unrollBlock is the number of elements one unrolled iteration consumes.
const unrollBlock = 4 * lanes.Width

// Vectorized returns the wrapping sum of a using one 4-lane accumulator.
func Vectorized(a []int32) int32 {
	body := lanes.Body(len(a))

	var acc lanes.Vec4
	for i := 0; i < body; i += lanes.Width {
		acc = acc.Add(lanes.Load(a[i:]))
	}

	return acc.Reduce() + lanes.Tail(a[body:])
}

// VectorizedUnrolled returns the wrapping sum of a using four independent
// 4-lane accumulators per iteration.
func VectorizedUnrolled(a []int32) int32 {
	n := len(a)
	blocks := n - n%unrollBlock
	body := lanes.Body(n)

	var acc0, acc1, acc2, acc3 lanes.Vec4
	i := 0
	for ; i < blocks; i += unrollBlock {
		acc0 = acc0.Add(lanes.Load(a[i:]))
		acc1 = acc1.Add(lanes.Load(a[i+4:]))
		acc2 = acc2.Add(lanes.Load(a[i+8:]))
		acc3 = acc3.Add(lanes.Load(a[i+12:]))
	}
	for ; i < body; i += lanes.Width {
		acc0 = acc0.Add(lanes.Load(a[i:]))
	}

	acc := acc0.Add(acc1).Add(acc2.Add(acc3))
	return acc.Reduce() + lanes.Tail(a[body:])
}
