// Package sse2 implements the vectorized summation kernels with SSE2
// assembly: MOVOU unaligned loads and PADDL lane-wise adds on 4 x int32.
//
// SSE2 is part of the x86-64 baseline. The package is empty under the purego
// build tag.
package sse2
