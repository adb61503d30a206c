// Package neon implements the vectorized summation kernels with ARM Advanced
// SIMD assembly: VLD1 loads and VADD on .S4 (4 x int32) arrangements.
//
// NEON is mandatory on ARMv8. The package is empty under the purego build tag.
package neon
