// Package lanes provides a portable 128-bit vector of four int32 lanes.
//
// It is the pure Go rendition of the load/add/store operations the SIMD
// kernels perform in registers, plus the scalar helpers every vectorized
// kernel shares: the horizontal reduction of the lanes and the tail loop over
// the n mod 4 elements left after the vector body.
//
// All arithmetic wraps on overflow (two's complement), which keeps every
// kernel bit-identical to a plain scalar loop regardless of summation order.
package lanes

// Width is the number of int32 lanes in one vector.
const Width = 4

// Vec4 holds four int32 lanes.
type Vec4 [Width]int32

// Load reads a[0:4] into a vector. No alignment is required.
func Load(a []int32) Vec4 {
	_ = a[3]
	return Vec4{a[0], a[1], a[2], a[3]}
}

// Add returns the lane-wise sum v + w.
func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// Store writes the lanes to dst[0:4].
func (v Vec4) Store(dst []int32) {
	_ = dst[3]
	dst[0], dst[1], dst[2], dst[3] = v[0], v[1], v[2], v[3]
}

// Reduce returns the horizontal sum of the lanes.
func (v Vec4) Reduce() int32 {
	var buf [Width]int32
	v.Store(buf[:])
	var sum int32
	for _, x := range buf {
		sum += x
	}
	return sum
}

// Body returns n rounded down to a multiple of Width: the number of elements
// the vector loop covers.
func Body(n int) int {
	return n - n%Width
}

// Tail sums a with a scalar loop. Callers pass the slice left after Body.
func Tail(a []int32) int32 {
	var sum int32
	for _, x := range a {
		sum += x
	}
	return sum
}
