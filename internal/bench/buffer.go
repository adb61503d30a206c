package bench

import (
	"math/rand/v2"
	"unsafe"
)

// Alignment is the byte alignment of buffers returned by NewBuffer. It
// matches the width of a 128-bit vector load.
const Alignment = 16

// NewBuffer returns a zeroed slice of n int32 whose first element is
// Alignment-byte aligned. The slice capacity is exactly n.
func NewBuffer(n int) []int32 {
	const pad = Alignment / 4

	raw := make([]int32, n+pad)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	off := int((Alignment-addr%Alignment)%Alignment) / 4

	return raw[off : off+n : off+n]
}

// IsAligned reports whether the first element of a is Alignment-byte
// aligned. An empty slice is considered aligned.
func IsAligned(a []int32) bool {
	if len(a) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&a[0]))%Alignment == 0
}

// Fill overwrites a with non-negative 31-bit pseudorandom values, the range
// of lrand48, drawn from rng.
func Fill(a []int32, rng *rand.Rand) {
	for i := range a {
		a[i] = rng.Int32()
	}
}
