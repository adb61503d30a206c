package kernels

// Naive returns the sum of a[:n] with a single pass. It is the reference the
// benchmark checks every other kernel against.
func Naive(n int, a []int32) int32 {
	var sum int32
	for i := 0; i < n; i++ {
		sum += a[i]
	}
	return sum
}

// Unrolled returns the sum of a[:n] with four additions per iteration and a
// scalar tail loop for the remaining n mod 4 elements.
func Unrolled(n int, a []int32) int32 {
	a = a[:n]
	body := n / 4 * 4

	var sum int32
	for i := 0; i < body; i += 4 {
		sum += a[i+0]
		sum += a[i+1]
		sum += a[i+2]
		sum += a[i+3]
	}

	for i := body; i < n; i++ {
		sum += a[i]
	}

	return sum
}
