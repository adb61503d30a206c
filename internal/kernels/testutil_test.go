package kernels

import (
	"math/rand/v2"
	"strconv"
	"sync"

	"github.com/cwbudde/algo-sumbench/internal/cpu"
)

// Sizes around every vector and unroll boundary plus the driver's n.
var paritySizes = []int{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17,
	18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33,
	63, 64, 65, 1000, 7777,
}

func sizeStr(n int) string {
	return "n=" + strconv.Itoa(n)
}

func randomInts(seed uint64, n int) []int32 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	a := make([]int32, n)
	for i := range a {
		a[i] = int32(rng.Uint32())
	}
	return a
}

func resetDispatchForTest() {
	vectorizedImpl = nil
	vectorizedUnrolledImpl = nil
	implName = ""
	dispatchOnce = sync.Once{}
}

// withFeatures runs fn with forced CPU features and a fresh dispatch.
func withFeatures(f cpu.Features, fn func()) {
	cpu.SetForcedFeatures(f)
	resetDispatchForTest()
	defer func() {
		cpu.ResetDetection()
		resetDispatchForTest()
	}()
	fn()
}
