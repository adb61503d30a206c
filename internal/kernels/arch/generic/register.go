package generic

import (
	"github.com/cwbudde/algo-sumbench/internal/cpu"
	"github.com/cwbudde/algo-sumbench/internal/kernels/registry"
)

// init registers the pure Go lane kernels. They are the fallback when no SIMD
// entry applies or when ForceGeneric is set.
//
// Priority: 0
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Vectorized:         Vectorized,
		VectorizedUnrolled: VectorizedUnrolled,
	})
}
