//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-sumbench/internal/cpu"
	"github.com/cwbudde/algo-sumbench/internal/kernels/registry"
)

// init registers the NEON kernels.
//
// Priority: 15
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

		Vectorized:         Vectorized,
		VectorizedUnrolled: VectorizedUnrolled,
	})
}
