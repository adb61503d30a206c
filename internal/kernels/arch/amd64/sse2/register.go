//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-sumbench/internal/cpu"
	"github.com/cwbudde/algo-sumbench/internal/kernels/registry"
)

// Priority: 10 (preferred over generic)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		Vectorized:         Vectorized,
		VectorizedUnrolled: VectorizedUnrolled,
	})
}
