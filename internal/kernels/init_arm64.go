//go:build arm64

package kernels

// Imports trigger the init() registrations of the arm64 implementations.

import (
	_ "github.com/cwbudde/algo-sumbench/internal/kernels/arch/arm64/neon"
	_ "github.com/cwbudde/algo-sumbench/internal/kernels/arch/generic"
)
