//go:build amd64

package kernels

// Imports trigger the init() registrations of the amd64 implementations.

import (
	_ "github.com/cwbudde/algo-sumbench/internal/kernels/arch/amd64/sse2"
	_ "github.com/cwbudde/algo-sumbench/internal/kernels/arch/generic"
)
