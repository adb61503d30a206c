//go:build !amd64 && !arm64

package kernels

import (
	_ "github.com/cwbudde/algo-sumbench/internal/kernels/arch/generic"
)
