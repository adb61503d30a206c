//go:build amd64 && !purego

package registry_test

import (
	"testing"

	"github.com/cwbudde/algo-sumbench/internal/cpu"
	"github.com/cwbudde/algo-sumbench/internal/kernels/registry"

	_ "github.com/cwbudde/algo-sumbench/internal/kernels/arch/amd64/sse2"
	_ "github.com/cwbudde/algo-sumbench/internal/kernels/arch/generic"
)

// TestRegistryIntegration_AMD64 verifies implementations register on amd64.
func TestRegistryIntegration_AMD64(t *testing.T) {
	entries := registry.Global.ListEntries()
	if len(entries) == 0 {
		t.Fatal("no implementations registered - init() functions not running")
	}

	names := make(map[string]bool)
	for _, e := range entries {
		t.Logf("  - %s (priority %d, level %s)", e.Name, e.Priority, e.SIMDLevel)
		names[e.Name] = true
	}

	if !names["generic"] {
		t.Error("generic implementation not registered")
	}
	if !names["sse2"] {
		t.Error("sse2 implementation not registered")
	}

	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		t.Fatal("Lookup returned nil")
	}
	if entry.Name != "sse2" {
		t.Errorf("expected sse2 on amd64, got %s", entry.Name)
	}
	if entry.Vectorized == nil || entry.VectorizedUnrolled == nil {
		t.Errorf("%s implementation missing an operation", entry.Name)
	}
}
