package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	cfg := defaultConfig()
	cfg.Seed, cfg.SeedSet = 7777, true
	cfg.CPU = cpuOff

	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	results := run(cfg, &out, logger)

	if len(results) != 4 {
		t.Fatalf("run returned %d results, want 4", len(results))
	}
	names := []string{"naive", "unrolled", "vectorized", "vectorized unrolled"}
	for i, res := range results {
		if res.Name != names[i] {
			t.Errorf("result %d is %q, want %q", i, res.Name, names[i])
		}
		if res.Err != nil {
			t.Errorf("%s: %v", res.Name, res.Err)
		}
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d output lines, want 4:\n%s", len(lines), out.String())
	}
	for _, line := range lines {
		if strings.Contains(line, "ERROR!") || !strings.HasSuffix(line, " microseconds") {
			t.Errorf("unexpected line %q", line)
		}
	}
}

func TestRunSameSeedSameSums(t *testing.T) {
	cfg := defaultConfig()
	cfg.Seed, cfg.SeedSet = 12345, true
	cfg.CPU = cpuAuto
	cfg.Samples = 3

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	first := run(cfg, io.Discard, logger)
	second := run(cfg, io.Discard, logger)

	for i := range first {
		if first[i].Sum != second[i].Sum {
			t.Errorf("%s: sums differ across runs with the same seed: %d vs %d",
				first[i].Name, first[i].Sum, second[i].Sum)
		}
		if len(first[i].Samples) != 3 {
			t.Errorf("%s: %d samples, want 3", first[i].Name, len(first[i].Samples))
		}
	}
}
