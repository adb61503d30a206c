// Command sumbench compares four ways of summing an array of 32-bit integers:
// a naive loop, an unrolled loop, SIMD lanes and unrolled SIMD lanes.
//
// Usage:
//
//	sumbench
//
// It fills 7777 integers with pseudorandom values, times one call of each
// kernel with the CPU cycle counter after a warm-up call, and prints
//
//	               naive: 9.87 microseconds
//	            unrolled: 5.43 microseconds
//	          vectorized: 2.10 microseconds
//	 vectorized unrolled: 1.23 microseconds
//
// or "ERROR!" in place of the time when a kernel disagrees with the naive
// sum. The exit status is always 0.
//
// Cycles are converted at 2.26 GHz unless SUMBENCH_CLOCK_GHZ says otherwise.
// Other optional environment variables: SUMBENCH_SEED, SUMBENCH_SAMPLES,
// SUMBENCH_CPU (core number, auto or off), SUMBENCH_LOG_LEVEL and
// SUMBENCH_FORCE_GENERIC.
package main

import (
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/cwbudde/algo-sumbench/internal/affinity"
	"github.com/cwbudde/algo-sumbench/internal/bench"
	"github.com/cwbudde/algo-sumbench/internal/cpu"
	"github.com/cwbudde/algo-sumbench/internal/kernels"
)

// n is the number of integers summed by every kernel.
const n = 7777

func main() {
	cfg, errs := loadConfig(os.Getenv)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	for _, err := range errs {
		logger.Warn("ignoring invalid setting", slog.Any("error", err))
	}

	run(cfg, os.Stdout, logger)
}

func run(cfg config, out io.Writer, logger *slog.Logger) []bench.Result {
	if cfg.ForceGeneric {
		cpu.ForceGeneric()
	}

	pin := pinThread(cfg.CPU, logger)
	defer pin.Release()

	seed := cfg.Seed
	if !cfg.SeedSet {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))

	a := bench.NewBuffer(n)
	bench.Fill(a, rng)

	runner := bench.NewRunner(
		bench.WithClockRate(cfg.ClockRate),
		bench.WithSamples(cfg.Samples),
		bench.WithOutput(out),
		bench.WithLogger(logger),
	)

	rc := runner.Config()
	logger.Info("starting benchmark",
		slog.Int("n", n),
		slog.Int64("seed", seed),
		slog.Bool("aligned", bench.IsAligned(a)),
		slog.String("counter", rc.Counter.Name()),
		slog.Float64("rate_hz", runner.Rate()),
		slog.Int("samples", rc.Samples),
		slog.Int("cpu", pin.CPU),
		slog.String("simd", kernels.Implementation()))

	results := runner.RunAll(n, a, kernels.All())

	for _, res := range results {
		if res.Err != nil && !errors.Is(res.Err, bench.ErrMismatch) {
			logger.Error("benchmark output failed", slog.String("kernel", res.Name), slog.Any("error", res.Err))
		}
	}

	return results
}

// pinThread keeps the goroutine on one core for the whole run. Failures are
// logged; the benchmark then runs unpinned.
func pinThread(target int, logger *slog.Logger) *affinity.Pinning {
	if target == cpuOff {
		return affinity.LockThread()
	}

	if target == cpuAuto {
		first, err := affinity.First()
		if err != nil {
			logger.Debug("cpu pinning unavailable", slog.Any("error", err))
			return affinity.LockThread()
		}
		target = first
	}

	p, err := affinity.Pin(target)
	if err != nil {
		if errors.Is(err, errors.ErrUnsupported) {
			logger.Debug("cpu pinning unsupported on this platform")
			return p
		}
		logger.Warn("cpu pinning failed", slog.Int("cpu", target), slog.Any("error", err))
		return affinity.LockThread()
	}

	logger.Debug("pinned to cpu", slog.Int("cpu", p.CPU))
	return p
}
