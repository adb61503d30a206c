package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-sumbench/internal/cycles"
)

// Environment knobs. None is required.
const (
	envClockGHz     = "SUMBENCH_CLOCK_GHZ"
	envSeed         = "SUMBENCH_SEED"
	envSamples      = "SUMBENCH_SAMPLES"
	envCPU          = "SUMBENCH_CPU"
	envLogLevel     = "SUMBENCH_LOG_LEVEL"
	envForceGeneric = "SUMBENCH_FORCE_GENERIC"
)

// CPU selection sentinels for config.CPU.
const (
	cpuAuto = -1 // first core of the current affinity mask
	cpuOff  = -2 // lock the OS thread only
)

type config struct {
	ClockRate    float64 // Hz
	Seed         int64
	SeedSet      bool
	Samples      int
	CPU          int
	LogLevel     slog.Level
	ForceGeneric bool
}

func defaultConfig() config {
	return config{
		ClockRate: cycles.DefaultClockRate,
		Samples:   1,
		CPU:       cpuAuto,
		LogLevel:  slog.LevelWarn,
	}
}

// loadConfig reads the environment through getenv. Invalid values keep the
// default and are returned as errors for the caller to report.
func loadConfig(getenv func(string) string) (config, []error) {
	cfg := defaultConfig()
	var errs []error

	if raw := strings.TrimSpace(getenv(envClockGHz)); raw != "" {
		ghz, err := strconv.ParseFloat(raw, 64)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s=%q: %w", envClockGHz, raw, err))
		case ghz <= 0 || ghz > 100:
			errs = append(errs, fmt.Errorf("%s=%q: clock rate must be in (0, 100] GHz", envClockGHz, raw))
		default:
			cfg.ClockRate = ghz * 1e9
		}
	}

	if raw := strings.TrimSpace(getenv(envSeed)); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", envSeed, raw, err))
		} else {
			cfg.Seed, cfg.SeedSet = seed, true
		}
	}

	if raw := strings.TrimSpace(getenv(envSamples)); raw != "" {
		samples, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s=%q: %w", envSamples, raw, err))
		case samples < 1:
			errs = append(errs, fmt.Errorf("%s=%q: need at least one sample", envSamples, raw))
		default:
			cfg.Samples = samples
		}
	}

	if raw := strings.ToLower(strings.TrimSpace(getenv(envCPU))); raw != "" {
		switch raw {
		case "auto":
			cfg.CPU = cpuAuto
		case "off", "none":
			cfg.CPU = cpuOff
		default:
			cpu, err := strconv.Atoi(raw)
			switch {
			case err != nil:
				errs = append(errs, fmt.Errorf("%s=%q: %w", envCPU, raw, err))
			case cpu < 0:
				errs = append(errs, fmt.Errorf("%s=%q: cpu must be >= 0, auto or off", envCPU, raw))
			default:
				cfg.CPU = cpu
			}
		}
	}

	if raw := strings.TrimSpace(getenv(envLogLevel)); raw != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			cfg.LogLevel = slog.LevelWarn
			errs = append(errs, fmt.Errorf("%s=%q: %w", envLogLevel, raw, err))
		}
	}

	if raw := strings.TrimSpace(getenv(envForceGeneric)); raw != "" {
		force, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", envForceGeneric, raw, err))
		} else {
			cfg.ForceGeneric = force
		}
	}

	return cfg, errs
}
