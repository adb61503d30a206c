package bench

import (
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/cwbudde/algo-sumbench/internal/cycles"
	"github.com/cwbudde/algo-sumbench/internal/kernels"
)

// Config defines how a Runner measures and reports.
type Config struct {
	// Counter supplies the tick samples around the timed call.
	Counter cycles.Counter

	// ClockRate converts ticks to time when Counter does not report its own
	// frequency. In Hz.
	ClockRate float64

	// Output receives one line per benchmark.
	Output io.Writer

	// Reference is the kernel results are checked against.
	Reference kernels.Func

	// Samples is the number of timed calls per kernel.
	Samples int

	Logger *slog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the defaults: hardware counter, 2.26 GHz, stdout,
// naive reference, one timed call.
func DefaultConfig() Config {
	return Config{
		Counter:   cycles.Default(),
		ClockRate: cycles.DefaultClockRate,
		Output:    os.Stdout,
		Reference: kernels.Naive,
		Samples:   1,
		Logger:    slog.Default(),
	}
}

// WithCounter sets the tick source.
func WithCounter(c cycles.Counter) Option {
	return func(cfg *Config) {
		if c != nil {
			cfg.Counter = c
		}
	}
}

// WithClockRate sets the clock rate in Hz. Non-positive or non-finite values
// are ignored.
func WithClockRate(hz float64) Option {
	return func(cfg *Config) {
		if hz > 0 && !math.IsInf(hz, 0) {
			cfg.ClockRate = hz
		}
	}
}

// WithOutput sets the report writer.
func WithOutput(w io.Writer) Option {
	return func(cfg *Config) {
		if w != nil {
			cfg.Output = w
		}
	}
}

// WithReference sets the kernel used for the correctness check.
func WithReference(f kernels.Func) Option {
	return func(cfg *Config) {
		if f != nil {
			cfg.Reference = f
		}
	}
}

// WithSamples sets the number of timed calls per kernel.
func WithSamples(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Samples = n
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// ApplyOptions applies opts to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
