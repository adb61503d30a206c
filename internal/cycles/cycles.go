// Package cycles reads free-running hardware counters for timing short code
// regions.
//
// A Counter sample is an opaque tick count. Only the difference between two
// samples taken on the same logical core means anything; use the affinity
// package to keep the measuring goroutine on one core.
//
// Reads go through an assembly call, which the compiler cannot move across
// surrounding code, and are preceded by a serializing instruction (LFENCE on
// amd64, ISB on arm64) so the CPU does not start the read early either.
package cycles

import "time"

// DefaultClockRate is the clock rate in Hz used to turn TSC cycles into time
// when nothing better is configured. It is the rate of the reference
// machine (2.26 GHz) and is almost certainly wrong for yours; override it with
// the measured rate of the benchmarking host.
const DefaultClockRate = 2.26e9

// Counter is a monotonic high-resolution tick source.
type Counter interface {
	// Now returns the current tick count.
	Now() uint64

	// Name identifies the underlying counter (e.g. "rdtsc").
	Name() string

	// Frequency returns the tick rate in Hz, or 0 when the ticks are CPU
	// cycles of unknown rate and a configured clock rate must be used.
	Frequency() float64
}

// Default returns the best counter available on this platform.
func Default() Counter {
	return defaultCounter
}

// Now samples the default counter.
func Now() uint64 {
	return defaultCounter.Now()
}

// Rate returns the tick rate of c, falling back to clockRate when the counter
// does not know its own frequency.
func Rate(c Counter, clockRate float64) float64 {
	if f := c.Frequency(); f > 0 {
		return f
	}
	return clockRate
}

// Microseconds converts a tick delta at rate Hz to microseconds. A
// non-positive rate yields 0.
func Microseconds(delta uint64, rate float64) float64 {
	if rate <= 0 {
		return 0
	}
	return float64(delta) / rate * 1e6
}

// Monotonic is a Counter backed by the runtime's monotonic clock. Ticks are
// nanoseconds since the counter was created.
type Monotonic struct {
	start time.Time
}

// NewMonotonic returns a Monotonic counter starting at zero.
func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

// Now returns the nanoseconds elapsed since NewMonotonic.
func (m *Monotonic) Now() uint64 {
	return uint64(time.Since(m.start))
}

// Name returns "monotonic".
func (m *Monotonic) Name() string { return "monotonic" }

// Frequency returns 1e9: one tick per nanosecond.
func (m *Monotonic) Frequency() float64 { return 1e9 }
