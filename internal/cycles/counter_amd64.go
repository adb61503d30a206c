//go:build amd64 && !purego

package cycles

var defaultCounter Counter = tsc{}

// tsc reads the x86 time-stamp counter.
type tsc struct{}

func (tsc) Now() uint64 { return rdtsc() }
func (tsc) Name() string { return "rdtsc" }
func (tsc) Frequency() float64 { return 0 }

// rdtsc executes LFENCE; RDTSC and joins EDX:EAX.
// Implemented in counter_amd64.s.
func rdtsc() uint64
