// Package bench times summation kernels with a cycle counter and checks
// their results.
//
// For each kernel the Runner makes one untimed warm-up call to bring the
// input into cache, then times single calls between two counter samples. The
// warm-up and timed results together must equal twice the reference sum. The
// outcome is one line of text:
//
//	               naive: 12.34 microseconds
//	          vectorized: ERROR!
//
// A mismatch is reported in place of the timing and never stops the run.
package bench

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-sumbench/internal/cycles"
	"github.com/cwbudde/algo-sumbench/internal/kernels"
	"github.com/cwbudde/algo-sumbench/internal/stats"
)

// ErrMismatch reports a kernel whose result disagrees with the reference.
var ErrMismatch = errors.New("bench: kernel result does not match reference")

// Result is the outcome of one benchmark.
type Result struct {
	Name string

	// Sum is the warm-up result plus the first timed result.
	Sum int32

	// Cycles is the smallest tick delta over all timed calls.
	Cycles uint64

	// Microseconds is Cycles converted at the runner's rate.
	Microseconds float64

	// Samples holds every timed call in microseconds, in call order.
	Samples []float64

	// Err is ErrMismatch, a wrapped output error, or nil.
	Err error
}

// Runner measures kernels. It is not safe for concurrent use; timing from
// several goroutines would defeat the measurement anyway.
type Runner struct {
	cfg  Config
	rate float64
}

// NewRunner returns a Runner configured by opts.
func NewRunner(opts ...Option) *Runner {
	cfg := ApplyOptions(opts...)
	return &Runner{
		cfg:  cfg,
		rate: cycles.Rate(cfg.Counter, cfg.ClockRate),
	}
}

// Config returns the effective configuration.
func (r *Runner) Config() Config {
	return r.cfg
}

// Rate returns the tick rate in Hz used for conversions.
func (r *Runner) Rate() float64 {
	return r.rate
}

// Run benchmarks k on a[:n] and writes its report line.
func (r *Runner) Run(n int, a []int32, k kernels.Func, name string) Result {
	counter := r.cfg.Counter
	res := Result{
		Name:    name,
		Cycles:  ^uint64(0),
		Samples: make([]float64, 0, r.cfg.Samples),
	}
	timed := make([]int32, 0, r.cfg.Samples)

	// warm up cache
	warm := k(n, a)

	for i := 0; i < r.cfg.Samples; i++ {
		begin := counter.Now()
		sum := k(n, a)
		delta := counter.Now() - begin

		timed = append(timed, sum)
		res.Samples = append(res.Samples, cycles.Microseconds(delta, r.rate))
		if delta < res.Cycles {
			res.Cycles = delta
		}
	}

	res.Sum = warm + timed[0]
	res.Microseconds = cycles.Microseconds(res.Cycles, r.rate)

	want := 2 * r.cfg.Reference(n, a)
	for _, sum := range timed {
		if warm+sum != want {
			res.Err = ErrMismatch
			r.cfg.Logger.Debug("kernel mismatch",
				slog.String("kernel", name),
				slog.Int("n", n),
				slog.Int64("got", int64(warm+sum)),
				slog.Int64("want", int64(want)))
			break
		}
	}

	if len(res.Samples) > 1 {
		s := stats.Summarize(res.Samples)
		r.cfg.Logger.Debug("kernel timing",
			slog.String("kernel", name),
			slog.Int("samples", s.Count),
			slog.Float64("min_us", s.Min),
			slog.Float64("median_us", s.Median),
			slog.Float64("mean_us", s.Mean),
			slog.Float64("stddev_us", s.StdDev),
			slog.Float64("max_us", s.Max))
	}

	if err := r.report(res); err != nil && res.Err == nil {
		res.Err = err
	}

	return res
}

// RunAll runs every kernel in order.
func (r *Runner) RunAll(n int, a []int32, ks []kernels.Kernel) []Result {
	results := make([]Result, 0, len(ks))
	for _, k := range ks {
		results = append(results, r.Run(n, a, k.Fn, k.Name))
	}
	return results
}

func (r *Runner) report(res Result) error {
	var err error
	if errors.Is(res.Err, ErrMismatch) {
		_, err = fmt.Fprintf(r.cfg.Output, "%20s: ERROR!\n", res.Name)
	} else {
		_, err = fmt.Fprintf(r.cfg.Output, "%20s: %.2f microseconds\n", res.Name, res.Microseconds)
	}
	if err != nil {
		return fmt.Errorf("bench: write result for %s: %w", res.Name, err)
	}
	return nil
}
