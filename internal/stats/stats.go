// Package stats summarizes repeated timing samples.
package stats

import (
	"math"
	"slices"

	"github.com/cwbudde/algo-vecmath"
)

// Summary holds order and moment statistics of a sample set.
type Summary struct {
	Count  int
	Min    float64
	MinPos int
	Max    float64
	MaxPos int
	Mean   float64
	Median float64
	StdDev float64 // population standard deviation
	CV     float64 // StdDev / Mean, 0 when Mean is 0
}

// Summarize computes a Summary of samples. An empty input yields the zero
// Summary. samples is not modified.
func Summarize(samples []float64) Summary {
	n := len(samples)
	if n == 0 {
		return Summary{}
	}

	s := Summary{
		Count: n,
		Min:   samples[0],
		Max:   samples[0],
		Mean:  Mean(samples),
	}
	for i, x := range samples {
		if x < s.Min {
			s.Min, s.MinPos = x, i
		}
		if x > s.Max {
			s.Max, s.MaxPos = x, i
		}
	}

	// Second pass over the deviations; squares are computed block-wise.
	dev := make([]float64, n)
	for i, x := range samples {
		dev[i] = x - s.Mean
	}
	sq := make([]float64, n)
	vecmath.MulBlock(sq, dev, dev)
	s.StdDev = math.Sqrt(Mean(sq))

	if s.Mean != 0 {
		s.CV = s.StdDev / s.Mean
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	if n%2 == 1 {
		s.Median = sorted[n/2]
	} else {
		s.Median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return s
}

// Mean returns the arithmetic mean of x using Kahan summation, or 0 for an
// empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var sum, c float64
	for _, v := range x {
		y := v - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum / float64(len(x))
}
