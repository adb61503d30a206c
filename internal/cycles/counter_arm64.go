//go:build arm64 && !purego

package cycles

var defaultCounter Counter = cntvct{freq: float64(cntfrq())}

// cntvct reads the ARM generic timer's virtual count. Its rate is fixed by
// the platform (24 MHz on Apple silicon, often 1 GHz elsewhere), not the
// core clock, so it reports its own frequency.
type cntvct struct {
	freq float64
}

func (cntvct) Now() uint64 { return readCNTVCT() }
func (cntvct) Name() string { return "cntvct_el0" }
func (c cntvct) Frequency() float64 { return c.freq }

// Implemented in counter_arm64.s.
func readCNTVCT() uint64

func cntfrq() uint64
