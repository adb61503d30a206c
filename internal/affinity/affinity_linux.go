//go:build linux

package affinity

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// maxCPUs is CPU_SETSIZE, the number of CPUs a unix.CPUSet can describe.
const maxCPUs = 1024

// First returns the lowest-numbered CPU in the calling thread's affinity mask.
func First() (int, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return -1, fmt.Errorf("affinity: get mask: %w", err)
	}
	for cpu := 0; cpu < maxCPUs; cpu++ {
		if set.IsSet(cpu) {
			return cpu, nil
		}
	}
	return -1, ErrNoCPU
}

// Pin locks the calling goroutine to its OS thread and binds the thread to
// cpu. On error the goroutine is left unlocked.
func Pin(cpu int) (*Pinning, error) {
	if cpu < 0 || cpu >= maxCPUs {
		return nil, fmt.Errorf("affinity: cpu %d out of range [0, %d)", cpu, maxCPUs)
	}

	runtime.LockOSThread()

	var prev unix.CPUSet
	if err := unix.SchedGetaffinity(0, &prev); err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("affinity: get mask: %w", err)
	}

	var set unix.CPUSet
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("affinity: bind to cpu %d: %w", cpu, err)
	}

	return &Pinning{
		CPU: cpu,
		release: func() {
			_ = unix.SchedSetaffinity(0, &prev)
			runtime.UnlockOSThread()
		},
	}, nil
}
