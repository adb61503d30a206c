// Package affinity keeps a measuring goroutine on a single logical core.
//
// Cycle counter samples are only comparable when both are read on the same
// core. Pin locks the goroutine to its OS thread and, where the platform
// allows it, restricts that thread to one CPU.
package affinity

import (
	"errors"
	"runtime"
)

// ErrNoCPU is returned when the current affinity mask contains no CPU.
var ErrNoCPU = errors.New("affinity: empty CPU mask")

// Pinning records an active pin. Release undoes it.
type Pinning struct {
	// CPU is the logical core the thread is bound to, or -1 when only the
	// OS thread is locked.
	CPU int

	release func()
}

// Release restores the previous affinity mask and unlocks the OS thread.
// It is safe to call on a nil Pinning and more than once.
func (p *Pinning) Release() {
	if p == nil || p.release == nil {
		return
	}
	p.release()
	p.release = nil
}

// LockThread locks the calling goroutine to its OS thread and leaves the CPU
// mask alone.
func LockThread() *Pinning {
	runtime.LockOSThread()
	return &Pinning{CPU: -1, release: runtime.UnlockOSThread}
}
