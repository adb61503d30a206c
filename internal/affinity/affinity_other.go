//go:build !linux

package affinity

import "errors"

// First is not supported outside Linux.
func First() (int, error) {
	return -1, errors.ErrUnsupported
}

// Pin locks the calling goroutine to its OS thread. Binding the thread to a
// core is not supported here, so the returned Pinning has CPU -1 and the
// error is errors.ErrUnsupported; the thread lock is still in effect.
func Pin(cpu int) (*Pinning, error) {
	return LockThread(), errors.ErrUnsupported
}
