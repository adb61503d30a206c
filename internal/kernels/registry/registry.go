// Package registry provides the implementation registry for the vectorized
// summation kernels.
//
// Architecture packages (generic, sse2, neon) register an entry from init().
// The kernels package looks up the highest-priority entry the current CPU
// supports and binds its function pointers once.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-sumbench/internal/cpu"
)

// SumFn returns the wrapping int32 sum of every element of a.
type SumFn func(a []int32) int32

// OpEntry is one registered implementation variant.
type OpEntry struct {
	// Name identifies the implementation (e.g. "generic", "sse2", "neon").
	Name string

	// SIMDLevel is the instruction set the entry requires.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible entries; higher wins. Generic is 0, SSE2 10,
	// NEON 15.
	Priority int

	// Vectorized accumulates 4 x int32 lanes, reduces them and adds the tail.
	Vectorized SumFn

	// VectorizedUnrolled keeps four independent lane accumulators per
	// iteration before falling back to single vectors and the scalar tail.
	VectorizedUnrolled SumFn
}

// OpRegistry holds the registered entries.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // entries sorted by descending priority
}

// Global is the registry populated by the architecture packages.
var Global = &OpRegistry{}

// Register adds an entry. All registrations should happen before the first
// Lookup, which is the case when they are made from init().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry compatible with features, or nil
// when nothing is registered for them.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// sortByPriority sorts entries by descending priority. r.mu must be held.
func (r *OpRegistry) sortByPriority() {
	// Insertion sort; there are at most a handful of entries.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of the registered entries.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Tests only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
