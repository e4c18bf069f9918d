package dataarray

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Tracker observes acquisition and release of owned storage.
type Tracker interface {
	Acquire(kind string)
	Release(kind string)
}

// CountingTracker counts acquisitions and releases per kind.
// It is safe for concurrent use.
type CountingTracker struct {
	mu       sync.Mutex
	acquired map[string]int
	released map[string]int
}

// NewCountingTracker returns an empty tracker.
func NewCountingTracker() *CountingTracker {
	return &CountingTracker{
		acquired: make(map[string]int),
		released: make(map[string]int),
	}
}

// Acquire records one allocation of kind.
func (t *CountingTracker) Acquire(kind string) {
	t.mu.Lock()
	t.acquired[kind]++
	t.mu.Unlock()
}

// Release records one release of kind.
func (t *CountingTracker) Release(kind string) {
	t.mu.Lock()
	t.released[kind]++
	t.mu.Unlock()
}

// Acquired returns the number of acquisitions of kind.
func (t *CountingTracker) Acquired(kind string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.acquired[kind]
}

// Released returns the number of releases of kind.
func (t *CountingTracker) Released(kind string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.released[kind]
}

// Live returns acquisitions minus releases summed over all kinds.
func (t *CountingTracker) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	live := 0
	for _, n := range t.acquired {
		live += n
	}
	for _, n := range t.released {
		live -= n
	}
	return live
}

// Balanced returns an error naming every kind whose release count differs
// from its acquire count.
func (t *CountingTracker) Balanced() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	kinds := make(map[string]struct{})
	for k := range t.acquired {
		kinds[k] = struct{}{}
	}
	for k := range t.released {
		kinds[k] = struct{}{}
	}

	var bad []string
	for k := range kinds {
		if t.acquired[k] != t.released[k] {
			bad = append(bad, fmt.Sprintf("%s: acquired %d, released %d", k, t.acquired[k], t.released[k]))
		}
	}
	if len(bad) == 0 {
		return nil
	}
	sort.Strings(bad)
	return fmt.Errorf("unbalanced allocations: %s", strings.Join(bad, "; "))
}
