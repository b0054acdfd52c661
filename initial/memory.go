// Package initial remembers the starting centroids of a clustering run so
// that repeated runs, or runs over regenerated datasets, can be compared from
// the same initialization.
//
// A Memory is an explicitly constructed and explicitly owned value. Callers
// pass it to the runs that should share it; there is no package-level state.
//
// Policy:
//
//   - Set is first-write-wins: it stores a copy only while nothing is stored.
//   - Clear empties the memory; the next Set stores again.
//   - Centroids always returns a copy, so runs cannot alias each other.
//
// A Memory is safe for concurrent use.
package initial

import (
	"sync"

	"github.com/katalvlaran/kmeanslab/geom"
)

// Memory holds an optional sequence of initial centroids.
type Memory struct {
	mu        sync.RWMutex
	centroids []geom.Centroid
}

// New returns an empty Memory.
func New() *Memory {
	return &Memory{}
}

// Set stores a copy of cs if nothing is stored yet and reports whether it
// did. An empty cs is never stored.
func (m *Memory) Set(cs []geom.Centroid) bool {
	if len(cs) == 0 {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.centroids) > 0 {
		return false
	}
	m.centroids = geom.CloneCentroids(cs)

	return true
}

// Clear empties the memory. Clearing an empty memory is a no-op.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.centroids) > 0 {
		m.centroids = nil
	}
}

// Centroids returns a copy of the stored sequence, or nil when empty.
func (m *Memory) Centroids() []geom.Centroid {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.centroids) == 0 {
		return nil
	}

	return geom.CloneCentroids(m.centroids)
}

// Len returns the number of stored centroids.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.centroids)
}

// IsSet reports whether a sequence is stored.
func (m *Memory) IsSet() bool {
	return m.Len() > 0
}
