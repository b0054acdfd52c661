// SPDX-License-Identifier: MIT
// Package: kmeanslab/kmeans
//
// options.go — functional options for NewRun.

package kmeans

import (
	"log/slog"

	"github.com/katalvlaran/kmeanslab/initial"
)

// Option customizes a Run at construction time.
type Option func(*Run)

// WithLogger attaches a structured logger; steps log at debug level.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("kmeans: WithLogger(nil)")
	}
	return func(r *Run) {
		r.logger = l
	}
}

// WithMemory makes the run prefer remembered initial centroids. The run first
// offers its own centroids to m (first-write-wins) and then starts from a
// copy of whatever m holds, provided it has the same k. A memory holding a
// different number of centroids is ignored. Panics on nil.
func WithMemory(m *initial.Memory) Option {
	if m == nil {
		panic("kmeans: WithMemory(nil)")
	}
	return func(r *Run) {
		r.memory = m
	}
}
