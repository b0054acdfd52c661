// SPDX-License-Identifier: MIT
// Package: kmeanslab/session
//
// options.go — functional options for New. Constructors panic on nil.

package session

import (
	"log/slog"

	"github.com/katalvlaran/kmeanslab/builder"
	"github.com/katalvlaran/kmeanslab/initial"
)

// Option customizes a Session.
type Option func(*Session)

// WithLogger sets the session logger; runs log through it at debug level.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}
	return func(s *Session) {
		s.logger = l
	}
}

// WithMemory shares an initial-centroid memory with the session.
// Panics on nil.
func WithMemory(m *initial.Memory) Option {
	if m == nil {
		panic("session: WithMemory(nil)")
	}
	return func(s *Session) {
		s.memory = m
	}
}

// WithBuilderOptions appends generator options (canvas, radius, attempts).
// They are applied after the session's own random source, so a WithSeed or
// WithRand here takes precedence.
func WithBuilderOptions(opts ...builder.BuilderOption) Option {
	return func(s *Session) {
		s.builderOpts = append(s.builderOpts, opts...)
	}
}
