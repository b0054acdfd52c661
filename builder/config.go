// SPDX-License-Identifier: MIT
// Package: kmeanslab/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng            = nil                 (stochastic generators require a seed)
//   • canvas         = geom.DefaultCanvas() (700×600, origin 10,10)
//   • radius         = DefaultRadius        (8)
//   • varianceFactor = DefaultVarianceFactor (0.02)
//   • maxAttempts    = DefaultMaxAttempts   (0, unbounded)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/kmeanslab/geom"
)

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Canvas bounds used by the grid lattice.
	canvas geom.Canvas
	// Disk radius for circular clusters (>0).
	radius float64
	// Gaussian variance factor (>0).
	varianceFactor float64
	// Rejection-sampling cap; 0 = unbounded.
	maxAttempts int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:            nil,
		canvas:         geom.DefaultCanvas(),
		radius:         DefaultRadius,
		varianceFactor: DefaultVarianceFactor,
		maxAttempts:    DefaultMaxAttempts,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
