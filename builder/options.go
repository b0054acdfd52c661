// SPDX-License-Identifier: MIT
// Package: kmeanslab/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/kmeanslab/geom"
)

// BuilderOption customizes a generator by mutating a builderConfig instance
// before sampling begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic generators.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCanvas sets the canvas used by GridPoints for lattice spacing.
// Panics if width or height is not positive.
func WithCanvas(cv geom.Canvas) BuilderOption {
	if cv.Width <= 0 || cv.Height <= 0 {
		panic("builder: WithCanvas(width<=0 || height<=0)")
	}
	return func(c *builderConfig) {
		c.canvas = cv
	}
}

// WithRadius sets the disk radius R for CirclePoints. Panics if R <= 0.
func WithRadius(r float64) BuilderOption {
	if r <= 0 {
		panic("builder: WithRadius(r<=0)")
	}
	return func(c *builderConfig) {
		c.radius = r
	}
}

// WithVarianceFactor sets f in σ² = amount·f for GaussianPoints.
// Panics if f <= 0.
func WithVarianceFactor(f float64) BuilderOption {
	if f <= 0 {
		panic("builder: WithVarianceFactor(f<=0)")
	}
	return func(c *builderConfig) {
		c.varianceFactor = f
	}
}

// WithMaxAttempts caps the number of rejected disk-center proposals in
// CirclePoints. 0 means unbounded. Panics if n < 0.
func WithMaxAttempts(n int) BuilderOption {
	if n < 0 {
		panic("builder: WithMaxAttempts(n<0)")
	}
	return func(c *builderConfig) {
		c.maxAttempts = n
	}
}
