// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/kmeanslab/geom"
)

// TestConfigDefaults pins the documented defaults.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng, "no rng unless seeded")
	assert.Equal(t, geom.DefaultCanvas(), cfg.canvas)
	assert.Equal(t, DefaultRadius, cfg.radius)
	assert.Equal(t, DefaultVarianceFactor, cfg.varianceFactor)
	assert.Equal(t, DefaultMaxAttempts, cfg.maxAttempts)
}

// TestRNGOptions verifies reproducibility with WithSeed and last-wins order.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(99))
	b := newBuilderConfig(WithSeed(99))
	assert.Equal(t, a.rng.Int63(), b.rng.Int63(), "equal seeds must give equal streams")

	r := rand.New(rand.NewSource(1))
	c := newBuilderConfig(WithSeed(5), WithRand(r))
	assert.Same(t, r, c.rng, "WithRand after WithSeed must win")
}

// TestOptionOverrides checks that every knob lands in builderConfig.
func TestOptionOverrides(t *testing.T) {
	t.Parallel()

	cv := geom.Canvas{OriginX: 1, OriginY: 2, Width: 3, Height: 4}
	cfg := newBuilderConfig(WithCanvas(cv), WithRadius(3), WithVarianceFactor(0.5), WithMaxAttempts(10))
	assert.Equal(t, cv, cfg.canvas)
	assert.Equal(t, 3.0, cfg.radius)
	assert.Equal(t, 0.5, cfg.varianceFactor)
	assert.Equal(t, 10, cfg.maxAttempts)
}

// TestOptionPanics verifies that option constructors fail fast.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithRadius(0) })
	assert.Panics(t, func() { WithVarianceFactor(-1) })
	assert.Panics(t, func() { WithMaxAttempts(-1) })
	assert.Panics(t, func() { WithCanvas(geom.Canvas{Width: 0, Height: 10}) })
	assert.NotPanics(t, func() { WithMaxAttempts(0) })
}
