// SPDX-License-Identifier: MIT
// Package: kmeanslab/builder
//
// api.go — the Distribution enum and the Generate dispatcher.
//
// Design contract (strict):
//   • One orchestrator: Generate(dist, amount, k, opts...). Resolves cfg once,
//     draws the points, then draws independent initial centroids from the
//     same RNG stream.
//   • Public generators live in impl_*.go.
//   • Determinism: same inputs/options/seed ⇒ identical Dataset.
//   • Safety: never panic; return sentinel errors wrapped with "Generate: %w".

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/kmeanslab/geom"
)

// Distribution selects a point generator.
type Distribution int

const (
	// Uniform draws integer coordinates ∼U[0, amount).
	Uniform Distribution = iota
	// Circles places area-uniform points in k separated disks.
	Circles
	// Gaussian places normal blobs around k uniform centers.
	Gaussian
	// Grid lays points on a canvas-spanning lattice.
	Grid
)

var distributionNames = [...]string{
	Uniform:  "uniform",
	Circles:  "circles",
	Gaussian: "gaussian",
	Grid:     "grid",
}

// String returns the lower-case name used in configs and snapshots.
func (d Distribution) String() string {
	if d < 0 || int(d) >= len(distributionNames) {
		return fmt.Sprintf("Distribution(%d)", int(d))
	}
	return distributionNames[d]
}

// Distributions lists every supported distribution in declaration order.
func Distributions() []Distribution {
	return []Distribution{Uniform, Circles, Gaussian, Grid}
}

// ParseDistribution maps a case-insensitive name to a Distribution.
func ParseDistribution(name string) (Distribution, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range distributionNames {
		if s == n {
			return Distribution(i), nil
		}
	}

	return Uniform, fmt.Errorf("ParseDistribution(%q): %w", name, ErrUnknownDistribution)
}

// MarshalText implements encoding.TextMarshaler.
func (d Distribution) MarshalText() ([]byte, error) {
	if d < 0 || int(d) >= len(distributionNames) {
		return nil, fmt.Errorf("MarshalText(%d): %w", int(d), ErrUnknownDistribution)
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Distribution) UnmarshalText(text []byte) error {
	v, err := ParseDistribution(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Dataset is a generated point set paired with k initial centroids.
type Dataset struct {
	Points    []geom.Point
	Centroids []geom.Centroid
}

// Generate draws the points for dist and then k uniform random initial
// centroids over [0, amount). For Circles the circle count is k.
//
// Errors:
//   - ErrBadSize, ErrNeedRandSource, ErrConstructFailed from the generators.
//   - ErrUnknownDistribution for values outside the enum.
func Generate(dist Distribution, amount, k int, opts ...BuilderOption) (Dataset, error) {
	cfg := newBuilderConfig(opts...)

	// Validate k up front so that Grid (which ignores k) still rejects k < 1.
	if err := validateMin(MethodGenerate, "k", k, MinClusters); err != nil {
		return Dataset{}, err
	}

	var (
		points []geom.Point
		err    error
	)
	switch dist {
	case Uniform:
		points, err = uniformPoints(amount, cfg)
	case Circles:
		points, _, err = circlePoints(amount, k, cfg)
	case Gaussian:
		points, _, err = gaussianPoints(amount, k, cfg)
	case Grid:
		points, err = gridPoints(amount, cfg)
	default:
		return Dataset{}, fmt.Errorf("%s: %d: %w", MethodGenerate, int(dist), ErrUnknownDistribution)
	}
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	centroids, err := uniformCentroids(MethodUniformCentroids, k, amount, cfg)
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	return Dataset{Points: points, Centroids: centroids}, nil
}
