// SPDX-License-Identifier: MIT
// Package: kmeanslab/builder
//
// impl_uniform.go — uniform random points and centroids.
//
// Contract:
//   • amount ≥ 1 (and k ≥ 1 for centroids), else ErrBadSize.
//   • cfg.rng must be non-nil, else ErrNeedRandSource.
//   • Coordinates are integers drawn uniformly from [0, amount) per axis,
//     x before y for every sample.
//
// Complexity:
//   • Time: O(n) draws. Space: O(n) for the output slice.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/kmeanslab/geom"
)

// UniformPoints returns amount points with integer coordinates in [0, amount).
func UniformPoints(amount int, opts ...BuilderOption) ([]geom.Point, error) {
	return uniformPoints(amount, newBuilderConfig(opts...))
}

// UniformCentroids returns k centroids with integer coordinates in [0, amount).
// They are drawn independently of any point set, so they need not coincide
// with a data point.
func UniformCentroids(k, amount int, opts ...BuilderOption) ([]geom.Centroid, error) {
	return uniformCentroids(MethodUniformCentroids, k, amount, newBuilderConfig(opts...))
}

func uniformPoints(amount int, cfg builderConfig) ([]geom.Point, error) {
	if err := validateMin(MethodUniformPoints, "amount", amount, MinAmount); err != nil {
		return nil, err
	}
	if err := validateRNG(MethodUniformPoints, cfg); err != nil {
		return nil, err
	}

	out := make([]geom.Point, amount)
	for i := range out {
		x, y := uniformXY(cfg.rng, amount)
		out[i] = geom.NewPoint(x, y)
	}

	return out, nil
}

// uniformCentroids takes the calling method so that GaussianPoints reports
// its own name when its center draw fails.
func uniformCentroids(method string, k, amount int, cfg builderConfig) ([]geom.Centroid, error) {
	if err := validateMin(method, "k", k, MinClusters); err != nil {
		return nil, err
	}
	if err := validateMin(method, "amount", amount, MinAmount); err != nil {
		return nil, err
	}
	if err := validateRNG(method, cfg); err != nil {
		return nil, err
	}

	out := make([]geom.Centroid, k)
	for i := range out {
		x, y := uniformXY(cfg.rng, amount)
		out[i] = geom.Centroid{X: x, Y: y}
	}

	return out, nil
}

// uniformXY draws floor(U·bound) for x then y.
func uniformXY(rng *rand.Rand, bound int) (float64, float64) {
	x := float64(rng.Intn(bound))
	y := float64(rng.Intn(bound))

	return x, y
}
