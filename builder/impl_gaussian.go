// SPDX-License-Identifier: MIT
// Package: kmeanslab/builder
//
// impl_gaussian.go — gaussian blobs around uniform random centers.
//
// Canonical model:
//   • k centers via the uniform-centroid strategy (same RNG stream).
//   • floor(amount/k) points per center; each axis is center + σ·N(0,1)
//     with σ = √(amount · varianceFactor).
//   • The dataset may hold fewer than amount points when k ∤ amount.
//
// Contract:
//   • amount ≥ 1, k ≥ 1, else ErrBadSize.
//   • cfg.rng must be non-nil, else ErrNeedRandSource.
//
// Complexity:
//   • Time: O(k + amount). Space: O(amount).

package builder

import (
	"math"

	"github.com/katalvlaran/kmeanslab/geom"
)

// GaussianPoints returns floor(amount/k) normally distributed points around
// each of k uniform random centers, together with those centers.
func GaussianPoints(amount, k int, opts ...BuilderOption) ([]geom.Point, []geom.Centroid, error) {
	return gaussianPoints(amount, k, newBuilderConfig(opts...))
}

func gaussianPoints(amount, k int, cfg builderConfig) ([]geom.Point, []geom.Centroid, error) {
	if err := validateMin(MethodGaussianPoints, "amount", amount, MinAmount); err != nil {
		return nil, nil, err
	}

	centers, err := uniformCentroids(MethodGaussianPoints, k, amount, cfg)
	if err != nil {
		return nil, nil, err
	}

	sigma := math.Sqrt(float64(amount) * cfg.varianceFactor)
	perCluster := amount / k

	out := make([]geom.Point, 0, perCluster*k)
	for _, c := range centers {
		for i := 0; i < perCluster; i++ {
			x := c.X + sigma*cfg.rng.NormFloat64()
			y := c.Y + sigma*cfg.rng.NormFloat64()
			out = append(out, geom.NewPoint(x, y))
		}
	}

	return out, centers, nil
}
