// SPDX-License-Identifier: MIT
// Package: kmeanslab/builder
//
// impl_circles.go — circular clusters with Poisson-disk-spaced centers.
//
// Canonical model:
//   • Centers: rejection sampling. Propose (x, y) uniform in [R, amount−R)²
//     and accept iff the distance to every accepted center is ≥ 2R.
//   • Points: floor(amount/circles) per center, area-uniform inside the disk:
//     θ ∼ U[0, 2π), r = R·√U, p = center + r·(cos θ, sin θ).
//
// Contract:
//   • amount ≥ 1, circles ≥ 1, else ErrBadSize.
//   • amount > 2R (non-empty candidate range), else ErrBadSize.
//   • cfg.rng must be non-nil, else ErrNeedRandSource.
//   • If cfg.maxAttempts > 0 and more than that many proposals are rejected,
//     ErrConstructFailed. With the default (0) the loop is unbounded and the
//     caller must size circles against amount.
//
// Complexity:
//   • Centers: O(A·c) where A is the number of proposals.
//   • Points:  O(amount).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kmeanslab/geom"
)

// File-local constants (no magic literals).
const (
	separationFactor = 2.0         // accepted centers are ≥ separationFactor·R apart
	fullTurn         = 2 * math.Pi // angle domain [0, 2π)
)

// CirclePoints returns floor(amount/circles) points around each of `circles`
// disk centers, together with the accepted centers in acceptance order.
func CirclePoints(amount, circles int, opts ...BuilderOption) ([]geom.Point, []geom.Centroid, error) {
	return circlePoints(amount, circles, newBuilderConfig(opts...))
}

func circlePoints(amount, circles int, cfg builderConfig) ([]geom.Point, []geom.Centroid, error) {
	if err := validateMin(MethodCirclePoints, "amount", amount, MinAmount); err != nil {
		return nil, nil, err
	}
	if err := validateMin(MethodCirclePoints, "circles", circles, MinClusters); err != nil {
		return nil, nil, err
	}
	if span := float64(amount) - separationFactor*cfg.radius; span <= 0 {
		return nil, nil, fmt.Errorf("%s: amount=%d leaves no room for radius %.2f: %w",
			MethodCirclePoints, amount, cfg.radius, ErrBadSize)
	}
	if err := validateRNG(MethodCirclePoints, cfg); err != nil {
		return nil, nil, err
	}

	centers, err := circleCenters(amount, circles, cfg)
	if err != nil {
		return nil, nil, err
	}

	perCircle := amount / circles
	out := make([]geom.Point, 0, perCircle*circles)
	for _, c := range centers {
		for i := 0; i < perCircle; i++ {
			angle := cfg.rng.Float64() * fullTurn
			r := cfg.radius * math.Sqrt(cfg.rng.Float64())
			out = append(out, geom.NewPoint(c.X+r*math.Cos(angle), c.Y+r*math.Sin(angle)))
		}
	}

	return out, centers, nil
}

// circleCenters runs the rejection loop. Parameters are already validated.
func circleCenters(amount, circles int, cfg builderConfig) ([]geom.Centroid, error) {
	lo := cfg.radius
	span := float64(amount) - separationFactor*cfg.radius
	minSep := separationFactor * cfg.radius

	centers := make([]geom.Centroid, 0, circles)
	rejected := 0
	for len(centers) < circles {
		cand := geom.Centroid{
			X: lo + cfg.rng.Float64()*span,
			Y: lo + cfg.rng.Float64()*span,
		}

		if farFromAll(cand, centers, minSep) {
			centers = append(centers, cand)
			continue
		}

		rejected++
		if cfg.maxAttempts > 0 && rejected > cfg.maxAttempts {
			return nil, fmt.Errorf("%s: accepted %d of %d centers after %d rejections: %w",
				MethodCirclePoints, len(centers), circles, rejected, ErrConstructFailed)
		}
	}

	return centers, nil
}

// farFromAll reports whether cand is at least minSep from every accepted center.
func farFromAll(cand geom.Centroid, accepted []geom.Centroid, minSep float64) bool {
	for _, c := range accepted {
		if geom.DistanceXY(cand.X, cand.Y, c.X, c.Y) < minSep {
			return false
		}
	}

	return true
}
