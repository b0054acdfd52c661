// SPDX-License-Identifier: MIT
// Package: kmeanslab/kmeans
//
// kmeans.go — the stateless assignment and update steps.
//
// Contract:
//   • Explicit parameters only; no step reads enclosing or package state.
//   • Assign mutates Cluster fields in place and never moves points.
//   • Update overwrites centroid coordinates in place.
//   • Neither step panics nor returns errors.

package kmeans

import (
	"math"

	"github.com/katalvlaran/kmeanslab/geom"
)

// Nearest returns the index of the centroid closest to p. Ties resolve to the
// lowest index. It returns geom.Unassigned when centroids is empty.
// Complexity: O(k).
func Nearest(p geom.Point, centroids []geom.Centroid) int {
	best := geom.Unassigned
	minDist := math.Inf(1)

	for j, c := range centroids {
		d := geom.DistanceXY(c.X, c.Y, p.X, p.Y)
		// Strict comparison keeps the first occurrence of the minimum.
		if d < minDist {
			minDist = d
			best = j
		}
	}

	return best
}

// Assign labels every point with its nearest centroid and returns the number
// of points whose label changed.
// Complexity: O(n·k).
func Assign(points []geom.Point, centroids []geom.Centroid) int {
	changed := 0
	for i := range points {
		c := Nearest(points[i], centroids)
		if points[i].Cluster != c {
			points[i].Cluster = c
			changed++
		}
	}

	return changed
}

// Update moves every centroid to the component-wise mean of the points
// currently assigned to it. A centroid with no points moves to (0,0).
// Points with labels outside [0, k) are ignored.
// Complexity: O(n + k) time, O(n) scratch.
func Update(points []geom.Point, centroids []geom.Centroid) {
	k := len(centroids)
	if k == 0 {
		return
	}

	xs := make([][]float64, k)
	ys := make([][]float64, k)
	for _, p := range points {
		if p.Cluster < 0 || p.Cluster >= k {
			continue
		}
		xs[p.Cluster] = append(xs[p.Cluster], p.X)
		ys[p.Cluster] = append(ys[p.Cluster], p.Y)
	}

	for c := range centroids {
		centroids[c] = geom.Centroid{
			X: geom.Average(xs[c]),
			Y: geom.Average(ys[c]),
		}
	}
}

// Inertia returns the sum of squared distances between every assigned point
// and its centroid. Unassigned points contribute nothing.
// Complexity: O(n).
func Inertia(points []geom.Point, centroids []geom.Centroid) float64 {
	var sum float64
	for _, p := range points {
		if p.Cluster < 0 || p.Cluster >= len(centroids) {
			continue
		}
		c := centroids[p.Cluster]
		d := geom.DistanceXY(p.X, p.Y, c.X, c.Y)
		sum += d * d
	}

	return sum
}
