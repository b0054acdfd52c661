// SPDX-License-Identifier: MIT
// Package: kmeanslab/geom
//
// math.go — Euclidean distance and the empty-safe mean.

package geom

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Distance returns the Euclidean distance between a and b.
// Symmetric, non-negative, and zero iff both coordinates coincide.
func Distance(a, b Located) float64 {
	ax, ay := a.XY()
	bx, by := b.XY()

	return DistanceXY(ax, ay, bx, by)
}

// DistanceXY is Distance on raw coordinates; it keeps hot loops free of
// interface conversions.
func DistanceXY(ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay

	return math.Sqrt(dx*dx + dy*dy)
}

// Average returns the arithmetic mean of values, or 0 for an empty slice.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	return stat.Mean(values, nil)
}
