// SPDX-License-Identifier: MIT
// Package: kmeanslab/builder
//
// impl_grid.go — implementation of GridPoints(amount).
//
// Canonical model:
//   • gridSize = ⌈√amount⌉ cells per side.
//   • Row-major enumeration (i asc, then j asc) placing a point at
//     (i·W/gridSize, j·H/gridSize) with W, H from cfg.canvas.
//   • The stop check runs per inner iteration: once amount points exist the
//     remaining cells are skipped, while the outer loop still runs to
//     completion. The output length is exactly amount.
//
// Contract:
//   • amount ≥ 1, else ErrBadSize. No RNG needed.
//
// Complexity:
//   • Time: O(gridSize²) = O(amount). Space: O(amount).

package builder

import (
	"math"

	"github.com/katalvlaran/kmeanslab/geom"
)

// GridPoints returns exactly amount points on a ⌈√amount⌉-sided lattice
// spanning the configured canvas.
func GridPoints(amount int, opts ...BuilderOption) ([]geom.Point, error) {
	return gridPoints(amount, newBuilderConfig(opts...))
}

func gridPoints(amount int, cfg builderConfig) ([]geom.Point, error) {
	if err := validateMin(MethodGridPoints, "amount", amount, MinAmount); err != nil {
		return nil, err
	}

	gridSize := int(math.Ceil(math.Sqrt(float64(amount))))
	cells := float64(gridSize)

	out := make([]geom.Point, 0, amount)
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			if len(out) >= amount {
				continue
			}
			out = append(out, geom.NewPoint(float64(i)*cfg.canvas.Width/cells, float64(j)*cfg.canvas.Height/cells))
		}
	}

	return out, nil
}
