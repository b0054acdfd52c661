// SPDX-License-Identifier: MIT
// Package: kmeanslab/render
//
// png.go — PNG rendering of one frame with gogpu/gg.
//
// Drawing order: points coloured by cluster (grey when unassigned), then
// centroids as crosses on top.

package render

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/kmeanslab/geom"
)

// Options controls PNG rendering.
type Options struct {
	PointRadius  float64 // radius of a data point
	CentroidSize float64 // half-length of a centroid cross arm
	LineWidth    float64 // stroke width of crosses
	Background   gg.RGBA
	Unassigned   gg.RGBA // colour of points without a cluster
}

// DefaultOptions returns the standard look: small dots on white.
func DefaultOptions() Options {
	return Options{
		PointRadius:  3,
		CentroidSize: 8,
		LineWidth:    3,
		Background:   gg.White,
		Unassigned:   gg.RGB(0.6, 0.6, 0.6),
	}
}

// Palette returns k evenly spaced hues.
func Palette(k int) []gg.RGBA {
	if k <= 0 {
		return nil
	}
	colors := make([]gg.RGBA, k)
	for i := range colors {
		colors[i] = gg.HSL(360*float64(i)/float64(k), 0.7, 0.45)
	}
	return colors
}

// PNG draws one frame and writes it to w. The image spans the canvas plus a
// margin of its origin on every side; every coordinate is shifted by the
// origin. A nil opts uses DefaultOptions.
func PNG(w io.Writer, cv geom.Canvas, points []geom.Point, centroids []geom.Centroid, opts *Options) error {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	width := int(cv.Width + 2*cv.OriginX)
	height := int(cv.Height + 2*cv.OriginY)
	if width <= 0 || height <= 0 {
		return fmt.Errorf("render: empty canvas %vx%v", cv.Width, cv.Height)
	}

	dc := gg.NewContext(width, height)
	defer dc.Close()
	dc.ClearWithColor(o.Background)

	palette := Palette(len(centroids))
	for _, p := range points {
		if p.Assigned() && p.Cluster < len(palette) {
			dc.SetColor(palette[p.Cluster].Color())
		} else {
			dc.SetColor(o.Unassigned.Color())
		}
		dc.DrawCircle(cv.OriginX+p.X, cv.OriginY+p.Y, o.PointRadius)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("render: point: %w", err)
		}
	}

	dc.SetLineWidth(o.LineWidth)
	for i, c := range centroids {
		x, y := cv.OriginX+c.X, cv.OriginY+c.Y
		dc.SetColor(palette[i].Color())
		dc.DrawLine(x-o.CentroidSize, y-o.CentroidSize, x+o.CentroidSize, y+o.CentroidSize)
		dc.DrawLine(x-o.CentroidSize, y+o.CentroidSize, x+o.CentroidSize, y-o.CentroidSize)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("render: centroid: %w", err)
		}
	}

	return dc.EncodePNG(w)
}
