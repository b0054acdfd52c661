// SPDX-License-Identifier: MIT
// Package: kmeanslab/geom
//
// types.go — Point, Centroid and Canvas value types.

package geom

// Unassigned marks a point that has not been labelled by an assignment step.
const Unassigned = -1

// Canvas defaults (no magic numbers at call sites).
const (
	DefaultOriginX = 10.0
	DefaultOriginY = 10.0
	DefaultWidth   = 700.0
	DefaultHeight  = 600.0
)

// Located is anything with plane coordinates.
type Located interface {
	XY() (x, y float64)
}

// Point is a single data sample. Cluster holds the index of the nearest
// centroid at the most recent assignment step, or Unassigned.
type Point struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Cluster int     `json:"cluster"`
}

// NewPoint returns an unassigned point at (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y, Cluster: Unassigned}
}

// XY implements Located.
func (p Point) XY() (float64, float64) { return p.X, p.Y }

// Assigned reports whether the point carries a cluster label.
func (p Point) Assigned() bool { return p.Cluster != Unassigned }

// Centroid is the representative point of a cluster.
type Centroid struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// XY implements Located.
func (c Centroid) XY() (float64, float64) { return c.X, c.Y }

// Canvas describes the drawing area. Only the grid generator uses Width and
// Height for spacing; the origin offset is applied by renderers.
type Canvas struct {
	OriginX float64 `json:"origin_x" yaml:"origin_x"`
	OriginY float64 `json:"origin_y" yaml:"origin_y"`
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`
}

// DefaultCanvas returns the 700×600 canvas with a (10,10) origin offset.
func DefaultCanvas() Canvas {
	return Canvas{
		OriginX: DefaultOriginX,
		OriginY: DefaultOriginY,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
	}
}

// ClonePoints returns an independent copy of ps (nil stays nil).
func ClonePoints(ps []Point) []Point {
	if ps == nil {
		return nil
	}
	out := make([]Point, len(ps))
	copy(out, ps)
	return out
}

// CloneCentroids returns an independent copy of cs (nil stays nil).
func CloneCentroids(cs []Centroid) []Centroid {
	if cs == nil {
		return nil
	}
	out := make([]Centroid, len(cs))
	copy(out, cs)
	return out
}

// ResetClusters marks every point as Unassigned in place.
func ResetClusters(ps []Point) {
	for i := range ps {
		ps[i].Cluster = Unassigned
	}
}
