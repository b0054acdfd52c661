package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmeanslab/geom"
)

// TestDistance checks the metric properties on a handful of fixed pairs.
func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b geom.Located
		want float64
	}{
		{"same point", geom.Centroid{X: 3, Y: 4}, geom.Centroid{X: 3, Y: 4}, 0},
		{"3-4-5", geom.Centroid{}, geom.Centroid{X: 3, Y: 4}, 5},
		{"point to centroid", geom.NewPoint(1, 1), geom.Centroid{X: 4, Y: 5}, 5},
		{"negative axis", geom.NewPoint(-1, 0), geom.NewPoint(1, 0), 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := geom.Distance(tc.a, tc.b)
			assert.InDelta(t, tc.want, got, 1e-12)
			assert.InDelta(t, got, geom.Distance(tc.b, tc.a), 1e-12, "distance must be symmetric")
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}

// TestDistanceXY_MatchesDistance ensures both entry points agree.
func TestDistanceXY_MatchesDistance(t *testing.T) {
	a, b := geom.NewPoint(12.5, -3), geom.Centroid{X: -7, Y: 9.25}
	assert.Equal(t, geom.Distance(a, b), geom.DistanceXY(a.X, a.Y, b.X, b.Y))
	assert.InDelta(t, math.Hypot(19.5, 12.25), geom.DistanceXY(a.X, a.Y, b.X, b.Y), 1e-9)
}

// TestAverage covers the empty policy, singletons and order invariance.
func TestAverage(t *testing.T) {
	assert.Equal(t, 0.0, geom.Average(nil), "nil input averages to 0")
	assert.Equal(t, 0.0, geom.Average([]float64{}), "empty input averages to 0")
	assert.Equal(t, 42.5, geom.Average([]float64{42.5}))
	assert.Equal(t, 2.0, geom.Average([]float64{1, 2, 3}))

	values := []float64{0.1, 7, 3.3, 1e3, -12, 5}
	reversed := make([]float64, len(values))
	for i, v := range values {
		reversed[len(values)-1-i] = v
	}
	assert.InDelta(t, geom.Average(values), geom.Average(reversed), 1e-9)
}

// TestClonesAreIndependent verifies that clones do not alias their source.
func TestClonesAreIndependent(t *testing.T) {
	ps := []geom.Point{geom.NewPoint(1, 2), geom.NewPoint(3, 4)}
	cp := geom.ClonePoints(ps)
	cp[0].X = 99
	assert.Equal(t, 1.0, ps[0].X)

	cs := []geom.Centroid{{X: 1, Y: 1}}
	cc := geom.CloneCentroids(cs)
	cc[0].Y = -1
	assert.Equal(t, 1.0, cs[0].Y)

	assert.Nil(t, geom.ClonePoints(nil))
	assert.Nil(t, geom.CloneCentroids(nil))
}

// TestResetClusters verifies that every label is cleared.
func TestResetClusters(t *testing.T) {
	ps := []geom.Point{{X: 1, Y: 1, Cluster: 0}, {X: 2, Y: 2, Cluster: 3}}
	geom.ResetClusters(ps)
	for _, p := range ps {
		require.False(t, p.Assigned())
		assert.Equal(t, geom.Unassigned, p.Cluster)
	}
}

// TestDefaultCanvas pins the documented canvas bounds.
func TestDefaultCanvas(t *testing.T) {
	c := geom.DefaultCanvas()
	assert.Equal(t, geom.Canvas{OriginX: 10, OriginY: 10, Width: 700, Height: 600}, c)
}
