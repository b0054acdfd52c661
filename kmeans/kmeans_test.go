package kmeans_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmeanslab/builder"
	"github.com/katalvlaran/kmeanslab/geom"
	"github.com/katalvlaran/kmeanslab/kmeans"
)

// TestNearest_TiesLowestIndex verifies the first-minimum tie-break.
func TestNearest_TiesLowestIndex(t *testing.T) {
	cs := []geom.Centroid{{X: -1, Y: 0}, {X: 1, Y: 0}, {X: -1, Y: 0}}
	assert.Equal(t, 0, kmeans.Nearest(geom.NewPoint(0, 0), cs), "equidistant centroids resolve to index 0")
	assert.Equal(t, 1, kmeans.Nearest(geom.NewPoint(0.5, 0), cs))
	assert.Equal(t, geom.Unassigned, kmeans.Nearest(geom.NewPoint(0, 0), nil))
}

// TestAssign_Minimizer checks the minimizer property on a random dataset.
func TestAssign_Minimizer(t *testing.T) {
	ds, err := builder.Generate(builder.Uniform, 300, 5, builder.WithSeed(3))
	require.NoError(t, err)

	changed := kmeans.Assign(ds.Points, ds.Centroids)
	assert.Equal(t, len(ds.Points), changed, "every unset point gets a label")

	for i, p := range ds.Points {
		require.True(t, p.Cluster >= 0 && p.Cluster < len(ds.Centroids), "point %d label %d", i, p.Cluster)
		own := geom.Distance(p, ds.Centroids[p.Cluster])
		for j, c := range ds.Centroids {
			d := geom.Distance(p, c)
			assert.False(t, d < own, "point %d: centroid %d is strictly closer than %d", i, j, p.Cluster)
			if d == own {
				assert.LessOrEqual(t, p.Cluster, j, "point %d: tie must resolve to lowest index", i)
			}
		}
	}

	assert.Equal(t, 0, kmeans.Assign(ds.Points, ds.Centroids), "re-assigning without moving centroids changes nothing")
}

// TestAssign_NoCentroids leaves every point unassigned.
func TestAssign_NoCentroids(t *testing.T) {
	pts := []geom.Point{geom.NewPoint(1, 1), geom.NewPoint(2, 2)}
	assert.Equal(t, 0, kmeans.Assign(pts, nil))
	for _, p := range pts {
		assert.False(t, p.Assigned())
	}
}

// TestUpdate_MeansAndEmptyClusters verifies the mean and origin-collapse rules.
func TestUpdate_MeansAndEmptyClusters(t *testing.T) {
	pts := []geom.Point{
		{X: 0, Y: 0, Cluster: 0},
		{X: 2, Y: 4, Cluster: 0},
		{X: 10, Y: 10, Cluster: 1},
		{X: 5, Y: 5, Cluster: geom.Unassigned},
	}
	cs := []geom.Centroid{{X: 50, Y: 50}, {X: 60, Y: 60}, {X: 70, Y: 70}}

	kmeans.Update(pts, cs)

	assert.InDelta(t, 1.0, cs[0].X, 1e-12)
	assert.InDelta(t, 2.0, cs[0].Y, 1e-12)
	assert.Equal(t, geom.Centroid{X: 10, Y: 10}, cs[1])
	assert.Equal(t, geom.Centroid{}, cs[2], "a centroid with no points collapses to the origin")
}

// TestUpdate_EmptyDataset sends every centroid to the origin.
func TestUpdate_EmptyDataset(t *testing.T) {
	cs := []geom.Centroid{{X: 3, Y: 3}, {X: 4, Y: 4}}
	kmeans.Update(nil, cs)
	assert.Equal(t, []geom.Centroid{{}, {}}, cs)

	assert.NotPanics(t, func() { kmeans.Update([]geom.Point{{X: 1, Cluster: 0}}, nil) })
}

// TestInertia sums squared distances of assigned points only.
func TestInertia(t *testing.T) {
	pts := []geom.Point{
		{X: 3, Y: 4, Cluster: 0},
		{X: 1, Y: 0, Cluster: 1},
		{X: 9, Y: 9, Cluster: geom.Unassigned},
	}
	cs := []geom.Centroid{{}, {X: 0, Y: 0}}
	assert.InDelta(t, 26.0, kmeans.Inertia(pts, cs), 1e-12)
}
