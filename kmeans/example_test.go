package kmeans_test

import (
	"fmt"

	"github.com/katalvlaran/kmeanslab/geom"
	"github.com/katalvlaran/kmeanslab/kmeans"
)

// ExampleRun_Converge clusters two obvious groups.
func ExampleRun_Converge() {
	pts := []geom.Point{
		geom.NewPoint(0, 0), geom.NewPoint(2, 0),
		geom.NewPoint(10, 10), geom.NewPoint(12, 10),
	}
	r := kmeans.NewRun(pts, []geom.Centroid{{X: 0, Y: 0}, {X: 12, Y: 10}})

	steps, ok := r.Converge(10)
	fmt.Println(steps, ok, r.Centroids())
	// Output:
	// 2 true [{1 0} {11 10}]
}

// ExampleUpdate shows the origin collapse of an empty cluster.
func ExampleUpdate() {
	pts := []geom.Point{{X: 4, Y: 6, Cluster: 0}}
	cs := []geom.Centroid{{X: 1, Y: 1}, {X: 9, Y: 9}}
	kmeans.Update(pts, cs)
	fmt.Println(cs)
	// Output:
	// [{4 6} {0 0}]
}
