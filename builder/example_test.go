package builder_test

import (
	"fmt"

	"github.com/katalvlaran/kmeanslab/builder"
)

// ExampleGridPoints shows the lattice for ten points on the default canvas.
func ExampleGridPoints() {
	pts, _ := builder.GridPoints(10)
	for _, p := range pts[:5] {
		fmt.Printf("(%.0f,%.0f) ", p.X, p.Y)
	}
	fmt.Println(len(pts))
	// Output:
	// (0,0) (0,150) (0,300) (0,450) (175,0) 10
}

// ExampleParseDistribution maps config names to generators.
func ExampleParseDistribution() {
	d, err := builder.ParseDistribution("circles")
	fmt.Println(d, err)
	// Output:
	// circles <nil>
}
