// Package builder defines shared constants used by the generators, ensuring
// consistent defaults and validation across all distributions.
package builder

//-----------------------------------------------------------------------------
// Generator Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodUniformPoints is the canonical name for the UniformPoints generator.
	MethodUniformPoints = "UniformPoints"
	// MethodUniformCentroids is the canonical name for the UniformCentroids generator.
	MethodUniformCentroids = "UniformCentroids"
	// MethodCirclePoints is the canonical name for the CirclePoints generator.
	MethodCirclePoints = "CirclePoints"
	// MethodGaussianPoints is the canonical name for the GaussianPoints generator.
	MethodGaussianPoints = "GaussianPoints"
	// MethodGridPoints is the canonical name for the GridPoints generator.
	MethodGridPoints = "GridPoints"
	// MethodGenerate is the canonical name for the Generate dispatcher.
	MethodGenerate = "Generate"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinAmount is the smallest data-point amount any generator accepts.
const MinAmount = 1

// MinClusters is the smallest cluster (or circle) count. k == 0 has no
// meaningful nearest-centroid lookup.
const MinClusters = 1

//-----------------------------------------------------------------------------
// Distribution Defaults
//-----------------------------------------------------------------------------

// DefaultRadius is the disk radius R used by CirclePoints. Accepted centers
// are at least 2R apart.
const DefaultRadius = 8.0

// DefaultVarianceFactor scales the gaussian variance: σ² = amount · factor.
const DefaultVarianceFactor = 0.02

// DefaultMaxAttempts of 0 leaves rejection sampling unbounded.
const DefaultMaxAttempts = 0
