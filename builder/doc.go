// Package builder provides reproducible synthetic 2-D datasets for the
// k-means engine, configured with “functional-options”-style knobs.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:      a function that mutates builderConfig before use.
//     – builderConfig:      holds RNG, canvas, disk radius, variance factor, attempt cap.
//   - Point generators (all points start with Cluster == geom.Unassigned):
//     – UniformPoints:      integer coordinates ∼U[0, amount) per axis.
//     – UniformCentroids:   k centroids drawn the same way, independently.
//     – CirclePoints:       Poisson-disk-spaced disks, area-uniform samples inside.
//     – GaussianPoints:     blobs ∼N(center, amount·varianceFactor) per axis.
//     – GridPoints:         row-major lattice over the canvas, exactly amount points.
//   - Dispatcher:
//     – Distribution:       Uniform, Circles, Gaussian, Grid (+ ParseDistribution).
//     – Generate:           points for a distribution plus independent initial centroids.
//   - Validation helpers:
//     – validateMin:        ensure integer ≥ minimum.
//     – validateRNG:        ensure a random source was configured.
//
// Guarantees:
//
//   - Determinism: same inputs, same seed and same options ⇒ identical datasets.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Generators never panic; they return sentinel errors wrapped with the
//     generator name (ErrBadSize, ErrNeedRandSource, ErrConstructFailed).
//
// Precondition (CirclePoints): the candidate square [R, amount−R)² must be able
// to hold `circles` disks whose centers are ≥ 2R apart. Otherwise rejection
// sampling never terminates unless WithMaxAttempts bounds it.
package builder
