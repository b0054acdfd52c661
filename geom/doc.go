// Package geom holds the plane primitives shared by the generators and the
// clustering engine: points, centroids, the drawing canvas and the two
// numeric helpers every k-means step is built from.
//
// What:
//
//   - Point:    a data sample {X, Y, Cluster}; Cluster is Unassigned until
//     the first assignment step labels it.
//   - Centroid: a cluster representative {X, Y}.
//   - Canvas:   fixed drawing bounds (origin offset, width, height).
//   - Distance: Euclidean distance in the plane.
//   - Average:  arithmetic mean with an explicit empty-input policy (0).
//
// Complexity:
//
//   - Distance: O(1).
//   - Average:  O(n) time, O(1) memory.
//
// All functions are pure; none of them allocate except the Clone helpers.
package geom
