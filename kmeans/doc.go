// Package kmeans implements Lloyd's k-means over 2-D points as a sequence of
// independently invokable steps, so a caller can observe every intermediate
// assignment.
//
// 🚀 Steps:
//
//	Assign — label every point with the index of its nearest centroid
//	         (lowest index wins ties).
//	Update — move every centroid to the mean of its assigned points; a
//	         centroid with no points collapses to the origin (0,0).
//
// ✨ Run state machine:
//
//	Uninitialized ─Assign→ Assigned ─Update→ Updated ─Assign→ Assigned
//	                                                 └──────→ Converged
//	                                         (Assign changed no label)
//
// Termination is the caller's choice: Iterate(n) performs n Assign/Update
// pairs, Converge(max) steps until an Assign changes nothing.
//
// Degenerate inputs never fail: k == 0 leaves every point Unassigned and an
// empty dataset sends every centroid to the origin. Callers validate their
// configuration beforehand.
//
// Performance:
//
//   - Assign: O(n·k) time, O(|changed|) extra memory (roaring bitmap).
//   - Update: O(n + k) time, O(n) scratch memory.
//
// A Run is not safe for concurrent use; it owns its points and centroids.
package kmeans
