// SPDX-License-Identifier: MIT
// Package: kmeanslab/kmeans
//
// run.go — Run: one dataset, k centroids and the step state machine.
//
// Ownership:
//   • NewRun takes ownership of the points and centroids slices; callers must
//     not mutate them except through the Run.
//   • Observers return the live slices (Points, Centroids) for cheap
//     per-frame reads, or fresh bitmaps (Changed, Members).

package kmeans

import (
	"log/slog"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/kmeanslab/geom"
	"github.com/katalvlaran/kmeanslab/initial"
)

// Run is the unit of clustering: a dataset paired with k centroids.
type Run struct {
	points    []geom.Point
	centroids []geom.Centroid
	start     []geom.Centroid // copy of the starting centroids, for Restart

	state     State
	iteration int             // completed Update steps
	changed   *roaring.Bitmap // indices relabelled by the last Assign

	memory *initial.Memory
	logger *slog.Logger
}

// NewRun builds a Run over points and centroids. Every point is reset to
// Unassigned so the run starts Uninitialized.
func NewRun(points []geom.Point, centroids []geom.Centroid, opts ...Option) *Run {
	r := &Run{
		points:    points,
		centroids: centroids,
		state:     Uninitialized,
		changed:   roaring.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
	}

	if r.memory != nil {
		r.memory.Set(r.centroids)
		stored := r.memory.Centroids()
		switch {
		case len(stored) == len(r.centroids):
			r.centroids = stored
		case len(stored) > 0:
			// k is fixed by the caller; a memory of another size is left alone.
			r.logger.Debug("remembered centroids skipped", "remembered", len(stored), "k", len(r.centroids))
		}
	}
	r.start = geom.CloneCentroids(r.centroids)
	geom.ResetClusters(r.points)

	r.logger.Debug("run created", "points", len(r.points), "k", len(r.centroids))

	return r
}

// ResumeRun rebuilds a Run from saved progress. Unlike NewRun it keeps the
// point labels as given; start is the centroid set Restart returns to and
// defaults to a copy of centroids when empty. Memory options are ignored.
func ResumeRun(points []geom.Point, centroids, start []geom.Centroid, iteration int, state State, opts ...Option) *Run {
	r := &Run{
		points:    points,
		centroids: centroids,
		state:     state,
		iteration: iteration,
		changed:   roaring.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
	}
	r.memory = nil

	if len(start) == len(centroids) {
		r.start = geom.CloneCentroids(start)
	} else {
		r.start = geom.CloneCentroids(centroids)
	}

	r.logger.Debug("run resumed", "points", len(r.points), "k", len(r.centroids), "iteration", iteration, "state", state.String())

	return r
}

// Assign performs the assignment step and returns the number of relabelled
// points. An Assign directly after an Update (or in Converged) that changes
// nothing moves the run to Converged.
func (r *Run) Assign() int {
	r.changed.Clear()
	for i := range r.points {
		c := Nearest(r.points[i], r.centroids)
		if r.points[i].Cluster != c {
			r.points[i].Cluster = c
			r.changed.Add(uint32(i))
		}
	}

	n := int(r.changed.GetCardinality())
	if n == 0 && (r.state == Updated || r.state == Converged) {
		r.state = Converged
	} else {
		r.state = Assigned
	}

	r.logger.Debug("assign", "iteration", r.iteration, "changed", n, "state", r.state.String())

	return n
}

// Update performs the update step.
func (r *Run) Update() {
	Update(r.points, r.centroids)
	r.iteration++
	r.state = Updated

	r.logger.Debug("update", "iteration", r.iteration)
}

// Step runs Assign and, unless that converged the run, Update. It returns the
// number of relabelled points.
func (r *Run) Step() int {
	n := r.Assign()
	if r.state != Converged {
		r.Update()
	}

	return n
}

// Iterate performs exactly n Assign/Update pairs regardless of convergence and
// returns the number of points relabelled by the last Assign.
func (r *Run) Iterate(n int) int {
	last := 0
	for i := 0; i < n; i++ {
		last = r.Assign()
		r.Update()
	}

	return last
}

// Converge steps until an Assign changes nothing or maxIter steps have run.
// It returns the number of steps taken and whether the run converged.
func (r *Run) Converge(maxIter int) (int, bool) {
	steps := 0
	for steps < maxIter && r.state != Converged {
		r.Step()
		steps++
	}

	converged := r.state == Converged
	r.logger.Debug("converge finished", "steps", steps, "converged", converged, "inertia", r.Inertia())

	return steps, converged
}

// Restart resets every label and restores the starting centroids.
func (r *Run) Restart() {
	copy(r.centroids, r.start)
	geom.ResetClusters(r.points)
	r.changed.Clear()
	r.iteration = 0
	r.state = Uninitialized
}

// Points returns the run's live point slice.
func (r *Run) Points() []geom.Point { return r.points }

// Centroids returns the run's live centroid slice.
func (r *Run) Centroids() []geom.Centroid { return r.centroids }

// InitialCentroids returns a copy of the centroids the run started from.
func (r *Run) InitialCentroids() []geom.Centroid { return geom.CloneCentroids(r.start) }

// State returns the current lifecycle state.
func (r *Run) State() State { return r.state }

// Iteration returns the number of completed Update steps.
func (r *Run) Iteration() int { return r.iteration }

// K returns the number of centroids.
func (r *Run) K() int { return len(r.centroids) }

// Changed returns a copy of the indices relabelled by the last Assign.
func (r *Run) Changed() *roaring.Bitmap { return r.changed.Clone() }

// Members returns the indices of the points currently assigned to centroid c.
func (r *Run) Members(c int) *roaring.Bitmap {
	bm := roaring.New()
	for i, p := range r.points {
		if p.Cluster == c {
			bm.Add(uint32(i))
		}
	}

	return bm
}

// Sizes returns the number of points assigned to each centroid.
func (r *Run) Sizes() []int {
	sizes := make([]int, len(r.centroids))
	for _, p := range r.points {
		if p.Cluster >= 0 && p.Cluster < len(sizes) {
			sizes[p.Cluster]++
		}
	}

	return sizes
}

// Inertia returns the within-cluster sum of squared distances.
func (r *Run) Inertia() float64 { return Inertia(r.points, r.centroids) }
