// SPDX-License-Identifier: MIT
// Package: kmeanslab/session
//
// Package session drives a k-means Run the way an interactive front end
// would: generate a dataset, step through Assign and Update one phase at a
// time, play the steps at a fixed rate, and remember the starting centroids
// across regenerations.
//
// Overview:
//
//	cfg := session.DefaultConfig()
//	cfg.Distribution = builder.Gaussian
//	s, err := session.New(cfg, session.WithLogger(logger))
//	if err != nil { ... }
//	err = s.Play(ctx, func(f session.Frame) error {
//	    return render.PNG(out, canvas, f.Points, f.Centroids, nil)
//	})
//
// Compare runs the same initial centroids over one dataset per seed in
// parallel and reports how each converged.
package session
