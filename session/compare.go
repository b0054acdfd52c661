// SPDX-License-Identifier: MIT
// Package: kmeanslab/session
//
// compare.go — Compare: one clustering per seed from shared starting centroids.
//
// Contract:
//   • Results are returned in seed order regardless of scheduling.
//   • An empty memory is primed from the first seed's dataset.
//   • A memory whose size differs from cfg.K is ErrInvalidConfig.

package session

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/kmeanslab/builder"
	"github.com/katalvlaran/kmeanslab/initial"
	"github.com/katalvlaran/kmeanslab/kmeans"
)

// Result summarises one converged run of Compare.
type Result struct {
	Seed       int64
	Iterations int
	Converged  bool
	Inertia    float64
	Sizes      []int
}

// Compare generates one dataset per seed and converges each in its own
// goroutine, all from the same starting centroids. When mem is empty it is
// primed with the first seed's centroids before any worker starts, so the
// outcome does not depend on scheduling. A nil mem uses a private memory; a
// mem holding a number of centroids other than cfg.K is rejected.
// Results are returned in seed order.
func Compare(ctx context.Context, cfg Config, seeds []int64, mem *initial.Memory, opts ...builder.BuilderOption) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(seeds) == 0 {
		return nil, nil
	}
	if mem == nil {
		mem = initial.New()
	}
	if n := mem.Len(); n > 0 && n != cfg.K {
		return nil, fmt.Errorf("%w: memory holds %d centroids, k is %d", ErrInvalidConfig, n, cfg.K)
	}

	generate := func(seed int64) (builder.Dataset, error) {
		all := append([]builder.BuilderOption{builder.WithSeed(seed)}, opts...)
		ds, err := builder.Generate(cfg.Distribution, cfg.Amount, cfg.K, all...)
		if err != nil {
			return builder.Dataset{}, fmt.Errorf("session: compare seed %d: %w", seed, err)
		}
		return ds, nil
	}

	if !mem.IsSet() {
		ds, err := generate(seeds[0])
		if err != nil {
			return nil, err
		}
		mem.Set(ds.Centroids)
	}

	results := make([]Result, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ds, err := generate(seed)
			if err != nil {
				return err
			}

			run := kmeans.NewRun(ds.Points, ds.Centroids, kmeans.WithMemory(mem))
			steps := 0
			for steps < cfg.MaxIterations && run.State() != kmeans.Converged {
				if err := ctx.Err(); err != nil {
					return err
				}
				run.Step()
				steps++
			}

			results[i] = Result{
				Seed:       seed,
				Iterations: run.Iteration(),
				Converged:  run.State() == kmeans.Converged,
				Inertia:    run.Inertia(),
				Sizes:      run.Sizes(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
