// SPDX-License-Identifier: MIT
// Package: kmeanslab/session
//
// session.go — Session: dataset generation, phase stepping and playback.
//
// Phases:
//   • Step advances exactly one phase: Assign when the run is Uninitialized or
//     Updated, Update when it is Assigned, nothing once Converged.
//   • Play repeats Step until Done, emitting a Frame after every phase.

package session

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/kmeanslab/builder"
	"github.com/katalvlaran/kmeanslab/geom"
	"github.com/katalvlaran/kmeanslab/initial"
	"github.com/katalvlaran/kmeanslab/kmeans"
	"github.com/katalvlaran/kmeanslab/snapshot"
)

// Frame is a copy of the run after one phase.
type Frame struct {
	Iteration int          // completed Update steps
	Phase     kmeans.State // state the phase left the run in
	Changed   int          // points relabelled (Assign phases only)
	Inertia   float64
	Points    []geom.Point
	Centroids []geom.Centroid
}

// Session owns one Run at a time and the random stream that feeds it.
type Session struct {
	cfg    Config
	rng    *rand.Rand
	run    *kmeans.Run
	memory *initial.Memory
	logger *slog.Logger

	builderOpts []builder.BuilderOption
}

// New validates cfg and generates the first dataset.
func New(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.memory == nil {
		s.memory = initial.New()
	}

	if err := s.Regenerate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Regenerate draws the next dataset from the session's random stream and
// starts a fresh run over it.
func (s *Session) Regenerate() error {
	opts := append([]builder.BuilderOption{builder.WithRand(s.rng)}, s.builderOpts...)
	ds, err := builder.Generate(s.cfg.Distribution, s.cfg.Amount, s.cfg.K, opts...)
	if err != nil {
		return fmt.Errorf("session: regenerate: %w", err)
	}

	s.run = kmeans.NewRun(ds.Points, ds.Centroids, s.runOptions()...)
	s.logger.Info("dataset generated",
		"distribution", s.cfg.Distribution.String(),
		"points", len(ds.Points),
		"k", s.cfg.K,
		"remembered", s.cfg.KeepInitialCentroids && s.memory.IsSet(),
	)

	return nil
}

func (s *Session) runOptions() []kmeans.Option {
	opts := []kmeans.Option{kmeans.WithLogger(s.logger)}
	if s.cfg.KeepInitialCentroids {
		opts = append(opts, kmeans.WithMemory(s.memory))
	}
	return opts
}

// Step advances one phase and returns the resulting frame.
func (s *Session) Step() Frame {
	changed := 0
	switch s.run.State() {
	case kmeans.Uninitialized, kmeans.Updated:
		changed = s.run.Assign()
	case kmeans.Assigned:
		s.run.Update()
	}

	return s.frame(changed)
}

// Done reports whether Play would stop: the run converged or reached
// MaxIterations.
func (s *Session) Done() bool {
	return s.run.State() == kmeans.Converged || s.run.Iteration() >= s.cfg.MaxIterations
}

// Play steps until Done, calling onFrame after every phase. A positive
// StepsPerSecond paces the phases. Play returns the context error on
// cancellation and the first error returned by onFrame.
func (s *Session) Play(ctx context.Context, onFrame func(Frame) error) error {
	var limiter *rate.Limiter
	if s.cfg.StepsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(s.cfg.StepsPerSecond), 1)
	}

	phases := 0
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
		}

		f := s.Step()
		phases++
		if onFrame != nil {
			if err := onFrame(f); err != nil {
				return err
			}
		}
	}

	s.logger.Info("play finished",
		"phases", phases,
		"iterations", s.run.Iteration(),
		"converged", s.run.State() == kmeans.Converged,
		"inertia", s.run.Inertia(),
	)

	return nil
}

// Restart rewinds the current dataset to its starting centroids.
func (s *Session) Restart() {
	s.run.Restart()
}

// ResetInitialCentroids forgets the remembered centroids; the next
// Regenerate remembers its own.
func (s *Session) ResetInitialCentroids() {
	s.memory.Clear()
}

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// Run exposes the current run.
func (s *Session) Run() *kmeans.Run { return s.run }

// Memory returns the initial-centroid memory.
func (s *Session) Memory() *initial.Memory { return s.memory }

// Frame returns a frame for the current state without stepping.
func (s *Session) Frame() Frame { return s.frame(0) }

func (s *Session) frame(changed int) Frame {
	return Frame{
		Iteration: s.run.Iteration(),
		Phase:     s.run.State(),
		Changed:   changed,
		Inertia:   s.run.Inertia(),
		Points:    geom.ClonePoints(s.run.Points()),
		Centroids: geom.CloneCentroids(s.run.Centroids()),
	}
}

// State captures the session for a snapshot.
func (s *Session) State() snapshot.State {
	return snapshot.State{
		Version:      snapshot.Version,
		Distribution: s.cfg.Distribution,
		Amount:       s.cfg.Amount,
		K:            s.cfg.K,
		Seed:         s.cfg.Seed,
		Iteration:    s.run.Iteration(),
		Phase:        s.run.State().String(),
		Points:       geom.ClonePoints(s.run.Points()),
		Centroids:    geom.CloneCentroids(s.run.Centroids()),
		Initial:      s.run.InitialCentroids(),
	}
}

// Restore replaces the current run with the one recorded in st. The session
// keeps its MaxIterations, pacing and memory settings; a remembered start of
// another k is forgotten. The random stream is reseeded from st.Seed.
func (s *Session) Restore(st snapshot.State) error {
	phase, err := kmeans.ParseState(st.Phase)
	if err != nil {
		return fmt.Errorf("session: restore: %w", err)
	}
	if len(st.Centroids) == 0 {
		return fmt.Errorf("%w: snapshot has no centroids", ErrInvalidConfig)
	}

	cfg := s.cfg
	cfg.Distribution = st.Distribution
	cfg.Amount = st.Amount
	cfg.K = len(st.Centroids)
	cfg.Seed = st.Seed
	if err := cfg.Validate(); err != nil {
		return err
	}

	if n := s.memory.Len(); n > 0 && n != cfg.K {
		s.memory.Clear()
	}

	s.cfg = cfg
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.run = kmeans.ResumeRun(
		geom.ClonePoints(st.Points),
		geom.CloneCentroids(st.Centroids),
		st.Initial,
		st.Iteration,
		phase,
		kmeans.WithLogger(s.logger),
	)
	s.logger.Info("session restored", "iteration", st.Iteration, "phase", phase.String())

	return nil
}
