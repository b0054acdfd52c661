// SPDX-License-Identifier: MIT
// Package: kmeanslab/session
//
// config.go — Config, DefaultConfig and Validate.

package session

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kmeanslab/builder"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("session: invalid config")

// Config describes one session.
type Config struct {
	Distribution builder.Distribution
	Amount       int   // requested number of points
	K            int   // number of centroids (and circles/blobs)
	Seed         int64 // seeds the dataset stream

	// MaxIterations caps the Update steps Play will run.
	MaxIterations int
	// StepsPerSecond paces Play; 0 runs unthrottled.
	StepsPerSecond float64
	// KeepInitialCentroids reuses the first run's starting centroids on every
	// Regenerate until ResetInitialCentroids is called.
	KeepInitialCentroids bool
}

// DefaultConfig returns a small uniform session.
func DefaultConfig() Config {
	return Config{
		Distribution:  builder.Uniform,
		Amount:        300,
		K:             3,
		Seed:          1,
		MaxIterations: 100,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Amount < 1:
		return fmt.Errorf("%w: amount %d < 1", ErrInvalidConfig, c.Amount)
	case c.K < 1:
		return fmt.Errorf("%w: k %d < 1", ErrInvalidConfig, c.K)
	case c.MaxIterations < 1:
		return fmt.Errorf("%w: max iterations %d < 1", ErrInvalidConfig, c.MaxIterations)
	case c.StepsPerSecond < 0:
		return fmt.Errorf("%w: steps per second %g < 0", ErrInvalidConfig, c.StepsPerSecond)
	}
	return nil
}
