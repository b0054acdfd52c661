// SPDX-License-Identifier: MIT
// Package: kmeanslab/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` and the generator name.
//   • Generators MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrBadSize indicates that a size parameter (amount, k, circles) is below
// the generator's minimum, or that the canvas derived from it is empty.
// Usage: if errors.Is(err, ErrBadSize) { /* fix amount/k */ }.
var ErrBadSize = errors.New("builder: invalid size")

// ErrNeedRandSource indicates that a stochastic generator was called without
// a random source (WithSeed or WithRand).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that rejection sampling exhausted the attempt
// cap set by WithMaxAttempts before accepting every disk center.
// Usage: if errors.Is(err, ErrConstructFailed) { /* fewer circles or more room */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownDistribution indicates an unsupported Distribution value or name.
var ErrUnknownDistribution = errors.New("builder: unknown distribution")
