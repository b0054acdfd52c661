// Package builder provides validation helpers to enforce parameter
// contracts in the generators.
//
// Each function returns an error wrapping a sentinel with the generator
// name as prefix when its precondition is violated.
package builder

import "fmt"

// validateMin ensures that got ≥ min, wrapping ErrBadSize otherwise.
//
// Parameters:
//   - method: generator name constant, e.g. MethodGridPoints.
//   - name:   parameter name for the message ("amount", "k", "circles").
//   - got:    actual value supplied by the caller.
//   - min:    minimal acceptable value.
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrBadSize)
	}

	return nil
}

// validateRNG ensures that a stochastic generator has a random source.
func validateRNG(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}
