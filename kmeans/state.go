// SPDX-License-Identifier: MIT
// Package: kmeanslab/kmeans
//
// state.go — State of a Run and its textual names.
//
// Contract:
//   • String and ParseState round-trip ("uninitialized", "assigned", "updated",
//     "converged").
//   • Unknown names yield ErrUnknownState.

package kmeans

import (
	"errors"
	"fmt"
)

// State is the lifecycle position of a Run.
type State int

const (
	// Uninitialized: no assignment has run; every point is Unassigned.
	Uninitialized State = iota
	// Assigned: the last step labelled the points.
	Assigned
	// Updated: the last step moved the centroids.
	Updated
	// Converged: an Assign after an Update changed no label.
	Converged
)

var stateNames = [...]string{
	Uninitialized: "uninitialized",
	Assigned:      "assigned",
	Updated:       "updated",
	Converged:     "converged",
}

// String returns the lower-case state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// ErrUnknownState is returned by ParseState for unrecognised names.
var ErrUnknownState = errors.New("kmeans: unknown state")

// ParseState is the inverse of State.String.
func ParseState(name string) (State, error) {
	for s, n := range stateNames {
		if n == name {
			return State(s), nil
		}
	}
	return Uninitialized, fmt.Errorf("ParseState(%q): %w", name, ErrUnknownState)
}
