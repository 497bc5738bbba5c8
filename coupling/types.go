// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge, Map, options and sentinel errors of the coupling package.

package coupling

import "errors"

// Sentinel errors for coupling map construction and queries.
var (
	// ErrNegativeQubit indicates a coupling referenced a negative qubit index.
	ErrNegativeQubit = errors.New("coupling: negative qubit index")

	// ErrSelfLoop indicates a coupling of a qubit with itself.
	ErrSelfLoop = errors.New("coupling: self-loop not allowed")

	// ErrQubitOutOfRange indicates a qubit index outside [0, NumQubits).
	ErrQubitOutOfRange = errors.New("coupling: qubit index out of range")

	// ErrMappingSize indicates a relabeling slice whose length differs from NumQubits.
	ErrMappingSize = errors.New("coupling: mapping length mismatch")

	// ErrTooFewQubits indicates a line, ring or grid below its minimum size.
	ErrTooFewQubits = errors.New("coupling: too few qubits")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("coupling: invalid option supplied")
)

// Edge is an ordered qubit pair From→To.
// Couplings are undirected; Edge only fixes the orientation used for enumeration.
type Edge struct {
	From int
	To   int
}

// Reverse returns the same coupling in the opposite orientation.
func (e Edge) Reverse() Edge { return Edge{From: e.To, To: e.From} }

// pairKey is the normalized {min,max} form of a coupling, used for O(1) membership.
type pairKey struct {
	lo int
	hi int
}

func keyOf(u, v int) pairKey {
	if u > v {
		u, v = v, u
	}
	return pairKey{lo: u, hi: v}
}

// Option configures a Map before construction.
type Option func(*mapConfig)

type mapConfig struct {
	numQubits int // 0 means "derive from edges"
	err       error
}

// WithNumQubits fixes the qubit count, allowing isolated trailing qubits.
// A negative n is recorded and surfaced by New as ErrOptionViolation.
func WithNumQubits(n int) Option {
	return func(c *mapConfig) {
		if n < 0 {
			c.err = ErrOptionViolation
			return
		}
		c.numQubits = n
	}
}

// Map is an immutable undirected coupling map over qubits 0..numQubits-1.
type Map struct {
	numQubits int

	// couplings holds each unordered coupling once, in first-seen orientation and order.
	couplings []Edge

	// adj[q] lists the neighbors of q in ascending order.
	adj [][]int

	index map[pairKey]struct{}
}
