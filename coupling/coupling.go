// SPDX-License-Identifier: MIT
//
// File: coupling.go
// Role: Map construction and read-only queries.
// Policy:
//   - No mutation after New; every getter returns fresh slices.
//   - Validation errors are sentinels wrapped with the offending pair.

package coupling

import (
	"fmt"
	"sort"
	"strings"
)

// New builds a coupling map from edges.
//
// Duplicate couplings, in either orientation, are collapsed; the first-seen
// orientation is retained. The qubit count is max(index)+1 unless a larger
// count is requested via WithNumQubits.
//
// Errors:
//   - ErrOptionViolation: negative WithNumQubits.
//   - ErrNegativeQubit:   an edge endpoint < 0.
//   - ErrSelfLoop:        an edge u→u.
//   - ErrQubitOutOfRange: an endpoint >= WithNumQubits(n).
//
// Complexity: O(V + E log E).
func New(edges []Edge, opts ...Option) (*Map, error) {
	var cfg mapConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// Stage 1: validate endpoints and derive the qubit count.
	derived := 0
	for _, e := range edges {
		if e.From < 0 || e.To < 0 {
			return nil, fmt.Errorf("coupling: edge (%d, %d): %w", e.From, e.To, ErrNegativeQubit)
		}
		if e.From == e.To {
			return nil, fmt.Errorf("coupling: edge (%d, %d): %w", e.From, e.To, ErrSelfLoop)
		}
		derived = max(derived, e.From+1, e.To+1)
	}
	n := derived
	if cfg.numQubits > 0 || len(edges) == 0 {
		if derived > cfg.numQubits {
			return nil, fmt.Errorf("coupling: index %d with %d qubits: %w",
				derived-1, cfg.numQubits, ErrQubitOutOfRange)
		}
		n = cfg.numQubits
	}

	// Stage 2: collapse duplicates, keep first-seen order.
	m := &Map{
		numQubits: n,
		couplings: make([]Edge, 0, len(edges)),
		adj:       make([][]int, n),
		index:     make(map[pairKey]struct{}, len(edges)),
	}
	for _, e := range edges {
		k := keyOf(e.From, e.To)
		if _, seen := m.index[k]; seen {
			continue
		}
		m.index[k] = struct{}{}
		m.couplings = append(m.couplings, e)
		m.adj[e.From] = append(m.adj[e.From], e.To)
		m.adj[e.To] = append(m.adj[e.To], e.From)
	}

	// Stage 3: sort neighbor lists for deterministic traversal.
	for q := range m.adj {
		sort.Ints(m.adj[q])
	}

	return m, nil
}

// NumQubits returns the number of qubits (vertices) of the map.
func (m *Map) NumQubits() int { return m.numQubits }

// NumCouplings returns the number of unordered couplings.
func (m *Map) NumCouplings() int { return len(m.couplings) }

// Edges returns every coupling in both orientations: (u,v),(v,u) for each
// coupling in insertion order.
// Complexity: O(E).
func (m *Map) Edges() []Edge {
	out := make([]Edge, 0, 2*len(m.couplings))
	for _, e := range m.couplings {
		out = append(out, e, e.Reverse())
	}

	return out
}

// Couplings returns each unordered coupling once, in its stored orientation.
func (m *Map) Couplings() []Edge {
	out := make([]Edge, len(m.couplings))
	copy(out, m.couplings)

	return out
}

// HasEdge reports whether u and v are coupled (orientation ignored).
// Out-of-range indices simply report false.
func (m *Map) HasEdge(u, v int) bool {
	_, ok := m.index[keyOf(u, v)]
	return ok
}

// Neighbors returns the qubits coupled to q in ascending order.
func (m *Map) Neighbors(q int) ([]int, error) {
	if q < 0 || q >= m.numQubits {
		return nil, fmt.Errorf("coupling: Neighbors(%d): %w", q, ErrQubitOutOfRange)
	}
	out := make([]int, len(m.adj[q]))
	copy(out, m.adj[q])

	return out, nil
}

// Degree returns the number of couplings incident to q, or 0 if q is out of range.
func (m *Map) Degree(q int) int {
	if q < 0 || q >= m.numQubits {
		return 0
	}
	return len(m.adj[q])
}

// PhysicalQubits returns, in ascending order, the qubits that take part in
// at least one coupling.
func (m *Map) PhysicalQubits() []int {
	out := make([]int, 0, m.numQubits)
	for q, nbrs := range m.adj {
		if len(nbrs) > 0 {
			out = append(out, q)
		}
	}

	return out
}

// String renders the adjacency list in enumeration order,
// e.g. "[[0, 1], [1, 0], [1, 2], [2, 1]]".
func (m *Map) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range m.Edges() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "[%d, %d]", e.From, e.To)
	}
	sb.WriteByte(']')

	return sb.String()
}
