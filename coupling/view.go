// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating derived maps (relabeling through a qubit mapping).
// Determinism:
//   - Preserves enumeration order: the i-th coupling of the result is the
//     image of the i-th coupling of the source.

package coupling

import "fmt"

// Relabel returns a new Map in which every coupling (u,v) becomes
// (mapping[u], mapping[v]). The receiver is not mutated.
//
// mapping must have exactly NumQubits() entries, each in [0, NumQubits()).
// mapping is usually a permutation; if it is not, couplings that collapse
// onto one pair are merged and pairs mapped onto a single qubit are rejected.
//
// Complexity: O(V + E).
func (m *Map) Relabel(mapping []int) (*Map, error) {
	if len(mapping) != m.numQubits {
		return nil, fmt.Errorf("coupling: Relabel: len(mapping)=%d, qubits=%d: %w",
			len(mapping), m.numQubits, ErrMappingSize)
	}
	for i, q := range mapping {
		if q < 0 || q >= m.numQubits {
			return nil, fmt.Errorf("coupling: Relabel: mapping[%d]=%d: %w", i, q, ErrQubitOutOfRange)
		}
	}

	edges := make([]Edge, len(m.couplings))
	for i, e := range m.couplings {
		edges[i] = Edge{From: mapping[e.From], To: mapping[e.To]}
	}

	return New(edges, WithNumQubits(m.numQubits))
}
