// SPDX-License-Identifier: MIT

// Package coupling defines Map, the immutable undirected coupling map of a
// quantum device: the set of physical qubit pairs that may interact.
//
// What
//
//   - Qubits are dense integer indices 0..NumQubits()-1.
//   - A coupling is an unordered pair {u,v}; adding (u,v) and (v,u) yields one coupling.
//   - Edges() enumerates every coupling in both orientations, in insertion order,
//     which is the order used by String() and by every derived map.
//   - Relabel(mapping) produces the coupling map seen through a qubit permutation;
//     swap strategies use it to express adjacency after k swap layers.
//   - Line, Ring and Grid build the common device layouts.
//
// Determinism
//
//	Enumeration order is fixed at construction (first-seen order of couplings),
//	so String(), Edges() and Relabel() are reproducible for equal inputs.
//
// Concurrency
//
//	A Map is never mutated after New returns. Any number of goroutines may read it.
//
// Complexity (V = NumQubits, E = couplings)
//
//   - New:        O(V + E log E)
//   - HasEdge:    O(1)
//   - Neighbors:  O(deg)
//   - Relabel:    O(V + E)
//
// Usage
//
//	m, err := coupling.New([]coupling.Edge{{0, 1}, {1, 2}})
//	if err != nil {
//		// ErrNegativeQubit, ErrSelfLoop, ErrQubitOutOfRange, ErrOptionViolation
//	}
//	fmt.Println(m) // [[0, 1], [1, 0], [1, 2], [2, 1]]
package coupling
