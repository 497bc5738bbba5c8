// SPDX-License-Identifier: MIT

// Package swapstrategy computes and validates swap strategies: precomputed,
// layered sequences of qubit swaps that a routing pass replays to bring any
// pair of logical qubits into physical adjacency on a fixed coupling map.
//
// What
//
//   - A SwapStrategy owns a *coupling.Map and an ordered list of swap Layers.
//     Each Layer is a vertex-disjoint set of Swaps, every Swap a coupling of the map.
//   - New validates the layering; a failure is a *ConfigurationError naming the
//     layer index and the offending swap or qubit.
//   - InverseComposedPermutation(k) tells, for each physical position, which
//     original qubit sits there after layers 0..k-1. CumulativePermutation(k)
//     is its inverse (original qubit → current position).
//   - SwappedCouplingMap(k) is the coupling map relabeled by that permutation:
//     the pairs of original qubits that are adjacent after k layers.
//   - DistanceMatrix()[i][j] is the smallest k for which i and j are adjacent
//     in SwappedCouplingMap(k). The matrix is read-only.
//   - PossibleEdges() is the union of all swapped maps' edges; MissingCouplings()
//     lists the ordered pairs of physical qubits that never become adjacent.
//   - FromLine builds the odd-even transposition (brick-wall) strategy on a path.
//
// Reading the distance matrix
//
//	Pairs never made adjacent keep distance 0, the same value as pairs that are
//	adjacent from the start. Check MissingCouplings (or HasPossibleEdge) before
//	trusting a zero off-diagonal entry.
//
// Concurrency
//
//	A SwapStrategy is immutable after New. Derived data is computed once on
//	first use under sync.Once, so concurrent readers need no extra locking.
//	ApplySwapLayerInPlace mutates only the caller's slice.
//
// Complexity (V = qubits, E = couplings, L = layers)
//
//   - New:                        O(L·V + Σ|layer|)
//   - InverseComposedPermutation: O(V) (copy of a precomputed prefix)
//   - DistanceMatrix (first call): O(L·(V + E) + V²)
//
// Usage
//
//	s, err := swapstrategy.FromLine([]int{0, 1, 2, 3, 4})
//	if err != nil {
//		// ErrInvalidArgument or ErrConfiguration
//	}
//	d := s.DistanceMatrix()
//	k, _ := d.At(0, 4) // layers needed before qubits 0 and 4 are adjacent
//	if !s.ReachesFullConnectivity() {
//		fmt.Println(s.MissingCouplings())
//	}
package swapstrategy
