// SPDX-License-Identifier: MIT
//
// File: distance.go
// Role: derived reachability data: distance matrix, possible edges, missing couplings.
// Policy:
//   - Computed once under sync.Once on first access; results are never mutated.
//   - Accessors hand out copies or read-only views.

package swapstrategy

import (
	"sort"

	"github.com/katalvlaran/swapstrat/coupling"
	"github.com/katalvlaran/swapstrat/matrix"
)

// DistanceMatrix returns the read-only V×V matrix whose entry (i, j) is the
// smallest number of layers after which qubits i and j are adjacent.
//
// For k = 0..Len() every edge (i, j) of SwappedCouplingMap(k) that has no
// distance yet receives k (on both (i,j) and (j,i)); the first adjacency wins.
// The diagonal is 0. Pairs never made adjacent also read 0: consult
// MissingCouplings or HasPossibleEdge to tell them apart.
func (s *SwapStrategy) DistanceMatrix() *matrix.View {
	s.derive()
	return s.distance
}

// PossibleEdges returns every ordered pair (i, j), i != j, that is an edge of
// SwappedCouplingMap(k) for some k in 0..Len(), sorted by (From, To).
func (s *SwapStrategy) PossibleEdges() []coupling.Edge {
	s.derive()
	out := make([]coupling.Edge, 0, len(s.possible))
	for e := range s.possible {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// HasPossibleEdge reports whether (i, j) is among PossibleEdges.
func (s *SwapStrategy) HasPossibleEdge(i, j int) bool {
	s.derive()
	_, ok := s.possible[coupling.Edge{From: i, To: j}]
	return ok
}

// MissingCouplings returns the ordered pairs (i, j), i != j, of physical
// qubits (qubits with at least one coupling) that no layer prefix makes
// adjacent, sorted by (From, To). An empty result means the strategy reaches
// full connectivity within its layers.
func (s *SwapStrategy) MissingCouplings() []coupling.Edge {
	s.derive()
	return append([]coupling.Edge(nil), s.missing...)
}

// ReachesFullConnectivity reports whether MissingCouplings is empty.
func (s *SwapStrategy) ReachesFullConnectivity() bool {
	s.derive()
	return len(s.missing) == 0
}

// derive fills distance, possible and missing exactly once.
func (s *SwapStrategy) derive() {
	s.once.Do(func() {
		n := s.graph.NumQubits()
		dist, _ := matrix.NewDense(n, n) // n >= 0 always
		assigned := make([]bool, n*n)
		for i := 0; i < n; i++ {
			assigned[i*n+i] = true
		}

		possible := make(map[coupling.Edge]struct{})
		for k := 0; k <= len(s.layers); k++ {
			// inverse[k] is a permutation of [0,n) by construction; Relabel cannot fail.
			swapped, err := s.graph.Relabel(s.inverse[k])
			if err != nil {
				continue
			}
			for _, e := range swapped.Edges() {
				possible[e] = struct{}{}
				if assigned[e.From*n+e.To] {
					continue
				}
				assigned[e.From*n+e.To] = true
				assigned[e.To*n+e.From] = true
				_ = dist.Set(e.From, e.To, k)
				_ = dist.Set(e.To, e.From, k)
			}
		}

		physical := s.graph.PhysicalQubits()
		var missing []coupling.Edge
		for _, i := range physical {
			for _, j := range physical {
				if i == j {
					continue
				}
				if _, ok := possible[coupling.Edge{From: i, To: j}]; !ok {
					missing = append(missing, coupling.Edge{From: i, To: j})
				}
			}
		}

		s.distance = dist.ReadOnly()
		s.possible = possible
		s.missing = missing
	})
}

func sortEdges(es []coupling.Edge) {
	sort.Slice(es, func(a, b int) bool {
		if es[a].From != es[b].From {
			return es[a].From < es[b].From
		}
		return es[a].To < es[b].To
	})
}
