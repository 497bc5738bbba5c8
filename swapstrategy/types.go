// SPDX-License-Identifier: MIT

package swapstrategy

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/swapstrat/coupling"
	"github.com/katalvlaran/swapstrat/matrix"
)

// Swap is an unordered pair of physical qubits exchanged by one swap gate.
type Swap [2]int

// String renders the swap as "(a, b)".
func (s Swap) String() string { return fmt.Sprintf("(%d, %d)", s[0], s[1]) }

// Layer is a set of vertex-disjoint swaps applied simultaneously.
// Order is preserved as given; it carries no meaning for the permutation.
type Layer []Swap

// String renders the layer as a nested tuple: "((0, 1), (2, 3))",
// "((0, 1),)" for a single swap and "()" when empty.
func (l Layer) String() string {
	switch len(l) {
	case 0:
		return "()"
	case 1:
		return "(" + l[0].String() + ",)"
	}
	out := "("
	for i, s := range l {
		if i > 0 {
			out += ", "
		}
		out += s.String()
	}

	return out + ")"
}

// pairs converts the layer into the [][2]int form used by perm.Swap.
func (l Layer) pairs() [][2]int {
	out := make([][2]int, len(l))
	for i, s := range l {
		out[i] = s
	}

	return out
}

// SwapStrategy is an immutable, validated swap strategy over a coupling map.
type SwapStrategy struct {
	graph  *coupling.Map
	layers []Layer

	// inverse[k] is the inverse composed permutation after k layers, k = 0..len(layers).
	inverse [][]int

	// derived quantities, computed once on first access
	once     sync.Once
	distance *matrix.View
	possible map[coupling.Edge]struct{}
	missing  []coupling.Edge
}
