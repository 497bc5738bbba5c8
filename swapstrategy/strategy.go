// SPDX-License-Identifier: MIT
//
// File: strategy.go
// Role: construction, validation and plain accessors of SwapStrategy.

package swapstrategy

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/swapstrat/coupling"
	"github.com/katalvlaran/swapstrat/perm"
)

// New validates layers against m and returns an immutable SwapStrategy.
// The layers are copied; later changes to the argument have no effect.
//
// Validation, per layer k and per swap in order:
//   - both qubits in [0, m.NumQubits())       else ErrQubitOutOfRange
//   - the swap is a coupling of m              else ErrNotAnEdge
//   - no qubit already used by a previous swap of layer k  else ErrMultipleSwaps
//
// Every such failure is a *ConfigurationError; it also matches ErrConfiguration.
//
// Complexity: O(L·V + Σ|layer|).
func New(m *coupling.Map, layers []Layer) (*SwapStrategy, error) {
	if m == nil {
		return nil, ErrNilCouplingMap
	}

	n := m.NumQubits()
	owned := make([]Layer, len(layers))
	used := make([]int, n) // used[q] == k+1 when q is swapped in layer k
	for k, layer := range layers {
		for _, sw := range layer {
			if err := validateSwap(m, k, sw, used); err != nil {
				return nil, err
			}
		}
		owned[k] = append(Layer(nil), layer...)
	}

	s := &SwapStrategy{graph: m, layers: owned}
	s.inverse = composePrefixes(n, owned)

	return s, nil
}

// validateSwap checks one swap of layer k and marks its qubits in used.
func validateSwap(m *coupling.Map, k int, sw Swap, used []int) error {
	for _, q := range sw {
		if q < 0 || q >= m.NumQubits() {
			return &ConfigurationError{Layer: k, Swap: sw, Qubit: q, Reason: ErrQubitOutOfRange}
		}
	}
	if !m.HasEdge(sw[0], sw[1]) {
		return &ConfigurationError{Layer: k, Swap: sw, Qubit: -1, Reason: ErrNotAnEdge}
	}
	for _, q := range sw {
		if used[q] == k+1 {
			return &ConfigurationError{Layer: k, Swap: sw, Qubit: q, Reason: ErrMultipleSwaps}
		}
		used[q] = k + 1
	}

	return nil
}

// composePrefixes returns inverse[k] for k = 0..len(layers): the identity with
// layers 0..k-1 applied to it in order.
func composePrefixes(n int, layers []Layer) [][]int {
	out := make([][]int, len(layers)+1)
	out[0] = perm.Identity(n)
	for k, layer := range layers {
		next := append([]int(nil), out[k]...)
		perm.Swap(next, layer.pairs())
		out[k+1] = next
	}

	return out
}

// Len returns the number of swap layers.
func (s *SwapStrategy) Len() int { return len(s.layers) }

// NumQubits returns the qubit count of the underlying coupling map.
func (s *SwapStrategy) NumQubits() int { return s.graph.NumQubits() }

// CouplingMap returns the coupling map the strategy is defined over.
// The map is immutable, so sharing it is safe.
func (s *SwapStrategy) CouplingMap() *coupling.Map { return s.graph }

// SwapLayer returns a copy of layer k, 0 <= k < Len(), in its original order.
func (s *SwapStrategy) SwapLayer(k int) (Layer, error) {
	if k < 0 || k >= len(s.layers) {
		return nil, fmt.Errorf("swapstrategy: SwapLayer(%d) with %d layers: %w", k, len(s.layers), ErrLayerOutOfRange)
	}

	return append(Layer(nil), s.layers[k]...), nil
}

// Layers returns copies of all layers in order.
func (s *SwapStrategy) Layers() []Layer {
	out := make([]Layer, len(s.layers))
	for k, l := range s.layers {
		out[k] = append(Layer(nil), l...)
	}

	return out
}

// String lists the swap layers as nested tuples followed by the adjacency
// list of the coupling map:
//
//	SwapStrategy with swap layers:
//	((0, 1),),
//	on [[0, 1], [1, 0], [1, 2], [2, 1]] coupling map.
func (s *SwapStrategy) String() string {
	var sb strings.Builder
	sb.WriteString("SwapStrategy with swap layers:\n")
	for _, l := range s.layers {
		sb.WriteString(l.String())
		sb.WriteString(",\n")
	}
	fmt.Fprintf(&sb, "on %s coupling map.", s.graph)

	return sb.String()
}
