// SPDX-License-Identifier: MIT
//
// File: permutation.go
// Role: layer application, prefix permutations and swapped coupling maps.

package swapstrategy

import (
	"fmt"

	"github.com/katalvlaran/swapstrat/coupling"
	"github.com/katalvlaran/swapstrat/perm"
)

// ApplySwapLayer returns a copy of seq with swap layer k applied: for every
// swap (a, b) of the layer the values at positions a and b are exchanged.
// seq is not modified.
//
// Errors: ErrSequenceLength if len(seq) != s.NumQubits(); ErrLayerOutOfRange.
func ApplySwapLayer[T any](s *SwapStrategy, seq []T, k int) ([]T, error) {
	if err := s.checkApply(len(seq), k); err != nil {
		return nil, err
	}
	out := make([]T, len(seq))
	copy(out, seq)
	perm.Swap(out, s.layers[k].pairs())

	return out, nil
}

// ApplySwapLayerInPlace applies swap layer k to seq itself and returns seq.
// On error seq is left untouched.
func ApplySwapLayerInPlace[T any](s *SwapStrategy, seq []T, k int) ([]T, error) {
	if err := s.checkApply(len(seq), k); err != nil {
		return nil, err
	}
	perm.Swap(seq, s.layers[k].pairs())

	return seq, nil
}

func (s *SwapStrategy) checkApply(n, k int) error {
	if n != s.graph.NumQubits() {
		return fmt.Errorf("swapstrategy: len(seq)=%d, qubits=%d: %w", n, s.graph.NumQubits(), ErrSequenceLength)
	}
	if k < 0 || k >= len(s.layers) {
		return fmt.Errorf("swapstrategy: layer %d with %d layers: %w", k, len(s.layers), ErrLayerOutOfRange)
	}

	return nil
}

// InverseComposedPermutation returns, for k layers applied (0 <= k <= Len()),
// the sequence whose position p holds the original qubit that now occupies p.
// k == 0 yields [0, 1, ..., n-1]. The result is a fresh slice.
func (s *SwapStrategy) InverseComposedPermutation(k int) ([]int, error) {
	if k < 0 || k > len(s.layers) {
		return nil, fmt.Errorf("swapstrategy: InverseComposedPermutation(%d) with %d layers: %w",
			k, len(s.layers), ErrLayerOutOfRange)
	}

	return append([]int(nil), s.inverse[k]...), nil
}

// CumulativePermutation returns the permutation obtained by applying layers
// 0..k-1: element i is the position currently occupied by original qubit i.
// It is the inverse of InverseComposedPermutation(k).
func (s *SwapStrategy) CumulativePermutation(k int) ([]int, error) {
	inv, err := s.InverseComposedPermutation(k)
	if err != nil {
		return nil, err
	}

	return perm.Inverse(inv)
}

// SwappedCouplingMap returns the coupling map after k layers (0 <= k <= Len()),
// expressed in original qubit indices: every coupling (u, v) of the base map
// becomes (p[u], p[v]) with p = InverseComposedPermutation(k).
func (s *SwapStrategy) SwappedCouplingMap(k int) (*coupling.Map, error) {
	p, err := s.InverseComposedPermutation(k)
	if err != nil {
		return nil, err
	}

	return s.graph.Relabel(p)
}
