// SPDX-License-Identifier: MIT
//
// File: topology.go
// Role: Ring and Grid constructors for common device layouts.
//
// Determinism:
//   • Ring emits i → (i+1)%n for ascending i.
//   • Grid numbers qubits row-major (q = r*cols + c) and emits, for each cell,
//     the right coupling then the bottom coupling.

package coupling

import "fmt"

const (
	minRingQubits = 3
	minGridDim    = 1
)

// Ring returns the coupling map of n qubits on a cycle.
func Ring(n int) (*Map, error) {
	if n < minRingQubits {
		return nil, fmt.Errorf("coupling: Ring(%d): min=%d: %w", n, minRingQubits, ErrTooFewQubits)
	}

	edges := make([]Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, Edge{From: i, To: (i + 1) % n})
	}

	return New(edges)
}

// Grid returns the coupling map of a rows×cols nearest-neighbor lattice.
// A 1×1 grid has one qubit and no couplings.
func Grid(rows, cols int) (*Map, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("coupling: Grid(%d, %d): each must be >= %d: %w",
			rows, cols, minGridDim, ErrTooFewQubits)
	}

	edges := make([]Edge, 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			q := r*cols + c
			if c+1 < cols {
				edges = append(edges, Edge{From: q, To: q + 1})
			}
			if r+1 < rows {
				edges = append(edges, Edge{From: q, To: q + cols})
			}
		}
	}

	return New(edges, WithNumQubits(rows*cols))
}
