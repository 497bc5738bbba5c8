// SPDX-License-Identifier: MIT
//
// File: line.go
// Role: Line(qubits) constructor for path-shaped coupling maps.

package coupling

import "fmt"

const minLineQubits = 2

// Line returns the coupling map of a physical path: qubits[i] is coupled to
// qubits[i+1] for every i. Couplings are emitted in path order.
//
// Errors: ErrTooFewQubits for fewer than two qubits, plus any error of New.
func Line(qubits []int) (*Map, error) {
	if len(qubits) < minLineQubits {
		return nil, fmt.Errorf("coupling: Line(%v): len=%d < min=%d: %w",
			qubits, len(qubits), minLineQubits, ErrTooFewQubits)
	}

	edges := make([]Edge, 0, len(qubits)-1)
	for i := 1; i < len(qubits); i++ {
		edges = append(edges, Edge{From: qubits[i-1], To: qubits[i]})
	}

	return New(edges)
}
