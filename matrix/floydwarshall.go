// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense all-pairs hop distances (Floyd–Warshall) over an int matrix.
//   - In-place, deterministic k → i → j loop order, O(n³) time, O(1) extra space.
//
// Contract:
//   - Square matrix; NoPath (-1) off-diagonal means "no path"; the diagonal is forced to 0.

package matrix

import "fmt"

// NoPath marks an unreachable pair in a distance matrix.
const NoPath = -1

const opFloydWarshall = "FloydWarshall"

// AdjacencyToDistances rewrites a 0/1 adjacency matrix in place into the
// starting point of FloydWarshall: diagonal 0, edges 1, everything else NoPath.
func AdjacencyToDistances(d *Dense) error {
	if d.r != d.c {
		return fmt.Errorf("AdjacencyToDistances: non-square %dx%d: %w", d.r, d.c, ErrDimensionMismatch)
	}
	for i := 0; i < d.r; i++ {
		base := i * d.c
		for j := 0; j < d.c; j++ {
			switch {
			case i == j:
				d.data[base+j] = 0
			case d.data[base+j] != 0:
				d.data[base+j] = 1
			default:
				d.data[base+j] = NoPath
			}
		}
	}

	return nil
}

// FloydWarshall closes d under shortest paths in place.
// Non-negative entries are path lengths; NoPath entries are unreachable.
//
// Complexity: Time O(n^3), Extra space O(1).
func FloydWarshall(d *Dense) error {
	if d.r != d.c {
		return fmt.Errorf("%s: non-square %dx%d: %w", opFloydWarshall, d.r, d.c, ErrDimensionMismatch)
	}
	n := d.r
	data := d.data
	for i := 0; i < n; i++ {
		data[i*n+i] = 0
	}

	var ik, kj, ij, cand int
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == NoPath { // i cannot reach k
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == NoPath {
					continue
				}
				ij = data[baseI+j]
				cand = ik + kj
				if ij == NoPath || cand < ij { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}
