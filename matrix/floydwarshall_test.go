// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swapstrat/matrix"
)

// pathAdjacency returns the 0/1 adjacency matrix of the path 0-1-...-(n-1).
func pathAdjacency(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, d.Set(i, i+1, 1))
		require.NoError(t, d.Set(i+1, i, 1))
	}
	return d
}

// TestFloydWarshall_Path checks that hop distances on a path are |i-j|.
func TestFloydWarshall_Path(t *testing.T) {
	d := pathAdjacency(t, 5)
	require.NoError(t, matrix.AdjacencyToDistances(d))
	require.NoError(t, matrix.FloydWarshall(d))

	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			v, err := d.At(i, j)
			require.NoError(t, err)
			require.Equal(t, max(i-j, j-i), v, "(%d,%d)", i, j)
		}
	}
}

// TestFloydWarshall_Disconnected keeps NoPath between components.
func TestFloydWarshall_Disconnected(t *testing.T) {
	d, err := matrix.NewDense(4, 4)
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 1, 1))
	require.NoError(t, d.Set(1, 0, 1))
	require.NoError(t, d.Set(2, 3, 1))
	require.NoError(t, d.Set(3, 2, 1))
	require.NoError(t, matrix.AdjacencyToDistances(d))
	require.NoError(t, matrix.FloydWarshall(d))

	v, _ := d.At(0, 3)
	require.Equal(t, matrix.NoPath, v)
	v, _ = d.At(3, 2)
	require.Equal(t, 1, v)
	v, _ = d.At(2, 2)
	require.Equal(t, 0, v)
}

// TestFloydWarshall_NonSquare rejects rectangular input.
func TestFloydWarshall_NonSquare(t *testing.T) {
	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.FloydWarshall(d), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.AdjacencyToDistances(d), matrix.ErrDimensionMismatch)
}
