// SPDX-License-Identifier: MIT

// Package matrix provides a small row-major integer matrix (Dense) and a
// read-only view over it (View).
//
// Dense is the mutable scratch representation used while a result is being
// computed. View is what gets handed to callers: it owns a private copy of the
// data, exposes only readers, and rejects every write with ErrReadOnly.
//
//	d, _ := matrix.NewDense(3, 3)
//	_ = d.Set(0, 1, 2)
//	v := d.ReadOnly()
//	err := v.Set(0, 1, 5) // errors.Is(err, matrix.ErrReadOnly)
//
// FloydWarshall closes a hop-distance matrix in place, with NoPath marking
// unreachable pairs.
//
// Zero-sized matrices are valid; they arise from coupling maps without qubits.
package matrix
