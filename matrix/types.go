// SPDX-License-Identifier: MIT

// Package matrix: reader interface shared by Dense and View.
package matrix

// Reader is the read surface common to Dense and View.
// Complexity: all methods O(1).
type Reader interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (i, j) or ErrOutOfRange.
	At(i, j int) (int, error)
}

var (
	_ Reader = (*Dense)(nil)
	_ Reader = (*View)(nil)
)
