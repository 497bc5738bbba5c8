// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers branch with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates an operation that needs a square matrix got another shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrReadOnly is returned by every write attempt on a View.
	ErrReadOnly = errors.New("matrix: matrix is read-only")
)
