// SPDX-License-Identifier: MIT

// Package matrix: Dense is a row-major int matrix stored in a flat slice.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of int values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int   // number of rows and columns
	data []int // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	return NewFilled(rows, cols, 0)
}

// NewFilled creates an r×c Dense matrix with every element set to v.
func NewFilled(rows, cols, v int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	data := make([]int, rows*cols)
	if v != 0 {
		for i := range data {
			data[i] = v
		}
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (int, error) {
	idx, err := m.indexOf("Dense.At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
func (m *Dense) Set(row, col, v int) error {
	idx, err := m.indexOf("Dense.Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// ReadOnly returns a View over a private copy of m.
// Later writes to m are not visible through the View.
func (m *Dense) ReadOnly() *View {
	return &View{m: m.Clone()}
}

// String implements fmt.Stringer, one bracketed row per line.
func (m *Dense) String() string {
	return format(m)
}

// format renders any Reader as "[a b c]\n[d e f]".
func format(r Reader) string {
	var sb strings.Builder
	for i := 0; i < r.Rows(); i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for j := 0; j < r.Cols(); j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			v, _ := r.At(i, j)
			fmt.Fprintf(&sb, "%d", v)
		}
		sb.WriteByte(']')
	}

	return sb.String()
}
