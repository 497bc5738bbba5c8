// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Read-only matrix view. Owns its data; no method mutates it.

package matrix

import "fmt"

// View is a read-only matrix. The zero value is an empty 0×0 matrix.
// Safe for concurrent use: no method writes.
type View struct {
	m *Dense
}

// Rows returns the number of rows.
func (v *View) Rows() int {
	if v.m == nil {
		return 0
	}
	return v.m.r
}

// Cols returns the number of columns.
func (v *View) Cols() int {
	if v.m == nil {
		return 0
	}
	return v.m.c
}

// At retrieves the element at (row, col) or ErrOutOfRange.
func (v *View) At(row, col int) (int, error) {
	if v.m == nil {
		return 0, denseErrorf("View.At", row, col, ErrOutOfRange)
	}
	idx, err := v.m.indexOf("View.At", row, col)
	if err != nil {
		return 0, err
	}

	return v.m.data[idx], nil
}

// Set always fails with ErrReadOnly; the view cannot be written.
func (v *View) Set(row, col, _ int) error {
	return denseErrorf("View.Set", row, col, ErrReadOnly)
}

// Row returns a copy of row i.
func (v *View) Row(i int) ([]int, error) {
	if i < 0 || i >= v.Rows() {
		return nil, fmt.Errorf("View.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]int, v.m.c)
	copy(out, v.m.data[i*v.m.c:(i+1)*v.m.c])

	return out, nil
}

// ToSlices returns a deep copy as [][]int.
func (v *View) ToSlices() [][]int {
	out := make([][]int, v.Rows())
	for i := range out {
		out[i], _ = v.Row(i)
	}

	return out
}

// Equal reports whether the view holds exactly the values of want.
func (v *View) Equal(want [][]int) bool {
	if len(want) != v.Rows() {
		return false
	}
	for i, row := range want {
		if len(row) != v.Cols() {
			return false
		}
		for j, x := range row {
			if got, _ := v.At(i, j); got != x {
				return false
			}
		}
	}

	return true
}

// IsSymmetric reports whether the view is square and equal to its transpose.
func (v *View) IsSymmetric() bool {
	if v.Rows() != v.Cols() {
		return false
	}
	n := v.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v.m.data[i*n+j] != v.m.data[j*n+i] {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer.
func (v *View) String() string {
	return format(v)
}
