// SPDX-License-Identifier: MIT

// Package perm provides the permutation primitives used by swap strategies:
// identity sequences, bijection checks, inversion and position swaps.
//
// A permutation p of length n is a slice holding every value 0..n-1 exactly once.
// Functions never retain or mutate their input unless documented otherwise.
package perm

import (
	"errors"
	"fmt"
)

// ErrNotPermutation indicates that a slice is not a bijection on [0, len).
var ErrNotPermutation = errors.New("perm: not a permutation")

// Identity returns [0, 1, ..., n-1]. For n <= 0 it returns an empty slice.
func Identity(n int) []int {
	if n <= 0 {
		return []int{}
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// Validate reports ErrNotPermutation (wrapped with the offending position)
// if p contains an out-of-range or repeated value.
func Validate(p []int) error {
	seen := make([]bool, len(p))
	for i, v := range p {
		if v < 0 || v >= len(p) {
			return fmt.Errorf("perm: p[%d]=%d outside [0,%d): %w", i, v, len(p), ErrNotPermutation)
		}
		if seen[v] {
			return fmt.Errorf("perm: value %d repeated at p[%d]: %w", v, i, ErrNotPermutation)
		}
		seen[v] = true
	}

	return nil
}

// Inverse returns q with q[p[i]] = i.
func Inverse(p []int) ([]int, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}
	q := make([]int, len(p))
	for i, v := range p {
		q[v] = i
	}

	return q, nil
}

// IsIdentity reports whether p[i] == i for every i.
func IsIdentity(p []int) bool {
	for i, v := range p {
		if v != i {
			return false
		}
	}
	return true
}

// Swap exchanges s[a] and s[b] in place for every pair {a, b}, in order.
// Callers must ensure all indices are within bounds.
func Swap[T any](s []T, pairs [][2]int) {
	for _, p := range pairs {
		s[p[0]], s[p[1]] = s[p[1]], s[p[0]]
	}
}
