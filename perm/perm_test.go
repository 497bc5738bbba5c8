package perm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swapstrat/perm"
)

func TestIdentity(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, perm.Identity(4))
	assert.Equal(t, []int{}, perm.Identity(0))
	assert.Equal(t, []int{}, perm.Identity(-3))
	assert.True(t, perm.IsIdentity(perm.Identity(7)))
	assert.False(t, perm.IsIdentity([]int{1, 0}))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		p    []int
		ok   bool
	}{
		{"empty", []int{}, true},
		{"identity", []int{0, 1, 2}, true},
		{"shuffled", []int{2, 0, 1}, true},
		{"repeat", []int{0, 0, 1}, false},
		{"too large", []int{0, 3, 1}, false},
		{"negative", []int{-1, 0}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := perm.Validate(tc.p)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, perm.ErrNotPermutation)
			}
		})
	}
}

func TestInverse(t *testing.T) {
	p := []int{1, 3, 0, 4, 2}
	q, err := perm.Inverse(p)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 4, 1, 3}, q)

	back, err := perm.Inverse(q)
	require.NoError(t, err)
	assert.Equal(t, p, back)

	_, err = perm.Inverse([]int{1, 1})
	assert.ErrorIs(t, err, perm.ErrNotPermutation)
}

func TestSwap(t *testing.T) {
	s := []string{"a", "b", "c", "d"}
	perm.Swap(s, [][2]int{{0, 1}, {2, 3}})
	assert.Equal(t, []string{"b", "a", "d", "c"}, s)
}
