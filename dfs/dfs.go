package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/swapstrat/coupling"
)

// walker encapsulates state during DFS.
type walker struct {
	m    *coupling.Map
	opts Options
	res  *Result
}

// DFS performs depth-first search on m. With WithFullTraversal it covers
// all qubits and start is ignored; otherwise it walks only from start.
// Returns the partial Result alongside any abort error.
func DFS(m *coupling.Map, start int, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrMapNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := m.NumQubits()
	if !o.FullTraversal && (start < 0 || start >= n) {
		return nil, fmt.Errorf("dfs: start %d with %d qubits: %w", start, n, ErrStartOutOfRange)
	}

	res := &Result{
		Order:   make([]int, 0, n),
		Depth:   make(map[int]int, n),
		Parent:  make(map[int]int, n),
		Visited: make([]bool, n),
	}
	w := &walker{m: m, opts: o, res: res}

	if o.FullTraversal {
		for q := 0; q < n; q++ {
			if res.Visited[q] {
				continue
			}
			if err := w.traverse(q, 0); err != nil {
				return res, err
			}
		}
	} else if err := w.traverse(start, 0); err != nil {
		return res, err
	}

	res.SkippedNeighbors = w.opts.SkippedNeighbors

	return res, nil
}

// traverse visits q at the given depth and recurses into its neighbors.
func (w *walker) traverse(q, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[q] = true
	w.res.Depth[q] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(q); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", q, err)
		}
	}

	// q is always in range here
	nbrs, _ := w.m.Neighbors(q)
	for _, nbr := range nbrs {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nbr] {
			continue
		}
		w.res.Parent[nbr] = q
		if err := w.traverse(nbr, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(q); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", q, err)
		}
	}

	w.res.Order = append(w.res.Order, q)

	return nil
}

// Components returns the connected components of the physical qubits of m
// (qubits with at least one coupling). Each component is sorted, and
// components are ordered by their smallest qubit.
func Components(m *coupling.Map) ([][]int, error) {
	if m == nil {
		return nil, ErrMapNil
	}

	var (
		comps [][]int
		cur   []int
	)
	collect := func(q int) error {
		cur = append(cur, q)
		return nil
	}
	visited := make([]bool, m.NumQubits())
	for _, q := range m.PhysicalQubits() {
		if visited[q] {
			continue
		}
		cur = nil
		if _, err := DFS(m, q, WithOnVisit(collect)); err != nil {
			return nil, err
		}
		for _, v := range cur {
			visited[v] = true
		}
		slices.Sort(cur)
		comps = append(comps, cur)
	}

	return comps, nil
}
