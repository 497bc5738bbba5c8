// Package bfs provides breadth-first search over a coupling.Map.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/swapstrat/coupling"
	"github.com/katalvlaran/swapstrat/matrix"
)

// queueItem pairs a qubit with its BFS depth.
type queueItem struct {
	q     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	m       *coupling.Map
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on m starting from start.
// Returns ErrMapNil, ErrStartOutOfRange, ErrOptionViolation, the context
// error on cancellation, or any OnVisit error.
func BFS(m *coupling.Map, start int, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrMapNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := m.NumQubits()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("bfs: start %d with %d qubits: %w", start, n, ErrStartOutOfRange)
	}

	w := &walker{
		m:       m,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	w.enqueue(start, 0, -1)
	return w.res, w.loop()
}

// enqueue marks q visited at depth d, records its parent (-1 for the root),
// and adds it to the queue.
func (w *walker) enqueue(q, d, parent int) {
	w.visited[q] = true
	w.res.Depth[q] = d
	if parent >= 0 {
		w.res.Parent[q] = parent
	}
	w.queue = append(w.queue, queueItem{q: q, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.q)
		if err := w.opts.OnVisit(item.q, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.q, err)
		}

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		// item.q is always in range, Neighbors cannot fail here
		nbrs, _ := w.m.Neighbors(item.q)
		for _, nbr := range nbrs {
			if !w.visited[nbr] {
				w.enqueue(nbr, nextDepth, item.q)
			}
		}
	}

	return nil
}

// HopMatrix returns the all-pairs hop distance of m as a read-only matrix.
// Unreachable pairs hold matrix.NoPath; the diagonal is 0.
func HopMatrix(m *coupling.Map) (*matrix.View, error) {
	if m == nil {
		return nil, ErrMapNil
	}
	n := m.NumQubits()
	d, err := matrix.NewFilled(n, n, matrix.NoPath)
	if err != nil {
		return nil, err
	}
	for src := 0; src < n; src++ {
		res, err := BFS(m, src)
		if err != nil {
			return nil, err
		}
		for q, depth := range res.Depth {
			if err := d.Set(src, q, depth); err != nil {
				return nil, err
			}
		}
	}

	return d.ReadOnly(), nil
}

// Diameter returns the largest finite hop distance between physical qubits
// and whether every pair of physical qubits is connected.
func Diameter(m *coupling.Map) (int, bool, error) {
	hops, err := HopMatrix(m)
	if err != nil {
		return 0, false, err
	}
	physical := m.PhysicalQubits()
	diameter, connected := 0, true
	for _, i := range physical {
		for _, j := range physical {
			v, _ := hops.At(i, j)
			if v < 0 {
				connected = false
				continue
			}
			diameter = max(diameter, v)
		}
	}

	return diameter, connected, nil
}
