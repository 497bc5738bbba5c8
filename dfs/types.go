package dfs

import (
	"context"
	"errors"
)

var (
	// ErrMapNil is returned when a nil *coupling.Map is passed to DFS or Components.
	ErrMapNil = errors.New("dfs: coupling map is nil")

	// ErrStartOutOfRange indicates that the start qubit is not in the map.
	ErrStartOutOfRange = errors.New("dfs: start qubit out of range")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(m, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked upon discovering a qubit (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(q int) error

	// OnExit, if non-nil, is invoked after all descendants of a qubit have
	// been explored (post-order), before appending to Result.Order.
	OnExit func(q int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start qubit. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before recursing.
	// Return false to skip it.
	FilterNeighbor func(q int) bool

	// FullTraversal runs DFS from every unvisited qubit, covering
	// disconnected components (forest traversal).
	FullTraversal bool

	// SkippedNeighbors counts neighbors skipped by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns Options with a background context, no hooks,
// no depth limit, no filter and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(q int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(q int) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
// A limit of 0 means only the start qubit is visited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips every neighbor q with fn(q) == false.
func WithFilterNeighbor(fn func(q int) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal restarts DFS from each unvisited qubit.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records qubits in the sequence they finished (post-order).
	Order []int

	// Depth maps each visited qubit to its distance from its tree root.
	Depth map[int]int

	// Parent maps each qubit to the qubit it was discovered from.
	// Tree roots do not appear.
	Parent map[int]int

	// Visited flags which qubits were reached.
	Visited []bool

	// SkippedNeighbors reports how many neighbors FilterNeighbor rejected.
	SkippedNeighbors int
}
