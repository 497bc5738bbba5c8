// Package dfs implements depth-first search over a coupling.Map and the
// connected-component split built on it.
//
// What:
//
//   - DFS(m, start, opts...): recursive depth-first walk from a start qubit,
//     or over every qubit with WithFullTraversal. Supports:
//   - Pre-order (OnVisit) and post-order (OnExit) hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering with a SkippedNeighbors diagnostic
//   - Components(m): groups the physical qubits of m into connected
//     components. A swap strategy can only ever bring together qubits that
//     share a component, so more than one component means missing couplings
//     no number of layers can remove.
//
// Determinism:
//
//	Neighbors are visited in ascending qubit order, and full traversal starts
//	new trees at the smallest unvisited qubit.
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of hooks and filters.
//   - Memory: O(V) for the recursion stack and result maps.
//
// Errors:
//
//   - ErrMapNil               if m is nil.
//   - ErrStartOutOfRange      if start is not a qubit of m.
//   - context.Canceled        if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
