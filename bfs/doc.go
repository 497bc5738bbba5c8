// Package bfs provides breadth-first search over a coupling.Map, returning
// physical hop distances, parent links, and visit order.
//
// What
//
//   - Explore qubits in non-decreasing hop count from a start qubit.
//   - Result carries Order (visit sequence), Depth (qubit → hops) and
//     Parent (qubit → predecessor in the BFS tree).
//   - Hooks: OnVisit may abort the walk with an error.
//   - MaxDepth limits the explored radius (d > 0), d == 0 means no limit.
//   - HopMatrix runs BFS from every qubit and returns the all-pairs hop
//     distances as a read-only matrix, with matrix.NoPath (-1) for unreachable pairs.
//
// Why
//
//	A swap strategy's distance matrix counts swap layers; comparing it with
//	the physical hop distance shows how much routing depth a strategy costs
//	relative to the device's graph diameter.
//
// Determinism
//
//	coupling.Map.Neighbors returns qubits in ascending order and BFS enqueues
//	them in that order, so the visit sequence is reproducible.
//
// Complexity (V = qubits, E = couplings)
//
//   - BFS:       Time O(V + E), Memory O(V)
//   - HopMatrix: Time O(V·(V + E)), Memory O(V²)
//
// Usage
//
//	res, err := bfs.BFS(m, 0, bfs.WithMaxDepth(2))
//	if err != nil {
//		// ErrMapNil, ErrStartOutOfRange, ErrOptionViolation, ctx error, or hook error
//	}
//	path, _ := res.PathTo(4)
package bfs
