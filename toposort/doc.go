// Package toposort computes a topological ordering of a directed
// graph's vertices, detecting cycles along the way.
//
// Overview:
//
//   - Sort runs a depth-first traversal from every still-unvisited
//     vertex, tracking three colors per vertex: white (unvisited),
//     gray (in progress on the current path), black (finished).
//     Meeting a gray vertex again means a back edge — a cycle — and
//     the sort aborts with ErrCycleDetected.
//   - Finished vertices are appended to a post-order list; reversing
//     it at the end yields a valid topological order: for every arc
//     u→v, u appears before v.
//   - The traversal runs on an explicit work stack, not the call
//     stack, so vertex-count-deep graphs cannot exhaust recursion
//     depth.
//
// Complexity:
//
//   - Time:  O(V + E) — every vertex and arc is visited exactly once.
//   - Space: O(V) for the color state and the work stack.
//
// Error handling (sentinel):
//
//   - ErrNilGraph       — nil graph passed.
//   - ErrCycleDetected  — the graph is not acyclic; no order exists
//     and the partial order is discarded.
//
// Example usage:
//
//	g, _ := core.NewGraph[int](3)
//	_ = g.AddArcUnit(0, 1)
//	_ = g.AddArcUnit(1, 2)
//	order, err := toposort.Sort(g) // [0 1 2]
//
// Caveats:
//
//   - The graph is treated as directed: build it with AddArc. A graph
//     containing any AddEdge pair is cyclic by construction (u→v and
//     v→u) and will always report ErrCycleDetected.
//   - Between incomparable vertices the order follows ascending vertex
//     index of the traversal roots — deterministic, but only one of
//     many valid orders.
package toposort
