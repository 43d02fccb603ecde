// Package warshallfloyd implements all-pairs shortest paths via the
// Warshall–Floyd algorithm, plus an O(V²) incremental update that
// folds a single new undirected edge into an already-closed matrix.
//
// Overview:
//
//   - Compute builds a DistanceMatrix from a graph: 0 on the diagonal,
//     direct arc weights elsewhere (keeping the minimum over parallel
//     arcs), the core.Inf sentinel for absent pairs — then closes the
//     matrix through every pivot k with the classic triple loop.
//   - Relaxations through a sentinel intermediate are skipped, so two
//     near-Inf distances are never summed and the sentinel cannot
//     overflow into a bogus finite path.
//   - InsertEdge updates a closed matrix with one new undirected edge
//     without recomputation: it lowers the two mirrored cells, then
//     re-closes the matrix through the two endpoints only. A single
//     edge insertion can only improve paths routed through one of its
//     endpoints, so two pivots suffice.
//
// Complexity:
//
//   - Compute:    Time O(V³), Space O(V²).
//   - InsertEdge: Time O(V²), Space O(1).
//
// Error handling (sentinel):
//
//   - ErrNilGraph — nil graph passed to Compute.
//   - core.ErrVertexOutOfRange (wrapped) — InsertEdge endpoint outside
//     the matrix order.
//
// Negative cycles:
//
//   - The algorithm tolerates negative weights. After Compute, some
//     diagonal entry dist[v][v] < 0 iff the graph contains a negative
//     cycle; query it with HasNegativeCycle. Off-diagonal distances
//     are unreliable in that case.
//
// Example usage:
//
//	g, _ := core.NewGraph[int](3)
//	_ = g.AddEdge(0, 1, 2)
//	_ = g.AddEdge(1, 2, 3)
//	m, _ := warshallfloyd.Compute(g)
//	d, _ := m.At(0, 2)              // 5, via vertex 1
//	_ = m.InsertEdge(0, 2, 1)       // now 1, and neighbors improve too
//
// Caveats:
//
//   - InsertEdge is only valid on a matrix that is already transitively
//     closed (i.e. produced by Compute or by earlier InsertEdge calls).
//   - InsertEdge supports neither edge removal nor weight increase: a
//     weight no better than the current distance leaves the matrix
//     unchanged.
package warshallfloyd
