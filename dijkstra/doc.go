// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm on weighted graphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from one source vertex
//     to every reachable vertex, processing vertices in order of
//     increasing tentative distance via a min-heap priority queue.
//   - Duplicate heap entries are tolerated and skipped on pop when the
//     popped distance exceeds the best known one — the classic
//     "lazy decrease-key" strategy.
//   - Unreachable vertices keep the sentinel core.Inf[W]().
//
// Precondition (documented, not runtime-checked):
//
//   - Every edge weight must be ≥ 0. This is the algorithm's
//     mathematical requirement; with a negative weight present the
//     result may silently be wrong. Use bellmanford for general
//     weights.
//
// Complexity:
//
//   - Time:  O(E log V)
//   - Each vertex is finalized at most once: V pops reach relaxation.
//   - Each edge relaxation may push one entry: up to E pushes.
//   - Each heap operation costs O(log N), N ≤ V + E.
//   - Space: O(V + E)
//   - O(V) for the distance (and optional predecessor) slices.
//   - O(E) worst-case heap entries under lazy decrease-key.
//
// Options:
//
//   - WithReturnPath()     — also return the predecessor slice for path
//     reconstruction (-1 marks "no predecessor").
//   - WithMaxDistance(x)   — stop exploring once the closest unfinalized
//     vertex is farther than x.
//
// Error handling (sentinel):
//
//   - ErrNilGraph          — nil graph passed.
//   - ErrSourceOutOfRange  — source index outside [0, VertexCount).
//
// Example usage:
//
//	g, _ := core.NewGraph[int](4)
//	_ = g.AddEdge(0, 1, 4)
//	_ = g.AddEdge(0, 2, 1)
//	_ = g.AddEdge(1, 2, 3)
//	_ = g.AddEdge(2, 3, 2)
//	dist, _, err := dijkstra.Dijkstra(g, 0) // dist = [0 4 1 3]
//
// Caveats:
//
//   - Distances equal core.Inf[W]() only for genuinely unreachable
//     vertices; compare with == to test reachability.
//   - A single-destination problem reduces to a single-source problem
//     on g.Reverse().
package dijkstra
