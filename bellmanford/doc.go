// Package bellmanford implements the Bellman–Ford single-source
// shortest-path algorithm over a flat edge list, allowing negative
// edge weights and detecting negative cycles.
//
// Overview:
//
//   - The algorithm relaxes every edge exactly vertexCount-1 times —
//     the standard bound, since a simple shortest path uses at most
//     vertexCount-1 edges — then performs one extra detection pass.
//   - If the detection pass can still relax any edge, a negative cycle
//     is reachable from the source and no finite shortest distances
//     exist: BellmanFord returns nil distances and ErrNegativeCycle.
//   - Unreached vertices keep the sentinel core.Inf[W](); relaxation
//     never starts from a sentinel distance, so the sentinel cannot
//     leak into finite results.
//
// Complexity:
//
//   - Time:  O(V·E)
//   - Space: O(V)
//
// Error handling (sentinel):
//
//   - ErrNegativeCycle     — a negative cycle is reachable from source;
//     callers must check the error before using distances.
//   - ErrBadVertexCount    — negative vertex count.
//   - ErrSourceOutOfRange  — source index outside [0, vertexCount).
//   - core.ErrVertexOutOfRange (wrapped) — an edge references a vertex
//     outside [0, vertexCount).
//
// Example usage:
//
//	var edges core.EdgeList[int]
//	edges.Add(0, 1, 4)
//	edges.Add(1, 2, -2)
//	dist, err := bellmanford.BellmanFord(edges, 3, 0) // dist = [0 4 2]
//
// Caveats:
//
//   - Prefer dijkstra when every weight is non-negative: O(E log V)
//     beats O(V·E) on all but the smallest inputs.
//   - For every edge (u,v,w) of an input with no reachable negative
//     cycle, the result satisfies dist[v] ≤ dist[u] + w whenever
//     dist[u] is finite (triangle inequality).
package bellmanford
