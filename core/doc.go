// Package core defines the shared data model for every algorithm in
// edgewise: the generic Weight constraint, the Edge record, the
// fixed-size adjacency-list Graph, the flat EdgeList, and the
// overflow-safe Inf sentinel.
//
// Overview:
//
//   - Vertices are dense zero-based indices (VertexID). The vertex count
//     is fixed when a Graph is created; afterwards only edges may be
//     added. This keeps every algorithm map-free and cache-friendly.
//   - An undirected edge is stored as two mirrored arcs of identical
//     weight (AddEdge); a directed edge is stored as a single arc
//     (AddArc). Both directions of an undirected edge always agree.
//   - EdgeList is the input shape for algorithms that never need
//     adjacency (Bellman–Ford, Kruskal): a flat, unordered bag of edges.
//
// The Inf sentinel:
//
//   - Inf[W]() returns the designated "unreachable" distance for weight
//     type W: the type's maximum value divided by four. Keeping the
//     sentinel strictly below max/2 guarantees that the sum of two
//     sentinel-adjacent distances still fits in W, so relaxation code
//     may add first and compare later without overflow.
//   - Unreachable vertices in every distance result carry exactly
//     Inf[W](); compare with == to test reachability.
//
// Error handling (sentinel):
//
//   - ErrBadVertexCount    — negative vertex count passed to NewGraph.
//   - ErrVertexOutOfRange  — a vertex index outside [0, VertexCount).
//
// All mutating operations are bounds-checked and fail fast with
// ErrVertexOutOfRange instead of corrupting the containers.
//
// Complexity:
//
//   - AddEdge / AddArc / EdgeList.Add: O(1) amortized.
//   - NewGraph: O(V) to allocate the adjacency spine.
//
// Example usage:
//
//	g, _ := core.NewGraph[int](4)
//	_ = g.AddEdge(0, 1, 4) // undirected, stored as 0→1 and 1→0
//	_ = g.AddArc(1, 2, 3)  // directed, stored as 1→2 only
//
// Thread safety: a Graph is exclusively owned by its caller; edgewise
// never shares or mutates it concurrently. Synchronize externally if
// you must.
package core
