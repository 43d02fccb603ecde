// Package mst provides minimum-spanning-tree computation over
// undirected weighted graphs: Kruskal's greedy edge scan driven by a
// disjoint-set structure, and Prim's heap-grown variant.
//
// Overview:
//
//   - Kruskal consumes a flat core.EdgeList plus a vertex count. Edges
//     are scanned in ascending weight order; an edge joins the forest
//     exactly when the union of its endpoints merges two previously
//     separate components, so no cycle can ever be accepted. On a
//     connected input the result is a spanning tree of V-1 edges; on a
//     disconnected input it is the minimum spanning forest, one tree
//     per component, with the total weight summed across trees.
//   - Prim consumes an adjacency-list core.Graph and grows a tree
//     outward from a root vertex with a min-heap of frontier edges.
//     It spans exactly the component containing the root.
//   - Each edge of the input is treated as one undirected connection;
//     lists built with EdgeList.Add need one record per edge, graphs
//     built with Graph.AddEdge already store the mirrored arcs.
//
// Complexity:
//
//   - Kruskal: O(E log E) for the sort plus near-O(1) amortized per
//     union-find operation; Space O(V + E).
//   - Prim:    O(E log V) time, O(V + E) space.
//
// Error handling (sentinel):
//
//   - ErrBadVertexCount    — negative vertex count (Kruskal).
//   - ErrNilGraph          — nil graph (Prim).
//   - ErrRootOutOfRange    — Prim root outside [0, VertexCount).
//   - core.ErrVertexOutOfRange (wrapped) — an edge references a vertex
//     outside [0, vertexCount) (Kruskal).
//
// Example usage:
//
//	var edges core.EdgeList[int]
//	edges.Add(0, 1, 4)
//	edges.Add(1, 2, 3)
//	edges.Add(0, 2, 1)
//	edges.Add(2, 3, 2)
//	forest, total, err := mst.Kruskal(edges, 4) // total = 6
//
// Caveats:
//
//   - Self-loops can never merge components and are skipped.
//   - The input edge list is not mutated; sorting happens on a copy.
//   - Ties between equal-weight edges are broken by input order
//     (stable sort); the edge selection may differ between Kruskal and
//     Prim, but the total weight never does.
package mst
