// Package bipartite checks whether a graph is two-colorable: whether
// its vertices can be split into two classes with no edge connecting
// two vertices of the same class.
//
// Overview:
//
//   - IsBipartite colors vertices alternately along a depth-first
//     traversal from vertex 0, using an explicit work stack. An edge
//     whose endpoints received the same color flips the verdict to
//     false, but the traversal always runs to completion.
//   - By default only the component containing vertex 0 is examined —
//     vertices unreachable from vertex 0 are implicitly treated as
//     satisfying the property. Pass WithFullTraversal() to restart the
//     coloring from every still-uncolored vertex and verify the whole
//     graph. (The single-component default mirrors the historical
//     behavior of this check; see the package tests for the contrast.)
//   - Partition additionally returns the computed color classes, so a
//     caller can read off the two sides (or their sizes) without a
//     second traversal.
//
// Complexity:
//
//   - Time:  O(V + E)
//   - Space: O(V) for the colors and the work stack.
//
// Error handling (sentinel):
//
//   - ErrNilGraph — nil graph passed.
//   - A non-bipartite graph is a negative result (false), not an error.
//
// Example usage:
//
//	g, _ := core.NewGraph[int](4)
//	_ = g.AddEdgeUnit(0, 1)
//	_ = g.AddEdgeUnit(1, 2)
//	_ = g.AddEdgeUnit(2, 3)
//	_ = g.AddEdgeUnit(3, 0)
//	ok, _ := bipartite.IsBipartite(g) // true: an even cycle
//
// Caveats:
//
//   - An odd cycle (three vertices in a ring, say) is the canonical
//     non-bipartite witness.
//   - Build the graph with AddEdge; a lone directed arc still forces
//     its endpoints into opposite classes, but only arcs leaving
//     already-colored vertices are ever examined.
package bipartite
