// Package edgewise is a compact, generic toolbox of classic algorithms
// on weighted graphs — shortest paths, spanning trees, orderings and
// structural checks — over index-addressed adjacency lists.
//
// 🚀 What is edgewise?
//
//	A small, zero-dependency library built around one data model and
//	one algorithm per package:
//		• Core primitives: fixed-size graphs, edges, edge lists, a generic
//		  numeric Weight constraint and an overflow-safe Inf sentinel
//		• Shortest paths: Dijkstra (non-negative weights) and
//		  Bellman–Ford (general weights, negative-cycle detection)
//		• All pairs: Warshall–Floyd with O(V²) incremental edge insertion
//		• Spanning trees: Kruskal (union-find driven) and Prim
//		• Orderings: topological sort with cycle detection
//		• Structure: bipartiteness (two-coloring) check
//
// ✨ Why choose edgewise?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – every algorithm is a pure one-shot computation;
//     failure is always a return value, never a side effect
//   - Pure Go – no cgo, no hidden deps, generic over ints and floats
//   - Fast – index-based vertices, no maps on the hot paths
//
// Everything is organized under one package per concern:
//
//	core/          — Graph, Edge, EdgeList, Weight, Inf and bounds errors
//	unionfind/     — disjoint-set structure (path compression, union by size)
//	dijkstra/      — single-source shortest paths, non-negative weights
//	bellmanford/   — single-source shortest paths, general weights
//	warshallfloyd/ — all-pairs shortest paths + incremental updates
//	mst/           — minimum spanning trees: Kruskal & Prim
//	toposort/      — topological ordering of directed acyclic graphs
//	bipartite/     — two-colorability check
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	represents a square with four vertices and four edges — and, being
//	an even cycle, a bipartite graph.
//
// Vertices are dense zero-based indices fixed at construction; an
// undirected edge is stored as two mirrored arcs, a directed edge as
// one. Dive into each package's doc.go for usage, complexity and
// caveats.
//
//	go get github.com/katalvlaran/edgewise
package edgewise
