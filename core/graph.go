// Package core implements the fixed-size adjacency-list Graph and its
// bounds-checked mutation operations.
package core

import "fmt"

// Graph is an adjacency-list container over a fixed set of vertices
// [0, VertexCount). Vertices are never added or removed after
// construction; only edges are.
//
// An undirected edge is represented as two mirrored arcs (AddEdge);
// a directed edge as a single arc (AddArc).
type Graph[W Weight] struct {
	adj [][]Edge[W] // adj[v] holds every arc with From == v
}

// NewGraph creates a Graph with vertexCount vertices and no edges.
// Returns ErrBadVertexCount if vertexCount is negative.
// Complexity: O(V).
func NewGraph[W Weight](vertexCount int) (*Graph[W], error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, vertexCount)
	}

	return &Graph[W]{adj: make([][]Edge[W], vertexCount)}, nil
}

// VertexCount reports the number of vertices fixed at construction.
func (g *Graph[W]) VertexCount() int { return len(g.adj) }

// HasVertex reports whether v is a valid vertex index of g.
func (g *Graph[W]) HasVertex(v VertexID) bool { return v >= 0 && v < len(g.adj) }

// AddEdge appends the arc from→to and its mirror to→from, both with
// weight w — the undirected-edge representation. Both directions of a
// logical undirected edge always carry identical weight.
// Returns ErrVertexOutOfRange if either endpoint is invalid.
// Complexity: O(1) amortized.
func (g *Graph[W]) AddEdge(from, to VertexID, w W) error {
	if err := g.checkEndpoints(from, to); err != nil {
		return err
	}
	g.adj[from] = append(g.adj[from], Edge[W]{From: from, To: to, Weight: w})
	g.adj[to] = append(g.adj[to], Edge[W]{From: to, To: from, Weight: w})

	return nil
}

// AddArc appends the single arc from→to with weight w — the
// directed-edge representation.
// Returns ErrVertexOutOfRange if either endpoint is invalid.
// Complexity: O(1) amortized.
func (g *Graph[W]) AddArc(from, to VertexID, w W) error {
	if err := g.checkEndpoints(from, to); err != nil {
		return err
	}
	g.adj[from] = append(g.adj[from], Edge[W]{From: from, To: to, Weight: w})

	return nil
}

// AddEdgeUnit appends an undirected edge of unit weight.
func (g *Graph[W]) AddEdgeUnit(from, to VertexID) error { return g.AddEdge(from, to, 1) }

// AddArcUnit appends a directed arc of unit weight.
func (g *Graph[W]) AddArcUnit(from, to VertexID) error { return g.AddArc(from, to, 1) }

// Out returns the arcs leaving v. The returned slice is the graph's
// own storage: callers must treat it as read-only.
// v must satisfy HasVertex(v); algorithms validate once up front.
func (g *Graph[W]) Out(v VertexID) []Edge[W] { return g.adj[v] }

// Edges returns every arc in the graph, grouped by source vertex in
// ascending order. Mirrored arcs of an undirected edge appear twice.
// Complexity: O(V + E).
func (g *Graph[W]) Edges() []Edge[W] {
	total := 0
	for _, out := range g.adj {
		total += len(out)
	}
	all := make([]Edge[W], 0, total)
	for _, out := range g.adj {
		all = append(all, out...)
	}

	return all
}

// Reverse returns a new Graph with every arc flipped. A
// single-destination shortest-path problem on g reduces to a
// single-source problem on g.Reverse().
// Complexity: O(V + E).
func (g *Graph[W]) Reverse() *Graph[W] {
	rev := &Graph[W]{adj: make([][]Edge[W], len(g.adj))}
	for _, out := range g.adj {
		for _, e := range out {
			rev.adj[e.To] = append(rev.adj[e.To], Edge[W]{From: e.To, To: e.From, Weight: e.Weight})
		}
	}

	return rev
}

// checkEndpoints validates both endpoints of a prospective edge.
func (g *Graph[W]) checkEndpoints(from, to VertexID) error {
	if !g.HasVertex(from) {
		return fmt.Errorf("%w: from=%d, vertex count %d", ErrVertexOutOfRange, from, len(g.adj))
	}
	if !g.HasVertex(to) {
		return fmt.Errorf("%w: to=%d, vertex count %d", ErrVertexOutOfRange, to, len(g.adj))
	}

	return nil
}
