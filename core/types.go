// Package core declares Weight, VertexID, Edge, EdgeList and the
// sentinel errors shared by every edgewise algorithm package.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexCount indicates a negative vertex count passed to NewGraph.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates a vertex index outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")
)

// Weight is the constraint satisfied by every edge-weight type:
// a signed numeric type that is totally ordered, supports addition,
// has a zero value, and admits a large Inf sentinel.
//
// Unsigned integers are deliberately excluded — Bellman–Ford and
// Warshall–Floyd must represent negative weights and distances.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// VertexID identifies a vertex as a dense zero-based index within a
// Graph of fixed size.
type VertexID = int

// Edge is a weighted arc From→To. It is immutable once constructed:
// every edgewise algorithm treats edges as read-only values.
type Edge[W Weight] struct {
	// From is the zero-based source vertex index.
	From VertexID

	// To is the zero-based destination vertex index.
	To VertexID

	// Weight is the cost of traversing the arc.
	Weight W
}

// EdgeList is a flat, unordered collection of edges — the input shape
// for algorithms that need no adjacency structure (Bellman–Ford,
// Kruskal). Indices are validated by the consuming algorithm against
// its vertex-count argument, not at insertion time.
type EdgeList[W Weight] []Edge[W]

// Add appends a single directed edge record from→to with weight w.
// Complexity: O(1) amortized.
func (el *EdgeList[W]) Add(from, to VertexID, w W) {
	*el = append(*el, Edge[W]{From: from, To: to, Weight: w})
}

// AddUnit appends a single edge record from→to with unit weight.
func (el *EdgeList[W]) AddUnit(from, to VertexID) {
	el.Add(from, to, 1)
}
