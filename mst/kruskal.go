// Package mst implements Kruskal's minimum-spanning-tree algorithm
// over a sorted edge list and the unionfind structure.
package mst

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/edgewise/core"
	"github.com/katalvlaran/edgewise/unionfind"
)

// Sentinel errors shared by the MST algorithms.
var (
	// ErrBadVertexCount indicates a negative vertexCount argument.
	ErrBadVertexCount = errors.New("mst: vertex count must be non-negative")

	// ErrNilGraph indicates that a nil graph was passed to Prim.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrRootOutOfRange indicates that Prim's root vertex index is
	// outside [0, VertexCount).
	ErrRootOutOfRange = errors.New("mst: root vertex out of range")
)

// Kruskal computes the minimum spanning forest of the undirected graph
// described by edges over vertexCount vertices.
//
// Each EdgeList record is one undirected connection. Edges are scanned
// in ascending weight order (ties broken by input order) and accepted
// exactly when uniting their endpoints merges two components.
//
// Returns:
//
//   - forest: the accepted edges — V-1 of them for a connected input,
//     fewer when the input splits into several components.
//   - total:  the summed weight of the forest.
//   - err:    a validation error, or nil.
//
// Complexity: Time O(E log E + α(V)·E), Space O(V + E).
func Kruskal[W core.Weight](edges core.EdgeList[W], vertexCount int) ([]core.Edge[W], W, error) {
	var total W

	// 1. Validate the vertex count and every edge index up front.
	if vertexCount < 0 {
		return nil, total, fmt.Errorf("%w: %d", ErrBadVertexCount, vertexCount)
	}
	for _, e := range edges {
		if e.From < 0 || e.From >= vertexCount || e.To < 0 || e.To >= vertexCount {
			return nil, total, fmt.Errorf("%w: edge %d→%d, vertex count %d",
				core.ErrVertexOutOfRange, e.From, e.To, vertexCount)
		}
	}

	// 2. Sort a copy ascending by weight; the caller's list stays
	//    untouched. Stable sort keeps tie-breaking deterministic.
	sorted := make([]core.Edge[W], len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 3. One singleton set per vertex; the merge capability decides
	//    which edges the forest accepts.
	uf, err := unionfind.New(vertexCount)
	if err != nil {
		return nil, total, fmt.Errorf("mst: %w", err)
	}
	var merge unionfind.Merger = uf

	// 4. Greedy scan: accumulate weight only when a union truly merges.
	forest := make([]core.Edge[W], 0, max(vertexCount-1, 0))
	for _, e := range sorted {
		merged, uerr := merge.Union(e.From, e.To)
		if uerr != nil {
			return nil, total, fmt.Errorf("mst: %w", uerr)
		}
		if !merged { // same component already: the edge would close a cycle
			continue
		}
		forest = append(forest, e)
		total += e.Weight
		if len(forest) == vertexCount-1 { // spanning tree complete
			break
		}
	}

	return forest, total, nil
}
