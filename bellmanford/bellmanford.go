// Package bellmanford provides single-source shortest paths for
// general edge weights with negative-cycle detection.
package bellmanford

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/edgewise/core"
)

// Sentinel errors returned by the Bellman–Ford implementation.
var (
	// ErrNegativeCycle indicates a negative cycle reachable from the
	// source: shortest distances are unbounded below and undefined.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")

	// ErrBadVertexCount indicates a negative vertexCount argument.
	ErrBadVertexCount = errors.New("bellmanford: vertex count must be non-negative")

	// ErrSourceOutOfRange indicates that the source vertex index is
	// outside [0, vertexCount).
	ErrSourceOutOfRange = errors.New("bellmanford: source vertex out of range")
)

// BellmanFord computes shortest distances from source to every vertex
// of the graph described by edges over vertexCount vertices. Edge
// weights may be negative.
//
// Returns:
//
//   - dist: slice of length vertexCount; dist[v] is the minimum
//     distance from source to v, or core.Inf[W]() if unreachable.
//   - err:  ErrNegativeCycle (with nil distances) if a negative cycle
//     is reachable from the source, or a validation error.
//
// Complexity: Time O(V·E), Space O(V).
func BellmanFord[W core.Weight](edges core.EdgeList[W], vertexCount int, source core.VertexID) ([]W, error) {
	// 1. Validate shape arguments.
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, vertexCount)
	}
	if source < 0 || source >= vertexCount {
		return nil, fmt.Errorf("%w: %d of %d", ErrSourceOutOfRange, source, vertexCount)
	}

	// 2. Validate every edge index once, before any relaxation.
	for _, e := range edges {
		if e.From < 0 || e.From >= vertexCount || e.To < 0 || e.To >= vertexCount {
			return nil, fmt.Errorf("%w: edge %d→%d, vertex count %d",
				core.ErrVertexOutOfRange, e.From, e.To, vertexCount)
		}
	}

	// 3. Initialize distances to the sentinel, the source to zero.
	inf := core.Inf[W]()
	dist := make([]W, vertexCount)
	for v := range dist {
		dist[v] = inf
	}
	dist[source] = 0

	// 4. Relax every edge vertexCount-1 times, enough for any simple
	//    shortest path. Sentinel origins are skipped so Inf never
	//    contaminates a finite distance.
	for round := 0; round < vertexCount-1; round++ {
		for _, e := range edges {
			if dist[e.From] == inf {
				continue
			}
			if next := dist[e.From] + e.Weight; next < dist[e.To] {
				dist[e.To] = next
			}
		}
	}

	// 5. Detection pass: any edge still relaxable closes a negative
	//    cycle reachable from the source.
	for _, e := range edges {
		if dist[e.From] == inf {
			continue
		}
		if dist[e.From]+e.Weight < dist[e.To] {
			return nil, fmt.Errorf("%w: via edge %d→%d", ErrNegativeCycle, e.From, e.To)
		}
	}

	return dist, nil
}
