// Package dijkstra provides the heap-driven single-source
// shortest-path computation over core.Graph adjacency lists.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/edgewise/core"
)

// Dijkstra computes shortest distances from source to every vertex of
// the weighted graph g. All edge weights must be non-negative; this is
// a documented precondition, not a runtime check.
//
// Returns:
//
//   - dist: slice of length VertexCount; dist[v] is the minimum
//     distance from source to v, or core.Inf[W]() if unreachable.
//   - prev: predecessor slice if WithReturnPath was given (nil
//     otherwise). prev[v] == u means the shortest path to v arrives
//     via u; prev[v] == NoPredecessor for the source and for
//     unreachable vertices.
//   - err:  ErrNilGraph or ErrSourceOutOfRange on invalid input.
//
// Complexity: Time O(E log V), Space O(V + E).
func Dijkstra[W core.Weight](g *core.Graph[W], source core.VertexID, opts ...Option[W]) ([]W, []core.VertexID, error) {
	// 1. Validate the graph pointer.
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 2. Validate the source index against the fixed vertex count.
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: %d of %d", ErrSourceOutOfRange, source, g.VertexCount())
	}

	// 3. Build Options from defaults plus functional overrides.
	cfg := DefaultOptions[W]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 4. Initialize distances to the sentinel, the source to zero.
	n := g.VertexCount()
	inf := core.Inf[W]()
	dist := make([]W, n)
	for v := range dist {
		dist[v] = inf
	}
	dist[source] = 0

	// Predecessors are tracked only when requested.
	var prev []core.VertexID
	if cfg.ReturnPath {
		prev = make([]core.VertexID, n)
		for v := range prev {
			prev[v] = NoPredecessor
		}
	}

	// 5. Seed the min-heap with the source at distance zero.
	pq := make(vertexHeap[W], 0, n)
	heap.Init(&pq)
	heap.Push(&pq, heapItem[W]{vertex: source, dist: 0})

	// 6. Main loop: pop the closest vertex, skip stale entries, relax.
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(heapItem[W])
		u, d := item.vertex, item.dist

		// 6a. Lazy deletion: a better distance was already finalized.
		if dist[u] < d {
			continue
		}

		// 6b. Everything beyond the cap stays unexplored.
		if d > cfg.MaxDistance {
			break
		}

		// 6c. Relax each outgoing arc of u.
		for _, e := range g.Out(u) {
			next := d + e.Weight
			if next > cfg.MaxDistance {
				continue
			}
			if dist[e.To] <= next {
				continue
			}
			dist[e.To] = next
			if prev != nil {
				prev[e.To] = u
			}
			heap.Push(&pq, heapItem[W]{vertex: e.To, dist: next})
		}
	}

	return dist, prev, nil
}

// Path reconstructs the shortest path source→target from a predecessor
// slice produced by Dijkstra with WithReturnPath. Returns nil if
// target was unreachable.
// Complexity: O(path length).
func Path(prev []core.VertexID, source, target core.VertexID) []core.VertexID {
	if target < 0 || target >= len(prev) {
		return nil
	}
	if target != source && prev[target] == NoPredecessor {
		return nil
	}

	// Walk backwards from target, then reverse in place.
	path := []core.VertexID{target}
	for v := target; v != source; v = prev[v] {
		path = append(path, prev[v])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// heapItem pairs a vertex with its tentative distance from the source.
type heapItem[W core.Weight] struct {
	vertex core.VertexID
	dist   W
}

// vertexHeap is a min-heap of heapItem ordered by distance ascending.
// Stale duplicates are allowed and filtered on pop.
type vertexHeap[W core.Weight] []heapItem[W]

func (h vertexHeap[W]) Len() int            { return len(h) }
func (h vertexHeap[W]) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h vertexHeap[W]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *vertexHeap[W]) Push(x interface{}) { *h = append(*h, x.(heapItem[W])) }

func (h *vertexHeap[W]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
