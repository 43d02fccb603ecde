// Package mst implements Prim's minimum-spanning-tree algorithm,
// growing the tree from a root vertex with a min-heap of frontier
// edges.
package mst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/edgewise/core"
)

// Prim computes a minimum spanning tree of the component of g that
// contains root, growing outward from root and always taking the
// cheapest edge crossing the current cut.
//
// The graph is treated as undirected: build it with AddEdge so every
// connection is walkable in both directions.
//
// Returns:
//
//   - tree:  the accepted edges, in the order they joined the tree —
//     one fewer than the component's vertex count.
//   - total: the summed weight of the tree.
//   - err:   ErrNilGraph or ErrRootOutOfRange.
//
// Vertices outside root's component are simply not spanned; callers
// needing full coverage run Prim once per component or use Kruskal.
//
// Complexity: Time O(E log V), Space O(V + E).
func Prim[W core.Weight](g *core.Graph[W], root core.VertexID) ([]core.Edge[W], W, error) {
	var total W

	// 1. Validate the graph pointer and the root index.
	if g == nil {
		return nil, total, ErrNilGraph
	}
	if !g.HasVertex(root) {
		return nil, total, fmt.Errorf("%w: %d of %d", ErrRootOutOfRange, root, g.VertexCount())
	}

	// 2. Seed the frontier with root's incident edges.
	n := g.VertexCount()
	visited := make([]bool, n)
	visited[root] = true

	pq := make(edgeHeap[W], 0, n)
	heap.Init(&pq)
	for _, e := range g.Out(root) {
		if !visited[e.To] {
			heap.Push(&pq, e)
		}
	}

	// 3. Repeatedly take the cheapest frontier edge whose far endpoint
	//    is still outside the tree.
	tree := make([]core.Edge[W], 0, max(n-1, 0))
	for pq.Len() > 0 && len(tree) < n-1 {
		e := heap.Pop(&pq).(core.Edge[W])
		v := e.To
		if visited[v] { // both endpoints inside: would close a cycle
			continue
		}
		visited[v] = true
		tree = append(tree, e)
		total += e.Weight

		for _, next := range g.Out(v) {
			if !visited[next.To] {
				heap.Push(&pq, next)
			}
		}
	}

	return tree, total, nil
}

// edgeHeap is a min-heap of edges ordered by weight ascending.
type edgeHeap[W core.Weight] []core.Edge[W]

func (h edgeHeap[W]) Len() int            { return len(h) }
func (h edgeHeap[W]) Less(i, j int) bool  { return h[i].Weight < h[j].Weight }
func (h edgeHeap[W]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *edgeHeap[W]) Push(x interface{}) { *h = append(*h, x.(core.Edge[W])) }

func (h *edgeHeap[W]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
