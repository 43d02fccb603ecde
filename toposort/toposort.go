// Package toposort implements iterative three-color topological
// ordering with cycle detection.
package toposort

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/edgewise/core"
)

// Sentinel errors returned by Sort.
var (
	// ErrNilGraph indicates that a nil graph was passed to Sort.
	ErrNilGraph = errors.New("toposort: graph is nil")

	// ErrCycleDetected indicates that the graph contains a directed
	// cycle, so no topological order exists.
	ErrCycleDetected = errors.New("toposort: cycle detected")
)

// Vertex visitation colors.
const (
	white = iota // not yet visited
	gray         // on the current traversal path
	black        // fully explored
)

// frame is one entry of the explicit DFS work stack: a vertex plus the
// index of its next unexplored outgoing arc.
type frame struct {
	vertex core.VertexID
	next   int
}

// Sort computes a topological ordering of all vertices of the directed
// graph g: for every arc u→v, u precedes v in the returned order.
//
// Returns ErrCycleDetected if g contains a directed cycle; the
// partially built order is discarded. The traversal uses an explicit
// work stack, so recursion depth is never a concern.
//
// Complexity: Time O(V + E), Space O(V).
func Sort[W core.Weight](g *core.Graph[W]) ([]core.VertexID, error) {
	// 1. Validate the graph pointer.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2. All vertices start white; the post-order list fills as they
	//    turn black.
	n := g.VertexCount()
	color := make([]int8, n)
	order := make([]core.VertexID, 0, n)
	stack := make([]frame, 0, n)

	// 3. Drive DFS from every unvisited vertex in ascending index
	//    order, so the result is deterministic.
	for root := 0; root < n; root++ {
		if color[root] != white {
			continue
		}
		color[root] = gray
		stack = append(stack, frame{vertex: root})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			out := g.Out(top.vertex)

			// 3a. Arcs exhausted: finish the vertex (post-order).
			if top.next == len(out) {
				color[top.vertex] = black
				order = append(order, top.vertex)
				stack = stack[:len(stack)-1]
				continue
			}

			// 3b. Advance to the next outgoing arc.
			to := out[top.next].To
			top.next++
			switch color[to] {
			case black: // already finished, nothing to do
			case gray: // back edge onto the current path
				return nil, fmt.Errorf("%w: back edge %d→%d", ErrCycleDetected, top.vertex, to)
			default: // white: descend
				color[to] = gray
				stack = append(stack, frame{vertex: to})
			}
		}
	}

	// 4. Reverse the post-order to obtain the topological order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
