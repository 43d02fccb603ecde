// Package warshallfloyd provides the all-pairs closure and the
// two-pivot incremental edge insertion.
package warshallfloyd

import (
	"fmt"

	"github.com/katalvlaran/edgewise/core"
)

// Compute builds the all-pairs shortest-path matrix of g.
//
// Initialization: 0 on the diagonal, the minimum direct arc weight for
// adjacent pairs, the sentinel elsewhere. Closure: for each pivot k
// and every pair (i,j), relax dist[i][j] against dist[i][k]+dist[k][j],
// skipping sentinel intermediates to avoid overflow.
//
// Negative weights are allowed; after Compute, HasNegativeCycle
// reports whether the graph contains a negative cycle (in which case
// off-diagonal distances are unreliable).
//
// Complexity: Time O(V³), Space O(V²).
func Compute[W core.Weight](g *core.Graph[W]) (*DistanceMatrix[W], error) {
	// 1. Validate the graph pointer.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2. Seed the matrix: diagonal zeros, then the cheapest direct arc
	//    per ordered pair (parallel arcs keep the minimum).
	n := g.VertexCount()
	m := newDistanceMatrix[W](n)
	for v := 0; v < n; v++ {
		for _, e := range g.Out(v) {
			if cell := &m.data[e.From*n+e.To]; e.Weight < *cell {
				*cell = e.Weight
			}
		}
	}

	// 3. Close the matrix through every pivot in a fixed k→i→j order.
	for k := 0; k < n; k++ {
		m.closeThroughPivot(k)
	}

	return m, nil
}

// InsertEdge folds one new undirected edge from↔to of weight w into an
// already-closed matrix: both mirrored cells are lowered to
// min(current, w), then the matrix is re-closed through the two
// endpoints only.
//
// The shortcut is sound because paths improved by a single edge must
// route through one of its endpoints, provided m was transitively
// closed beforehand. Edge removal and weight increase are not
// supported; a weight no better than the current distance is a no-op.
//
// Complexity: Time O(V²), Space O(1).
func InsertEdge[W core.Weight](m *DistanceMatrix[W], from, to core.VertexID, w W) error {
	// 1. Validate endpoints against the matrix order.
	if err := m.check(from, to); err != nil {
		return fmt.Errorf("warshallfloyd: InsertEdge: %w", err)
	}

	// 2. Lower both mirrored cells (the undirected representation).
	if cell := &m.data[from*m.n+to]; w < *cell {
		*cell = w
	}
	if cell := &m.data[to*m.n+from]; w < *cell {
		*cell = w
	}

	// 3. Re-close through the two affected pivots.
	m.closeThroughPivot(from)
	m.closeThroughPivot(to)

	return nil
}

// closeThroughPivot relaxes every pair (i,j) through pivot k,
// skipping sentinel intermediates.
// Complexity: O(V²).
func (m *DistanceMatrix[W]) closeThroughPivot(k core.VertexID) {
	n := m.n
	data := m.data
	baseK := k * n
	for i := 0; i < n; i++ {
		ik := data[i*n+k]
		if ik == m.inf { // i cannot reach k: no path via k can improve i→j
			continue
		}
		baseI := i * n
		for j := 0; j < n; j++ {
			kj := data[baseK+j]
			if kj == m.inf { // k cannot reach j
				continue
			}
			if cand := ik + kj; cand < data[baseI+j] {
				data[baseI+j] = cand
			}
		}
	}
}
