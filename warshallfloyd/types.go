// Package warshallfloyd defines the DistanceMatrix container produced
// by Compute and mutated by InsertEdge.
package warshallfloyd

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/edgewise/core"
)

// ErrNilGraph indicates that a nil graph was passed to Compute.
var ErrNilGraph = errors.New("warshallfloyd: graph is nil")

// DistanceMatrix is a square pairwise-distance map over the vertices
// [0, Order). Cells hold the shortest known distance, core.Inf[W]()
// for unreachable pairs. Storage is a flat row-major buffer, so the
// triple loop of the closure runs without pointer chasing.
type DistanceMatrix[W core.Weight] struct {
	n    int // matrix order (vertex count)
	data []W // row-major: cell (i,j) lives at data[i*n+j]
	inf  W   // cached core.Inf[W]()
}

// newDistanceMatrix allocates an order-n matrix filled with the
// sentinel and zeros on the diagonal.
func newDistanceMatrix[W core.Weight](n int) *DistanceMatrix[W] {
	m := &DistanceMatrix[W]{
		n:    n,
		data: make([]W, n*n),
		inf:  core.Inf[W](),
	}
	for i := 0; i < n; i++ {
		base := i * n
		for j := 0; j < n; j++ {
			m.data[base+j] = m.inf
		}
		m.data[base+i] = 0
	}

	return m
}

// Order reports the number of vertices the matrix spans.
func (m *DistanceMatrix[W]) Order() int { return m.n }

// Inf reports the sentinel value used for unreachable pairs.
func (m *DistanceMatrix[W]) Inf() W { return m.inf }

// At returns the shortest known distance from i to j.
// Returns core.ErrVertexOutOfRange if either index is invalid.
func (m *DistanceMatrix[W]) At(i, j core.VertexID) (W, error) {
	if err := m.check(i, j); err != nil {
		var zero W
		return zero, err
	}

	return m.data[i*m.n+j], nil
}

// Reachable reports whether a path from i to j is known.
func (m *DistanceMatrix[W]) Reachable(i, j core.VertexID) (bool, error) {
	d, err := m.At(i, j)
	if err != nil {
		return false, err
	}

	return d != m.inf, nil
}

// HasNegativeCycle reports whether some vertex reaches itself at
// negative cost — the Warshall–Floyd negative-cycle witness.
// Complexity: O(V).
func (m *DistanceMatrix[W]) HasNegativeCycle() bool {
	for v := 0; v < m.n; v++ {
		if m.data[v*m.n+v] < 0 {
			return true
		}
	}

	return false
}

// Clone returns an independent deep copy of the matrix.
// Complexity: O(V²).
func (m *DistanceMatrix[W]) Clone() *DistanceMatrix[W] {
	cp := &DistanceMatrix[W]{n: m.n, data: make([]W, len(m.data)), inf: m.inf}
	copy(cp.data, m.data)

	return cp
}

// check validates a pair of vertex indices against the matrix order.
func (m *DistanceMatrix[W]) check(i, j core.VertexID) error {
	if i < 0 || i >= m.n {
		return fmt.Errorf("%w: row %d, order %d", core.ErrVertexOutOfRange, i, m.n)
	}
	if j < 0 || j >= m.n {
		return fmt.Errorf("%w: col %d, order %d", core.ErrVertexOutOfRange, j, m.n)
	}

	return nil
}
