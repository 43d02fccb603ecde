// Package bipartite implements the iterative two-coloring check.
package bipartite

import (
	"errors"

	"github.com/katalvlaran/edgewise/core"
)

// ErrNilGraph indicates that a nil graph was passed to the check.
var ErrNilGraph = errors.New("bipartite: graph is nil")

// Color classes assigned by Partition. Uncolored marks vertices the
// traversal never reached.
const (
	Uncolored int8 = 0
	ColorA    int8 = 1
	ColorB    int8 = -1
)

// Options configures the bipartiteness check.
//
// FullTraversal – if true, restart the coloring from every uncolored
// vertex so disconnected components are verified too. Default is
// false: only the component containing vertex 0 is checked.
type Options struct {
	FullTraversal bool
}

// Option represents a functional option for configuring the check.
type Option func(*Options)

// WithFullTraversal extends the check to every connected component.
// When unset, vertices unreachable from vertex 0 are implicitly
// treated as satisfying the property.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// DefaultOptions returns the Options used when no functional option
// overrides them: single-component traversal from vertex 0.
func DefaultOptions() Options {
	return Options{FullTraversal: false}
}

// IsBipartite reports whether g is two-colorable. A conflicting edge
// flips the verdict to false but never aborts the traversal, so the
// answer accounts for every edge of the examined component(s).
//
// Complexity: Time O(V + E), Space O(V).
func IsBipartite[W core.Weight](g *core.Graph[W], opts ...Option) (bool, error) {
	_, ok, err := Partition(g, opts...)

	return ok, err
}

// Partition two-colors g and returns the per-vertex color classes
// alongside the bipartiteness verdict. colors[v] is ColorA or ColorB
// for every vertex the traversal reached, Uncolored otherwise; the
// class split is meaningful only when ok is true.
//
// Complexity: Time O(V + E), Space O(V).
func Partition[W core.Weight](g *core.Graph[W], opts ...Option) (colors []int8, ok bool, err error) {
	// 1. Validate the graph pointer.
	if g == nil {
		return nil, false, ErrNilGraph
	}

	// 2. Build Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3. An empty graph is vacuously bipartite.
	n := g.VertexCount()
	colors = make([]int8, n)
	ok = true
	if n == 0 {
		return colors, ok, nil
	}

	// 4. Color the component of vertex 0; optionally every component.
	stack := make([]core.VertexID, 0, n)
	colorComponent := func(root core.VertexID) {
		colors[root] = ColorA
		stack = append(stack, root)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, e := range g.Out(v) {
				switch colors[e.To] {
				case Uncolored:
					colors[e.To] = -colors[v] // alternate across the edge
					stack = append(stack, e.To)
				case colors[v]:
					ok = false // same-colored endpoints; keep walking
				}
			}
		}
	}

	colorComponent(0)
	if cfg.FullTraversal {
		for v := 1; v < n; v++ {
			if colors[v] == Uncolored {
				colorComponent(v)
			}
		}
	}

	return colors, ok, nil
}
