package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edgewise/core"
	"github.com/katalvlaran/edgewise/dijkstra"
)

// buildDiamond builds the reference four-vertex graph:
//
//	0───1 (4)   1───2 (3)
//	0───2 (1)   2───3 (2)
//
// Shortest distances from 0 are [0 4 1 3].
func buildDiamond(t *testing.T) *core.Graph[int] {
	t.Helper()
	g, err := core.NewGraph[int](4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(1, 2, 3))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 2))

	return g
}

func TestDijkstra_NilGraph(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra[int](nil, 0)
	assert.Nil(t, dist)
	assert.Nil(t, prev)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceOutOfRange(t *testing.T) {
	g, err := core.NewGraph[int](2)
	require.NoError(t, err)

	_, _, err = dijkstra.Dijkstra(g, 2)
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
	_, _, err = dijkstra.Dijkstra(g, -1)
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
}

func TestDijkstra_ReferenceScenario(t *testing.T) {
	g := buildDiamond(t)

	dist, prev, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 1, 3}, dist)
	assert.Nil(t, prev, "predecessors are opt-in")
}

func TestDijkstra_ReturnPath(t *testing.T) {
	g := buildDiamond(t)

	dist, prev, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath[int]())
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, []int{0, 4, 1, 3}, dist)
	assert.Equal(t, dijkstra.NoPredecessor, prev[0])

	// The direct 0→1 edge ties the 0→2→1 route at 4; the relaxation
	// keeps the first-found predecessor. 0→2→3 is uniquely shortest.
	assert.Equal(t, []core.VertexID{0, 1}, dijkstra.Path(prev, 0, 1))
	assert.Equal(t, []core.VertexID{0, 2, 3}, dijkstra.Path(prev, 0, 3))
	assert.Equal(t, []core.VertexID{0}, dijkstra.Path(prev, 0, 0))
}

func TestDijkstra_UnreachableKeepsSentinel(t *testing.T) {
	g, err := core.NewGraph[int](3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 5))

	dist, prev, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath[int]())
	require.NoError(t, err)
	assert.Equal(t, core.Inf[int](), dist[2])
	assert.Equal(t, dijkstra.NoPredecessor, prev[2])
	assert.Nil(t, dijkstra.Path(prev, 0, 2))
}

func TestDijkstra_DirectedArcsAreOneWay(t *testing.T) {
	g, err := core.NewGraph[int](3)
	require.NoError(t, err)
	require.NoError(t, g.AddArc(0, 1, 2))
	require.NoError(t, g.AddArc(1, 2, 2))

	dist, _, err := dijkstra.Dijkstra(g, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, dist[2])
	assert.Equal(t, core.Inf[int](), dist[0], "arcs must not be walked backwards")

	// The single-destination reduction: reverse arcs, rerun from 2.
	dist, _, err = dijkstra.Dijkstra(g.Reverse(), 2)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 0}, dist)
}

func TestDijkstra_MaxDistanceCap(t *testing.T) {
	// Chain 0→1→2→3, unit weights; cap at 1 leaves 2 and 3 unexplored.
	g, err := core.NewGraph[int](4)
	require.NoError(t, err)
	for v := 0; v < 3; v++ {
		require.NoError(t, g.AddArcUnit(v, v+1))
	}

	dist, _, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	assert.Equal(t, 0, dist[0])
	assert.Equal(t, 1, dist[1])
	assert.Equal(t, core.Inf[int](), dist[2])
	assert.Equal(t, core.Inf[int](), dist[3])
}

func TestDijkstra_FloatWeights(t *testing.T) {
	g, err := core.NewGraph[float64](3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 0.5))
	require.NoError(t, g.AddEdge(1, 2, 0.25))
	require.NoError(t, g.AddEdge(0, 2, 1.0))

	dist, _, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, dist[2], 1e-12)
}

func TestDijkstra_ZeroWeightEdges(t *testing.T) {
	g, err := core.NewGraph[int](3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))

	dist, _, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, dist)
}
