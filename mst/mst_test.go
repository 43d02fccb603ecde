package mst_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edgewise/core"
	"github.com/katalvlaran/edgewise/mst"
)

// referenceEdges is the four-vertex scenario: undirected edges
// (0,1,4), (1,2,3), (0,2,1), (2,3,2); MST weight 1+3+2 = 6.
func referenceEdges() core.EdgeList[int] {
	var edges core.EdgeList[int]
	edges.Add(0, 1, 4)
	edges.Add(1, 2, 3)
	edges.Add(0, 2, 1)
	edges.Add(2, 3, 2)

	return edges
}

func TestKruskal_BadArguments(t *testing.T) {
	_, _, err := mst.Kruskal(core.EdgeList[int]{}, -1)
	assert.ErrorIs(t, err, mst.ErrBadVertexCount)

	var edges core.EdgeList[int]
	edges.Add(0, 3, 1)
	_, _, err = mst.Kruskal(edges, 3)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestKruskal_ReferenceScenario(t *testing.T) {
	forest, total, err := mst.Kruskal(referenceEdges(), 4)
	require.NoError(t, err)
	assert.Equal(t, 6, total)
	require.Len(t, forest, 3)
	// Accepted in ascending weight order: (0,2,1), (2,3,2), (1,2,3).
	assert.Equal(t, core.Edge[int]{From: 0, To: 2, Weight: 1}, forest[0])
	assert.Equal(t, core.Edge[int]{From: 2, To: 3, Weight: 2}, forest[1])
	assert.Equal(t, core.Edge[int]{From: 1, To: 2, Weight: 3}, forest[2])
}

func TestKruskal_InputListNotMutated(t *testing.T) {
	edges := referenceEdges()
	_, _, err := mst.Kruskal(edges, 4)
	require.NoError(t, err)
	assert.Equal(t, referenceEdges(), edges, "the caller's edge list must stay in input order")
}

func TestKruskal_DisconnectedForest(t *testing.T) {
	// Two components {0,1} and {2,3,4}: forest of 1 + 2 edges.
	var edges core.EdgeList[int]
	edges.Add(0, 1, 5)
	edges.Add(2, 3, 1)
	edges.Add(3, 4, 2)
	edges.Add(2, 4, 9)

	forest, total, err := mst.Kruskal(edges, 5)
	require.NoError(t, err)
	assert.Equal(t, 8, total)
	assert.Len(t, forest, 3)
}

func TestKruskal_SelfLoopsSkipped(t *testing.T) {
	var edges core.EdgeList[int]
	edges.Add(0, 0, -100)
	edges.Add(0, 1, 3)

	forest, total, err := mst.Kruskal(edges, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, forest, 1)
}

func TestKruskal_TrivialInputs(t *testing.T) {
	forest, total, err := mst.Kruskal(core.EdgeList[int]{}, 0)
	require.NoError(t, err)
	assert.Empty(t, forest)
	assert.Equal(t, 0, total)

	forest, total, err = mst.Kruskal(core.EdgeList[int]{}, 1)
	require.NoError(t, err)
	assert.Empty(t, forest)
	assert.Equal(t, 0, total)
}

func TestPrim_BadArguments(t *testing.T) {
	_, _, err := mst.Prim[int](nil, 0)
	assert.ErrorIs(t, err, mst.ErrNilGraph)

	g, gerr := core.NewGraph[int](2)
	require.NoError(t, gerr)
	_, _, err = mst.Prim(g, 2)
	assert.ErrorIs(t, err, mst.ErrRootOutOfRange)
}

func TestPrim_ReferenceScenario(t *testing.T) {
	g, err := core.NewGraph[int](4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(1, 2, 3))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 2))

	tree, total, err := mst.Prim(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 6, total)
	assert.Len(t, tree, 3)
}

func TestPrim_SpansRootComponentOnly(t *testing.T) {
	g, err := core.NewGraph[int](4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	tree, total, err := mst.Prim(g, 0)
	require.NoError(t, err)
	assert.Len(t, tree, 1)
	assert.Equal(t, 1, total)
}

// Kruskal and Prim must agree on total weight for every connected
// graph — the classic cross-check between the two greedy strategies.
func TestKruskalAndPrim_AgreeOnConnectedGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for trial := 0; trial < 25; trial++ {
		n := 2 + rng.Intn(30)

		g, err := core.NewGraph[int](n)
		require.NoError(t, err)
		var edges core.EdgeList[int]

		// Spanning chain guarantees connectivity, then random extras.
		addBoth := func(u, v, w int) {
			require.NoError(t, g.AddEdge(u, v, w))
			edges.Add(u, v, w)
		}
		for v := 0; v < n-1; v++ {
			addBoth(v, v+1, 1+rng.Intn(100))
		}
		for i := 0; i < n; i++ {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v {
				continue
			}
			addBoth(u, v, 1+rng.Intn(100))
		}

		forest, kruskalTotal, err := mst.Kruskal(edges, n)
		require.NoError(t, err)
		require.Len(t, forest, n-1, "connected graph must span with n-1 edges")

		tree, primTotal, err := mst.Prim(g, rng.Intn(n))
		require.NoError(t, err)
		require.Len(t, tree, n-1)

		require.Equal(t, kruskalTotal, primTotal, "trial %d: MST weights must match", trial)
	}
}

func TestKruskal_FloatWeights(t *testing.T) {
	var edges core.EdgeList[float64]
	edges.Add(0, 1, 0.5)
	edges.Add(1, 2, 0.25)
	edges.Add(0, 2, 0.9)

	_, total, err := mst.Kruskal(edges, 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, total, 1e-12)
}
