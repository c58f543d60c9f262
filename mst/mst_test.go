package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halych/graf/core"
	"github.com/halych/graf/mst"
)

// buildWeighted creates the classic 4-cycle-with-chord fixture:
// A-B(1), B-C(2), C-D(3), D-A(4), A-C(5). MST weight = 1+2+3 = 6.
func buildWeighted() core.Graph {
	g := core.NewAdjacencyList()
	g.AddEdge("A", "B", core.WithWeight(1))
	g.AddEdge("B", "C", core.WithWeight(2))
	g.AddEdge("C", "D", core.WithWeight(3))
	g.AddEdge("D", "A", core.WithWeight(4))
	g.AddEdge("A", "C", core.WithWeight(5))

	return g
}

func TestKruskal_InvalidInput(t *testing.T) {
	_, _, err := mst.Kruskal(nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)

	directed := core.NewAdjacencyList(core.WithDirected(true))
	directed.AddEdge("A", "B")
	_, _, err = mst.Kruskal(directed)
	assert.ErrorIs(t, err, mst.ErrNotUndirected)

	empty := core.NewAdjacencyList()
	_, _, err = mst.Kruskal(empty)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
}

func TestKruskal_SingleVertex(t *testing.T) {
	g := core.NewAdjacencyList()
	require.NoError(t, g.AddVertex("A"))

	tree, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, tree)
	assert.Zero(t, total)
}

func TestKruskal_Classic(t *testing.T) {
	tree, total, err := mst.Kruskal(buildWeighted())
	require.NoError(t, err)
	assert.Len(t, tree, 3)
	assert.Equal(t, int64(6), total)
}

func TestKruskal_Disconnected(t *testing.T) {
	g := core.NewAdjacencyList()
	g.AddEdge("A", "B", core.WithWeight(1))
	g.AddEdge("X", "Y", core.WithWeight(1))

	_, _, err := mst.Kruskal(g)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
}

func TestKruskal_SelfLoopsIgnored(t *testing.T) {
	g := core.NewAdjacencyList()
	g.AddEdge("A", "B", core.WithWeight(2))
	g.AddEdge("A", "A", core.WithWeight(-10))

	tree, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, tree, 1)
	assert.Equal(t, int64(2), total)
}

func TestPrim_InvalidInput(t *testing.T) {
	_, _, err := mst.Prim(nil, "A")
	assert.ErrorIs(t, err, mst.ErrNilGraph)

	directed := core.NewAdjacencyList(core.WithDirected(true))
	directed.AddEdge("A", "B")
	_, _, err = mst.Prim(directed, "A")
	assert.ErrorIs(t, err, mst.ErrNotUndirected)

	g := core.NewAdjacencyList()
	g.AddEdge("A", "B")
	_, _, err = mst.Prim(g, "missing")
	assert.ErrorIs(t, err, mst.ErrRootNotFound)
}

func TestPrim_Classic(t *testing.T) {
	tree, total, err := mst.Prim(buildWeighted(), "A")
	require.NoError(t, err)
	assert.Len(t, tree, 3)
	assert.Equal(t, int64(6), total)
}

func TestPrim_Disconnected(t *testing.T) {
	g := core.NewAdjacencyList()
	g.AddEdge("A", "B", core.WithWeight(1))
	g.AddEdge("X", "Y", core.WithWeight(1))

	_, _, err := mst.Prim(g, "A")
	assert.ErrorIs(t, err, mst.ErrDisconnected)
}

func TestPrimAndKruskal_AgreeOnTotalWeight(t *testing.T) {
	g := core.NewAdjacencyList()
	g.AddEdge("A", "B", core.WithWeight(7))
	g.AddEdge("A", "D", core.WithWeight(5))
	g.AddEdge("B", "C", core.WithWeight(8))
	g.AddEdge("B", "D", core.WithWeight(9))
	g.AddEdge("B", "E", core.WithWeight(7))
	g.AddEdge("C", "E", core.WithWeight(5))
	g.AddEdge("D", "E", core.WithWeight(15))
	g.AddEdge("D", "F", core.WithWeight(6))
	g.AddEdge("E", "F", core.WithWeight(8))
	g.AddEdge("E", "G", core.WithWeight(9))
	g.AddEdge("F", "G", core.WithWeight(11))

	_, kruskalTotal, err := mst.Kruskal(g)
	require.NoError(t, err)
	_, primTotal, err := mst.Prim(g, "A")
	require.NoError(t, err)
	assert.Equal(t, int64(39), kruskalTotal)
	assert.Equal(t, kruskalTotal, primTotal)
}

func TestKruskal_MatrixStore(t *testing.T) {
	g := core.NewAdjacencyMatrix()
	g.AddEdge("A", "B", core.WithWeight(1))
	g.AddEdge("B", "C", core.WithWeight(2))

	tree, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, tree, 2)
	assert.Equal(t, int64(3), total)
}
