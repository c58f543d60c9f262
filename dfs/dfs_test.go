package dfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halych/graf/core"
	"github.com/halych/graf/dfs"
)

// buildChain creates a directed chain N0→N1→…→N(n-1).
func buildChain(n int) core.Graph {
	g := core.NewAdjacencyList(core.WithDirected(true))
	for i := 0; i < n-1; i++ {
		g.AddEdge("N"+strconv.Itoa(i), "N"+strconv.Itoa(i+1))
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrNilGraph)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := core.NewAdjacencyList(core.WithDirected(true))
	res, err := dfs.DFS(g, "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_SingleVertex(t *testing.T) {
	g := core.NewAdjacencyList(core.WithDirected(true))
	require.NoError(t, g.AddVertex("X"))

	res, err := dfs.DFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, res.Order)
	assert.Equal(t, 0, res.Depth["X"])
	_, hasParent := res.Parent["X"]
	assert.False(t, hasParent, "start vertex has no parent")
}

func TestDFS_DiscoveryOrder(t *testing.T) {
	// A branches to B and C; B reaches D. Sorted neighbor order means the
	// walk commits to B's subtree before touching C.
	g := core.NewAdjacencyList(core.WithDirected(true))
	g.AddEdge("A", "C")
	g.AddEdge("A", "B")
	g.AddEdge("B", "D")

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, "B", res.Parent["D"])
	assert.Equal(t, 2, res.Depth["D"])
	assert.Equal(t, 1, res.Depth["C"])
}

// recursiveOrder is the reference left-to-right recursive walk the iterative
// engine must reproduce.
func recursiveOrder(g core.Graph, id string, visited map[string]bool, order *[]string) {
	visited[id] = true
	*order = append(*order, id)
	for _, e := range g.Neighbors(id) {
		if !visited[e.To] {
			recursiveOrder(g, e.To, visited, order)
		}
	}
}

func TestDFS_DiscoveryOrderMatchesRecursive(t *testing.T) {
	g := core.NewAdjacencyList(core.WithDirected(true))
	edges := [][2]string{
		{"A", "D"}, {"A", "B"}, {"B", "C"}, {"B", "E"}, {"C", "D"},
		{"D", "F"}, {"E", "F"}, {"F", "A"}, {"E", "B"}, {"C", "G"},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	var want []string
	recursiveOrder(g, "A", make(map[string]bool), &want)

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, want, res.Order, "explicit-stack order must match recursive order")
}

func TestDFS_UnreachableNotVisited(t *testing.T) {
	g := buildChain(3)
	require.NoError(t, g.AddEdge("M0", "M1"))

	res, err := dfs.DFS(g, "N0")
	require.NoError(t, err)
	assert.Equal(t, []string{"N0", "N1", "N2"}, res.Order)
	assert.False(t, res.Visited["M0"])
	assert.False(t, res.Visited["M1"])
}

func TestDFS_EachVertexVisitedOnce(t *testing.T) {
	// Diamond plus back edge: revisits must not happen.
	g := core.NewAdjacencyList(core.WithDirected(true))
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddEdge("B", "D")
	g.AddEdge("C", "D")
	g.AddEdge("D", "A")

	visits := map[string]int{}
	res, err := dfs.DFS(g, "A", dfs.WithOnVisit(func(id string) error {
		visits[id]++

		return nil
	}))
	require.NoError(t, err)
	assert.Len(t, res.Order, 4)
	for id, n := range visits {
		assert.Equal(t, 1, n, "vertex %s visited more than once", id)
	}
}

func TestDFS_SelfLoop(t *testing.T) {
	g := core.NewAdjacencyList(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "A"))

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
}

func TestDFS_Undirected(t *testing.T) {
	g := core.NewAdjacencyList()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")

	res, err := dfs.DFS(g, "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, res.Order)
	assert.Equal(t, 2, res.Depth["A"])
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildChain(5)

	res, err := dfs.DFS(g, "N0", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"N0", "N1"}, res.Order)
	assert.False(t, res.Visited["N2"])
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := core.NewAdjacencyList(core.WithDirected(true))
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddEdge("C", "D")

	res, err := dfs.DFS(g, "A", dfs.WithFilterNeighbor(func(id string) bool {
		return id != "C"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
	assert.False(t, res.Visited["C"], "filtered neighbor must not be visited")
	assert.False(t, res.Visited["D"], "subtree behind a filtered neighbor is cut off")
}

func TestDFS_OnVisitError(t *testing.T) {
	g := buildChain(4)
	halt := errors.New("halt")

	res, err := dfs.DFS(g, "N0", dfs.WithOnVisit(func(id string) error {
		if id == "N2" {
			return halt
		}

		return nil
	}))
	require.NotNil(t, res)
	assert.ErrorIs(t, err, halt)
	assert.Equal(t, []string{"N0", "N1", "N2"}, res.Order)
}

func TestDFS_Cancellation(t *testing.T) {
	g := buildChain(100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := dfs.DFS(g, "N0", dfs.WithContext(ctx))
	require.NotNil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order)
}

func TestDFS_WorksOnEveryStore(t *testing.T) {
	builders := map[string]func() core.Graph{
		"AdjacencyList":   func() core.Graph { return core.NewAdjacencyList(core.WithDirected(true)) },
		"AdjacencyMatrix": func() core.Graph { return core.NewAdjacencyMatrix(core.WithDirected(true)) },
		"EdgeList":        func() core.Graph { return core.NewEdgeList(core.WithDirected(true)) },
	}
	for name, mk := range builders {
		t.Run(name, func(t *testing.T) {
			g := mk()
			require.NoError(t, g.AddEdge("A", "B"))
			require.NoError(t, g.AddEdge("B", "C"))

			res, err := dfs.DFS(g, "A")
			require.NoError(t, err)
			assert.Equal(t, []string{"A", "B", "C"}, res.Order)
		})
	}
}
