package core_test

import (
	"fmt"

	"github.com/halych/graf/core"
)

func ExampleNewAdjacencyList() {
	g := core.NewAdjacencyList()
	g.AddEdge("A", "B", core.WithWeight(3))
	g.AddEdge("A", "C")

	fmt.Println(g.Vertices())
	for _, e := range g.Neighbors("A") {
		fmt.Printf("%s-%s w=%d\n", e.From, e.To, e.Weight)
	}
	// Output:
	// [A B C]
	// A-B w=3
	// A-C w=1
}

func ExampleNewAdjacencyMatrix() {
	g := core.NewAdjacencyMatrix(core.WithDirected(true))
	g.AddEdge("u", "v", core.WithWeight(7))

	fmt.Println(g.HasEdge("u", "v"), g.HasEdge("v", "u"))
	w, _ := g.EdgeWeight("u", "v")
	fmt.Println(w)
	// Output:
	// true false
	// 7
}

func ExampleNewEdgeList() {
	g := core.NewEdgeList()
	g.AddEdge("A", "B")
	g.RemoveEdge("A", "B")

	fmt.Println(g.EdgeCount(), g.VertexCount())
	// Output:
	// 0 2
}
