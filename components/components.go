// Package components partitions an undirected core.Graph into its connected
// components, the maximal sets of vertices pairwise joined by paths.
//
// The finder floods breadth-first from each not-yet-seen vertex, collecting
// everything it reaches into one component, and repeats until all vertices
// are covered. Isolated vertices form their own one-element components.
// Directedness is a precondition, not a runtime branch: directed graphs are
// rejected with ErrDirectedGraph before any work starts.
//
// Output is deterministic: components appear in sorted order of their
// first-discovered vertex, members in discovery order.
//
// Complexity: O(V + E) time, O(V) memory.
package components

import (
	"errors"

	"github.com/halych/graf/core"
)

var (
	// ErrNilGraph is returned when a nil core.Graph is passed in.
	ErrNilGraph = errors.New("components: graph is nil")

	// ErrDirectedGraph is returned for directed input; connected
	// components are defined over undirected paths only.
	ErrDirectedGraph = errors.New("components: undirected graph required")
)

// ConnectedComponents returns the connected components of g. Every vertex
// appears in exactly one component, and two vertices share a component iff
// a path connects them.
func ConnectedComponents(g core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	seen := make(map[string]bool, g.VertexCount())
	var comps [][]string
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		comps = append(comps, flood(g, v, seen))
	}

	return comps, nil
}

// flood collects the component containing root via breadth-first search,
// marking members in seen. Neighbors() is sorted, so membership order is
// deterministic.
func flood(g core.Graph, root string, seen map[string]bool) []string {
	queue := []string{root}
	seen[root] = true
	var comp []string

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		comp = append(comp, u)
		for _, e := range g.Neighbors(u) {
			if !seen[e.To] {
				seen[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}

	return comp
}
