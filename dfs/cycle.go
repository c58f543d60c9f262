package dfs

import "github.com/halych/graf/core"

// HasCycle reports whether g contains at least one cycle.
//
// Every vertex is tried as a search root, so cycles in disconnected
// components are found regardless of where iteration starts. Directed graphs
// use the visited/on-stack (gray set) discipline; undirected graphs use
// parent exclusion, so walking back along the edge just taken is not a
// false positive while self-loops and genuine back edges are.
//
// Complexity: O(V + E) time, O(V) memory.
func HasCycle(g core.Graph) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	if g.Directed() {
		return hasDirectedCycle(g), nil
	}

	return hasUndirectedCycle(g), nil
}

// hasDirectedCycle runs a three-color DFS forest over g. A neighbor found
// gray (still on the active path) closes a cycle; vertices turn black only
// when their whole subtree is explored.
func hasDirectedCycle(g core.Graph) bool {
	state := make(map[string]int, g.VertexCount())
	for _, v := range g.Vertices() {
		if state[v] == white && visitDirected(g, v, state) {
			return true
		}
	}

	return false
}

// visitDirected explores id's subtree, reporting true when a back edge to a
// gray vertex is found.
func visitDirected(g core.Graph, id string, state map[string]int) bool {
	state[id] = gray
	for _, e := range g.Neighbors(id) {
		switch state[e.To] {
		case gray:
			return true
		case white:
			if visitDirected(g, e.To, state) {
				return true
			}
		}
	}
	state[id] = black

	return false
}

// hasUndirectedCycle runs a DFS forest with parent exclusion. A visited
// neighbor other than the immediate DFS parent closes a cycle; a self-loop
// is a cycle of length one.
func hasUndirectedCycle(g core.Graph) bool {
	visited := make(map[string]bool, g.VertexCount())
	for _, v := range g.Vertices() {
		if !visited[v] && visitUndirected(g, v, "", visited) {
			return true
		}
	}

	return false
}

// visitUndirected explores id's subtree; parent is the vertex id was
// discovered from ("" at a root).
func visitUndirected(g core.Graph, id, parent string, visited map[string]bool) bool {
	visited[id] = true
	for _, e := range g.Neighbors(id) {
		next := e.To
		if next == id {
			// self-loop
			return true
		}
		if !visited[next] {
			if visitUndirected(g, next, id, visited) {
				return true
			}
			continue
		}
		if next != parent {
			return true
		}
	}

	return false
}
