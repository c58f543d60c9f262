package dfs

import "github.com/halych/graf/core"

// sorter holds the state of one topological-sort run.
type sorter struct {
	graph core.Graph
	state map[string]int
	order []string // finish order; reversed before returning
}

// TopologicalSort returns a linear ordering of all vertices of a directed
// acyclic graph such that for every edge u→v, u precedes v. Sibling order
// follows sorted Neighbors(), so the result is deterministic.
//
// Undirected graphs are rejected with ErrNotDirected. Cyclic input fails
// fast with ErrCycleDetected instead of producing a meaningless order;
// callers wanting only the predicate should use HasCycle.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(g core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	verts := g.Vertices()
	s := &sorter{
		graph: g,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if s.state[v] == white {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// Finishing a vertex appended it; reversing yields the topological
	// order (every vertex finishes after all of its descendants).
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// visit explores id's subtree, appending id to the finish order once all
// descendants are done. A gray neighbor means a back edge, hence a cycle.
func (s *sorter) visit(id string) error {
	s.state[id] = gray
	for _, e := range s.graph.Neighbors(id) {
		switch s.state[e.To] {
		case gray:
			return ErrCycleDetected
		case white:
			if err := s.visit(e.To); err != nil {
				return err
			}
		}
	}
	s.state[id] = black
	s.order = append(s.order, id)

	return nil
}
