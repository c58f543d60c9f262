package core

import "sort"

// AdjacencyList stores the graph as a nested map adj[from][to] = weight.
//
// Best for sparse graphs and traversal-heavy workloads:
//
//	AddEdge/RemoveEdge: O(1) amortized
//	Neighbors:          O(deg · log deg) (sorted copy)
//	Memory:             O(V + E)
type AdjacencyList struct {
	directed bool
	adj      map[string]map[string]int64
}

// compile-time contract check
var _ Graph = (*AdjacencyList)(nil)

// NewAdjacencyList creates an empty adjacency-list store.
// Undirected by default; pass WithDirected(true) for a directed graph.
func NewAdjacencyList(opts ...GraphOption) *AdjacencyList {
	cfg := newConfig(opts...)

	return &AdjacencyList{
		directed: cfg.directed,
		adj:      make(map[string]map[string]int64),
	}
}

// AddVertex ensures id exists. Idempotent.
// Complexity: O(1).
func (l *AdjacencyList) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := l.adj[id]; !ok {
		l.adj[id] = make(map[string]int64)
	}

	return nil
}

// RemoveVertex deletes id and every incident entry. No-op when absent.
// Complexity: O(V).
func (l *AdjacencyList) RemoveVertex(id string) {
	if _, ok := l.adj[id]; !ok {
		return
	}
	delete(l.adj, id)
	for _, nbrs := range l.adj {
		delete(nbrs, id)
	}
}

// HasVertex reports whether id exists. Complexity: O(1).
func (l *AdjacencyList) HasVertex(id string) bool {
	_, ok := l.adj[id]

	return ok
}

// AddEdge records from → to, creating missing endpoints. A duplicate add
// overwrites the weight; undirected graphs mirror the entry.
// Complexity: O(1) amortized.
func (l *AdjacencyList) AddEdge(from, to string, opts ...EdgeOption) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	e := newEdge(from, to, opts...)
	// Implicit vertex creation; errors are impossible past the ID check.
	_ = l.AddVertex(from)
	_ = l.AddVertex(to)

	l.adj[from][to] = e.Weight
	if !l.directed {
		l.adj[to][from] = e.Weight
	}

	return nil
}

// RemoveEdge deletes from → to (and the mirror when undirected).
// No-op when absent. Complexity: O(1).
func (l *AdjacencyList) RemoveEdge(from, to string) {
	if nbrs, ok := l.adj[from]; ok {
		delete(nbrs, to)
	}
	if !l.directed {
		if nbrs, ok := l.adj[to]; ok {
			delete(nbrs, from)
		}
	}
}

// HasEdge reports whether an entry from → to exists. Complexity: O(1).
func (l *AdjacencyList) HasEdge(from, to string) bool {
	_, ok := l.adj[from][to]

	return ok
}

// EdgeWeight returns the weight of from → to and its existence.
// Complexity: O(1).
func (l *AdjacencyList) EdgeWeight(from, to string) (int64, bool) {
	w, ok := l.adj[from][to]

	return w, ok
}

// Neighbors returns all entries leaving id sorted by destination.
// Complexity: O(deg · log deg).
func (l *AdjacencyList) Neighbors(id string) []Edge {
	nbrs, ok := l.adj[id]
	if !ok || len(nbrs) == 0 {
		return nil
	}
	out := make([]Edge, 0, len(nbrs))
	for to, w := range nbrs {
		out = append(out, Edge{From: id, To: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V log V).
func (l *AdjacencyList) Vertices() []string {
	ids := make([]string, 0, len(l.adj))
	for id := range l.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns every directed entry sorted by (From, To).
// Complexity: O(E log E).
func (l *AdjacencyList) Edges() []Edge {
	var out []Edge
	for from, nbrs := range l.adj {
		for to, w := range nbrs {
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	sortEdges(out)

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (l *AdjacencyList) VertexCount() int { return len(l.adj) }

// EdgeCount returns the number of directed entries. Complexity: O(V).
func (l *AdjacencyList) EdgeCount() int {
	n := 0
	for _, nbrs := range l.adj {
		n += len(nbrs)
	}

	return n
}

// Directed reports the construction-time directedness flag.
func (l *AdjacencyList) Directed() bool { return l.directed }
