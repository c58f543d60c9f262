// Package mst: Kruskal's algorithm and shared sentinel errors.
package mst

import (
	"errors"
	"sort"

	"github.com/halych/graf/core"
)

var (
	// ErrNilGraph is returned when a nil core.Graph is passed in.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrNotUndirected indicates a directed graph; spanning trees are
	// defined for undirected graphs only.
	ErrNotUndirected = errors.New("mst: undirected graph required")

	// ErrDisconnected indicates that no spanning tree covers every
	// vertex (the graph is empty or not connected).
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrRootNotFound indicates that Prim's root vertex does not exist.
	ErrRootNotFound = errors.New("mst: root vertex not found")
)

// Kruskal computes a minimum spanning tree of g, returning the chosen
// edges and their total weight.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Kruskal(g core.Graph) ([]core.Edge, int64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if g.Directed() {
		return nil, 0, ErrNotUndirected
	}

	verts := g.Vertices()
	if len(verts) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(verts) == 1 {
		return []core.Edge{}, 0, nil
	}

	// One orientation per logical edge; self-loops can never join two
	// components. The mirror orientation would be a no-op union anyway,
	// dropping it just halves the work.
	var edges []core.Edge
	for _, e := range g.Edges() {
		if e.From == e.To || e.From > e.To {
			continue
		}
		edges = append(edges, e)
	}

	// Stable sort keeps the catalog's (From, To) order for equal
	// weights, pinning the result.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	uf := newUnionFind(verts)
	var (
		tree  []core.Edge
		total int64
	)
	for _, e := range edges {
		if uf.union(e.From, e.To) {
			tree = append(tree, e)
			total += e.Weight
			if len(tree) == len(verts)-1 {
				break
			}
		}
	}

	if len(tree) < len(verts)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// unionFind is a disjoint-set forest with path compression and union by
// rank.
type unionFind struct {
	parent map[string]string
	rank   map[string]int
}

func newUnionFind(verts []string) *unionFind {
	uf := &unionFind{
		parent: make(map[string]string, len(verts)),
		rank:   make(map[string]int, len(verts)),
	}
	for _, v := range verts {
		uf.parent[v] = v
	}

	return uf
}

// find returns the set root of u, compressing the path as it walks.
func (uf *unionFind) find(u string) string {
	for uf.parent[u] != u {
		uf.parent[u] = uf.parent[uf.parent[u]]
		u = uf.parent[u]
	}

	return u
}

// union merges the sets of u and v, reporting false when they were
// already joined.
func (uf *unionFind) union(u, v string) bool {
	ru, rv := uf.find(u), uf.find(v)
	if ru == rv {
		return false
	}
	if uf.rank[ru] < uf.rank[rv] {
		ru, rv = rv, ru
	}
	uf.parent[rv] = ru
	if uf.rank[ru] == uf.rank[rv] {
		uf.rank[ru]++
	}

	return true
}
