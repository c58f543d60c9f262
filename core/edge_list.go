package core

import "sort"

// EdgeList stores the graph as a vertex set plus a flat slice of directed
// entries. Every operation scans the slice, so it suits small graphs and
// edge-centric algorithms that consume Edges() wholesale.
//
//	AddEdge/RemoveEdge: O(E)
//	Neighbors:          O(E)
//	Memory:             O(V + E)
type EdgeList struct {
	directed bool
	verts    map[string]struct{}
	entries  []Edge
}

var _ Graph = (*EdgeList)(nil)

// NewEdgeList creates an empty edge-list store.
// Undirected by default; pass WithDirected(true) for a directed graph.
func NewEdgeList(opts ...GraphOption) *EdgeList {
	cfg := newConfig(opts...)

	return &EdgeList{
		directed: cfg.directed,
		verts:    make(map[string]struct{}),
	}
}

// AddVertex ensures id exists. Idempotent. Complexity: O(1).
func (el *EdgeList) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	el.verts[id] = struct{}{}

	return nil
}

// RemoveVertex deletes id and filters out every incident entry.
// No-op when absent. Complexity: O(E).
func (el *EdgeList) RemoveVertex(id string) {
	if _, ok := el.verts[id]; !ok {
		return
	}
	delete(el.verts, id)
	kept := el.entries[:0]
	for _, e := range el.entries {
		if e.From != id && e.To != id {
			kept = append(kept, e)
		}
	}
	el.entries = kept
}

// HasVertex reports whether id exists. Complexity: O(1).
func (el *EdgeList) HasVertex(id string) bool {
	_, ok := el.verts[id]

	return ok
}

// AddEdge records from → to, creating missing endpoints. A duplicate add
// overwrites the weight of the existing entry (and its mirror when
// undirected); parallel edges are not stored. Complexity: O(E).
func (el *EdgeList) AddEdge(from, to string, opts ...EdgeOption) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	e := newEdge(from, to, opts...)
	_ = el.AddVertex(from)
	_ = el.AddVertex(to)

	if el.overwrite(from, to, e.Weight) {
		if !el.directed {
			el.overwrite(to, from, e.Weight)
		}

		return nil
	}
	el.entries = append(el.entries, e)
	if !el.directed && from != to {
		el.entries = append(el.entries, Edge{From: to, To: from, Weight: e.Weight})
	}

	return nil
}

// RemoveEdge filters out from → to (and the mirror when undirected).
// No-op when absent. Complexity: O(E).
func (el *EdgeList) RemoveEdge(from, to string) {
	kept := el.entries[:0]
	for _, e := range el.entries {
		if e.From == from && e.To == to {
			continue
		}
		if !el.directed && e.From == to && e.To == from {
			continue
		}
		kept = append(kept, e)
	}
	el.entries = kept
}

// HasEdge reports whether an entry from → to exists. Complexity: O(E).
func (el *EdgeList) HasEdge(from, to string) bool {
	_, ok := el.EdgeWeight(from, to)

	return ok
}

// EdgeWeight returns the weight of from → to and its existence.
// Complexity: O(E).
func (el *EdgeList) EdgeWeight(from, to string) (int64, bool) {
	for _, e := range el.entries {
		if e.From == from && e.To == to {
			return e.Weight, true
		}
	}

	return 0, false
}

// Neighbors returns all entries leaving id sorted by destination.
// Complexity: O(E log E).
func (el *EdgeList) Neighbors(id string) []Edge {
	var out []Edge
	for _, e := range el.entries {
		if e.From == id {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out
}

// Vertices returns all vertex IDs in sorted order. Complexity: O(V log V).
func (el *EdgeList) Vertices() []string {
	ids := make([]string, 0, len(el.verts))
	for id := range el.verts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns a copy of every directed entry sorted by (From, To).
// Complexity: O(E log E).
func (el *EdgeList) Edges() []Edge {
	out := make([]Edge, len(el.entries))
	copy(out, el.entries)
	sortEdges(out)

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (el *EdgeList) VertexCount() int { return len(el.verts) }

// EdgeCount returns the number of directed entries. Complexity: O(1).
func (el *EdgeList) EdgeCount() int { return len(el.entries) }

// Directed reports the construction-time directedness flag.
func (el *EdgeList) Directed() bool { return el.directed }

// overwrite updates the weight of an existing from → to entry in place,
// reporting whether one was found.
func (el *EdgeList) overwrite(from, to string, w int64) bool {
	for i := range el.entries {
		if el.entries[i].From == from && el.entries[i].To == to {
			el.entries[i].Weight = w

			return true
		}
	}

	return false
}
