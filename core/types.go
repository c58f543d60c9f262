// Package core: shared types, options, and sentinel errors for graph stores.
//
// This file declares Edge, the Graph capability interface, GraphOption,
// EdgeOption, and the error values shared by all representations.
package core

import (
	"errors"
	"sort"
)

// DefaultWeight is the weight assigned to an edge when no WithWeight option
// is supplied to AddEdge.
const DefaultWeight int64 = 1

// ErrEmptyVertexID indicates that an empty string was passed where a vertex
// ID is required. Empty IDs are rejected by AddVertex and AddEdge; query
// methods treat them as absent vertices.
var ErrEmptyVertexID = errors.New("core: vertex ID is empty")

// Edge is one directed entry (From → To) with its weight.
//
// In an undirected graph every logical edge appears as two mirrored entries
// sharing the same weight; a self-loop appears once. Edge values returned by
// Neighbors and Edges are copies and may be retained by callers.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of traversing this entry.
	Weight int64
}

// GraphOption configures a store at construction time.
type GraphOption func(*config)

// config holds construction-time flags shared by all representations.
type config struct {
	directed bool
}

// WithDirected fixes the directedness of the graph at construction
// (true = directed, false = undirected). The default is undirected.
func WithDirected(directed bool) GraphOption {
	return func(c *config) { c.directed = directed }
}

// newConfig resolves options into a config. Options apply left to right.
func newConfig(opts ...GraphOption) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// EdgeOption configures a single edge when it is added.
type EdgeOption func(*Edge)

// WithWeight sets the edge weight. Without it AddEdge uses DefaultWeight.
func WithWeight(w int64) EdgeOption {
	return func(e *Edge) { e.Weight = w }
}

// Graph is the capability contract shared by AdjacencyList, AdjacencyMatrix,
// and EdgeList. Algorithm packages consume this interface only; none depend
// on a concrete representation.
//
// Mutation methods follow the idempotence rules documented in doc.go:
// re-adding an existing vertex is a no-op, removing an absent vertex or edge
// is a no-op, and a duplicate AddEdge overwrites the stored weight.
type Graph interface {
	// AddVertex ensures the vertex exists. Idempotent.
	// Returns ErrEmptyVertexID when id is empty.
	AddVertex(id string) error

	// RemoveVertex deletes the vertex and every incident entry, both
	// directions in undirected mode. No-op when the vertex is absent.
	RemoveVertex(id string)

	// HasVertex reports whether the vertex exists.
	HasVertex(id string) bool

	// AddEdge ensures both endpoints exist (implicit vertex creation),
	// then records the entry from → to, plus the mirrored entry in
	// undirected mode. A duplicate add overwrites the weight.
	// Returns ErrEmptyVertexID when either endpoint is empty.
	AddEdge(from, to string, opts ...EdgeOption) error

	// RemoveEdge deletes the matching entry (both directions in
	// undirected mode). No-op when absent.
	RemoveEdge(from, to string)

	// HasEdge reports whether an entry from → to exists.
	HasEdge(from, to string) bool

	// EdgeWeight returns the weight of the entry from → to and whether
	// the entry exists.
	EdgeWeight(from, to string) (int64, bool)

	// Neighbors returns every entry leaving id, sorted by destination.
	// Empty when id has no outgoing entries or does not exist.
	Neighbors(id string) []Edge

	// Vertices returns all vertex IDs in sorted order.
	Vertices() []string

	// Edges returns every directed entry sorted by (From, To). In
	// undirected mode both orientations of each logical edge appear.
	Edges() []Edge

	// VertexCount returns the number of vertices.
	VertexCount() int

	// EdgeCount returns the number of directed entries (see Edges).
	EdgeCount() int

	// Directed reports the construction-time directedness flag.
	Directed() bool
}

// sortEdges orders entries by (From, To) for deterministic iteration.
func sortEdges(es []Edge) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].From != es[j].From {
			return es[i].From < es[j].From
		}

		return es[i].To < es[j].To
	})
}

// newEdge builds an entry from → to applying opts over DefaultWeight.
func newEdge(from, to string, opts ...EdgeOption) Edge {
	e := Edge{From: from, To: to, Weight: DefaultWeight}
	for _, opt := range opts {
		opt(&e)
	}

	return e
}
