// Package mst computes minimum spanning trees of undirected weighted
// graphs, offering both classic algorithms:
//
//   - Kruskal sorts the edge catalog by weight and grows a forest with a
//     union-find (path compression + union by rank). O(E log E) time.
//   - Prim grows a single tree from a root vertex using a min-heap of
//     frontier edges. O(E log V) time.
//
// Both reject directed input with ErrNotUndirected, skip self-loops (they
// can never belong to a spanning tree), and return ErrDisconnected when no
// spanning tree covers every vertex. A single-vertex graph has the trivial
// empty tree. Results are deterministic: ties between equal-weight edges
// are broken by the sorted (From, To) order of the edge catalog.
//
// The returned edges carry one orientation per chosen logical edge.
package mst
