// Package core defines the vertex/edge model and the Graph storage contract,
// together with three interchangeable representations:
//
//   - AdjacencyList: map from → (to → weight); O(deg) mutation and
//     neighbor queries, O(V+E) memory. The default for sparse graphs and
//     traversal-heavy workloads.
//   - AdjacencyMatrix: dense V×V weight/presence matrix with slot reuse;
//     O(1) edge add/remove/existence, O(V) neighbor enumeration, O(V²)
//     memory. Suited to dense graphs and frequent existence checks.
//   - EdgeList: vertex set plus a flat slice of entries; O(E) everything,
//     O(E) memory. The natural feed for edge-centric algorithms such as
//     Bellman-Ford.
//
// All three implement the Graph interface; algorithm packages (bfs, dfs,
// dijkstra, bellmanford, components, mst) depend on that interface only and
// never on a concrete store.
//
// # Model
//
// A vertex is a non-empty string ID. An edge is an ordered (From, To) pair
// with an int64 weight (DefaultWeight when no WithWeight option is given).
// An undirected graph is a directedness policy over the same directed core:
// every logical edge is materialized as two mirrored entries sharing one
// weight, and a self-loop as a single entry. Edges(), EdgeCount() and
// Neighbors() all speak in directed entries.
//
// # Contract
//
//   - AddVertex is idempotent; re-adding an existing ID is a no-op.
//   - AddEdge implicitly creates missing endpoints. This is a documented
//     postcondition, not hidden magic.
//   - Parallel edges are not supported by any store: a duplicate
//     AddEdge(u,v) overwrites the stored weight.
//   - RemoveVertex removes every incident entry (both directions when
//     undirected). Removal of absent vertices or edges is a no-op.
//   - Self-loops are stored like any other edge.
//   - Query results are copies, sorted for deterministic iteration:
//     Vertices() by ID, Neighbors() by destination, Edges() by (From, To).
//     Internal storage never leaks across the API boundary.
//
// # Concurrency
//
// Stores are not internally synchronized. Any number of concurrent readers
// may traverse an unmodified graph; any concurrent mutation requires
// external exclusion by the caller. Algorithms take a Graph read-only and
// never mutate it.
package core
