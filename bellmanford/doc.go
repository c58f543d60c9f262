// Package bellmanford implements the Bellman-Ford single-source
// shortest-path algorithm for graphs with arbitrary (including negative)
// edge weights.
//
// The solver relaxes the complete edge catalog |V|-1 times (enough for any
// shortest path, which uses at most |V|-1 edges) and stops early when a
// full round improves nothing. One additional pass then probes for edges
// that can still be relaxed: any such edge proves a negative-weight cycle
// reachable from the source, reported through a boolean flag rather than an
// error. Distances returned alongside a raised flag are not meaningful and
// must not be trusted; checking the flag is part of the caller contract.
//
// Being edge-centric, the solver pairs naturally with the core.EdgeList
// store, but it runs on any representation through the Edges() catalog. In
// undirected graphs each logical edge appears in the catalog once per
// orientation, so relaxation covers both directions with no special casing
// (note that any negative undirected edge therefore forms a negative cycle
// by itself).
//
// Complexity: O(V · E) time, O(V) memory.
package bellmanford
