// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm for graphs with non-negative edge weights.
//
// The solver keeps a min-priority queue keyed by current best distance and
// uses the lazy decrease-key strategy: improving a vertex pushes a fresh
// heap entry, and stale entries (distance worse than the recorded best) are
// skipped when popped. The loop terminates when the queue drains; vertices
// unreachable from the source keep the Unreachable sentinel distance.
//
// Negative weights are a usage constraint, not a detected error: this
// algorithm does not scan for them, and feeding it a graph that contains
// negative weights yields undefined distances. Callers whose weights may be
// negative must use package bellmanford instead.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
package dijkstra
