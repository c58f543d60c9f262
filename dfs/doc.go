// Package dfs implements depth-first traversal over a core.Graph, plus the
// two classic structures built directly on it: cycle detection and
// topological sorting.
//
// DFS uses an explicit stack rather than recursion, so traversal depth is
// bounded by heap memory instead of goroutine stack size. Neighbors are
// pushed in reverse sorted order, which makes the discovery order identical
// to a recursive left-to-right walk over sorted Neighbors(); that equality
// is pinned by test, not incidental.
//
// HasCycle roots a search at every unvisited vertex, so a cycle confined to
// one component of a disconnected graph is always found. Directed graphs use
// the visited/on-stack discipline (a back edge to a vertex still on the
// active path is a cycle); undirected graphs use parent exclusion (a visited
// neighbor other than the immediate DFS parent is a cycle, and walking back
// along the edge you arrived by is not).
//
// TopologicalSort is defined for directed graphs only and fails fast with
// ErrCycleDetected on cyclic input rather than returning a plausible but
// meaningless order. Callers that only need a yes/no answer should use
// HasCycle first.
//
// Complexity: all entry points run in O(V + E) time and O(V) memory.
//
// Traversal never mutates the graph; per-call state (visited sets, stacks)
// is scoped to the call and released on return.
package dfs
