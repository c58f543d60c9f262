// Package bfs implements breadth-first traversal over a core.Graph.
//
// BFS explores vertices in increasing hop distance from the start. The
// queue is seeded with the start vertex and every neighbor is marked
// visited at enqueue time, not at dequeue time, so no vertex is ever
// enqueued twice. Each reachable vertex is visited exactly once; vertices
// unreachable from the start are never touched.
//
// The Result carries visit order, hop depths, and parent links; PathTo
// reconstructs a fewest-edges path from the start to any reached vertex.
//
// Complexity: O(V + E) time, O(V) memory. Traversal never mutates the
// graph, and all working state is scoped to the call.
package bfs
