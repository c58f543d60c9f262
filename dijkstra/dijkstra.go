package dijkstra

import (
	"container/heap"

	"github.com/halych/graf/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// The returned map holds an entry for every vertex; unreachable vertices
// carry Unreachable. With WithPredecessors the second return value maps
// each reached vertex (except the source) to its predecessor on a shortest
// path; otherwise it is nil.
//
// All weights must be non-negative; see the package documentation for the
// contract on negative weights.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Dijkstra(g core.Graph, source string, opts ...Option) (map[string]int64, map[string]string, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if source == "" {
		return nil, nil, ErrEmptySource
	}
	if !g.HasVertex(source) {
		return nil, nil, ErrSourceNotFound
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	verts := g.Vertices()
	dist := make(map[string]int64, len(verts))
	for _, v := range verts {
		dist[v] = Unreachable
	}
	dist[source] = 0

	var prev map[string]string
	if o.Predecessors {
		prev = make(map[string]string, len(verts))
	}

	done := make(map[string]bool, len(verts))
	pq := &queue{{id: source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(entry)
		// Lazy decrease-key: a popped entry whose vertex is finalized is
		// stale (a better path was already found) and is skipped.
		if done[cur.id] {
			continue
		}
		done[cur.id] = true

		for _, e := range g.Neighbors(cur.id) {
			next := cur.dist + e.Weight
			if next < dist[e.To] {
				dist[e.To] = next
				if prev != nil {
					prev[e.To] = cur.id
				}
				heap.Push(pq, entry{id: e.To, dist: next})
			}
		}
	}

	return dist, prev, nil
}

// entry is one (vertex, tentative distance) pair in the priority queue.
type entry struct {
	id   string
	dist int64
}

// queue is a min-heap of entries ordered by ascending distance.
type queue []entry

func (q queue) Len() int            { return len(q) }
func (q queue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q queue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x interface{}) { *q = append(*q, x.(entry)) }

func (q *queue) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]

	return it
}
