// Package mst: Prim's algorithm.
package mst

import (
	"container/heap"

	"github.com/halych/graf/core"
)

// Prim computes a minimum spanning tree of g by growing outward from root,
// returning the chosen edges and their total weight.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(g core.Graph, root string) ([]core.Edge, int64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if g.Directed() {
		return nil, 0, ErrNotUndirected
	}
	if !g.HasVertex(root) {
		return nil, 0, ErrRootNotFound
	}

	verts := g.Vertices()
	if len(verts) == 1 {
		return []core.Edge{}, 0, nil
	}

	visited := make(map[string]bool, len(verts))
	pq := &edgeHeap{}
	heap.Init(pq)

	grow := func(id string) {
		visited[id] = true
		for _, e := range g.Neighbors(id) {
			if !visited[e.To] {
				heap.Push(pq, e)
			}
		}
	}
	grow(root)

	var (
		tree  []core.Edge
		total int64
	)
	for pq.Len() > 0 && len(tree) < len(verts)-1 {
		e := heap.Pop(pq).(core.Edge)
		// An endpoint absorbed since this edge was pushed would close a
		// cycle; skip it.
		if visited[e.To] {
			continue
		}
		tree = append(tree, e)
		total += e.Weight
		grow(e.To)
	}

	if len(tree) < len(verts)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// edgeHeap is a min-heap of candidate edges ordered by ascending weight,
// ties broken by (From, To) for deterministic trees.
type edgeHeap []core.Edge

func (h edgeHeap) Len() int { return len(h) }

func (h edgeHeap) Less(i, j int) bool {
	if h[i].Weight != h[j].Weight {
		return h[i].Weight < h[j].Weight
	}
	if h[i].From != h[j].From {
		return h[i].From < h[j].From
	}

	return h[i].To < h[j].To
}

func (h edgeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(core.Edge)) }

func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
