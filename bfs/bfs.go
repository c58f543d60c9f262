package bfs

import (
	"fmt"

	"github.com/halych/graf/core"
)

// item pairs a queued vertex with its hop depth.
type item struct {
	id    string
	depth int
}

// walker holds the mutable state of one traversal.
type walker struct {
	graph   core.Graph
	opts    Options
	queue   []item
	visited map[string]bool
	res     *Result
}

// BFS walks g breadth-first from start, visiting each reachable vertex
// exactly once in increasing hop distance.
//
// Returns ErrNilGraph or ErrStartVertexNotFound on invalid input, the
// context error on cancellation, or any error produced by the OnVisit hook.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]item, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// enqueue marks id visited (at enqueue time, preventing duplicates),
// records depth and parent, and appends it to the queue.
func (w *walker) enqueue(id string, depth int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, item{id: id, depth: depth})
}

// loop drains the queue until empty, aborted by a hook, or canceled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		cur := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, cur.id)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(cur.id, cur.depth); err != nil {
				return fmt.Errorf("bfs: OnVisit hook for %q: %w", cur.id, err)
			}
		}
		w.expand(cur)
	}

	return nil
}

// expand enqueues every unseen neighbor of cur, honoring filter and depth
// limit. Neighbors() is sorted, so sibling order is deterministic.
func (w *walker) expand(cur item) {
	next := cur.depth + 1
	if w.opts.MaxDepth >= 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range w.graph.Neighbors(cur.id) {
		if w.visited[e.To] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(cur.id, e.To) {
			continue
		}
		w.enqueue(e.To, next, cur.id)
	}
}
