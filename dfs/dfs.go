package dfs

import (
	"fmt"

	"github.com/halych/graf/core"
)

// frame is one pending visit on the explicit stack.
type frame struct {
	id     string
	parent string
	depth  int
}

// DFS walks g depth-first from start, visiting each reachable vertex exactly
// once. Vertices unreachable from start are never visited.
//
// The walk is iterative: frames are popped from an explicit stack and
// neighbors pushed in reverse sorted order, so discovery order matches a
// recursive left-to-right walk while remaining safe on very deep graphs.
//
// Returns ErrNilGraph or ErrStartVertexNotFound on invalid input, the
// context error on cancellation, or any error produced by the OnVisit hook.
//
// Complexity: O(V + E) time, O(V) memory.
func DFS(g core.Graph, start string, opts ...Option) (*Result, error) {
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
	res := &Result{
		Order:   make([]string, 0, n),
		Depth:   make(map[string]int, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}

	stack := []frame{{id: start}}
	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// A vertex may be pushed more than once; the first pop wins.
		if res.Visited[f.id] {
			continue
		}
		if o.MaxDepth >= 0 && f.depth > o.MaxDepth {
			continue
		}

		res.Visited[f.id] = true
		res.Depth[f.id] = f.depth
		if f.parent != "" {
			res.Parent[f.id] = f.parent
		}
		res.Order = append(res.Order, f.id)

		if o.OnVisit != nil {
			if err := o.OnVisit(f.id); err != nil {
				return res, fmt.Errorf("dfs: OnVisit hook for %q: %w", f.id, err)
			}
		}

		// Reverse push keeps sorted (left-to-right) discovery order.
		nbrs := g.Neighbors(f.id)
		for i := len(nbrs) - 1; i >= 0; i-- {
			next := nbrs[i].To
			if res.Visited[next] {
				continue
			}
			if o.FilterNeighbor != nil && !o.FilterNeighbor(next) {
				continue
			}
			stack = append(stack, frame{id: next, parent: f.id, depth: f.depth + 1})
		}
	}

	return res, nil
}
