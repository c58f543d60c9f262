// Package bfs: options, result type, and sentinel errors for breadth-first
// traversal.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNilGraph is returned when a nil core.Graph is passed in.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound indicates the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// Option configures optional BFS behavior.
type Option func(*Options)

// Options holds configurable traversal parameters.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs once per dequeued vertex with its hop
	// depth. A returned error aborts the traversal and is propagated.
	OnVisit func(id string, depth int) error

	// MaxDepth, if non-negative, stops expansion beyond that many hops
	// from the start. Default -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is consulted for each edge
	// curr → neighbor before enqueueing; returning false skips it.
	FilterNeighbor func(curr, neighbor string) bool
}

// DefaultOptions returns Options with a background context, no hooks, and
// no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs the per-vertex visit hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithMaxDepth limits expansion depth; 0 visits only the start vertex.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips edges for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// Result captures the outcome of one BFS traversal.
type Result struct {
	// Order lists vertices in visit (dequeue) sequence.
	Order []string

	// Depth maps each reached vertex to its hop distance from the start.
	Depth map[string]int

	// Parent maps each reached vertex to its predecessor in the BFS
	// tree. The start vertex has no entry.
	Parent map[string]string
}

// PathTo reconstructs the fewest-edges path from the start vertex to dest.
// Returns an error when dest was not reached by the traversal.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	var path []string
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
