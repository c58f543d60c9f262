// Package dfs: options, result type, and sentinel errors for depth-first
// traversal, cycle detection, and topological sort.
package dfs

import (
	"context"
	"errors"
)

// Vertex visitation states shared by cycle detection and topological sort.
const (
	white = iota // not yet discovered
	gray         // on the active search path
	black        // fully explored
)

var (
	// ErrNilGraph is returned when a nil core.Graph is passed in.
	ErrNilGraph = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected is returned by TopologicalSort on cyclic input.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNotDirected is returned by TopologicalSort for undirected graphs.
	ErrNotDirected = errors.New("dfs: directed graph required")
)

// Option configures optional DFS behavior.
type Option func(*Options)

// Options holds configurable traversal parameters. The zero configuration
// (via DefaultOptions) traverses the whole reachable set with no hooks.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background(). Core
	// traversal holds no resources, so cancellation is purely an opt-in
	// wrapper for callers that need to bound long walks.
	Ctx context.Context

	// OnVisit, if non-nil, runs once per discovered vertex in discovery
	// order. A returned error aborts the traversal and is propagated.
	OnVisit func(id string) error

	// MaxDepth, if non-negative, bounds the walk: vertices deeper than
	// MaxDepth edges from the start are not visited. Default -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is consulted before descending into a
	// neighbor; returning false skips it.
	FilterNeighbor func(id string) bool
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

// WithOnVisit installs the per-vertex discovery hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithMaxDepth limits traversal depth; 0 visits only the start vertex.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// Result captures the outcome of one DFS traversal.
type Result struct {
	// Order lists vertices in discovery (pre-)order.
	Order []string

	// Depth maps each visited vertex to its distance in edges from the
	// start along the DFS tree.
	Depth map[string]int

	// Parent maps each visited vertex to the vertex it was discovered
	// from. The start vertex has no entry.
	Parent map[string]string

	// Visited flags every vertex reached by the traversal.
	Visited map[string]bool
}
