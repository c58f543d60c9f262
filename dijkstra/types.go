// Package dijkstra: options and sentinel errors for the shortest-path
// solver.
package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for vertices the source cannot
// reach.
const Unreachable int64 = math.MaxInt64

var (
	// ErrNilGraph is returned when a nil core.Graph is passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates an empty source vertex ID.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrSourceNotFound indicates the source vertex does not exist.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found")
)

// Option configures optional solver behavior.
type Option func(*Options)

// Options holds configurable solver parameters.
type Options struct {
	// Predecessors requests the predecessor map for path reconstruction;
	// without it the second return value of Dijkstra is nil.
	Predecessors bool
}

// DefaultOptions returns Options with predecessor tracking disabled.
func DefaultOptions() Options {
	return Options{}
}

// WithPredecessors enables the predecessor map in the result.
func WithPredecessors() Option {
	return func(o *Options) { o.Predecessors = true }
}
