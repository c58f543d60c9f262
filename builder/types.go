package builder

import (
	"errors"
	"strconv"
)

var (
	// ErrNilGraph is returned when Build receives a nil target graph.
	ErrNilGraph = errors.New("builder: graph is nil")

	// ErrNilConstructor is returned when Build receives a nil constructor.
	ErrNilConstructor = errors.New("builder: constructor is nil")

	// ErrTooFewVertices indicates a size parameter below the minimum the
	// requested topology needs.
	ErrTooFewVertices = errors.New("builder: parameter too small")
)

// IDFn maps a zero-based vertex index to its identifier. It must be pure:
// the same index always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn renders the index in decimal: 0 -> "0", 42 -> "42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixIDFn returns an IDFn that prepends prefix to the decimal index,
// e.g. PrefixIDFn("v") yields "v0", "v1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WeightFn assigns a weight to the edge between two vertex indices. It is
// consulted once per logical edge, in emission order.
type WeightFn func(u, v int) int64

// config carries the resolved builder settings shared by all constructors
// in one Build call.
type config struct {
	idFn     IDFn
	weightFn WeightFn
}

// Option customizes the builder configuration.
type Option func(*config)

// WithIDFn overrides the vertex ID scheme. A nil fn keeps the default.
func WithIDFn(fn IDFn) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithWeightFn overrides the per-edge weight policy. A nil fn keeps the
// default weight for every edge.
func WithWeightFn(fn WeightFn) Option {
	return func(c *config) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

func newConfig(opts ...Option) config {
	cfg := config{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
