// Package bellmanford: solver implementation and sentinel errors.
package bellmanford

import (
	"errors"
	"math"

	"github.com/halych/graf/core"
)

// Unreachable is the distance reported for vertices the source cannot
// reach.
const Unreachable int64 = math.MaxInt64

var (
	// ErrNilGraph is returned when a nil core.Graph is passed in.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrEmptySource indicates an empty source vertex ID.
	ErrEmptySource = errors.New("bellmanford: source vertex ID is empty")

	// ErrSourceNotFound indicates the source vertex does not exist.
	ErrSourceNotFound = errors.New("bellmanford: source vertex not found")
)

// BellmanFord computes shortest distances from source to every vertex of g
// and reports whether a negative-weight cycle is reachable from the source.
//
// The distance map holds an entry for every vertex; unreachable vertices
// carry Unreachable. When the second return value is true, a negative cycle
// was detected and the distances are not to be trusted.
//
// Complexity: O(V · E) time, O(V) memory.
func BellmanFord(g core.Graph, source string) (map[string]int64, bool, error) {
	if g == nil {
		return nil, false, ErrNilGraph
	}
	if source == "" {
		return nil, false, ErrEmptySource
	}
	if !g.HasVertex(source) {
		return nil, false, ErrSourceNotFound
	}

	verts := g.Vertices()
	dist := make(map[string]int64, len(verts))
	for _, v := range verts {
		dist[v] = Unreachable
	}
	dist[source] = 0

	edges := g.Edges()

	// |V|-1 rounds guarantee convergence on any negative-cycle-free
	// graph; a round with no improvement means convergence already.
	for i := 1; i < len(verts); i++ {
		if !relaxAll(edges, dist) {
			break
		}
	}

	// A further improvable edge after convergence proves a reachable
	// negative cycle.
	negCycle := relaxAll(edges, dist)

	return dist, negCycle, nil
}

// relaxAll performs one full relaxation pass, reporting whether any
// distance improved. Edges leaving an unreachable vertex are skipped, which
// also guards the addition against overflow with negative weights.
func relaxAll(edges []core.Edge, dist map[string]int64) bool {
	improved := false
	for _, e := range edges {
		du := dist[e.From]
		if du == Unreachable {
			continue
		}
		if next := du + e.Weight; next < dist[e.To] {
			dist[e.To] = next
			improved = true
		}
	}

	return improved
}
