// Package builder assembles deterministic graph topologies on top of any
// core.Graph store. Each factory (Path, Cycle, Star, Complete, Grid)
// returns a Constructor closure; Build applies a sequence of constructors
// to a caller-supplied graph in order, so fixtures compose:
//
//	g := core.NewAdjacencyList()
//	err := builder.Build(g, nil, builder.Cycle(5), builder.Star(4))
//
// Determinism: vertices are added in ascending index order through the
// configured IDFn, and edges are emitted in a fixed documented order, so
// the same inputs always produce the same graph.
//
// Constructors honor the target graph's mode: on a directed store Path and
// Cycle emit forward arcs only, while Complete emits both orientations of
// every pair. Validation failures surface as sentinel errors; constructors
// never panic.
package builder
