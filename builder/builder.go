package builder

import (
	"fmt"

	"github.com/halych/graf/core"
)

// Constructor mutates g according to one topology recipe. Implementations
// validate their parameters first and return sentinel errors; they never
// panic.
type Constructor func(g core.Graph, cfg config) error

// Build resolves opts into a shared configuration and applies each
// constructor to g in order. The first failure is wrapped with the
// constructor's index and returned; earlier mutations are kept.
func Build(g core.Graph, opts []Option, cons ...Constructor) error {
	if g == nil {
		return ErrNilGraph
	}
	cfg := newConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("builder: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("builder: constructor %d: %w", i, err)
		}
	}

	return nil
}

// addVertices inserts indices [0, n) through cfg.idFn.
func addVertices(g core.Graph, cfg config, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddVertex(cfg.idFn(i)); err != nil {
			return err
		}
	}

	return nil
}

// addEdge emits one edge between indices u and v, consulting the weight
// policy when one is configured.
func addEdge(g core.Graph, cfg config, u, v int) error {
	if cfg.weightFn == nil {
		return g.AddEdge(cfg.idFn(u), cfg.idFn(v))
	}

	return g.AddEdge(cfg.idFn(u), cfg.idFn(v), core.WithWeight(cfg.weightFn(u, v)))
}

// Path builds the simple path P_n: edges 0-1, 1-2, ..., (n-2)-(n-1).
// Requires n >= 2.
func Path(n int) Constructor {
	return func(g core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("Path: n=%d: %w", n, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds the simple cycle C_n: the path P_n closed with an edge
// from n-1 back to 0. Requires n >= 3.
func Cycle(n int) Constructor {
	return func(g core.Graph, cfg config) error {
		if n < 3 {
			return fmt.Errorf("Cycle: n=%d: %w", n, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a star with index 0 as the hub and indices 1..n-1 as leaves.
// Requires n >= 2.
func Star(n int) Constructor {
	return func(g core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("Star: n=%d: %w", n, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds the complete graph K_n. On an undirected store each pair
// is emitted once; on a directed store both orientations are emitted.
// Requires n >= 1.
func Complete(n int) Constructor {
	return func(g core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, i, j); err != nil {
					return err
				}
				if g.Directed() {
					if err := addEdge(g, cfg, j, i); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Grid builds a rows x cols lattice with 4-neighborhood adjacency. Cells
// are numbered row-major, so the cell at (r, c) has index r*cols + c.
// Requires rows >= 1 and cols >= 1.
func Grid(rows, cols int) Constructor {
	return func(g core.Graph, cfg config) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cell := r*cols + c
				if c+1 < cols {
					if err := addEdge(g, cfg, cell, cell+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, cell, cell+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
