// Package dfs provides installation-order algorithms on dependency graphs.
//
// Edges point from a package to its dependencies, so a plain DFS post-order is
// already dependency-first: a vertex finishes only after everything it needs.
// No reversal or front-insertion is required.
//
// Complexity:
//
//   - Time:   O(V + E·log d)
//   - Memory: O(V)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/pkgorder/core"
)

// InstallOrder returns the closure of start in installation order: every
// dependency precedes its dependents, start comes last, and each vertex
// appears once. Only the subgraph reachable from start is checked for cycles.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, *CycleError, hook errors.
func InstallOrder(g *core.Graph, start string, opts ...Option) ([]string, error) {
	w, err := NewWalker(g, opts...)
	if err != nil {
		return nil, err
	}
	if err = w.Visit(start); err != nil {
		return nil, err
	}

	return w.Order(), nil
}

// TopologicalSort computes an installation order of all vertices in g.
//
// Stage 1 runs DetectCycle over the whole graph, so any cycle anywhere fails
// the call. Stage 2 seeds one shared Walker from each root in sorted order,
// which in an acyclic graph reaches every vertex exactly once.
//
// Errors: ErrGraphNil, *CycleError, hook errors.
func TopologicalSort(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := DetectCycle(g); err != nil {
		return nil, err
	}

	w, err := NewWalker(g, opts...)
	if err != nil {
		return nil, err
	}
	for _, root := range g.Roots() {
		if err = w.Visit(root); err != nil {
			return nil, fmt.Errorf("dfs: TopologicalSort from %q: %w", root, err)
		}
	}

	return w.Order(), nil
}
