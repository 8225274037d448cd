// File: methods_adjacent.go
// Role: Adjacency queries: direct dependencies, direct dependents, in-degrees, roots.
//
// Determinism:
//   - AdjacentVerticesOf keeps declaration order.
//   - Dependents and Roots are sorted ascending.
//
// Concurrency:
//   - Read lock only; every returned slice/map is a fresh copy.
package core

import (
	"fmt"
	"sort"
)

// AdjacentVerticesOf returns the direct dependencies of id in declaration order.
//
// Returns:
//   - []string: a copy of the adjacency sequence; empty (non-nil) for leaves.
//
// Errors:
//   - ErrVertexNotFound if id has no adjacency entry.
//
// Complexity: O(deg(id)).
func (g *Graph) AdjacentVerticesOf(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	deps, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]string, len(deps))
	copy(out, deps)

	return out, nil
}

// Dependents returns the vertices that list id as a direct dependency, sorted.
//
// Errors:
//   - ErrVertexNotFound if id is not a vertex.
//
// Complexity: O(V + E).
func (g *Graph) Dependents(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]string, 0)
	for from, deps := range g.adjacency {
		if indexOf(deps, id) >= 0 {
			out = append(out, from)
		}
	}
	sort.Strings(out)

	return out, nil
}

// InDegrees maps every vertex to the number of vertices depending on it directly.
// Complexity: O(V + E).
func (g *Graph) InDegrees() map[string]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inDegreesLocked()
}

// Roots returns the vertices that no other vertex depends on, sorted.
// A self-dependent vertex has an incoming edge and is therefore never a root.
// Complexity: O(V·log V + E).
func (g *Graph) Roots() []string {
	g.mu.RLock()
	in := g.inDegreesLocked()
	g.mu.RUnlock()

	roots := make([]string, 0)
	for id, d := range in {
		if d == 0 {
			roots = append(roots, id)
		}
	}
	sort.Strings(roots)

	return roots
}

func (g *Graph) inDegreesLocked() map[string]int {
	in := make(map[string]int, len(g.vertices))
	for id := range g.vertices {
		in[id] = 0
	}
	for _, deps := range g.adjacency {
		for _, to := range deps {
			in[to]++
		}
	}

	return in
}
