// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostic snapshot of a Graph.
// Policy:
//   - No algorithms beyond counting.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is an immutable-by-convention summary of a Graph.
type GraphStats struct {
	// VertexCount is the number of packages.
	VertexCount int

	// EdgeCount is the number of direct dependency relations.
	EdgeCount int

	// RootCount counts vertices no other vertex depends on.
	RootCount int

	// LeafCount counts vertices with no dependencies of their own.
	LeafCount int

	// SelfLoops counts vertices that list themselves as a dependency.
	SelfLoops int
}

// Stats produces a deterministic, read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire mu.RLock and compute in-degrees.
//   - Stage 2: Classify each vertex as root and/or leaf, count self-loops.
//
// Complexity:
//   - Time O(V+E), Space O(V) for the in-degree scratch map.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   g.edgeCount,
	}
	in := g.inDegreesLocked()
	for id := range g.vertices {
		if in[id] == 0 {
			stats.RootCount++
		}
		deps := g.adjacency[id]
		if len(deps) == 0 {
			stats.LeafCount++
		}
		if indexOf(deps, id) >= 0 {
			stats.SelfLoops++
		}
	}

	return &stats
}
