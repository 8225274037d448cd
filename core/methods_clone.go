// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.
package core

// Clone returns a deep copy of the Graph: vertices, adjacency order and counters.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(len(g.vertices)))
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
	}
	for from, deps := range g.adjacency {
		cp := make([]string, len(deps))
		copy(cp, deps)
		clone.adjacency[from] = cp
	}
	clone.edgeCount = g.edgeCount

	return clone
}
