// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeCount.
//
// Determinism:
//   - AddEdge appends to the source's sequence, so adjacency keeps declaration order.
//
// Concurrency:
//   - Mutations under mu write lock; HasEdge/EdgeCount under read lock.
package core

// AddEdge records that from depends on to.
//
// Missing endpoints are created first. An empty name on either side or an
// already existing edge is a no-op. Self-dependencies (from == to) are stored
// like any other edge; traversals report them as cycles.
// The result reports whether the graph changed.
//
// Complexity: O(deg(from)) for the duplicate check.
func (g *Graph) AddEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.hasEdgeLocked(from, to) {
		return false
	}
	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.adjacency[from] = append(g.adjacency[from], to)
	g.edgeCount++

	return true
}

// RemoveEdge deletes the edge from→to, preserving the order of the remaining
// dependencies of from. Missing vertices or a missing edge make it a no-op.
// The result reports whether the graph changed.
//
// Complexity: O(deg(from)).
func (g *Graph) RemoveEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	deps := g.adjacency[from]
	idx := indexOf(deps, to)
	if idx < 0 {
		return false
	}
	g.adjacency[from] = append(deps[:idx], deps[idx+1:]...)
	g.edgeCount--

	return true
}

// HasEdge reports whether from directly depends on to.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(from, to)
}

// EdgeCount returns the total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

func (g *Graph) hasEdgeLocked(from, to string) bool {
	return indexOf(g.adjacency[from], to) >= 0
}

// indexOf returns the first index of val in s, or -1.
func indexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}
