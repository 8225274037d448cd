// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns names sorted lexicographically ascending.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

import "sort"

// AddVertex inserts a vertex with an empty adjacency sequence.
//
// An empty name or an already present vertex is a no-op. The result reports
// whether the graph changed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addVertexLocked(id)
}

// HasVertex reports whether a vertex with the given name exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes the vertex, its outgoing adjacency entry, and every
// occurrence of it inside other vertices' adjacency sequences.
//
// The edge counter drops by the number of edges actually removed. A missing
// or empty name is a no-op; the result reports whether the graph changed.
//
// Complexity: O(V + E).
func (g *Graph) RemoveVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return false
	}

	// Outgoing edges.
	g.edgeCount -= len(g.adjacency[id])
	delete(g.adjacency, id)

	// Incoming edges: purge id from every remaining sequence, in place.
	var (
		from string
		deps []string
	)
	for from, deps = range g.adjacency {
		kept := deps[:0]
		for _, to := range deps {
			if to == id {
				g.edgeCount--
				continue
			}
			kept = append(kept, to)
		}
		g.adjacency[from] = kept
	}

	delete(g.vertices, id)

	return true
}

// AllVertices returns a snapshot of the vertex set.
// The returned map is owned by the caller; mutating it never affects the Graph.
// Complexity: O(V).
func (g *Graph) AllVertices() map[string]struct{} {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[string]struct{}, len(g.vertices))
	for id := range g.vertices {
		out[id] = struct{}{}
	}

	return out
}

// Vertices returns all vertex names in sorted order.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// addVertexLocked registers id; caller holds the write lock.
func (g *Graph) addVertexLocked(id string) bool {
	if _, ok := g.vertices[id]; ok {
		return false
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = []string{}

	return true
}
