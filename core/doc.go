// Package core provides a thread-safe in-memory dependency Graph with a
// minimal, composable API surface.
//
// The Graph G = (V,E) is directed and unweighted: an edge A→B states that
// package A depends on package B, so B must be installed before A.
//
//   - Vertices are package names; the empty name is never a vertex.
//   - Each vertex keeps an ordered sequence of direct dependencies
//     (declaration order). Duplicate edges are ignored.
//   - Adding an edge auto-creates missing endpoints, so an adjacency sequence
//     never references a missing vertex.
//   - Removing a vertex cascades to its outgoing and incoming edges.
//
// Mutations never fail. AddVertex, RemoveVertex, AddEdge and RemoveEdge
// silently absorb invalid input (empty names, duplicates, missing targets) and
// report through their bool result whether the graph changed. This keeps
// ingestion idempotent under repeated or partial manifests.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) bool              // O(1)
//	HasVertex(id string) bool              // O(1)
//	RemoveVertex(id string) bool           // O(V+E)
//
//	// Edge lifecycle
//	AddEdge(from, to string) bool          // O(deg(from))
//	RemoveEdge(from, to string) bool       // O(deg(from))
//	HasEdge(from, to string) bool          // O(deg(from))
//
//	// Query (all results are copies)
//	AllVertices() map[string]struct{}      // O(V)
//	Vertices() []string                    // O(V·log V), sorted
//	AdjacentVerticesOf(id string) ([]string, error) // declaration order
//	Dependents(id string) ([]string, error)         // O(V+E), sorted
//	InDegrees() map[string]int             // O(V+E)
//	Roots() []string                       // O(V·log V+E), sorted
//
//	// Counts
//	VertexCount() int                      // O(1)
//	EdgeCount() int                        // O(1)
//	Stats() *GraphStats                    // O(V+E)
//
//	// Maintenance
//	Clone() *Graph                         // O(V+E)
//
// Errors:
//
//	ErrVertexNotFound – AdjacentVerticesOf/Dependents on a missing vertex
package core
