// Package core defines the dependency Graph type and its thread-safe primitives
// for building, querying and cloning package dependency graphs.
//
// A single sync.RWMutex (mu) guards the vertex set, the ordered adjacency
// sequences and the edge counter, so a Graph may be shared between goroutines
// as long as writers are serialized by the lock.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates a query referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// defaultCapacity is the initial map size hint used when no WithCapacity option is given.
const defaultCapacity = 16

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex and adjacency maps for n packages.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is a directed, unweighted dependency graph over package names.
//
// An edge from→to means "from depends on to": to must be installed first.
// Every vertex owns an adjacency entry (possibly empty), and every name that
// appears inside an adjacency sequence is itself a vertex. Adjacency sequences
// keep dependency-declaration order; traversals impose their own ordering.
type Graph struct {
	mu sync.RWMutex // guards vertices, adjacency and edgeCount

	capacity int // initial map size hint

	// vertices is the set of package names.
	vertices map[string]struct{}

	// adjacency[from] = ordered direct dependencies of from.
	adjacency map[string][]string

	// edgeCount equals the sum of adjacency sequence lengths.
	edgeCount int
}

// NewGraph creates an empty Graph configured by opts.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{capacity: defaultCapacity}
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = make(map[string]struct{}, g.capacity)
	g.adjacency = make(map[string][]string, g.capacity)

	return g
}
