// Package dfs defines types and options for depth-first search traversal,
// including pre-/post-order hooks, back-edge handling, full-graph (forest)
// traversal, and the cycle error carrying the offending recursion path.
package dfs

import (
	"errors"
	"strings"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current recursion path (expanding).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// TopologicalSort, InstallOrder, DetectCycle or FindCycles.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a traversal reached a vertex that is
	// still on its recursion path.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// CycleError reports a back-edge found during traversal.
//
// Path is the closed recursion chain, starting and ending at the vertex that
// was revisited: a self-dependency on A yields [A A], A→B→A yields [A B A].
// errors.Is(err, ErrCycleDetected) holds for every *CycleError.
type CycleError struct {
	Path []string
}

// Error implements error.
func (e *CycleError) Error() string {
	return ErrCycleDetected.Error() + ": " + strings.Join(e.Path, " -> ")
}

// Is lets errors.Is match ErrCycleDetected.
func (e *CycleError) Is(target error) bool {
	return target == ErrCycleDetected
}

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...) or NewWalker(g, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when hooks are O(1).
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have been
	// explored (post-order), before appending to the result order.
	// Returning an error aborts traversal.
	OnExit func(id string) error

	// OnBackEdge, if non-nil, is invoked with the closed cycle path whenever a
	// back-edge is found, instead of failing with *CycleError. Returning nil
	// skips the back-edge and continues; returning an error aborts.
	OnBackEdge func(cycle []string) error

	// FullTraversal, if true, runs DFS from every unvisited vertex in sorted
	// order, covering disconnected components (forest traversal).
	FullTraversal bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - No pre-/post-order hooks
//   - Back-edges reported as *CycleError
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithOnBackEdge returns an Option that hands every back-edge cycle to fn
// rather than aborting the traversal.
func WithOnBackEdge(fn func(cycle []string) error) Option {
	return func(o *DFSOptions) {
		o.OnBackEdge = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
// When set, DFS ignores startID and restarts from each unvisited vertex.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	// Every vertex appears after all vertices it depends on.
	Order []string

	// Visited flags which vertices were reached during the traversal.
	Visited map[string]bool
}
