// Package dfs implements depth‑first search (single‑source and forest) on core.Graph.
//
// The traversal is iterative: an explicit stack of (vertex, next-successor)
// frames replaces recursion, so deep dependency chains never grow the Go call
// stack, and the stack itself is the recursion path used for cycle detection.
// Successors are expanded in ascending lexical order, independently of the
// order in which dependencies were declared.
//
// Complexity:
//
//   - Time:   O(V + E·log d) (sorting each adjacency sequence of length d once).
//   - Memory: O(V) for the frame stack and state maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing.
//   - *CycleError               if a back-edge is found and no OnBackEdge hook is set.
//   - any error returned by OnVisit, OnExit or OnBackEdge.
package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pkgorder/core"
)

// frame is one entry of the explicit recursion stack.
type frame struct {
	id   string   // vertex being expanded
	deps []string // its successors, sorted
	next int      // index of the next successor to examine
}

// Walker is a reusable depth-first walker over one graph.
//
// Successive Visit calls share the visited set and accumulate a single
// post-order, which is how several roots are combined into one installation
// order without duplicates. After Visit returns an error the Walker keeps
// returning that error; start a new Walker to traverse again.
type Walker struct {
	graph *core.Graph
	opts  DFSOptions

	state map[string]int
	stack []frame
	order []string
	err   error
}

// NewWalker prepares a Walker over g.
// Returns ErrGraphNil if g is nil.
func NewWalker(g *core.Graph, opts ...Option) (*Walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	n := g.VertexCount()

	return &Walker{
		graph: g,
		opts:  dopts,
		state: make(map[string]int, n),
		order: make([]string, 0, n),
	}, nil
}

// Visit explores everything reachable from start that has not been finished
// by an earlier call, appending newly finished vertices to the post-order.
// Visiting an already finished vertex is a no-op.
func (w *Walker) Visit(start string) error {
	if w.err != nil {
		return w.err
	}
	if !w.graph.HasVertex(start) {
		return fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}
	if w.state[start] == Black {
		return nil
	}
	if err := w.push(start); err != nil {
		return w.fail(err)
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		// 1. Expand the next successor of the top frame.
		if top.next < len(top.deps) {
			nbr := top.deps[top.next]
			top.next++

			switch w.state[nbr] {
			case Black:
				continue
			case Gray:
				if err := w.backEdge(nbr); err != nil {
					return w.fail(err)
				}
				continue
			}
			if err := w.push(nbr); err != nil {
				return w.fail(err)
			}
			continue
		}

		// 2. All successors done: finish the vertex.
		id := top.id
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(id); err != nil {
				return w.fail(fmt.Errorf("dfs: OnExit hook for %q: %w", id, err))
			}
		}
		w.state[id] = Black
		w.order = append(w.order, id)
		w.stack = w.stack[:len(w.stack)-1]
	}

	return nil
}

// Order returns a copy of the post-order accumulated so far.
func (w *Walker) Order() []string {
	out := make([]string, len(w.order))
	copy(out, w.order)

	return out
}

// Path returns a copy of the current recursion path, outermost vertex first.
// It is empty between successful Visit calls and holds the chain that was
// being expanded when Visit failed.
func (w *Walker) Path() []string {
	out := make([]string, len(w.stack))
	for i := range w.stack {
		out[i] = w.stack[i].id
	}

	return out
}

// OnPath reports whether id is currently being expanded.
func (w *Walker) OnPath(id string) bool {
	return w.state[id] == Gray
}

// Visited reports whether id has been fully explored.
func (w *Walker) Visited(id string) bool {
	return w.state[id] == Black
}

// Result packages the walker state as a DFSResult.
func (w *Walker) Result() *DFSResult {
	res := &DFSResult{
		Order:   w.Order(),
		Visited: make(map[string]bool, len(w.state)),
	}
	for id, s := range w.state {
		if s != White {
			res.Visited[id] = true
		}
	}

	return res
}

// push marks id Gray, runs the pre-order hook and stacks its sorted successors.
func (w *Walker) push(id string) error {
	w.state[id] = Gray

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	deps, err := w.graph.AdjacentVerticesOf(id)
	if err != nil {
		return fmt.Errorf("dfs: AdjacentVerticesOf(%q): %w", id, err)
	}
	sort.Strings(deps)
	w.stack = append(w.stack, frame{id: id, deps: deps})

	return nil
}

// backEdge handles a successor nbr that is still Gray.
func (w *Walker) backEdge(nbr string) error {
	idx := 0
	for i := range w.stack {
		if w.stack[i].id == nbr {
			idx = i
			break
		}
	}
	cycle := make([]string, 0, len(w.stack)-idx+1)
	for i := idx; i < len(w.stack); i++ {
		cycle = append(cycle, w.stack[i].id)
	}
	cycle = append(cycle, nbr)

	if w.opts.OnBackEdge != nil {
		return w.opts.OnBackEdge(cycle)
	}

	return &CycleError{Path: cycle}
}

func (w *Walker) fail(err error) error {
	w.err = err

	return err
}

// DFS performs depth‑first search on graph g. If opts include WithFullTraversal,
// it covers all vertices in sorted order; otherwise, it starts only from startID.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	w, err := NewWalker(g, opts...)
	if err != nil {
		return nil, err
	}

	if w.opts.FullTraversal {
		for _, v := range g.Vertices() {
			if err = w.Visit(v); err != nil {
				return w.Result(), err
			}
		}

		return w.Result(), nil
	}

	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}
	if err = w.Visit(startID); err != nil {
		return w.Result(), err
	}

	return w.Result(), nil
}
