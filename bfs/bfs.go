package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pkgorder/core"
)

// walker holds the state of one search.
type walker struct {
	graph    *core.Graph
	opts     options
	incoming map[string][]string // reverse adjacency, built only for WithReverse
	queue    []string
	res      *BFSResult
}

// BFS searches g breadth-first from start.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or the
// context error once WithContext's context is done.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := newOptions(opts)
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]string, 0, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	if o.reverse {
		if err := w.buildIncoming(); err != nil {
			return nil, err
		}
	}

	w.res.Depth[start] = 0
	w.queue = append(w.queue, start)

	return w.res, w.loop()
}

// Reachable returns every vertex reachable from start, excluding start,
// sorted ascending. With WithReverse it returns every vertex from which
// start is reachable.
func Reachable(g *core.Graph, start string, opts ...Option) ([]string, error) {
	res, err := BFS(g, start, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(res.Order))
	for _, id := range res.Order {
		if id != start {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out, nil
}

// buildIncoming snapshots the reverse adjacency once, so each reverse step
// costs O(in-degree) instead of a full graph scan.
func (w *walker) buildIncoming() error {
	w.incoming = make(map[string][]string)
	for _, from := range w.graph.Vertices() {
		deps, err := w.graph.AdjacentVerticesOf(from)
		if err != nil {
			return fmt.Errorf("bfs: AdjacentVerticesOf(%q): %w", from, err)
		}
		for _, to := range deps {
			w.incoming[to] = append(w.incoming[to], from)
		}
	}

	return nil
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.ctx.Done():
			return w.opts.ctx.Err()
		default:
		}

		id := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, id)

		next := w.res.Depth[id] + 1
		if w.opts.maxDepth > 0 && next > w.opts.maxDepth {
			continue
		}
		nbrs, err := w.neighbors(id)
		if err != nil {
			return err
		}
		for _, nbr := range nbrs {
			if _, seen := w.res.Depth[nbr]; seen {
				continue
			}
			if _, skip := w.opts.exclude[nbr]; skip {
				continue
			}
			w.res.Depth[nbr] = next
			w.res.Parent[nbr] = id
			w.queue = append(w.queue, nbr)
		}
	}

	return nil
}

// neighbors returns the next vertices in walk direction, sorted.
func (w *walker) neighbors(id string) ([]string, error) {
	var out []string
	if w.opts.reverse {
		out = append(out, w.incoming[id]...)
	} else {
		deps, err := w.graph.AdjacentVerticesOf(id)
		if err != nil {
			return nil, fmt.Errorf("bfs: AdjacentVerticesOf(%q): %w", id, err)
		}
		out = deps
	}
	sort.Strings(out)

	return out, nil
}
