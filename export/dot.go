// Package export renders dependency graphs and query results for humans
// and for other tools: Graphviz DOT, ranking tables and plain order listings.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/katalvlaran/pkgorder/core"
)

// ErrGraphNil is returned when a nil graph is passed to an exporter.
var ErrGraphNil = errors.New("export: graph is nil")

// ToGraph copies g into a dominikbraun/graph directed graph keyed by package
// name. Edges keep their direction: package → dependency. Root packages get
// a bold outline.
func ToGraph(g *core.Graph) (graph.Graph[string, string], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	roots := make(map[string]bool)
	for _, r := range g.Roots() {
		roots[r] = true
	}

	out := graph.New(graph.StringHash, graph.Directed())
	vertices := g.Vertices()
	for _, v := range vertices {
		opts := []func(*graph.VertexProperties){graph.VertexAttribute("shape", "box")}
		if roots[v] {
			opts = append(opts, graph.VertexAttribute("style", "bold"))
		}
		if err := out.AddVertex(v, opts...); err != nil {
			return nil, fmt.Errorf("export: add vertex %q: %w", v, err)
		}
	}
	for _, v := range vertices {
		deps, err := g.AdjacentVerticesOf(v)
		if err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
		for _, d := range deps {
			if err = out.AddEdge(v, d); err != nil {
				return nil, fmt.Errorf("export: add edge %q -> %q: %w", v, d, err)
			}
		}
	}

	return out, nil
}

// DOT writes g in Graphviz DOT format. Statement order is not stable
// between runs; the rendered graph is.
func DOT(w io.Writer, g *core.Graph) error {
	dg, err := ToGraph(g)
	if err != nil {
		return err
	}
	if err = draw.DOT(dg, w, draw.GraphAttribute("rankdir", "BT")); err != nil {
		return fmt.Errorf("export: render dot: %w", err)
	}

	return nil
}
