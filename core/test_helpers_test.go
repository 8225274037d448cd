// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for pkgorder/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep invariant checks in one place so every test can assert them.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pkgorder/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexE = "E"
	VertexF = "F"
	VertexG = "G"
	VertexH = "H"

	VertexX = "X"
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// fillGraph builds the fixture
//
//	A→B, A→C, C→D, D→E, D→G, E→G, plus isolated F and H.
func fillGraph(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	g.AddEdge(VertexA, VertexB)
	g.AddEdge(VertexA, VertexC)
	g.AddEdge(VertexC, VertexD)
	g.AddEdge(VertexD, VertexE)
	g.AddVertex(VertexF)
	g.AddEdge(VertexD, VertexG)
	g.AddEdge(VertexE, VertexG)
	g.AddVertex(VertexH)

	return g
}

// requireConsistent asserts the counter and closure invariants of g:
// VertexCount equals the vertex set size, EdgeCount equals the summed
// adjacency lengths, and every adjacency entry references a vertex.
func requireConsistent(t *testing.T, g *core.Graph) {
	t.Helper()

	all := g.AllVertices()
	require.Equal(t, len(all), g.VertexCount(), "VertexCount vs AllVertices")

	edges := 0
	for id := range all {
		deps, err := g.AdjacentVerticesOf(id)
		require.NoError(t, err, "AdjacentVerticesOf(%q)", id)
		edges += len(deps)
		for _, d := range deps {
			_, ok := all[d]
			require.True(t, ok, "edge %s→%s references a missing vertex", id, d)
		}
	}
	require.Equal(t, edges, g.EdgeCount(), "EdgeCount vs summed adjacency")
}
