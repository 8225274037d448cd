package export_test

import (
	"bytes"
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pkgorder/core"
	"github.com/katalvlaran/pkgorder/export"
	"github.com/katalvlaran/pkgorder/resolver"
)

func sharedGraph() *core.Graph {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddEdge("B", "D")
	g.AddEdge("C", "D")

	return g
}

func TestToGraph(t *testing.T) {
	_, err := export.ToGraph(nil)
	assert.ErrorIs(t, err, export.ErrGraphNil)

	dg, err := export.ToGraph(sharedGraph())
	require.NoError(t, err)

	order, err := dg.Order()
	require.NoError(t, err)
	assert.Equal(t, 4, order)
	size, err := dg.Size()
	require.NoError(t, err)
	assert.Equal(t, 4, size)

	_, err = dg.Edge("A", "B")
	assert.NoError(t, err)
	_, err = dg.Edge("B", "A")
	assert.ErrorIs(t, err, graph.ErrEdgeNotFound)

	_, props, err := dg.VertexWithProperties("A")
	require.NoError(t, err)
	assert.Equal(t, "bold", props.Attributes["style"])
	_, props, err = dg.VertexWithProperties("D")
	require.NoError(t, err)
	assert.NotContains(t, props.Attributes, "style")
}

// TestToGraph_AgreesWithResolver checks the global order against the
// library's own topological sort: reversed, it must be an installation order
// over the same packages.
func TestToGraph_AgreesWithResolver(t *testing.T) {
	r := resolver.NewResolver()
	r.Ingest([]resolver.Package{
		{Name: "app", Dependencies: []string{"http", "log"}},
		{Name: "http", Dependencies: []string{"tls", "log"}},
		{Name: "cli", Dependencies: []string{"flags", "log"}},
		{Name: "tls", Dependencies: []string{"crypto"}},
	})
	ours, err := r.InstallationOrderForAllPackages()
	require.NoError(t, err)

	dg, err := export.ToGraph(r.Graph())
	require.NoError(t, err)
	theirs, err := graph.StableTopologicalSort(dg, func(a, b string) bool { return a < b })
	require.NoError(t, err)

	pos := make(map[string]int, len(theirs))
	for i, p := range theirs {
		pos[p] = len(theirs) - 1 - i
	}
	assert.ElementsMatch(t, theirs, ours)

	adj, err := dg.AdjacencyMap()
	require.NoError(t, err)
	for from, deps := range adj {
		for to := range deps {
			assert.Less(t, pos[to], pos[from], "%s must install before %s", to, from)
		}
	}
}

func TestDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.DOT(&buf, sharedGraph()))

	out := buf.String()
	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, "rankdir")
	for _, edge := range []string{`"A" -> "B"`, `"A" -> "C"`, `"B" -> "D"`, `"C" -> "D"`} {
		assert.Contains(t, out, edge)
	}
	assert.NotContains(t, out, `"D" -> `)

	assert.ErrorIs(t, export.DOT(&buf, nil), export.ErrGraphNil)
}

func TestRankingTable(t *testing.T) {
	var buf bytes.Buffer
	export.RankingTable(&buf, []resolver.Ranking{
		{Package: "A", Dependencies: 3},
		{Package: "B", Dependencies: 1},
	})

	out := buf.String()
	assert.Contains(t, out, "PACKAGE")
	assert.Contains(t, out, "DEPENDENCIES")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "╭")
	assert.Regexp(t, `│\s+1 │ A\s+│\s+3 │`, out)
	assert.Regexp(t, `│\s+2 │ B\s+│\s+1 │`, out)
}

func TestWriters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteOrder(&buf, []string{"D", "B", "A"}))
	assert.Equal(t, "1. D\n2. B\n3. A\n", buf.String())

	buf.Reset()
	require.NoError(t, export.WriteList(&buf, []string{"A", "E"}))
	assert.Equal(t, "A\nE\n", buf.String())

	buf.Reset()
	require.NoError(t, export.WriteCycles(&buf, [][]string{{"A", "B", "A"}, {"S", "S"}}))
	assert.Equal(t, "A -> B -> A\nS -> S\n", buf.String())

	buf.Reset()
	require.NoError(t, export.WriteChain(&buf, []string{"app", "http", "tls"}))
	assert.Equal(t, "app -> http -> tls\n", buf.String())
}
