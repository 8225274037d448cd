package resolver_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pkgorder/bfs"
	"github.com/katalvlaran/pkgorder/dfs"
	"github.com/katalvlaran/pkgorder/resolver"
)

// Fixtures mirror the manifests under manifest/testdata.
var (
	validPkgs = []resolver.Package{
		{Name: "A", Dependencies: []string{"B"}},
		{Name: "B", Dependencies: []string{"C", "D"}},
		{Name: "C"},
		{Name: "D"},
		{Name: "E", Dependencies: []string{"C"}},
	}
	sharedPkgs = []resolver.Package{
		{Name: "A", Dependencies: []string{"B", "C"}},
		{Name: "B", Dependencies: []string{"D"}},
		{Name: "C", Dependencies: []string{"D"}},
		{Name: "D"},
	}
	cyclicPkgs = []resolver.Package{
		{Name: "A", Dependencies: []string{"B"}},
		{Name: "B", Dependencies: []string{"C"}},
		{Name: "C", Dependencies: []string{"A"}},
	}
)

func newResolver(t *testing.T, pkgs []resolver.Package) *resolver.Resolver {
	t.Helper()
	r := resolver.NewResolver()
	r.Ingest(pkgs)

	return r
}

// requireInstallable asserts order has no duplicates and lists every direct
// dependency of a package before the package.
func requireInstallable(t *testing.T, r *resolver.Resolver, order []string) {
	t.Helper()
	g := r.Graph()
	pos := make(map[string]int, len(order))
	for i, p := range order {
		_, dup := pos[p]
		require.False(t, dup, "duplicate %s in %v", p, order)
		pos[p] = i
	}
	for _, p := range order {
		deps, err := g.AdjacentVerticesOf(p)
		require.NoError(t, err)
		for _, d := range deps {
			require.Contains(t, pos, d, "dependency %s of %s missing from %v", d, p, order)
			require.Less(t, pos[d], pos[p], "%s must precede %s in %v", d, p, order)
		}
	}
}

func TestIngest(t *testing.T) {
	r := newResolver(t, sharedPkgs)
	g := r.Graph()
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())

	// repeated records and an empty name are absorbed
	r.Ingest([]resolver.Package{
		{Name: "A", Dependencies: []string{"C", "E"}},
		{Name: "", Dependencies: []string{"X"}},
	})
	g = r.Graph()
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.False(t, g.HasVertex("X"))

	deps, err := g.AdjacentVerticesOf("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "E"}, deps)
}

func TestIngest_DependencyOnlyPackages(t *testing.T) {
	r := newResolver(t, []resolver.Package{{Name: "app", Dependencies: []string{"lib"}}})

	assert.Equal(t, []string{"app", "lib"}, r.Packages())
	assert.Equal(t, map[string]struct{}{"app": {}, "lib": {}}, r.AllPackages())
}

func TestInstallationOrder(t *testing.T) {
	cases := []struct {
		name string
		pkgs []resolver.Package
		pkg  string
		want []string
	}{
		{"valid", validPkgs, "A", []string{"C", "D", "B", "A"}},
		{"valid leaf", validPkgs, "C", []string{"C"}},
		{"valid second root", validPkgs, "E", []string{"C", "E"}},
		{"shared", sharedPkgs, "A", []string{"D", "B", "C", "A"}},
		// Siblings are expanded in lexical order, so B (no dependencies)
		// finishes before C's subtree. [D C B A] would be equally valid; only
		// dependency-before-dependent is guaranteed, and this exact order is
		// the documented deterministic choice, not a regression.
		{
			name: "subtree before sibling",
			pkgs: []resolver.Package{
				{Name: "A", Dependencies: []string{"B", "C"}},
				{Name: "C", Dependencies: []string{"D"}},
			},
			pkg:  "A",
			want: []string{"B", "D", "C", "A"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newResolver(t, tc.pkgs)
			order, err := r.InstallationOrder(tc.pkg)
			require.NoError(t, err)
			assert.Equal(t, tc.want, order)
			requireInstallable(t, r, order)
		})
	}
}

// TestInstallationOrder_DeclarationOrderIrrelevant reverses dependency lists
// and expects the same order.
func TestInstallationOrder_DeclarationOrderIrrelevant(t *testing.T) {
	r1 := newResolver(t, []resolver.Package{{Name: "A", Dependencies: []string{"B", "C", "D"}}})
	r2 := newResolver(t, []resolver.Package{{Name: "A", Dependencies: []string{"D", "C", "B"}}})

	o1, err := r1.InstallationOrder("A")
	require.NoError(t, err)
	o2, err := r2.InstallationOrder("A")
	require.NoError(t, err)
	assert.Equal(t, o1, o2)
}

func TestInstallationOrder_NotFound(t *testing.T) {
	r := newResolver(t, validPkgs)

	order, err := r.InstallationOrder("Z")
	assert.Nil(t, order)
	assert.ErrorIs(t, err, resolver.ErrPackageNotFound)
	assert.ErrorContains(t, err, `"Z"`)
}

func TestInstallationOrder_Cycle(t *testing.T) {
	r := newResolver(t, []resolver.Package{
		{Name: "A", Dependencies: []string{"B"}},
		{Name: "B", Dependencies: []string{"A"}},
	})

	_, err := r.InstallationOrder("A")
	require.ErrorIs(t, err, resolver.ErrCycleDetected)

	var cyc *dfs.CycleError
	require.ErrorAs(t, err, &cyc)
	assert.Equal(t, []string{"A", "B", "A"}, cyc.Path)
}

func TestInstallationOrder_SelfDependency(t *testing.T) {
	r := newResolver(t, []resolver.Package{{Name: "A", Dependencies: []string{"A"}}})

	_, err := r.InstallationOrder("A")
	assert.ErrorIs(t, err, resolver.ErrCycleDetected)
}

// TestInstallationOrder_CycleElsewhere checks that a cycle the package cannot
// reach does not affect its order.
func TestInstallationOrder_CycleElsewhere(t *testing.T) {
	r := newResolver(t, append([]resolver.Package{
		{Name: "app", Dependencies: []string{"lib"}},
	}, cyclicPkgs...))

	order, err := r.InstallationOrder("app")
	require.NoError(t, err)
	assert.Equal(t, []string{"lib", "app"}, order)

	_, err = r.InstallationOrderForAllPackages()
	assert.ErrorIs(t, err, resolver.ErrCycleDetected)
}

func TestToInstall(t *testing.T) {
	r := newResolver(t, sharedPkgs)

	got, err := r.ToInstall("A", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A"}, got)

	got, err = r.ToInstall("B", "A")
	require.NoError(t, err)
	assert.Empty(t, got)

	for _, p := range r.Packages() {
		got, err = r.ToInstall(p, p)
		require.NoError(t, err)
		assert.Empty(t, got, "ToInstall(%s, %s)", p, p)
	}
}

func TestToInstall_Errors(t *testing.T) {
	r := newResolver(t, append([]resolver.Package{{Name: "ok"}}, cyclicPkgs...))

	_, err := r.ToInstall("missing", "ok")
	assert.ErrorIs(t, err, resolver.ErrPackageNotFound)

	_, err = r.ToInstall("ok", "missing")
	assert.ErrorIs(t, err, resolver.ErrPackageNotFound)

	_, err = r.ToInstall("A", "ok")
	assert.ErrorIs(t, err, resolver.ErrCycleDetected)

	_, err = r.ToInstall("ok", "B")
	assert.ErrorIs(t, err, resolver.ErrCycleDetected)
}

func TestInstallationOrderForAllPackages(t *testing.T) {
	r := newResolver(t, validPkgs)
	order, err := r.InstallationOrderForAllPackages()
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D", "B", "A", "E"}, order)
	requireInstallable(t, r, order)

	r = newResolver(t, sharedPkgs)
	order, err = r.InstallationOrderForAllPackages()
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "B", "C", "A"}, order)
	requireInstallable(t, r, order)
}

func TestInstallationOrderForAllPackages_EmptyAndCyclic(t *testing.T) {
	order, err := resolver.NewResolver().InstallationOrderForAllPackages()
	require.NoError(t, err)
	assert.Empty(t, order)

	_, err = newResolver(t, cyclicPkgs).InstallationOrderForAllPackages()
	assert.ErrorIs(t, err, resolver.ErrCycleDetected)
}

func TestRootPackages(t *testing.T) {
	assert.Equal(t, []string{"A", "E"}, newResolver(t, validPkgs).RootPackages())
	assert.Equal(t, []string{"A"}, newResolver(t, sharedPkgs).RootPackages())
	assert.Empty(t, newResolver(t, cyclicPkgs).RootPackages())
}

func TestPackageWithMaxDependencies(t *testing.T) {
	cases := []struct {
		name string
		pkgs []resolver.Package
		want string
	}{
		{"shared", sharedPkgs, "A"},
		{"valid", validPkgs, "A"},
		{
			name: "single root",
			pkgs: []resolver.Package{
				{Name: "A", Dependencies: []string{"B", "C"}},
				{Name: "B", Dependencies: []string{"D"}},
			},
			want: "A",
		},
		{
			name: "tie goes to lexically first root",
			pkgs: []resolver.Package{
				{Name: "X", Dependencies: []string{"Y"}},
				{Name: "W", Dependencies: []string{"Z"}},
			},
			want: "W",
		},
		{"empty graph", nil, ""},
		{"no roots", cyclicPkgs, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := newResolver(t, tc.pkgs).PackageWithMaxDependencies()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPackageWithMaxDependencies_CycleFromRoot(t *testing.T) {
	r := newResolver(t, append([]resolver.Package{{Name: "R", Dependencies: []string{"A"}}}, cyclicPkgs...))

	_, err := r.PackageWithMaxDependencies()
	assert.ErrorIs(t, err, resolver.ErrCycleDetected)
}

func TestDependenciesAndDependents(t *testing.T) {
	r := newResolver(t, sharedPkgs)

	deps, err := r.Dependencies("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, deps)

	users, err := r.Dependents("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, users)

	users, err = r.Dependents("A")
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = r.Dependencies("Z")
	assert.ErrorIs(t, err, resolver.ErrPackageNotFound)
	_, err = r.Dependents("Z")
	assert.ErrorIs(t, err, resolver.ErrPackageNotFound)
}

func TestDependenciesAndDependents_QueryOptions(t *testing.T) {
	r := newResolver(t, validPkgs)

	cases := []struct {
		name    string
		reverse bool
		pkg     string
		opts    []resolver.QueryOption
		want    []string
	}{
		{"direct dependencies", false, "A", []resolver.QueryOption{resolver.WithDepth(1)}, []string{"B"}},
		{"two hops", false, "A", []resolver.QueryOption{resolver.WithDepth(2)}, []string{"B", "C", "D"}},
		{"unlimited depth", false, "A", []resolver.QueryOption{resolver.WithDepth(0)}, []string{"B", "C", "D"}},
		{"excluded subtree", false, "A", []resolver.QueryOption{resolver.WithExclude("B")}, []string{}},
		{"direct dependents", true, "C", []resolver.QueryOption{resolver.WithDepth(1)}, []string{"B", "E"}},
		{"dependents without B", true, "C", []resolver.QueryOption{resolver.WithExclude("B")}, []string{"E"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			query := r.Dependencies
			if tc.reverse {
				query = r.Dependents
			}
			got, err := query(tc.pkg, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := r.Dependencies("A", resolver.WithDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Dependents("C", resolver.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWhy(t *testing.T) {
	r := newResolver(t, validPkgs)

	chain, err := r.Why("A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, chain)

	chain, err = r.Why("A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, chain)

	_, err = r.Why("E", "D")
	assert.ErrorIs(t, err, resolver.ErrNotDependency)

	_, err = r.Why("A", "D", resolver.WithExclude("B"))
	assert.ErrorIs(t, err, resolver.ErrNotDependency)

	_, err = r.Why("A", "D", resolver.WithDepth(1))
	assert.ErrorIs(t, err, resolver.ErrNotDependency)

	_, err = r.Why("Z", "A")
	assert.ErrorIs(t, err, resolver.ErrPackageNotFound)
	_, err = r.Why("A", "Z")
	assert.ErrorIs(t, err, resolver.ErrPackageNotFound)
}

// TestWhy_Cycle checks that chains are found through cyclic graphs too.
func TestWhy_Cycle(t *testing.T) {
	chain, err := newResolver(t, cyclicPkgs).Why("A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, chain)
}

func TestRankByDependencies(t *testing.T) {
	r := newResolver(t, validPkgs)

	ranks, err := r.RankByDependencies()
	require.NoError(t, err)
	assert.Equal(t, []resolver.Ranking{
		{Package: "A", Dependencies: 3},
		{Package: "B", Dependencies: 2},
		{Package: "E", Dependencies: 1},
		{Package: "C", Dependencies: 0},
		{Package: "D", Dependencies: 0},
	}, ranks)

	_, err = newResolver(t, cyclicPkgs).RankByDependencies()
	assert.ErrorIs(t, err, resolver.ErrCycleDetected)
}

func TestCycles(t *testing.T) {
	cycles, err := newResolver(t, sharedPkgs).Cycles()
	require.NoError(t, err)
	assert.Empty(t, cycles)

	cycles, err = newResolver(t, cyclicPkgs).Cycles()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C", "A"}}, cycles)
}

// TestGraph_IsCopy ensures callers cannot mutate the resolver's graph.
func TestGraph_IsCopy(t *testing.T) {
	r := newResolver(t, sharedPkgs)

	g := r.Graph()
	g.RemoveVertex("D")
	g.AddEdge("D", "A")

	order, err := r.InstallationOrder("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "B", "C", "A"}, order)

	all := r.AllPackages()
	delete(all, "A")
	assert.Contains(t, r.AllPackages(), "A")
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := resolver.NewResolver(resolver.WithLogger(logger), resolver.WithCapacity(8))
	r.Ingest(cyclicPkgs)
	_, err := r.InstallationOrder("A")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "ingested package")
	assert.Contains(t, out, "package=A")
	assert.Contains(t, out, "dependency cycle detected")
	assert.Contains(t, out, `msg="ingestion complete" packages=3 edges=3 roots=0 leaves=0 self_dependencies=0`)
}
