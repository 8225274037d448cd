package resolver

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pkgorder/bfs"
	"github.com/katalvlaran/pkgorder/dfs"
)

// RootPackages returns the packages nothing depends on, sorted.
func (r *Resolver) RootPackages() []string {
	return r.graph.Roots()
}

// PackageWithMaxDependencies returns the root package with the largest
// installation closure. Ties go to the lexically smallest root. A graph with
// no roots yields "" and no error. A cycle reachable from a root fails the call.
func (r *Resolver) PackageWithMaxDependencies() (string, error) {
	best, bestSize := "", -1
	for _, root := range r.graph.Roots() {
		order, err := dfs.InstallOrder(r.graph, root)
		if err != nil {
			r.logCycle(err, "package", root)
			return "", err
		}
		if len(order) > bestSize {
			best, bestSize = root, len(order)
		}
	}
	r.logger.Debug("package with max dependencies", "package", best, "size", bestSize)

	return best, nil
}

// Dependencies returns the transitive dependencies of pkg, sorted, without pkg.
func (r *Resolver) Dependencies(pkg string, opts ...QueryOption) ([]string, error) {
	return r.closure(pkg, walkOptions(opts))
}

// Dependents returns every package that depends on pkg directly or
// transitively, sorted. These are the packages affected by removing pkg.
func (r *Resolver) Dependents(pkg string, opts ...QueryOption) ([]string, error) {
	return r.closure(pkg, walkOptions(opts, bfs.WithReverse()))
}

// Why returns a shortest dependency chain from pkg to dep, both included:
// the reason installing pkg pulls dep in. Why(p, p) is [p].
//
// Errors: ErrPackageNotFound for either name, ErrNotDependency when dep is
// outside pkg's closure (after WithDepth and WithExclude are applied).
func (r *Resolver) Why(pkg, dep string, opts ...QueryOption) ([]string, error) {
	for _, p := range []string{pkg, dep} {
		if !r.graph.HasVertex(p) {
			return nil, fmt.Errorf("%w: %q", ErrPackageNotFound, p)
		}
	}
	res, err := bfs.BFS(r.graph, pkg, walkOptions(opts)...)
	if err != nil {
		return nil, fmt.Errorf("resolver: why %q: %w", pkg, err)
	}
	chain, err := res.PathTo(dep)
	if err != nil {
		return nil, fmt.Errorf("%w: %q does not need %q", ErrNotDependency, pkg, dep)
	}
	r.logger.Debug("dependency chain", "package", pkg, "dependency", dep, "hops", len(chain)-1)

	return chain, nil
}

func (r *Resolver) closure(pkg string, opts []bfs.Option) ([]string, error) {
	if !r.graph.HasVertex(pkg) {
		return nil, fmt.Errorf("%w: %q", ErrPackageNotFound, pkg)
	}
	out, err := bfs.Reachable(r.graph, pkg, opts...)
	if err != nil {
		return nil, fmt.Errorf("resolver: closure of %q: %w", pkg, err)
	}

	return out, nil
}

// RankByDependencies ranks every package by the size of its transitive
// dependency set, largest first, ties by name. Any cycle fails the call.
func (r *Resolver) RankByDependencies() ([]Ranking, error) {
	if err := dfs.DetectCycle(r.graph); err != nil {
		r.logCycle(err)
		return nil, err
	}

	pkgs := r.graph.Vertices()
	ranks := make([]Ranking, 0, len(pkgs))
	for _, p := range pkgs {
		deps, err := bfs.Reachable(r.graph, p)
		if err != nil {
			return nil, fmt.Errorf("resolver: closure of %q: %w", p, err)
		}
		ranks = append(ranks, Ranking{Package: p, Dependencies: len(deps)})
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Dependencies != ranks[j].Dependencies {
			return ranks[i].Dependencies > ranks[j].Dependencies
		}

		return ranks[i].Package < ranks[j].Package
	})

	return ranks, nil
}

// Cycles lists the distinct dependency cycles in the graph, see dfs.FindCycles.
func (r *Resolver) Cycles() ([][]string, error) {
	cycles, err := dfs.FindCycles(r.graph)
	if err != nil {
		return nil, err
	}
	if len(cycles) > 0 {
		r.logger.Warn("dependency cycles found", "count", len(cycles))
	}

	return cycles, nil
}
