package resolver

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pkgorder/core"
	"github.com/katalvlaran/pkgorder/dfs"
)

// Resolver owns one dependency graph and answers installation-order queries
// over it. Queries never mutate the graph.
type Resolver struct {
	graph    *core.Graph
	logger   *slog.Logger
	capacity int
}

// NewResolver returns an empty Resolver. Without WithLogger it logs nowhere.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{logger: discardLogger()}
	for _, opt := range opts {
		opt(r)
	}
	var gopts []core.GraphOption
	if r.capacity > 0 {
		gopts = append(gopts, core.WithCapacity(r.capacity))
	}
	r.graph = core.NewGraph(gopts...)

	return r
}

// Ingest adds every package as a vertex and an edge to each of its
// dependencies, creating dependency vertices on first sight. Repeated
// packages and edges are absorbed; records with an empty name are skipped.
func (r *Resolver) Ingest(pkgs []Package) {
	for _, p := range pkgs {
		if p.Name == "" {
			r.logger.Warn("skipping package with empty name", "dependencies", len(p.Dependencies))
			continue
		}
		r.graph.AddVertex(p.Name)
		added := 0
		for _, dep := range p.Dependencies {
			if r.graph.AddEdge(p.Name, dep) {
				added++
			}
		}
		r.logger.Debug("ingested package", "package", p.Name, "declared", len(p.Dependencies), "added", added)
	}
	st := r.graph.Stats()
	r.logger.Debug("ingestion complete",
		"packages", st.VertexCount,
		"edges", st.EdgeCount,
		"roots", st.RootCount,
		"leaves", st.LeafCount,
		"self_dependencies", st.SelfLoops,
	)
}

// InstallationOrder returns pkg's transitive closure in installation order:
// dependencies first, pkg last, each package once.
//
// Errors: ErrPackageNotFound, or a *dfs.CycleError (matching ErrCycleDetected)
// when a cycle is reachable from pkg.
func (r *Resolver) InstallationOrder(pkg string) ([]string, error) {
	if !r.graph.HasVertex(pkg) {
		return nil, fmt.Errorf("%w: %q", ErrPackageNotFound, pkg)
	}
	order, err := dfs.InstallOrder(r.graph, pkg)
	if err != nil {
		r.logCycle(err, "package", pkg)
		return nil, err
	}
	r.logger.Debug("installation order", "package", pkg, "size", len(order))

	return order, nil
}

// ToInstall returns the packages of newPkg's installation order that are not
// already part of installedPkg's, keeping newPkg's relative order.
func (r *Resolver) ToInstall(newPkg, installedPkg string) ([]string, error) {
	installed, err := r.InstallationOrder(installedPkg)
	if err != nil {
		return nil, err
	}
	wanted, err := r.InstallationOrder(newPkg)
	if err != nil {
		return nil, err
	}

	have := make(map[string]struct{}, len(installed))
	for _, p := range installed {
		have[p] = struct{}{}
	}
	out := make([]string, 0, len(wanted))
	for _, p := range wanted {
		if _, ok := have[p]; !ok {
			out = append(out, p)
		}
	}
	r.logger.Debug("install diff", "package", newPkg, "installed", installedPkg, "size", len(out))

	return out, nil
}

// InstallationOrderForAllPackages returns every package in one installation
// order. Any cycle in the graph fails the call, reachable from a root or not.
// Roots are expanded in lexical order.
func (r *Resolver) InstallationOrderForAllPackages() ([]string, error) {
	order, err := dfs.TopologicalSort(r.graph)
	if err != nil {
		r.logCycle(err)
		return nil, err
	}
	r.logger.Debug("global installation order", "size", len(order))

	return order, nil
}

// AllPackages returns a snapshot of the package set.
func (r *Resolver) AllPackages() map[string]struct{} {
	return r.graph.AllVertices()
}

// Packages returns all package names sorted.
func (r *Resolver) Packages() []string {
	return r.graph.Vertices()
}

// Graph returns a deep copy of the dependency graph.
func (r *Resolver) Graph() *core.Graph {
	return r.graph.Clone()
}

func (r *Resolver) logCycle(err error, args ...any) {
	var cyc *dfs.CycleError
	if errors.As(err, &cyc) {
		r.logger.Warn("dependency cycle detected", append(args, "cycle", cyc.Path)...)
	}
}
