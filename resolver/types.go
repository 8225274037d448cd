package resolver

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/pkgorder/bfs"
	"github.com/katalvlaran/pkgorder/dfs"
)

var (
	// ErrPackageNotFound is returned when a queried package is not in the graph.
	ErrPackageNotFound = errors.New("resolver: package not found")

	// ErrCycleDetected matches every cycle failure, including *dfs.CycleError.
	ErrCycleDetected = dfs.ErrCycleDetected

	// ErrNotDependency is returned by Why when the target is not in the
	// package's closure.
	ErrNotDependency = errors.New("resolver: not a dependency")
)

// Package is one manifest record: a package name and its direct dependencies
// in declaration order.
type Package struct {
	Name         string   `json:"name" yaml:"name"`
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// Ranking pairs a package with the size of its transitive dependency set.
type Ranking struct {
	Package      string
	Dependencies int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for ingestion and query diagnostics.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithCapacity pre-sizes the owned graph for about n packages.
func WithCapacity(n int) Option {
	return func(r *Resolver) {
		r.capacity = n
	}
}

// QueryOption narrows a closure query (Dependencies, Dependents, Why).
type QueryOption func(*[]bfs.Option)

// WithDepth keeps only packages at most n edges away; 1 means direct
// dependencies or dependents. Zero means unlimited.
func WithDepth(n int) QueryOption {
	return func(o *[]bfs.Option) {
		*o = append(*o, bfs.WithMaxDepth(n))
	}
}

// WithExclude leaves the named packages out of the walk, together with
// anything reachable only through them.
func WithExclude(pkgs ...string) QueryOption {
	return func(o *[]bfs.Option) {
		*o = append(*o, bfs.WithExclude(pkgs...))
	}
}

// WithContext aborts the query once ctx is done.
func WithContext(ctx context.Context) QueryOption {
	return func(o *[]bfs.Option) {
		*o = append(*o, bfs.WithContext(ctx))
	}
}

func walkOptions(opts []QueryOption, extra ...bfs.Option) []bfs.Option {
	out := extra
	for _, fn := range opts {
		fn(&out)
	}

	return out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
