package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned for a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start package is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an Option carries an invalid value,
	// such as a negative depth limit.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a vertex the search never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option tunes one search. Invalid values are recorded and reported by BFS.
type Option func(*options)

type options struct {
	ctx      context.Context
	maxDepth int // 0 means unlimited
	reverse  bool
	exclude  map[string]struct{}
	err      error
}

func newOptions(opts []Option) options {
	o := options{ctx: context.Background()}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithContext stops the search with ctx.Err() once ctx is done.
// The context is polled once per dequeued vertex.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxDepth limits the search to d hops from the start: 1 yields direct
// dependencies (or direct dependents with WithReverse). Zero lifts the limit;
// a negative d fails with ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: depth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// WithReverse walks from a package to the packages that depend on it.
func WithReverse() Option {
	return func(o *options) {
		o.reverse = true
	}
}

// WithExclude never enters the named packages, so whatever is reachable
// only through them is left out too. Excluding the start has no effect.
func WithExclude(ids ...string) Option {
	return func(o *options) {
		if o.exclude == nil {
			o.exclude = make(map[string]struct{}, len(ids))
		}
		for _, id := range ids {
			o.exclude[id] = struct{}{}
		}
	}
}

// BFSResult is what one search saw.
type BFSResult struct {
	// Order lists vertices as they were dequeued, start first.
	Order []string

	// Depth is the hop distance of each reached vertex from the start.
	Depth map[string]int

	// Parent is the vertex each reached vertex was first discovered from.
	// The start has no entry.
	Parent map[string]string
}

// PathTo returns a shortest chain from the start to dest, both included.
// Among equally short chains it is the one through lexically smaller
// neighbors, since those are discovered first.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}

	path := make([]string, d+1)
	for cur, i := dest, d; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
