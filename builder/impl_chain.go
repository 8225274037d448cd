// SPDX-License-Identifier: MIT
// Package: pkgorder/builder
//
// impl_chain.go - Chain(n) and Cycle(n) constructors.
//
// Contract:
//   - Chain: n ≥ 1; edges i → i+1 for i = 0..n-2, so package 0 needs all others.
//   - Cycle: n ≥ 1; Chain plus the closing edge n-1 → 0 (n = 1 is a self-dependency).
//   - Vertices are added via cfg.idFn in ascending index order.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pkgorder/core"
)

const (
	methodChain   = "Chain"
	methodCycle   = "Cycle"
	minChainNodes = 1
)

// Chain returns a Constructor that builds a linear dependency chain.
func Chain(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewVertices)
		}
		addVertices(g, n, cfg.idFn)
		for i := 1; i < n; i++ {
			g.AddEdge(cfg.idFn(i-1), cfg.idFn(i))
		}

		return nil
	}
}

// Cycle returns a Constructor that builds a dependency ring.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minChainNodes, ErrTooFewVertices)
		}
		if err := Chain(n)(g, cfg); err != nil {
			return err
		}
		g.AddEdge(cfg.idFn(n-1), cfg.idFn(0))

		return nil
	}
}
