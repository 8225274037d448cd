// SPDX-License-Identifier: MIT
// Package: pkgorder/builder
//
// impl_random_dag.go - RandomDAG(n, p) constructor.
//
// Model: Erdős–Rényi restricted to forward pairs. Each pair (i, j) with i < j
// becomes the edge i → j independently with probability p, so no cycle can form.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism: trials run for i asc, j asc; fixed seed ⇒ fixed graph.
//
// Complexity: O(n) vertices + O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pkgorder/core"
)

const (
	methodRandomDAG = "RandomDAG"
	probMin         = 0.0
	probMax         = 1.0
)

// RandomDAG returns a Constructor that samples an acyclic dependency graph.
func RandomDAG(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomDAG, n, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomDAG, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomDAG, ErrNeedRandSource)
		}

		addVertices(g, n, cfg.idFn)
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				var keep bool
				switch {
				case p == probMax:
					keep = true
				case p == probMin:
					keep = false
				default:
					keep = cfg.rng.Float64() < p
				}
				if keep {
					g.AddEdge(u, cfg.idFn(j))
				}
			}
		}

		return nil
	}
}
