// SPDX-License-Identifier: MIT
// Package: pkgorder/builder
//
// impl_layered.go - Layered(layers, width, fanout) constructor.
//
// Contract:
//   - layers ≥ 1, width ≥ 1, 0 ≤ fanout ≤ width (else ErrTooFewVertices).
//   - Vertex index of (layer l, slot s) is l*width + s, named by cfg.idFn.
//   - Package (l, s) depends on (l+1, (s+k) mod width) for k = 0..fanout-1,
//     so every layer shares dependencies with its neighbors and the result is acyclic.
//
// Complexity: O(layers·width) vertices + O((layers-1)·width·fanout) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pkgorder/core"
)

const methodLayered = "Layered"

// Layered returns a Constructor for a layered dependency DAG.
func Layered(layers, width, fanout int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if layers < 1 || width < 1 {
			return fmt.Errorf("%s: layers=%d width=%d must be ≥ 1: %w", methodLayered, layers, width, ErrTooFewVertices)
		}
		if fanout < 0 || fanout > width {
			return fmt.Errorf("%s: fanout=%d not in [0,%d]: %w", methodLayered, fanout, width, ErrTooFewVertices)
		}

		addVertices(g, layers*width, cfg.idFn)
		for l := 0; l+1 < layers; l++ {
			for s := 0; s < width; s++ {
				from := cfg.idFn(l*width + s)
				for k := 0; k < fanout; k++ {
					g.AddEdge(from, cfg.idFn((l+1)*width+(s+k)%width))
				}
			}
		}

		return nil
	}
}
