// SPDX-License-Identifier: MIT
// Package: pkgorder/builder
//
// impl_fan.go - Fan(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID CenterVertexID.
//   - Adds leaves via cfg.idFn for i = 1..n-1 and emits Center → leaf[i]
//     in increasing i.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pkgorder/core"
)

// CenterVertexID is the identifier of the hub package in Fan.
const CenterVertexID = "Center"

const (
	methodFan   = "Fan"
	minFanNodes = 2
)

// Fan returns a Constructor for one package depending directly on n-1 leaves.
func Fan(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minFanNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodFan, n, minFanNodes, ErrTooFewVertices)
		}
		g.AddVertex(CenterVertexID)
		for i := 1; i < n; i++ {
			g.AddEdge(CenterVertexID, cfg.idFn(i))
		}

		return nil
	}
}
