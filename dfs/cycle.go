// Package dfs implements cycle detection for dependency graphs.
//
// DetectCycle answers "is the whole graph installable?" by driving one Walker
// from every vertex not yet explored, in sorted order, and failing on the first
// back-edge. FindCycles keeps going after each back-edge and collects every
// distinct cycle closed by one, each rotated so its smallest vertex comes first
// (Booth's algorithm), with the final list sorted for deterministic output.
//
// Complexity:
//
//   - DetectCycle: Time O(V + E·log d), Memory O(V).
//   - FindCycles:  Time O(V + E·log d + C·L), Memory O(V + C·L)
//     (C = #cycles found, L = average cycle length).
package dfs

import (
	"sort"

	"github.com/katalvlaran/pkgorder/core"
)

// DetectCycle checks the entire graph for a cycle.
// Returns nil for an acyclic graph, ErrGraphNil for a nil graph, or a
// *CycleError holding the first cycle found in sorted vertex order.
func DetectCycle(g *core.Graph) error {
	_, err := DFS(g, "", WithFullTraversal())

	return err
}

// FindCycles lists the distinct cycles closed by back-edges of a sorted
// full-graph DFS. Each cycle is closed ([v0 ... v0]) and rotated so that v0 is
// its lexicographically minimal rotation. An acyclic graph yields nil.
//
// The enumeration is a diagnostic aid: it reports at least one cycle through
// every strongly connected component that has one, not every simple cycle.
func FindCycles(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]struct{})
	var cycles [][]string
	record := func(cycle []string) error {
		sig, canon := canonical(cycle)
		if _, ok := seen[sig]; !ok {
			seen[sig] = struct{}{}
			cycles = append(cycles, canon)
		}

		return nil
	}

	if _, err := DFS(g, "", WithFullTraversal(), WithOnBackEdge(record)); err != nil {
		return nil, err
	}

	sort.Slice(cycles, func(i, j int) bool {
		return JoinSig(cycles[i]) < JoinSig(cycles[j])
	})

	return cycles, nil
}

// canonical computes the lexicographically minimal rotation of a closed cycle.
// Returns:
//   - sig: the comma-joined signature of the closed canonical cycle,
//   - canon: the closed cycle slice [v0, v1, ..., v0].
//
// Direction is preserved: A→B→C→A and A→C→B→A are different dependency cycles.
func canonical(cycle []string) (string, []string) {
	base := cycle[:len(cycle)-1] // drop trailing repeat for rotation
	rot := MinimalRotation(base)
	closed := append(rot, rot[0])

	return JoinSig(closed), closed
}
