// Package builder generates deterministic dependency-graph fixtures for
// tests, benchmarks and examples.
//
// One orchestrator, BuildGraph, creates a core.Graph and applies
// Constructors in order. Every constructor adds edges "package → dependency":
//
//	Chain(n)          0 → 1 → ... → n-1
//	Fan(n)            Center → each of n-1 leaves
//	Layered(l, w, k)  l layers of w packages; each depends on k packages of the next layer
//	RandomDAG(n, p)   i → j for i < j with probability p (acyclic by construction)
//	Cycle(n)          0 → 1 → ... → n-1 → 0
//
// Options:
//
//   - WithIDScheme / WithSymbNumb / WithExcelColumnIDs select vertex names.
//   - WithSeed / WithRand supply the RNG required by RandomDAG.
//
// Same options, seed and constructor order always yield the same graph.
package builder
