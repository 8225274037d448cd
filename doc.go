// Package pkgorder computes installation orders for software packages from
// their declared dependencies.
//
// 🚀 What is pkgorder?
//
//	A small, thread-safe toolkit that brings together:
//		• core/     — the dependency graph: ordered adjacency, counters, snapshots
//		• dfs/      — iterative DFS: install order, topological sort, cycle paths
//		• bfs/      — forward and reverse reachability (closure and impact)
//		• resolver/ — ingestion plus every order and analytics query
//		• manifest/ — JSON / YAML manifests → resolver records
//		• export/   — Graphviz DOT, ranking tables, plain listings
//		• builder/  — deterministic graph fixtures for tests and benchmarks
//		• cmd/pkgorder — the command-line front end
//
// An edge A→B reads "A depends on B": B is installed first.
//
//	    A
//	   / \
//	  B   C        InstallationOrder("A") = [D B C A]
//	   \ /
//	    D
//
// Orders are deterministic: dependencies are expanded in lexical order, so
// reordering a manifest never changes the output.
//
//	go install github.com/katalvlaran/pkgorder/cmd/pkgorder@latest
//	pkgorder order A -m packages.json
package pkgorder
