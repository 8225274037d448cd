// Package bfs answers closure questions over a core.Graph breadth-first.
//
// Forward searches follow package → dependency edges: "what does app pull
// in". WithReverse follows them backwards: "what breaks if zlib changes".
// Because the search runs in hop order, BFSResult.PathTo yields a shortest
// dependency chain, which is how "why does app need zlib" is answered.
//
// Neighbors are expanded in ascending lexical order, so results do not
// depend on the order in which dependencies were declared.
//
//	deps, err := bfs.Reachable(g, "app")                          // transitive dependencies
//	direct, err := bfs.Reachable(g, "app", bfs.WithMaxDepth(1))   // direct dependencies
//	users, err := bfs.Reachable(g, "zlib", bfs.WithReverse())     // transitive dependents
//	res, err := bfs.BFS(g, "app", bfs.WithExclude("http"))        // ignore one subtree
//	chain, err := res.PathTo("zlib")
//
// Complexity: O(V + E·log d) time, O(V) memory; reverse mode adds one
// O(V + E) snapshot of incoming edges.
package bfs
