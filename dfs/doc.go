// Package dfs implements depth‑first search traversal, cycle detection,
// and installation ordering on a core.Graph of package dependencies.
//
// What:
//
//   - Walker / DFS: iterative depth-first traversal with an explicit stack of
//     (vertex, next-successor) frames. Successors are expanded in ascending
//     lexical order. Supports:
//   - Pre‑order and post‑order hooks
//   - Full-graph (forest) traversal in sorted vertex order
//   - An inspectable recursion path (Walker.Path, Walker.OnPath)
//   - InstallOrder: the dependency-first closure of one package.
//   - TopologicalSort: whole-graph cycle check, then a root-seeded order of
//     every vertex.
//   - DetectCycle / FindCycles: first cycle as *CycleError, or every distinct
//     back-edge cycle in canonical rotation.
//
// Why:
//   - Package managers must install dependencies before dependents.
//   - Cycles make an installation order impossible and must be reported with
//     the offending chain.
//   - Sorting successors makes orders independent of manifest declaration order.
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//   - Option / DFSOptions: functional options for hooks and traversal mode
//   - DFSResult: post‑order and the set of visited vertices
//   - CycleError: the closed recursion path of a back-edge
//
// Complexity:
//
//   - DFS, InstallOrder, TopologicalSort, DetectCycle: Time O(V+E·log d), Memory O(V)
//   - FindCycles: Time O(V+E·log d + C·L), Memory O(V + C·L)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrCycleDetected        matched by every *CycleError
//   - hook errors             propagated from OnVisit, OnExit or OnBackEdge
package dfs
