// Package resolver computes package installation orders from declared
// dependencies.
//
// A Resolver owns a core.Graph in which an edge A→B means "A depends on B".
// After Ingest, every query is read-only:
//
//   - InstallationOrder(pkg): pkg's closure, dependencies first, pkg last.
//   - ToInstall(new, installed): what new still needs on top of installed.
//   - InstallationOrderForAllPackages(): one order covering every package.
//   - PackageWithMaxDependencies(), RootPackages(), RankByDependencies().
//   - Dependencies(pkg), Dependents(pkg), Cycles().
//
// Dependencies are expanded in lexical order, so the same dependency sets
// always give the same output regardless of manifest ordering.
//
// Errors: ErrPackageNotFound for an unknown queried package; cycle failures
// are *dfs.CycleError values that match ErrCycleDetected and carry the path.
package resolver
