// Package graph implements a generic weighted graph engine for
// competitive-programming workloads: adaptive shortest-path dispatch,
// a double-sweep longest-path approximation, and exhaustive simple-path
// enumeration with pluggable aggregation.
//
// What:
//
//   - Graph[T] holds a fixed vertex count, a directedness flag, and
//     append-only adjacency; T is any Weight (signed integer or float).
//   - MinPath / MinPathAll dispatch between BFS (uniform-weight undirected
//     graphs) and Dijkstra (everything else) at call time.
//   - MaxPath estimates the diameter with two single-visit sweeps.
//   - AllSimplePaths / SearchPaths enumerate every simple path and fold
//     arbitrary combiners and betterness predicates over them.
//
// Conventions:
//
//   - Vertices are 1-based at every public boundary, 0-based internally.
//   - Edge weights are strictly positive; AddWeightedEdge rejects the rest
//     with ErrNonPositiveWeight. Positivity at insertion time is the sole
//     guard that keeps Dijkstra applicable — there is no Bellman–Ford
//     fallback for negative weights.
//   - Unreachable targets are reported explicitly: ErrNoPath from the
//     single-target forms, a reachability slice from MinPathAll. No
//     distance value doubles as a "no path" marker.
//
// Complexity:
//
//   - AddEdge / AddWeightedEdge: O(1) amortized.
//   - MinPath / MinPathAll: O(V+E) via BFS, O((V+E) log V) via Dijkstra.
//   - MaxPath: O(V+E), exact only when the reachable subgraph is a tree;
//     otherwise a lower bound (longest simple path in general is NP-hard
//     and out of scope).
//   - AllSimplePaths / SearchPaths: exponential in the worst case, by
//     design; small instances only, no cancellation.
//
// Concurrency:
//
//   - None. A Graph owns one distance scratch buffer that every
//     shortest-path query and sweep overwrites destructively. Serialize
//     access externally or use separate instances for parallel queries.
//
// Errors:
//
//   - ErrVertexOutOfRange: vertex argument outside 1..VertexCount.
//   - ErrSelfLoop, ErrDuplicateEdge, ErrNonPositiveWeight: rejected
//     insertions (the graph is left unchanged).
//   - ErrNoPath: no path between the requested vertices.
package graph
