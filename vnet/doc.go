// Package vnet provides the bounded undirected graph the pursuit solver
// runs on: labeled nodes, symmetric adjacency, and protected "gateway"
// nodes distinguished by an uppercase first letter.
//
// What
//
//   - ParseEdges builds a Graph from "a-b" text lines, one undirected
//     edge per line, ending at the first empty line. Self-loops,
//     duplicate edges, and instances over the MaxNodes/MaxEdges bounds
//     are construction failures.
//   - Neighbors and Nodes return sorted slices, so every downstream
//     tie-break is reproducible.
//   - RemoveEdge severs an edge symmetrically (edges are never added
//     after construction); Clone deep-copies the adjacency for
//     speculative what-if cuts.
//   - ShortestPathsFrom runs BFS and returns distance and predecessor
//     maps; unreached nodes are absent from both.
//
// Determinism
//
//	Adjacency is stored as a map of sets, but every accessor sorts before
//	returning, so iteration order never leaks into results.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Neighbors: O(d log d) for degree d; Nodes/Gateways: O(V log V).
//   - ShortestPathsFrom: O(V log V + E) — the log factor pays for sorted
//     neighbor expansion.
//   - Clone: O(V + E).
package vnet
