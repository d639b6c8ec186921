// Package search implements a best-first (A*) engine over an abstract
// state space.
//
// What
//
//   - MinCost explores a Space from a start State in order of
//     f = g + h, where g is the accumulated transition cost and h is the
//     Space's admissible Estimate of the remaining cost.
//   - States are deduplicated by their structural Key; the engine keeps a
//     best-known-cost map and skips stale heap entries (lazy
//     decrease-key).
//   - Returns the accumulated cost of the first goal state dequeued, or
//     the NoPath sentinel if the frontier empties first.
//
// Why
//
//   - Both a weighted maze solve and any other combinatorial optimization
//     reduce to the same loop once the domain is expressed as a Space.
//     The engine depends only on the capability interface, so domains and
//     synthetic test spaces plug in without touching the solver.
//
// Optimality
//
//	If Estimate never overestimates the true remaining cost (admissible),
//	the first goal dequeued carries the minimum total cost. A zero
//	Estimate degrades the engine to uniform-cost search (Dijkstra), which
//	tests use as a cross-check oracle.
//
// Complexity (N = states reached, B = transitions per state)
//
//   - Time:  O(N·B log N) — each reached state may push up to B heap
//     entries, each heap operation costs O(log N).
//   - Space: O(N·B) worst case for the heap under lazy decrease-key,
//     O(N) for the best-cost map.
package search
