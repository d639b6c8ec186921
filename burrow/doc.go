// Package burrow models a corridor-and-rooms sorting maze and computes the
// minimum total energy needed to sort every object into its target room.
//
// What
//
//   - Parse reads an ASCII diagram: a corridor row above 2–4 rooms of
//     uniform depth, each cell '.' (empty), '#' (wall) or 'A'–'D' (an
//     object). Room i is the target of kind i ('A' → room 0, …).
//   - A Board is an immutable snapshot of the corridor and room cells.
//     Moves enumerates every legal single-object move with its energy
//     cost; each move yields a fresh Board, never a mutation.
//   - MinEnergy plugs the board space into the search engine and returns
//     the minimum total energy to reach the fully sorted goal state, or
//     search.NoPath when the instance cannot be solved.
//
// Rules
//
//   - An object in the corridor may enter only its own target room, only
//     when that room holds nothing but empty cells and same-kind objects,
//     and only over an unobstructed corridor path; it always settles in
//     the deepest empty cell.
//   - The topmost object of a room may exit to any reachable stopping
//     cell — a corridor cell not directly in front of a room mouth —
//     unless it is already settled (in its own room with only same-kind
//     objects below it).
//   - Every step costs the object's per-kind energy: A=1, B=10, C=100,
//     D=1000. A move of s steps by kind k costs s × StepCost(k).
//
// Determinism
//
//	Moves scans the corridor left to right, rooms in index order, and
//	stopping cells in ascending order, so the emitted slice is fully
//	reproducible.
//
// Complexity
//
//   - Moves: O(C·R + R·C) = O(C·R) over corridor length C and room count
//     R (path scans dominate).
//   - MinEnergy: exponential state space in principle; the admissible
//     energy estimate keeps documented instance sizes tractable.
package burrow
