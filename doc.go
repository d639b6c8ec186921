// Package burrownet bundles two in-memory puzzle-solver engines that share
// one algorithmic backbone: informed search over combinatorial state spaces.
//
// 🚀 What is burrownet?
//
//	A small, pure-Go solver library made of four focused packages:
//		• burrow/  — corridor-and-rooms board model: parse a maze diagram,
//		  enumerate legal object moves with energy costs, and compute the
//		  minimum total energy to sort every object into its target room.
//		• search/  — a domain-agnostic best-first (A*) engine; burrow plugs
//		  its board space into it, and so can any Space implementation.
//		• vnet/    — a bounded undirected graph whose uppercase-labeled
//		  nodes are protected "gateways", with BFS shortest paths and deep
//		  clones for speculative edge removal.
//		• pursuit/ — an adversarial strategy solver that severs one
//		  gateway-adjacent edge per turn so a moving virus can never reach
//		  a gateway, backtracking over candidate cuts with failure
//		  memoization.
//
// ✨ Design points
//
//   - Value-style states — burrow boards are immutable snapshots with
//     structural keys, so search deduplication is a plain map lookup.
//   - Deterministic everywhere — sorted neighbor iteration and fixed
//     candidate ordering make every result reproducible bit-for-bit.
//   - Sentinel errors and sentinel results — malformed input fails fast at
//     construction; "no solution" is a value (search.NoPath,
//     pursuit.ErrNoStrategy), never a panic.
//   - Pure Go — no cgo; the only external dependency is testify, in tests.
//
// Quick taste (pursuit):
//
//	    a───B        g, _ := vnet.ParseEdges([]string{"a-B"})
//	                 cuts, _ := pursuit.Solve(g, "a")
//	                 // cuts == [B-a]: the lone link must fall first.
//
// See each package's doc.go for the full contract.
package burrownet
