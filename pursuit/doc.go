// Package pursuit computes an edge-cut strategy that keeps a moving virus
// away from every gateway node of a vnet.Graph.
//
// What
//
//	Each turn, the defender severs one gateway-adjacent edge, then the
//	virus takes one step toward its nearest still-reachable gateway.
//	Solve returns the ordered sequence of cuts that guarantees the virus
//	never reaches a gateway, or ErrNoStrategy when no sequence exists.
//
// How
//
//	Recursive backtracking over (virus position, remaining edge set):
//	candidate cuts are tried in (gateway label, neighbor label) ordinal
//	order on a cloned graph, the virus response is simulated, and
//	positions proven hopeless are memoized by their observable state —
//	the virus position plus the sorted gateway-incident edge list, which
//	is all that future decisions can depend on, since only
//	gateway-adjacent edges are ever cut.
//
// Determinism
//
//	Candidate ordering and the nearest-gateway tie-break (smallest label
//	wins at equal distance) are fixed, so the returned sequence is
//	reproducible bit-for-bit across runs.
//
// Complexity
//
//	Worst case exponential in the gateway-incident edge count; the
//	failure memo bounds re-exploration, and instance sizes are capped by
//	vnet.MaxNodes/MaxEdges.
package pursuit
