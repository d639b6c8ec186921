package pursuit

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/burrownet/vnet"
)

// Solve computes the ordered cut sequence that prevents the virus,
// starting at start, from ever reaching a gateway of g.
//
// Returns:
//
//   - cuts: the edges to sever, in application order. Empty (non-nil)
//     when start already has no path to any gateway.
//   - err:  ErrNilGraph/ErrNodeNotFound for invalid input,
//     ErrOptionViolation for a bad option, ErrNoStrategy when no
//     sequence exists within the explored space. A start position on a
//     gateway is ErrNoStrategy: the virus has already arrived.
//
// Solve never mutates g; all speculative cutting happens on clones.
func Solve(g *vnet.Graph, start string, opts ...Option) ([]Cut, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, start)
	}
	if vnet.IsGateway(start) {
		return nil, ErrNoStrategy
	}

	s := &solver{
		failed:   make(map[string]struct{}),
		maxTurns: cfg.MaxTurns,
	}
	cuts, ok := s.contain(g.Clone(), start, 0)
	if !ok {
		return nil, ErrNoStrategy
	}

	return cuts, nil
}

// solver holds the per-invocation failure memo. It must not be reused
// across unrelated inputs: the memo is only valid for one graph lineage.
type solver struct {
	failed   map[string]struct{}
	maxTurns int
}

// contain is the recursive decision point: given the virus at pos on the
// remaining graph g, return a winning cut sequence or report failure.
//
// The graph g is owned by this branch (already a clone); candidate cuts
// still clone it again so sibling candidates never see each other's
// mutations.
func (s *solver) contain(g *vnet.Graph, pos string, turn int) ([]Cut, bool) {
	paths, err := g.ShortestPathsFrom(pos)
	if err != nil {
		// pos is always a node of g by construction.
		return nil, false
	}

	// Already safe: no gateway reachable, no cuts needed.
	if nearestGateway(g, paths) == "" {
		return []Cut{}, true
	}

	sig := signature(g, pos)
	if _, seen := s.failed[sig]; seen {
		return nil, false
	}
	if turn >= s.maxTurns {
		return nil, false
	}

	// Candidate cuts: every gateway-incident edge, gateway label first,
	// neighbor label second, both ordinal. This ordering is the
	// deterministic tie-break of the output sequence.
	for _, gw := range g.Gateways() {
		for _, nb := range g.Neighbors(gw) {
			if cuts, ok := s.try(g, pos, turn, Cut{Gateway: gw, Node: nb}); ok {
				return cuts, true
			}
		}
	}

	s.failed[sig] = struct{}{}

	return nil, false
}

// try severs one candidate edge on a cloned graph, simulates the virus
// response, and recurses. Reports failure when the virus reaches a
// gateway on its answering step or the subtree proves hopeless.
func (s *solver) try(g *vnet.Graph, pos string, turn int, cut Cut) ([]Cut, bool) {
	c := g.Clone()
	c.RemoveEdge(cut.Gateway, cut.Node)

	paths, err := c.ShortestPathsFrom(pos)
	if err != nil {
		return nil, false
	}
	target := nearestGateway(c, paths)
	if target == "" {
		// The cut disconnected the virus from every gateway: this single
		// cut wins the branch outright.
		return []Cut{cut}, true
	}

	next := s.step(c, pos, target)
	if next == "" || vnet.IsGateway(next) {
		return nil, false
	}

	rest, ok := s.contain(c, next, turn+1)
	if !ok {
		return nil, false
	}

	return append([]Cut{cut}, rest...), true
}

// step simulates one virus move on g: from pos, the first sorted neighbor
// strictly closer to target. Returns "" when no neighbor improves, which
// cannot happen while target is reachable at positive distance.
func (s *solver) step(g *vnet.Graph, pos, target string) string {
	fromTarget, err := g.ShortestPathsFrom(target)
	if err != nil {
		return ""
	}
	posDist, ok := fromTarget.Dist[pos]
	if !ok {
		return ""
	}
	for _, nb := range g.Neighbors(pos) {
		if d, reach := fromTarget.Dist[nb]; reach && d < posDist {
			return nb
		}
	}

	return ""
}

// nearestGateway returns the reachable gateway with the smallest BFS
// distance in p, ties broken by ordinal label order; "" when no gateway
// is reachable.
func nearestGateway(g *vnet.Graph, p *vnet.Paths) string {
	best := ""
	bestDist := -1
	for _, gw := range g.Gateways() {
		d, ok := p.Dist[gw]
		if !ok {
			continue
		}
		if bestDist == -1 || d < bestDist {
			best, bestDist = gw, d
		}
	}

	return best
}

// signature is the memo key for a failed position: the virus position
// plus the sorted gateway-incident edge list. Only gateway-adjacent edges
// can ever be cut, so this captures the full observable state relevant to
// future decisions.
func signature(g *vnet.Graph, pos string) string {
	var sb strings.Builder
	sb.WriteString(pos)
	for _, gw := range g.Gateways() {
		for _, nb := range g.Neighbors(gw) {
			sb.WriteByte('|')
			sb.WriteString(gw)
			sb.WriteByte('-')
			sb.WriteString(nb)
		}
	}

	return sb.String()
}
