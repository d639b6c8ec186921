package vnet

import (
	"fmt"
	"sort"
	"strings"
)

// Graph is an undirected graph over string-labeled nodes. Adjacency is
// stored symmetrically: a is in b's neighbor set exactly when b is in
// a's — every mutation preserves the invariant and RemoveEdge checks it.
//
// Edges can only be removed after construction, never added, matching
// the pursuit domain where links are cut and never restored.
type Graph struct {
	adj   map[string]map[string]struct{}
	edges int
}

// ParseEdges builds a Graph from text lines of the form "a-b", one
// undirected edge per line. Parsing stops at the first empty line.
//
// Returns ErrBadEdgeFormat for a line that is not two non-empty labels
// joined by a hyphen, ErrSelfLoop and ErrDuplicateEdge for domain
// violations, and ErrTooManyNodes/ErrTooManyEdges when the instance
// exceeds the documented bounds. All are fatal; there is no partial
// recovery.
//
// Complexity: O(L) over input lines, plus the per-edge validation cost.
func ParseEdges(lines []string) (*Graph, error) {
	g := &Graph{adj: make(map[string]map[string]struct{})}

	for i, ln := range lines {
		if strings.TrimSpace(ln) == "" {
			break
		}
		a, b, ok := strings.Cut(ln, "-")
		if !ok || a == "" || b == "" || strings.Contains(b, "-") {
			return nil, fmt.Errorf("%w: line %d %q", ErrBadEdgeFormat, i, ln)
		}
		if err := g.addEdge(a, b); err != nil {
			return nil, fmt.Errorf("%w (line %d)", err, i)
		}
	}

	return g, nil
}

// addEdge inserts an undirected edge during construction, enforcing the
// self-loop, duplicate, and bounds invariants.
func (g *Graph) addEdge(a, b string) error {
	if a == b {
		return fmt.Errorf("%w: %q", ErrSelfLoop, a)
	}
	if _, dup := g.adj[a][b]; dup {
		return fmt.Errorf("%w: %s-%s", ErrDuplicateEdge, a, b)
	}
	if g.edges+1 > MaxEdges {
		return ErrTooManyEdges
	}
	newNodes := 0
	if _, ok := g.adj[a]; !ok {
		newNodes++
	}
	if _, ok := g.adj[b]; !ok {
		newNodes++
	}
	if len(g.adj)+newNodes > MaxNodes {
		return ErrTooManyNodes
	}

	g.link(a, b)
	g.link(b, a)
	g.edges++

	return nil
}

// link records b in a's neighbor set, allocating the set on first use.
func (g *Graph) link(a, b string) {
	if g.adj[a] == nil {
		g.adj[a] = make(map[string]struct{})
	}
	g.adj[a][b] = struct{}{}
}

// HasNode reports whether label is a node of the graph.
func (g *Graph) HasNode(label string) bool {
	_, ok := g.adj[label]

	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of (undirected) edges still present.
func (g *Graph) EdgeCount() int { return g.edges }

// Nodes returns every node label in ordinal sorted order.
func (g *Graph) Nodes() []string {
	out := make([]string, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Gateways returns every gateway node label in ordinal sorted order.
func (g *Graph) Gateways() []string {
	out := make([]string, 0, len(g.adj))
	for id := range g.adj {
		if IsGateway(id) {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// Neighbors returns the nodes adjacent to label in ordinal sorted order.
// Unknown labels yield an empty slice.
func (g *Graph) Neighbors(label string) []string {
	set := g.adj[label]
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// RemoveEdge severs the undirected edge a-b. Returns false and leaves the
// graph unchanged when the edge does not exist. A half-present edge
// (recorded in one direction only) means the symmetry invariant is
// already broken by a bug, and the method panics rather than compute on a
// corrupt graph.
func (g *Graph) RemoveEdge(a, b string) bool {
	_, ab := g.adj[a][b]
	_, ba := g.adj[b][a]
	if ab != ba {
		panic(fmt.Sprintf("vnet: asymmetric adjacency for %s-%s", a, b))
	}
	if !ab {
		return false
	}

	delete(g.adj[a], b)
	delete(g.adj[b], a)
	g.edges--

	return true
}

// Clone returns a deep copy of the graph, independent of the original.
// Used for speculative what-if-this-edge-is-cut exploration: mutations on
// the clone never touch the source. Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		adj:   make(map[string]map[string]struct{}, len(g.adj)),
		edges: g.edges,
	}
	for id, set := range g.adj {
		cp := make(map[string]struct{}, len(set))
		for nb := range set {
			cp[nb] = struct{}{}
		}
		c.adj[id] = cp
	}

	return c
}
