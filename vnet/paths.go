package vnet

import "fmt"

// Paths holds the outcome of a breadth-first traversal:
//   - Dist: node → distance in edges from the start (0 at the start).
//   - Parent: node → its predecessor on a shortest path (absent for the
//     start node).
//
// Nodes unreachable from the start are absent from both maps.
type Paths struct {
	Dist   map[string]int
	Parent map[string]string
}

// ShortestPathsFrom runs BFS from start over the current edge set.
// Returns ErrNodeNotFound when start is not a node of the graph.
//
// Neighbors are expanded in sorted order, so Parent links (and therefore
// reconstructed paths) are deterministic.
// Complexity: O(V log V + E).
func (g *Graph) ShortestPathsFrom(start string) (*Paths, error) {
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, start)
	}

	p := &Paths{
		Dist:   make(map[string]int, len(g.adj)),
		Parent: make(map[string]string, len(g.adj)),
	}
	p.Dist[start] = 0
	queue := []string{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range g.Neighbors(cur) {
			if _, seen := p.Dist[nb]; seen {
				continue
			}
			p.Dist[nb] = p.Dist[cur] + 1
			p.Parent[nb] = cur
			queue = append(queue, nb)
		}
	}

	return p, nil
}

// To reconstructs the start → dest path from the Parent links. Returns
// ErrNodeNotFound when dest was not reached by the traversal.
func (p *Paths) To(dest string) ([]string, error) {
	if _, ok := p.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: no path to %q", ErrNodeNotFound, dest)
	}
	path := []string{dest}
	for cur := dest; ; {
		prev, ok := p.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to start → dest order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
