package pursuit_test

import (
	"testing"

	"github.com/katalvlaran/burrownet/pursuit"
	"github.com/katalvlaran/burrownet/vnet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustGraph parses edge lines or fails the test.
func mustGraph(t *testing.T, lines ...string) *vnet.Graph {
	t.Helper()
	g, err := vnet.ParseEdges(lines)
	require.NoError(t, err)

	return g
}

// TestSolve_SingleEdge: with one link a-B, the only winning play is to
// cut it before the virus's first step.
func TestSolve_SingleEdge(t *testing.T) {
	g := mustGraph(t, "a-B")

	cuts, err := pursuit.Solve(g, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"B-a"}, pursuit.Strings(cuts))
}

// TestSolve_AlreadySafe: no reachable gateway means an empty sequence.
func TestSolve_AlreadySafe(t *testing.T) {
	// Gateway B sits in a different component from the virus.
	g := mustGraph(t, "a-b", "c-B")

	cuts, err := pursuit.Solve(g, "a")
	require.NoError(t, err)
	assert.NotNil(t, cuts)
	assert.Empty(t, cuts)
}

// TestSolve_Errors covers input validation and the lost-from-the-start
// position.
func TestSolve_Errors(t *testing.T) {
	g := mustGraph(t, "a-B")

	_, err := pursuit.Solve(nil, "a")
	assert.ErrorIs(t, err, pursuit.ErrNilGraph)

	_, err = pursuit.Solve(g, "zz")
	assert.ErrorIs(t, err, pursuit.ErrNodeNotFound)

	_, err = pursuit.Solve(g, "B")
	assert.ErrorIs(t, err, pursuit.ErrNoStrategy, "starting on a gateway is already lost")

	_, err = pursuit.Solve(g, "a", pursuit.WithMaxTurns(0))
	assert.ErrorIs(t, err, pursuit.ErrOptionViolation)
}

// TestSolve_TwoCuts: both gateways hang off the same junction; the
// solver must sever them one turn at a time, in label order.
func TestSolve_TwoCuts(t *testing.T) {
	//   a ─ m ─ B
	//       └── C
	g := mustGraph(t, "a-m", "m-B", "m-C")

	cuts, err := pursuit.Solve(g, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"B-m", "C-m"}, pursuit.Strings(cuts))
}

// TestSolve_NoStrategy: two gateways directly adjacent to the virus can
// never both be cut in a single turn.
func TestSolve_NoStrategy(t *testing.T) {
	g := mustGraph(t, "a-B", "a-C")

	_, err := pursuit.Solve(g, "a")
	assert.ErrorIs(t, err, pursuit.ErrNoStrategy)
}

// TestSolve_MemoizedFailure: a dense hopeless instance must terminate
// quickly with ErrNoStrategy; repeated states are pruned by the memo.
func TestSolve_MemoizedFailure(t *testing.T) {
	g := mustGraph(t,
		"a-b", "a-c",
		"b-D", "c-D",
		"b-E", "c-E",
	)

	_, err := pursuit.Solve(g, "a")
	assert.ErrorIs(t, err, pursuit.ErrNoStrategy)
}

// TestSolve_DoesNotMutateInput: the caller's graph keeps all its edges.
func TestSolve_DoesNotMutateInput(t *testing.T) {
	g := mustGraph(t, "a-m", "m-B", "m-C")

	_, err := pursuit.Solve(g, "a")
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
}

// TestSolve_ReplaySafety replays the returned cut sequences against the
// original graphs and asserts the simulated virus never touches a
// gateway. This is the observable safety contract of the solver.
func TestSolve_ReplaySafety(t *testing.T) {
	instances := [][]string{
		{"a-B"},
		{"a-m", "m-B", "m-C"},
		{"a-b", "b-c", "c-D", "b-E", "e-b"},
		{"a-b", "a-c", "b-d", "c-d", "d-E", "d-F", "b-E"},
	}
	for i, lines := range instances {
		g := mustGraph(t, lines...)
		cuts, err := pursuit.Solve(g, "a")
		require.NoError(t, err, "instance %d", i)
		replay(t, g, "a", cuts)
	}
}

// replay applies cuts in order, moving the virus one greedy step after
// each, exactly as the solver simulates, and fails the test if the virus
// ever stands on a gateway.
func replay(t *testing.T, g *vnet.Graph, start string, cuts []pursuit.Cut) {
	t.Helper()
	sim := g.Clone()
	pos := start

	for i, cut := range cuts {
		require.False(t, vnet.IsGateway(pos), "virus on gateway %q before cut %d", pos, i)
		require.True(t, sim.RemoveEdge(cut.Gateway, cut.Node), "cut %d must exist", i)

		target := replayTarget(t, sim, pos)
		if target == "" {
			assert.Equal(t, len(cuts)-1, i, "virus contained before the last cut: extra cuts returned")
			return
		}

		pos = replayStep(t, sim, pos, target)
		require.NotEqual(t, "", pos, "virus must have a closer neighbor while a gateway is reachable")
		require.False(t, vnet.IsGateway(pos), "virus reached gateway %q after cut %d", pos, i)
	}

	// All cuts applied: the virus must be sealed off for good.
	assert.Equal(t, "", replayTarget(t, sim, pos), "gateway still reachable after the full sequence")
}

// replayTarget returns the virus's nearest reachable gateway, smallest
// label first on ties, or "" when sealed off.
func replayTarget(t *testing.T, g *vnet.Graph, pos string) string {
	t.Helper()
	paths, err := g.ShortestPathsFrom(pos)
	require.NoError(t, err)

	best, bestDist := "", -1
	for _, gw := range g.Gateways() {
		d, ok := paths.Dist[gw]
		if !ok {
			continue
		}
		if bestDist == -1 || d < bestDist {
			best, bestDist = gw, d
		}
	}

	return best
}

// replayStep moves the virus to its first sorted neighbor strictly closer
// to target.
func replayStep(t *testing.T, g *vnet.Graph, pos, target string) string {
	t.Helper()
	fromTarget, err := g.ShortestPathsFrom(target)
	require.NoError(t, err)
	posDist, ok := fromTarget.Dist[pos]
	require.True(t, ok)

	for _, nb := range g.Neighbors(pos) {
		if d, reach := fromTarget.Dist[nb]; reach && d < posDist {
			return nb
		}
	}

	return ""
}
