package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratmaze/heuristic"
	"github.com/katalvlaran/ratmaze/maze"
	"github.com/katalvlaran/ratmaze/route"
)

func corridor(t *testing.T, n int) *maze.Sparse {
	t.Helper()
	g, err := maze.NewGrid(n, 1)
	require.NoError(t, err)

	return g
}

//----------------------------------------------------------------------------//
// Nearest / GreedyChain
//----------------------------------------------------------------------------//

func TestNearest_TieBreaksByVertexID(t *testing.T) {
	g, err := maze.NewGrid(5, 5)
	require.NoError(t, err)

	c, err := heuristic.Nearest(g, 0, []maze.Vertex{24, 6, 2})
	require.NoError(t, err)
	assert.True(t, c.Found)
	assert.Equal(t, maze.Vertex(2), c.Target)
	assert.Equal(t, int64(2), c.Cost)
	assert.Equal(t, route.Route{0, 1, 2}, c.Route)
}

func TestNearest_NothingReachable(t *testing.T) {
	g, err := maze.NewGrid(3, 3, maze.WithIsolated(8))
	require.NoError(t, err)

	c, err := heuristic.Nearest(g, 0, []maze.Vertex{8})
	require.NoError(t, err)
	assert.False(t, c.Found)
	assert.Equal(t, maze.NoVertex, c.Target)

	c, err = heuristic.Nearest(g, 0, nil)
	require.NoError(t, err)
	assert.False(t, c.Found)

	_, err = heuristic.Nearest(g, 9, []maze.Vertex{1})
	assert.ErrorIs(t, err, maze.ErrInvalidVertex)
}

func TestGreedyChain(t *testing.T) {
	g := corridor(t, 7)

	chain, err := heuristic.GreedyChain(g, 3, []maze.Vertex{0, 6, 4, 6})
	require.NoError(t, err)
	assert.Equal(t, []maze.Vertex{4, 6, 0}, chain.Order)
	assert.Equal(t, int64(9), chain.Cost)
	assert.Equal(t, 9, chain.Route.Len())
	assert.Equal(t, maze.Vertex(3), chain.Route[0])
	assert.Equal(t, maze.Vertex(0), chain.Route.Last())
	assert.Empty(t, chain.Unreached)

	actions, err := route.ToActions(chain.Route, 7)
	require.NoError(t, err)
	assert.Equal(t, maze.Vertex(0), route.Replay(3, actions, 7))
}

func TestGreedyChain_Unreached(t *testing.T) {
	g, err := maze.NewGrid(3, 3, maze.WithIsolated(8))
	require.NoError(t, err)

	chain, err := heuristic.GreedyChain(g, 0, []maze.Vertex{8, 2})
	require.NoError(t, err)
	assert.Equal(t, []maze.Vertex{2}, chain.Order)
	assert.Equal(t, []maze.Vertex{8}, chain.Unreached)

	chain, err = heuristic.GreedyChain(g, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, route.Route{0}, chain.Route)
	assert.Zero(t, chain.Cost)
}

//----------------------------------------------------------------------------//
// Density
//----------------------------------------------------------------------------//

func TestDensity(t *testing.T) {
	targets := []maze.Vertex{0, 1, 2, 50}
	assert.InDelta(t, 1.0, heuristic.Density(10, 0, targets, 5), 1e-9)
	assert.InDelta(t, 0.5+1.0/3, heuristic.Density(10, 0, targets, 4), 1e-9)
	assert.Zero(t, heuristic.Density(10, 0, []maze.Vertex{0}, 5))
}

func TestDistanceSum(t *testing.T) {
	g, err := maze.NewGrid(9, 1, maze.WithWall(7, 8))
	require.NoError(t, err)

	sum, reached, err := heuristic.DistanceSum(g, 6, []maze.Vertex{0, 6, 7, 8})
	require.NoError(t, err)
	assert.Equal(t, int64(7), sum)
	assert.Equal(t, 2, reached)
}

func TestDensityPick_LambdaShiftsChoice(t *testing.T) {
	g := corridor(t, 9)
	targets := []maze.Vertex{2, 7, 8}

	c, err := heuristic.DensityPick(g, 4, targets, heuristic.DefaultDensityConfig())
	require.NoError(t, err)
	assert.Equal(t, maze.Vertex(2), c.Target)
	assert.Equal(t, int64(2), c.Cost)

	c, err = heuristic.DensityPick(g, 4, targets, heuristic.DensityConfig{Radius: 5, Lambda: 5})
	require.NoError(t, err)
	assert.Equal(t, maze.Vertex(7), c.Target)
	assert.Equal(t, route.Route{4, 5, 6, 7}, c.Route)

	_, err = heuristic.DensityPick(g, 4, targets, heuristic.DensityConfig{Radius: -1})
	assert.ErrorIs(t, err, heuristic.ErrInvalidParameter)
}

func TestClusterPick(t *testing.T) {
	g := corridor(t, 9)
	targets := []maze.Vertex{0, 6, 7, 8}

	near, err := heuristic.Nearest(g, 2, targets)
	require.NoError(t, err)
	assert.Equal(t, maze.Vertex(0), near.Target)

	for _, k := range []int{1, 2, 3} {
		c, err := heuristic.ClusterPick(g, 2, targets, k)
		require.NoError(t, err)
		assert.Equal(t, maze.Vertex(6), c.Target, "k=%d", k)
		assert.Equal(t, int64(4), c.Cost)
	}

	c, err := heuristic.ClusterPick(g, 2, targets, 4)
	require.NoError(t, err)
	assert.Equal(t, maze.Vertex(0), c.Target)

	_, err = heuristic.ClusterPick(g, 2, targets, 0)
	assert.ErrorIs(t, err, heuristic.ErrInvalidParameter)
}

//----------------------------------------------------------------------------//
// Lookahead
//----------------------------------------------------------------------------//

func TestLookahead_BeatsNearest(t *testing.T) {
	g := corridor(t, 9)
	targets := []maze.Vertex{2, 5, 6, 7, 8}

	c, err := heuristic.Lookahead(g, 3, targets, 1)
	require.NoError(t, err)
	assert.Equal(t, maze.Vertex(2), c.Target)

	c, err = heuristic.Lookahead(g, 3, targets, 2)
	require.NoError(t, err)
	assert.Equal(t, maze.Vertex(5), c.Target)
	assert.Equal(t, int64(2), c.Cost)
	assert.Equal(t, route.Route{3, 4, 5}, c.Route)

	// depth beyond the pool is capped
	c, err = heuristic.Lookahead(g, 3, targets, 10)
	require.NoError(t, err)
	assert.True(t, c.Found)
}

func TestLookahead_Breadth(t *testing.T) {
	g := corridor(t, 9)
	targets := []maze.Vertex{2, 5, 6, 7, 8}

	// only the nearest target remains a candidate
	c, err := heuristic.Lookahead(g, 3, targets, 2, heuristic.WithBreadth(1))
	require.NoError(t, err)
	assert.Equal(t, maze.Vertex(2), c.Target)

	_, err = heuristic.Lookahead(g, 3, targets, 2, heuristic.WithBreadth(0))
	assert.ErrorIs(t, err, heuristic.ErrInvalidParameter)
	_, err = heuristic.Lookahead(g, 3, targets, 0)
	assert.ErrorIs(t, err, heuristic.ErrInvalidParameter)
}

func TestLookahead_CacheReuse(t *testing.T) {
	g := corridor(t, 9)
	targets := []maze.Vertex{2, 5, 6, 7, 8}
	cache := heuristic.NewCache(g)

	first, err := heuristic.Lookahead(g, 3, targets, 3, heuristic.WithCache(cache))
	require.NoError(t, err)
	runs := cache.Runs()
	assert.Positive(t, runs)
	assert.LessOrEqual(t, runs, 1+len(targets))

	second, err := heuristic.Lookahead(g, 3, targets, 3, heuristic.WithCache(cache))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, runs, cache.Runs())

	d, err := cache.Distance(3, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(5), d)
	r, err := cache.Route(3, 5)
	require.NoError(t, err)
	assert.Equal(t, route.Route{3, 4, 5}, r)
}

func TestLookahead_Unreachable(t *testing.T) {
	g, err := maze.NewGrid(3, 3, maze.WithIsolated(8))
	require.NoError(t, err)

	c, err := heuristic.Lookahead(g, 0, []maze.Vertex{8}, 3)
	require.NoError(t, err)
	assert.False(t, c.Found)
}

//----------------------------------------------------------------------------//
// Regime
//----------------------------------------------------------------------------//

func TestSelectRegime(t *testing.T) {
	cfg := heuristic.DefaultRegimeConfig()
	cases := []struct {
		count, w, h int
		exp         heuristic.Regime
	}{
		{16, 100, 100, heuristic.RegimeDensity},
		{15, 100, 100, heuristic.RegimeRoute},
		{15, 10, 10, heuristic.RegimeDensity},
		{14, 10, 10, heuristic.RegimeRoute},
		{0, 1, 1, heuristic.RegimeRoute},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.exp, heuristic.SelectRegime(tc.count, tc.w, tc.h, cfg), "%+v", tc)
	}
	assert.Equal(t, "density", heuristic.RegimeDensity.String())
	assert.Equal(t, "route", heuristic.RegimeRoute.String())
}
