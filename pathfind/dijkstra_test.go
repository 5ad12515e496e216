package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tilegrid/geom"
	"github.com/lixenwraith/tilegrid/gridmap"
)

func TestDistanceMapCorridor(t *testing.T) {
	g := mustGrid(t, fourWay(), ".....")

	tests := []struct {
		name     string
		seeds    []int
		maxDepth float32
		want     []float32
	}{
		{"single seed", []int{0}, MaxDepthUnlimited, []float32{0, 1, 2, 3, 4}},
		{"both ends", []int{0, 4}, MaxDepthUnlimited, []float32{0, 1, 2, 1, 0}},
		{"depth cap", []int{0}, 2, []float32{0, 1, 2, Unreachable, Unreachable}},
		{"out of range seeds", []int{-1, 4, 99}, MaxDepthUnlimited, []float32{4, 3, 2, 1, 0}},
		{"duplicate seeds", []int{2, 2}, MaxDepthUnlimited, []float32{2, 1, 0, 1, 2}},
		{"no seeds", nil, MaxDepthUnlimited, []float32{Unreachable, Unreachable, Unreachable, Unreachable, Unreachable}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDistanceMap(g.Size(), tt.seeds, g, tt.maxDepth)
			assert.Equal(t, tt.want, d.Costs)
		})
	}
}

func TestDistanceMapLocalOptimality(t *testing.T) {
	g := mustGrid(t, gridmap.DefaultOptions(),
		"........",
		".###..#.",
		".#....#.",
		".#.##.#.",
		"......#.",
		"####.##.",
	)
	d := NewDistanceMap(g.Size(), []int{g.Point2DToIndex(geom.Pt(2, 2))}, g, MaxDepthUnlimited)

	reachable := 0
	for idx := 0; idx < g.Size(); idx++ {
		if !d.Reachable(idx) {
			continue
		}
		reachable++
		for _, e := range g.AvailableExits(idx, nil) {
			assert.LessOrEqual(t, d.Cost(e.Index), d.Cost(idx)+e.Cost+1e-4,
				"%v via %v", g.IndexToPoint2D(e.Index), g.IndexToPoint2D(idx))
		}
	}
	assert.Greater(t, reachable, 20)

	for idx, tile := range g.Tiles {
		if !tile.Walkable() {
			assert.False(t, d.Reachable(idx), "wall %v labeled", g.IndexToPoint2D(idx))
		}
	}
}

func TestDistanceMapMatchesAStar(t *testing.T) {
	g := mustGrid(t, gridmap.DefaultOptions(),
		"..........",
		"..####....",
		".....#..#.",
		".##..#..#.",
		"......###.",
		"..........",
	)
	seed := g.Point2DToIndex(geom.Pt(9, 5))
	d := NewDistanceMap(g.Size(), []int{seed}, g, MaxDepthUnlimited)

	for idx, tile := range g.Tiles {
		if !tile.Walkable() {
			continue
		}
		path := AStarSearch(idx, seed, g)
		if !path.Success {
			assert.False(t, d.Reachable(idx))
			continue
		}
		assert.InDelta(t, path.Cost, d.Cost(idx), 1e-3, "%v", g.IndexToPoint2D(idx))
	}
}

func TestDistanceMapExits(t *testing.T) {
	g := mustGrid(t, fourWay(), ".....")
	d := NewDistanceMap(g.Size(), []int{0}, g, MaxDepthUnlimited)

	next, ok := d.LowestExit(4, g)
	require.True(t, ok)
	assert.Equal(t, 3, next)

	_, ok = d.LowestExit(0, g)
	assert.False(t, ok, "seed has no downhill exit")

	next, ok = d.HighestExit(2, g)
	require.True(t, ok)
	assert.Equal(t, 3, next)

	_, ok = d.HighestExit(4, g)
	assert.False(t, ok)

	assert.Equal(t, Unreachable, d.Cost(-3))
	assert.Equal(t, Unreachable, d.Cost(5))
}

func TestDistanceMapDownhillWalk(t *testing.T) {
	g := mustGrid(t, gridmap.DefaultOptions(),
		"#########",
		"#.......#",
		"#.#####.#",
		"#.#...#.#",
		"#...#...#",
		"#########",
	)
	seed := g.Point2DToIndex(geom.Pt(5, 3))
	d := NewDistanceMap(g.Size(), []int{seed}, g, MaxDepthUnlimited)

	idx := g.Point2DToIndex(geom.Pt(1, 1))
	for steps := 0; idx != seed; steps++ {
		require.Less(t, steps, g.Size(), "walk did not converge")
		next, ok := d.LowestExit(idx, g)
		require.True(t, ok, "stuck at %v", g.IndexToPoint2D(idx))
		require.Less(t, d.Cost(next), d.Cost(idx))
		idx = next
	}
}

func TestDistanceMapRebuild(t *testing.T) {
	g := mustGrid(t, fourWay(), ".....")
	d := NewDistanceMap(g.Size(), []int{0}, g, MaxDepthUnlimited)

	d.Rebuild([]int{4}, g)
	assert.Equal(t, []float32{4, 3, 2, 1, 0}, d.Costs)

	g.Set(geom.Pt(2, 0), gridmap.Wall)
	d.Rebuild([]int{4}, g)
	assert.Equal(t, []float32{Unreachable, Unreachable, Unreachable, 1, 0}, d.Costs)
	assert.False(t, d.Reachable(0))
	assert.Equal(t, 5, d.Size())
}
