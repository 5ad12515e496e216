package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/tilegrid/geom"
)

func TestDistanceMapCacheThrottle(t *testing.T) {
	g := mustGrid(t, fourWay(), ".....")
	c := NewDistanceMapCache(g.Size(), MaxDepthUnlimited, 3, 2)

	assert.False(t, c.IsValid())
	assert.Equal(t, Unreachable, c.Cost(geom.Pt(0, 0), g))

	assert.True(t, c.Update([]geom.Point{{X: 0, Y: 0}}, g), "first update builds")
	assert.True(t, c.IsValid())
	assert.Equal(t, float32(4), c.Cost(geom.Pt(4, 0), g))

	assert.False(t, c.Update([]geom.Point{{X: 0, Y: 0}}, g), "nothing changed")
	assert.False(t, c.Update([]geom.Point{{X: 1, Y: 0}}, g), "moved less than dirty distance")

	assert.True(t, c.Update([]geom.Point{{X: 3, Y: 0}}, g), "moved past dirty distance")
	assert.Equal(t, float32(3), c.Cost(geom.Pt(0, 0), g))

	c.MarkDirty()
	assert.False(t, c.Update([]geom.Point{{X: 3, Y: 0}}, g))
	assert.False(t, c.Update([]geom.Point{{X: 3, Y: 0}}, g))
	assert.True(t, c.Update([]geom.Point{{X: 3, Y: 0}}, g), "dirty rebuild waits for throttle")

	assert.True(t, c.Update([]geom.Point{{X: 3, Y: 0}, {X: 0, Y: 0}}, g), "seed count change rebuilds at once")
	assert.Equal(t, float32(1), c.Cost(geom.Pt(1, 0), g))
}

func TestDistanceMapCacheIgnoresOutOfBoundsSeeds(t *testing.T) {
	g := mustGrid(t, fourWay(), "...")
	c := NewDistanceMapCache(g.Size(), MaxDepthUnlimited, 1, 1)

	assert.True(t, c.Update([]geom.Point{{X: -1, Y: 0}, {X: 2, Y: 0}}, g))
	assert.Equal(t, []float32{2, 1, 0}, c.Map.Costs)
	assert.Equal(t, Unreachable, c.Cost(geom.Pt(7, 0), g))
}
