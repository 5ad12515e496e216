package fov

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tilegrid/geom"
	"github.com/lixenwraith/tilegrid/gridmap"
)

func openGrid(w, h int) *gridmap.Grid {
	return gridmap.NewGrid(w, h, gridmap.DefaultOptions())
}

func TestOpenMapReference(t *testing.T) {
	g := openGrid(10, 10)
	origin := geom.Pt(5, 5)

	offsets := []geom.Point{
		{X: 0, Y: 0},
		// Chebyshev ring 1
		{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
		{X: -1, Y: 0}, {X: 1, Y: 0},
		{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
		// Radius 2 perimeter
		{X: 2, Y: 0}, {X: -2, Y: 0}, {X: 0, Y: 2}, {X: 0, Y: -2},
		{X: 2, Y: 1}, {X: 2, Y: -1}, {X: -2, Y: 1}, {X: -2, Y: -1},
		{X: 1, Y: 2}, {X: -1, Y: 2}, {X: 1, Y: -2}, {X: -1, Y: -2},
		// Radius 3 perimeter
		{X: 3, Y: 0}, {X: -3, Y: 0}, {X: 0, Y: 3}, {X: 0, Y: -3},
		{X: 3, Y: 1}, {X: 3, Y: -1}, {X: -3, Y: 1}, {X: -3, Y: -1},
		{X: 1, Y: 3}, {X: -1, Y: 3}, {X: 1, Y: -3}, {X: -1, Y: -3},
		{X: 2, Y: 2}, {X: 2, Y: -2}, {X: -2, Y: 2}, {X: -2, Y: -2},
	}
	want := make([]geom.Point, len(offsets))
	for i, o := range offsets {
		want[i] = origin.Add(o)
	}

	got := FieldOfView(origin, 3, g)
	require.Len(t, got, 37)
	assert.ElementsMatch(t, want, got)
}

func TestOriginAlwaysVisible(t *testing.T) {
	g := openGrid(3, 3)
	g.Set(geom.Pt(1, 1), gridmap.Wall)

	for r := 0; r < 4; r++ {
		assert.True(t, FieldOfViewSet(geom.Pt(1, 1), r, g).Has(geom.Pt(1, 1)), "range %d", r)
	}
	assert.Equal(t, 1, FieldOfViewSet(geom.Pt(1, 1), 0, g).Size())
}

func TestNegativeRange(t *testing.T) {
	assert.Empty(t, FieldOfView(geom.Pt(1, 1), -1, openGrid(3, 3)))
}

func TestWallBlocksSight(t *testing.T) {
	g := openGrid(10, 10)
	g.Set(geom.Pt(3, 5), gridmap.Wall)

	visible := FieldOfViewSet(geom.Pt(1, 5), 6, g)
	assert.True(t, visible.Has(geom.Pt(2, 5)))
	assert.True(t, visible.Has(geom.Pt(3, 5)), "the wall itself is visible")
	assert.False(t, visible.Has(geom.Pt(4, 5)))
	assert.False(t, visible.Has(geom.Pt(5, 5)))
}

func TestDoorsBlockWindowsDoNot(t *testing.T) {
	g, err := gridmap.ParseGrid([]string{
		".....",
		".+...",
		".....",
		".=...",
		".....",
	}, gridmap.DefaultOptions())
	require.NoError(t, err)

	up := FieldOfViewSet(geom.Pt(1, 2), 2, g)
	assert.True(t, up.Has(geom.Pt(1, 1)))
	assert.False(t, up.Has(geom.Pt(1, 0)), "door is opaque")
	assert.True(t, up.Has(geom.Pt(1, 3)))
	assert.True(t, up.Has(geom.Pt(1, 4)), "window is transparent")
}

func TestStaysInBounds(t *testing.T) {
	g := openGrid(4, 4)
	visible := FieldOfView(geom.Pt(0, 0), 10, g)

	assert.Len(t, visible, 16)
	for _, p := range visible {
		assert.True(t, g.InBounds(p), "%v", p)
	}
}

func TestMonotonicInRange(t *testing.T) {
	g := openGrid(9, 9)
	g.Set(geom.Pt(6, 4), gridmap.Wall)
	g.Set(geom.Pt(2, 2), gridmap.Wall)

	origin := geom.Pt(4, 4)
	prev := FieldOfViewSet(origin, 0, g)
	for r := 1; r <= 8; r++ {
		next := FieldOfViewSet(origin, r, g)
		prev.Each(func(p geom.Point) {
			assert.True(t, next.Has(p), "range %d lost %v", r, p)
		})
		prev = next
	}
}

// plane is an endless map with a solid half-plane at x >= wallX
type plane struct {
	wallX int
}

func (plane) Point2DToIndex(p geom.Point) int   { return (p.Y+64)*128 + p.X + 64 }
func (plane) IndexToPoint2D(idx int) geom.Point { return geom.Pt(idx%128-64, idx/128-64) }

func (m plane) IsOpaque(idx int) bool {
	return m.IndexToPoint2D(idx).X >= m.wallX
}

func (plane) AvailableExits(_ int, exits []gridmap.Exit) []gridmap.Exit { return exits }
func (plane) PathingDistance(_, _ int) float32                         { return 0 }

func TestUnboundedMapDefault(t *testing.T) {
	visible := FieldOfViewSet(geom.Pt(0, 0), 5, plane{wallX: 3})

	assert.True(t, visible.Has(geom.Pt(-5, 0)), "no bounds, rays run to full range")
	assert.True(t, visible.Has(geom.Pt(3, 0)))
	assert.False(t, visible.Has(geom.Pt(4, 0)))
}
