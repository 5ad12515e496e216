// Package fov computes the set of cells visible from an origin
package fov

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/tilegrid/geom"
	"github.com/lixenwraith/tilegrid/gridmap"
	"github.com/lixenwraith/tilegrid/raster"
)

// FieldOfViewSet casts rays from start to every perimeter cell of radius 0..rng
// A ray stops before leaving the map and right after entering an opaque cell, so walls are visible
// but nothing behind them is. Casting every inner perimeter keeps the result monotonic in rng
func FieldOfViewSet(start geom.Point, rng int, m gridmap.Algorithm2D) mapset.Set[geom.Point] {
	visible := mapset.New[geom.Point]()
	if rng < 0 {
		return visible
	}

	for r := 0; r <= rng; r++ {
		perimeter := raster.NewBresenhamCircle(start, r)
		for perimeter.Next() {
			castRay(start, perimeter.Point(), m, visible)
		}
	}
	return visible
}

// FieldOfView returns the visible cells as a slice, order unspecified
func FieldOfView(start geom.Point, rng int, m gridmap.Algorithm2D) []geom.Point {
	visible := FieldOfViewSet(start, rng, m)
	points := make([]geom.Point, 0, visible.Size())
	visible.Each(func(p geom.Point) {
		points = append(points, p)
	})
	return points
}

func castRay(start, target geom.Point, m gridmap.Algorithm2D, visible mapset.Set[geom.Point]) {
	ray := raster.NewVectorLine(start, target)
	for ray.Next() {
		p := ray.Point()
		if !gridmap.InBounds(m, p) {
			return
		}
		visible.Put(p)
		if m.IsOpaque(m.Point2DToIndex(p)) {
			return
		}
	}
}
