// Package gridmap defines the capability set that pathfinding and field of view operate through,
// plus concrete tile maps implementing it.
//
// A caller owns its map storage and implements BaseMap once; the algorithms only ever read through
// these methods and never retain the map after returning.
package gridmap

import "github.com/lixenwraith/tilegrid/geom"

// Exit is an outgoing edge from a cell
type Exit struct {
	Index int
	Cost  float32
}

// BaseMap is the minimal capability set for search and visibility
type BaseMap interface {
	// IsOpaque reports whether the cell blocks sight
	IsOpaque(idx int) bool

	// AvailableExits appends the cells reachable from idx to exits and returns the extended slice.
	// Exits need not be geometrically adjacent (teleporters, stairs)
	AvailableExits(idx int, exits []Exit) []Exit

	// PathingDistance is the search heuristic between two cells.
	// A* is optimal only if it never overestimates the true remaining cost
	PathingDistance(idx1, idx2 int) float32
}

// Algorithm2D maps flat indices to 2D coordinates
type Algorithm2D interface {
	BaseMap
	Point2DToIndex(p geom.Point) int
	IndexToPoint2D(idx int) geom.Point
}

// Algorithm3D maps flat indices to layered 3D coordinates
type Algorithm3D interface {
	BaseMap
	Point3DToIndex(p geom.Point3) int
	IndexToPoint3D(idx int) geom.Point3
}

// BoundsChecker is optionally implemented by maps with finite extent
type BoundsChecker interface {
	InBounds(p geom.Point) bool
}

// InBounds reports whether p lies inside m, maps without BoundsChecker are unbounded
func InBounds(m Algorithm2D, p geom.Point) bool {
	if bc, ok := m.(BoundsChecker); ok {
		return bc.InBounds(p)
	}
	return true
}
