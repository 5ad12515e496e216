package raster

import (
	"iter"

	"github.com/lixenwraith/tilegrid/geom"
)

// octant identifies one of 8 symmetric 45° sectors
// Sectors 4..7 are exact reversals of 0..3 (both axes negated)
type octant uint8

func octantOf(start, end geom.Point) octant {
	dx := end.X - start.X
	dy := end.Y - start.Y

	var o octant
	if dy < 0 {
		dx, dy = -dx, -dy
		o += 4
	}
	if dx < 0 {
		dx, dy = dy, -dx
		o += 2
	}
	if dx < dy {
		o++
	}
	return o
}

// toOctant0 maps a point into the canonical sector (0 <= dy <= dx)
func (o octant) toOctant0(p geom.Point) geom.Point {
	switch o {
	case 1:
		return geom.Point{X: p.Y, Y: p.X}
	case 2:
		return geom.Point{X: p.Y, Y: -p.X}
	case 3:
		return geom.Point{X: -p.X, Y: p.Y}
	case 4:
		return geom.Point{X: -p.X, Y: -p.Y}
	case 5:
		return geom.Point{X: -p.Y, Y: -p.X}
	case 6:
		return geom.Point{X: -p.Y, Y: p.X}
	case 7:
		return geom.Point{X: p.X, Y: -p.Y}
	default:
		return p
	}
}

// fromOctant0 is the inverse of toOctant0
func (o octant) fromOctant0(p geom.Point) geom.Point {
	switch o {
	case 1:
		return geom.Point{X: p.Y, Y: p.X}
	case 2:
		return geom.Point{X: -p.Y, Y: p.X}
	case 3:
		return geom.Point{X: -p.X, Y: p.Y}
	case 4:
		return geom.Point{X: -p.X, Y: -p.Y}
	case 5:
		return geom.Point{X: -p.Y, Y: -p.X}
	case 6:
		return geom.Point{X: p.Y, Y: -p.X}
	case 7:
		return geom.Point{X: p.X, Y: -p.Y}
	default:
		return p
	}
}

// Bresenham is an allocation-free integer line iterator
// Yields start and every cell toward end, excluding end itself
type Bresenham struct {
	start, end geom.Point
	oct        octant

	x, y   int // Position in canonical sector
	x1     int // Canonical end x, iteration stops here
	dx, dy int
	diff   int

	// Mirrored sectors step on strictly positive error so a line and its reversal cover the same cells
	strict bool

	cur geom.Point
}

// NewBresenham creates a line iterator from start toward end
func NewBresenham(start, end geom.Point) *Bresenham {
	b := &Bresenham{start: start, end: end}
	b.Reset()
	return b
}

// Reset rewinds the iterator to start
func (b *Bresenham) Reset() {
	b.oct = octantOf(b.start, b.end)
	s := b.oct.toOctant0(b.start)
	e := b.oct.toOctant0(b.end)

	b.x, b.y = s.X, s.Y
	b.x1 = e.X
	b.dx = e.X - s.X
	b.dy = e.Y - s.Y
	b.diff = 2*b.dy - b.dx
	b.strict = b.oct >= 4
}

// Next advances to the next cell, returns false once end is reached
func (b *Bresenham) Next() bool {
	if b.x >= b.x1 {
		return false
	}

	b.cur = b.oct.fromOctant0(geom.Point{X: b.x, Y: b.y})

	if b.diff > 0 || (b.diff == 0 && !b.strict) {
		b.y++
		b.diff -= 2 * b.dx
	}
	b.diff += 2 * b.dy
	b.x++

	return true
}

// Point returns the cell produced by the last successful Next
func (b *Bresenham) Point() geom.Point {
	return b.cur
}

// BresenhamPoints returns a restartable sequence of Bresenham cells, start included, end excluded
func BresenhamPoints(start, end geom.Point) iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		b := NewBresenham(start, end)
		for b.Next() {
			if !yield(b.Point()) {
				return
			}
		}
	}
}
