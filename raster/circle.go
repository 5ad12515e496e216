package raster

import (
	"iter"

	"github.com/lixenwraith/tilegrid/geom"
)

// BresenhamCircle iterates the outline of a rasterized circle using the midpoint algorithm
// Each generated offset expands to its 8 symmetric cells, coincident cells are yielded once
type BresenhamCircle struct {
	center geom.Point
	radius int

	x, y int
	err  int

	pending [8]geom.Point
	n, i    int
	cur     geom.Point
}

// NewBresenhamCircle creates a perimeter iterator, negative radius yields nothing
func NewBresenhamCircle(center geom.Point, radius int) *BresenhamCircle {
	c := &BresenhamCircle{center: center, radius: radius}
	c.Reset()
	return c
}

// Reset rewinds the iterator to the first offset
func (c *BresenhamCircle) Reset() {
	c.x = c.radius
	c.y = 0
	c.err = 1 - c.radius
	c.n, c.i = 0, 0
}

// Next advances to the next perimeter cell
func (c *BresenhamCircle) Next() bool {
	for c.i >= c.n {
		if c.x < c.y || c.radius < 0 {
			return false
		}
		c.expand()
		c.advance()
	}
	c.cur = c.pending[c.i]
	c.i++
	return true
}

// Point returns the cell produced by the last successful Next
func (c *BresenhamCircle) Point() geom.Point {
	return c.cur
}

// expand fills pending with the distinct symmetric cells of offset (x, y)
func (c *BresenhamCircle) expand() {
	x, y := c.x, c.y
	candidates := [8]geom.Point{
		{X: x, Y: y}, {X: y, Y: x}, {X: -y, Y: x}, {X: -x, Y: y},
		{X: -x, Y: -y}, {X: -y, Y: -x}, {X: y, Y: -x}, {X: x, Y: -y},
	}

	c.n, c.i = 0, 0
	for _, off := range candidates {
		p := c.center.Add(off)
		dup := false
		for j := 0; j < c.n; j++ {
			if c.pending[j] == p {
				dup = true
				break
			}
		}
		if !dup {
			c.pending[c.n] = p
			c.n++
		}
	}
}

func (c *BresenhamCircle) advance() {
	c.y++
	if c.err < 0 {
		c.err += 2*c.y + 1
	} else {
		c.x--
		c.err += 2*(c.y-c.x) + 1
	}
}

// Circle returns the perimeter cells of a circle
func Circle(center geom.Point, radius int) []geom.Point {
	c := NewBresenhamCircle(center, radius)
	points := make([]geom.Point, 0, 8*(max(radius, 0)+1))
	for c.Next() {
		points = append(points, c.Point())
	}
	return points
}

// CirclePoints returns a restartable sequence of perimeter cells
func CirclePoints(center geom.Point, radius int) iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		c := NewBresenhamCircle(center, radius)
		for c.Next() {
			if !yield(c.Point()) {
				return
			}
		}
	}
}
