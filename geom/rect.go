package geom

import (
	"iter"

	"github.com/zyedidia/generic/mapset"
)

// Rect is an axis-aligned rectangle covering x in [X1, X2) and y in [Y1, Y2)
// X2 >= X1 and Y2 >= Y1 is the caller's responsibility
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect creates a rectangle from top-left corner and dimensions
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// NewRectExact creates a rectangle from exact corner coordinates
func NewRectExact(x1, y1, x2, y2 int) Rect {
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

func (r Rect) Width() int  { return abs(r.X2 - r.X1) }
func (r Rect) Height() int { return abs(r.Y2 - r.Y1) }

// Empty reports whether the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.X2 <= r.X1 || r.Y2 <= r.Y1
}

// Intersects reports whether the two rectangles share at least one cell
func (r Rect) Intersects(o Rect) bool {
	return r.X1 < o.X2 && r.X2 > o.X1 && r.Y1 < o.Y2 && r.Y2 > o.Y1
}

// Intersection returns the overlap of the two rectangles, empty results collapse to X2=X1 or Y2=Y1
func (r Rect) Intersection(o Rect) Rect {
	out := Rect{X1: max(r.X1, o.X1), Y1: max(r.Y1, o.Y1), X2: min(r.X2, o.X2), Y2: min(r.Y2, o.Y2)}
	out.X2 = max(out.X2, out.X1)
	out.Y2 = max(out.Y2, out.Y1)
	return out
}

// Center returns the integer midpoint of the corners
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Contains checks if point is within rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X1 && p.X < r.X2 && p.Y >= r.Y1 && p.Y < r.Y2
}

// ForEach visits every cell in row-major order
func (r Rect) ForEach(fn func(p Point)) {
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			fn(Point{X: x, Y: y})
		}
	}
}

// Points returns a restartable row-major sequence of cells
func (r Rect) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := r.Y1; y < r.Y2; y++ {
			for x := r.X1; x < r.X2; x++ {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// PointSet returns every cell as a set
func (r Rect) PointSet() mapset.Set[Point] {
	set := mapset.New[Point]()
	r.ForEach(func(p Point) {
		set.Put(p)
	})
	return set
}

// Add translates by o's top-left corner, keeping width and height
func (r Rect) Add(o Rect) Rect {
	w, h := r.Width(), r.Height()
	r.X1 += o.X1
	r.X2 = r.X1 + w
	r.Y1 += o.Y1
	r.Y2 = r.Y1 + h
	return r
}

// Grow expands every edge by n cells, negative n shrinks
func (r Rect) Grow(n int) Rect {
	return Rect{X1: r.X1 - n, Y1: r.Y1 - n, X2: r.X2 + n, Y2: r.Y2 + n}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
