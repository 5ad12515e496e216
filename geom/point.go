package geom

import "fmt"

// Point is an integer grid coordinate
// Boundedness belongs to the map, not the point
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Zero returns the origin
func Zero() Point {
	return Point{}
}

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }
func (p Point) Mul(o Point) Point { return Point{p.X * o.X, p.Y * o.Y} }

// Div divides componentwise, panics on a zero component like integer division
func (p Point) Div(o Point) Point { return Point{p.X / o.X, p.Y / o.Y} }

func (p Point) AddScalar(s int) Point { return Point{p.X + s, p.Y + s} }
func (p Point) SubScalar(s int) Point { return Point{p.X - s, p.Y - s} }
func (p Point) MulScalar(s int) Point { return Point{p.X * s, p.Y * s} }
func (p Point) DivScalar(s int) Point { return Point{p.X / s, p.Y / s} }

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Point3 is an integer coordinate with depth, used by layered maps
type Point3 struct {
	X, Y, Z int
}

// Pt3 is shorthand for Point3{X: x, Y: y, Z: z}
func Pt3(x, y, z int) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func (p Point3) Add(o Point3) Point3 { return Point3{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }
func (p Point3) Sub(o Point3) Point3 { return Point3{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }
func (p Point3) Mul(o Point3) Point3 { return Point3{p.X * o.X, p.Y * o.Y, p.Z * o.Z} }
func (p Point3) Div(o Point3) Point3 { return Point3{p.X / o.X, p.Y / o.Y, p.Z / o.Z} }

func (p Point3) AddScalar(s int) Point3 { return Point3{p.X + s, p.Y + s, p.Z + s} }
func (p Point3) SubScalar(s int) Point3 { return Point3{p.X - s, p.Y - s, p.Z - s} }
func (p Point3) MulScalar(s int) Point3 { return Point3{p.X * s, p.Y * s, p.Z * s} }
func (p Point3) DivScalar(s int) Point3 { return Point3{p.X / s, p.Y / s, p.Z / s} }

// XY drops the depth component
func (p Point3) XY() Point {
	return Point{X: p.X, Y: p.Y}
}

func (p Point3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}
