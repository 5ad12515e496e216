package raster

import "github.com/lixenwraith/tilegrid/geom"

// LineAlg selects a line rasterizer
type LineAlg int

const (
	// LineBresenham is exact integer arithmetic, symmetric under reversal
	LineBresenham LineAlg = iota
	// LineVector marches a floating-point unit vector between cell centres
	LineVector
)

func (a LineAlg) String() string {
	switch a {
	case LineBresenham:
		return "bresenham"
	case LineVector:
		return "vector"
	default:
		return "unknown"
	}
}

// Line2D returns every cell of the closed segment start..end using alg
func Line2D(alg LineAlg, start, end geom.Point) []geom.Point {
	if alg == LineVector {
		return Line2DVector(start, end)
	}
	return Line2DBresenham(start, end)
}

// Line2DBresenham returns the Bresenham cells followed by end
func Line2DBresenham(start, end geom.Point) []geom.Point {
	b := NewBresenham(start, end)
	points := make([]geom.Point, 0, chebyshev(start, end)+1)
	for b.Next() {
		points = append(points, b.Point())
	}
	return append(points, end)
}

// Line2DVector returns the vector line cells, both ends included
func Line2DVector(start, end geom.Point) []geom.Point {
	v := NewVectorLine(start, end)
	points := make([]geom.Point, 0, chebyshev(start, end)+1)
	for v.Next() {
		points = append(points, v.Point())
	}
	return points
}

func chebyshev(a, b geom.Point) int {
	return int(geom.Chebyshev.Distance2D(a, b))
}
