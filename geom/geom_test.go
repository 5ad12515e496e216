package geom

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointArithmetic(t *testing.T) {
	a, b := Pt(6, -4), Pt(2, 2)

	assert.Equal(t, Pt(8, -2), a.Add(b))
	assert.Equal(t, Pt(4, -6), a.Sub(b))
	assert.Equal(t, Pt(12, -8), a.Mul(b))
	assert.Equal(t, Pt(3, -2), a.Div(b))
	assert.Equal(t, Pt(7, -3), a.AddScalar(1))
	assert.Equal(t, Pt(5, -5), a.SubScalar(1))
	assert.Equal(t, Pt(18, -12), a.MulScalar(3))
	assert.Equal(t, Pt(3, -2), a.DivScalar(2))
	assert.Equal(t, Point{}, Zero())
	assert.Equal(t, "(6,-4)", a.String())
}

func TestPointAsMapKey(t *testing.T) {
	seen := map[Point]int{}
	seen[Pt(1, 2)]++
	seen[Pt(1, 2)]++
	seen[Pt(2, 1)]++
	assert.Len(t, seen, 2)
	assert.Equal(t, 2, seen[Pt(1, 2)])
}

func TestPoint3Arithmetic(t *testing.T) {
	a, b := Pt3(4, 6, 8), Pt3(2, 3, 4)

	assert.Equal(t, Pt3(6, 9, 12), a.Add(b))
	assert.Equal(t, Pt3(2, 3, 4), a.Sub(b))
	assert.Equal(t, Pt3(8, 18, 32), a.Mul(b))
	assert.Equal(t, Pt3(2, 2, 2), a.Div(b))
	assert.Equal(t, Pt3(2, 3, 4), a.DivScalar(2))
	assert.Equal(t, Pt3(5, 7, 9), a.AddScalar(1))
	assert.Equal(t, Pt(4, 6), a.XY())
}

func TestRectBasics(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	assert.Equal(t, Rect{X1: 2, Y1: 3, X2: 6, Y2: 5}, r)
	assert.Equal(t, 4, r.Width())
	assert.Equal(t, 2, r.Height())
	assert.Equal(t, Pt(4, 4), r.Center())
	assert.False(t, r.Empty())
	assert.True(t, NewRect(0, 0, 0, 3).Empty())

	assert.True(t, r.Contains(Pt(2, 3)))
	assert.True(t, r.Contains(Pt(5, 4)))
	assert.False(t, r.Contains(Pt(6, 4)), "right edge is exclusive")
	assert.False(t, r.Contains(Pt(3, 5)), "bottom edge is exclusive")
}

func TestRectIntersects(t *testing.T) {
	base := NewRect(0, 0, 4, 4)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", NewRect(2, 2, 4, 4), true},
		{"contained", NewRect(1, 1, 1, 1), true},
		{"touching edge", NewRect(4, 0, 2, 2), false},
		{"disjoint", NewRect(10, 10, 2, 2), false},
		{"sharing corner cell", NewRect(3, 3, 2, 2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(base))
		})
	}
}

func TestRectIntersection(t *testing.T) {
	base := NewRect(0, 0, 4, 4)

	assert.Equal(t, NewRectExact(2, 2, 4, 4), base.Intersection(NewRect(2, 2, 4, 4)))
	assert.Equal(t, NewRect(1, 1, 1, 1), base.Intersection(NewRect(1, 1, 1, 1)))
	assert.True(t, base.Intersection(NewRect(10, 10, 2, 2)).Empty())
	assert.True(t, base.Intersection(NewRect(4, 0, 2, 2)).Empty())
}

func TestRectIterationIsRowMajor(t *testing.T) {
	r := NewRect(1, 1, 2, 2)
	want := []Point{Pt(1, 1), Pt(2, 1), Pt(1, 2), Pt(2, 2)}

	var visited []Point
	r.ForEach(func(p Point) { visited = append(visited, p) })
	assert.Equal(t, want, visited)

	assert.Equal(t, want, slices.Collect(r.Points()))
	// Sequence restarts on every range
	assert.Equal(t, want, slices.Collect(r.Points()))

	set := r.PointSet()
	assert.Equal(t, 4, set.Size())
	for _, p := range want {
		assert.True(t, set.Has(p))
	}
}

func TestRectAddKeepsDimensions(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	moved := r.Add(NewRect(10, 20, 99, 99))

	assert.Equal(t, Rect{X1: 11, Y1: 22, X2: 14, Y2: 26}, moved)
	assert.Equal(t, r.Width(), moved.Width())
	assert.Equal(t, r.Height(), moved.Height())
	assert.Equal(t, NewRect(0, 1, 5, 6), r.Grow(1))
}

func TestDistance2D(t *testing.T) {
	a, b := Pt(1, 1), Pt(4, 5)

	tests := []struct {
		alg  DistanceAlg
		want float32
	}{
		{Pythagoras, 5},
		{PythagorasSquared, 25},
		{Manhattan, 7},
		{Chebyshev, 4},
	}

	for _, tt := range tests {
		t.Run(tt.alg.String(), func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.alg.Distance2D(a, b), 1e-6)
			assert.InDelta(t, tt.want, tt.alg.Distance2D(b, a), 1e-6)
			assert.Zero(t, tt.alg.Distance2D(a, a))
		})
	}
}

func TestDistance3D(t *testing.T) {
	a, b := Pt3(0, 0, 0), Pt3(2, 3, 6)

	assert.InDelta(t, 7, Pythagoras.Distance3D(a, b), 1e-6)
	assert.InDelta(t, 49, PythagorasSquared.Distance3D(a, b), 1e-6)
	assert.InDelta(t, 11, Manhattan.Distance3D(a, b), 1e-6)
	assert.InDelta(t, 6, Chebyshev.Distance3D(a, b), 1e-6)
}

func TestParseDistanceAlg(t *testing.T) {
	for _, alg := range []DistanceAlg{Pythagoras, PythagorasSquared, Manhattan, Chebyshev} {
		got, err := ParseDistanceAlg(alg.String())
		require.NoError(t, err)
		assert.Equal(t, alg, got)
	}

	got, err := ParseDistanceAlg("  Chebyshev ")
	require.NoError(t, err)
	assert.Equal(t, Chebyshev, got)

	_, err = ParseDistanceAlg("taxicab")
	assert.True(t, errors.Is(err, ErrUnknownDistanceAlg))
	assert.Equal(t, "unknown", DistanceAlg(42).String())
}
