package geom

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// DistanceAlg selects a distance metric
type DistanceAlg int

const (
	Pythagoras DistanceAlg = iota
	// PythagorasSquared skips the square root, only valid for relative ordering
	PythagorasSquared
	Manhattan
	Chebyshev
)

// ErrUnknownDistanceAlg is returned by ParseDistanceAlg for unrecognized names
var ErrUnknownDistanceAlg = errors.New("unknown distance algorithm")

var distanceAlgNames = [...]string{
	Pythagoras:        "pythagoras",
	PythagorasSquared: "pythagoras-squared",
	Manhattan:         "manhattan",
	Chebyshev:         "chebyshev",
}

func (d DistanceAlg) String() string {
	if d < 0 || int(d) >= len(distanceAlgNames) {
		return "unknown"
	}
	return distanceAlgNames[d]
}

// ParseDistanceAlg resolves a metric by name, case-insensitive
func ParseDistanceAlg(name string) (DistanceAlg, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range distanceAlgNames {
		if n == name {
			return DistanceAlg(i), nil
		}
	}
	return Pythagoras, errors.Wrapf(ErrUnknownDistanceAlg, "%q", name)
}

// Distance2D returns the distance between two points under this metric
func (d DistanceAlg) Distance2D(a, b Point) float32 {
	dx := float64(abs(a.X - b.X))
	dy := float64(abs(a.Y - b.Y))
	switch d {
	case PythagorasSquared:
		return float32(dx*dx + dy*dy)
	case Manhattan:
		return float32(dx + dy)
	case Chebyshev:
		return float32(math.Max(dx, dy))
	default:
		return float32(math.Sqrt(dx*dx + dy*dy))
	}
}

// Distance3D returns the distance between two 3D points under this metric
func (d DistanceAlg) Distance3D(a, b Point3) float32 {
	dx := float64(abs(a.X - b.X))
	dy := float64(abs(a.Y - b.Y))
	dz := float64(abs(a.Z - b.Z))
	switch d {
	case PythagorasSquared:
		return float32(dx*dx + dy*dy + dz*dz)
	case Manhattan:
		return float32(dx + dy + dz)
	case Chebyshev:
		return float32(math.Max(dx, math.Max(dy, dz)))
	default:
		return float32(math.Sqrt(dx*dx + dy*dy + dz*dz))
	}
}
