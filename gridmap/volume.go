package gridmap

import "github.com/lixenwraith/tilegrid/geom"

// Volume stacks equally sized grid layers, indexed as (z*height+y)*width+x
// Exits are 6-connected: 4 cardinal moves within a layer plus up/down where both cells are walkable
type Volume struct {
	Width, Height, Depth int
	Tiles                []Tile
	LayerCost            float32 // Cost of a vertical move, below 1 the Manhattan heuristic overestimates
}

// NewVolume creates a volume filled with Floor
func NewVolume(width, height, depth int) *Volume {
	return &Volume{
		Width:     width,
		Height:    height,
		Depth:     depth,
		Tiles:     make([]Tile, width*height*depth),
		LayerCost: 1,
	}
}

// Layer returns a copy of one layer as a Grid
func (v *Volume) Layer(z int, opts Options) *Grid {
	g := NewGrid(v.Width, v.Height, opts)
	if z >= 0 && z < v.Depth {
		n := v.Width * v.Height
		copy(g.Tiles, v.Tiles[z*n:(z+1)*n])
	}
	return g
}

func (v *Volume) InBounds3D(p geom.Point3) bool {
	return p.X >= 0 && p.Y >= 0 && p.Z >= 0 && p.X < v.Width && p.Y < v.Height && p.Z < v.Depth
}

// At returns the tile at p, out-of-bounds cells read as Wall
func (v *Volume) At(p geom.Point3) Tile {
	if !v.InBounds3D(p) {
		return Wall
	}
	return v.Tiles[v.Point3DToIndex(p)]
}

func (v *Volume) Set(p geom.Point3, t Tile) {
	if v.InBounds3D(p) {
		v.Tiles[v.Point3DToIndex(p)] = t
	}
}

// --- Algorithm3D ---

func (v *Volume) Point3DToIndex(p geom.Point3) int {
	return (p.Z*v.Height+p.Y)*v.Width + p.X
}

func (v *Volume) IndexToPoint3D(idx int) geom.Point3 {
	layer := v.Width * v.Height
	if layer == 0 {
		return geom.Point3{}
	}
	z := idx / layer
	rem := idx % layer
	return geom.Point3{X: rem % v.Width, Y: rem / v.Width, Z: z}
}

func (v *Volume) IsOpaque(idx int) bool {
	if idx < 0 || idx >= len(v.Tiles) {
		return true
	}
	return v.Tiles[idx].Opaque()
}

var volumeSteps = [6]geom.Point3{
	{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0},
	{Z: -1}, {Z: 1},
}

func (v *Volume) AvailableExits(idx int, exits []Exit) []Exit {
	if idx < 0 || idx >= len(v.Tiles) {
		return exits
	}
	c := v.IndexToPoint3D(idx)

	for _, s := range volumeSteps {
		n := c.Add(s)
		if !v.At(n).Walkable() {
			continue
		}
		cost := float32(1)
		if s.Z != 0 {
			// Vertical links require an open cell on both layers
			if !v.At(c).Walkable() {
				continue
			}
			cost = v.LayerCost
		}
		exits = append(exits, Exit{Index: v.Point3DToIndex(n), Cost: cost})
	}
	return exits
}

func (v *Volume) PathingDistance(idx1, idx2 int) float32 {
	return geom.Manhattan.Distance3D(v.IndexToPoint3D(idx1), v.IndexToPoint3D(idx2))
}
