package gridmap

import "github.com/lixenwraith/tilegrid/geom"

// Footprint views a Grid from the perspective of a mover occupying a W×H block of cells
// Indices and coordinates are those of the underlying grid and name the anchor cell
// A cell is valid iff the whole block around it fits within bounds and is walkable
type Footprint struct {
	*Grid
	W, H       int
	OffX, OffY int // Anchor offset from the block's top-left corner
	Valid      []bool
}

// NewFootprint computes valid anchor cells of g for a w×h block anchored at (offX, offY)
func NewFootprint(g *Grid, w, h, offX, offY int) *Footprint {
	f := &Footprint{
		Grid: g,
		W:    max(w, 1),
		H:    max(h, 1),
		OffX: offX,
		OffY: offY,
	}
	f.Compute()
	return f
}

// Compute rebuilds the validity mask from the current grid tiles
func (f *Footprint) Compute() {
	size := f.Grid.Size()
	if cap(f.Valid) < size {
		f.Valid = make([]bool, size)
	}
	f.Valid = f.Valid[:size]
	f.ComputeRegion(f.Grid.Bounds())
}

// ComputeRegion refreshes anchors inside r only, the block test still reads cells outside r
func (f *Footprint) ComputeRegion(r geom.Rect) {
	r = r.Intersection(f.Grid.Bounds())
	r.ForEach(func(p geom.Point) {
		f.Valid[p.Y*f.Grid.Width+p.X] = f.fits(p)
	})
}

func (f *Footprint) fits(anchor geom.Point) bool {
	left, top := anchor.X-f.OffX, anchor.Y-f.OffY
	if left < 0 || top < 0 || left+f.W > f.Grid.Width || top+f.H > f.Grid.Height {
		return false
	}
	for dy := 0; dy < f.H; dy++ {
		for dx := 0; dx < f.W; dx++ {
			if !f.Grid.Tiles[(top+dy)*f.Grid.Width+left+dx].Walkable() {
				return false
			}
		}
	}
	return true
}

// Fits reports whether the block may rest with its anchor at p
func (f *Footprint) Fits(p geom.Point) bool {
	return f.Grid.InBounds(p) && f.Valid[p.Y*f.Grid.Width+p.X]
}

// Count returns the number of valid anchor cells
func (f *Footprint) Count() int {
	n := 0
	for _, v := range f.Valid {
		if v {
			n++
		}
	}
	return n
}

// AvailableExits follows the grid's movement rules over valid anchors only
func (f *Footprint) AvailableExits(idx int, exits []Exit) []Exit {
	if idx < 0 || idx >= len(f.Valid) || !f.Valid[idx] {
		return exits
	}
	c := f.Grid.IndexToPoint2D(idx)

	for d, v := range dirVectors {
		diagonal := d%2 == 1
		if diagonal && f.Grid.Opts.Connectivity != Connectivity8 {
			continue
		}
		n := c.Add(v)
		if !f.Fits(n) {
			continue
		}
		cost := f.Grid.Opts.CardinalCost
		if diagonal {
			if !f.Grid.Opts.CornerCutting && (!f.Fits(geom.Pt(n.X, c.Y)) || !f.Fits(geom.Pt(c.X, n.Y))) {
				continue
			}
			cost = f.Grid.Opts.DiagonalCost
		}
		exits = append(exits, Exit{Index: n.Y*f.Grid.Width + n.X, Cost: cost})
	}
	return exits
}
