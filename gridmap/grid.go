package gridmap

import (
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/tilegrid/geom"
)

// Tile is the content of one grid cell
type Tile uint8

const (
	Floor  Tile = iota
	Wall        // Blocks movement and sight
	Door        // Walkable, blocks sight
	Window      // Blocks movement, transparent
)

var tileRunes = [...]rune{
	Floor:  '.',
	Wall:   '#',
	Door:   '+',
	Window: '=',
}

// Rune returns the ASCII glyph used by ParseGrid and String
func (t Tile) Rune() rune {
	if int(t) < len(tileRunes) {
		return tileRunes[t]
	}
	return '?'
}

// Walkable reports whether movement may enter the tile
func (t Tile) Walkable() bool {
	return t == Floor || t == Door
}

// Opaque reports whether the tile blocks sight
func (t Tile) Opaque() bool {
	return t == Wall || t == Door
}

// Connectivity selects the neighbourhood used for exits
type Connectivity int

const (
	Connectivity4 Connectivity = 4
	Connectivity8 Connectivity = 8
)

// Direction vectors, order: N, NE, E, SE, S, SW, W, NW
var dirVectors = [8]geom.Point{
	{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
	{X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
}

// Options controls grid movement rules
type Options struct {
	Connectivity  Connectivity
	CardinalCost  float32
	DiagonalCost  float32
	CornerCutting bool             // Allow diagonal steps past a blocked orthogonal cell
	Heuristic     geom.DistanceAlg // Metric behind PathingDistance
}

// DefaultOptions returns 8-way movement with euclidean costs and no corner cutting
func DefaultOptions() Options {
	return Options{
		Connectivity:  Connectivity8,
		CardinalCost:  1,
		DiagonalCost:  math.Sqrt2,
		CornerCutting: false,
		Heuristic:     geom.Pythagoras,
	}
}

var (
	ErrEmptyGrid   = errors.New("empty grid")
	ErrRaggedRows  = errors.New("rows differ in length")
	ErrUnknownTile = errors.New("unknown tile glyph")
)

// Grid is a dense width×height tile map indexed as y*width+x
type Grid struct {
	Width, Height int
	Tiles         []Tile
	Opts          Options
}

// NewGrid creates a grid filled with Floor
func NewGrid(width, height int, opts Options) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		Width:  width,
		Height: height,
		Tiles:  make([]Tile, width*height),
		Opts:   opts,
	}
}

// ParseGrid builds a grid from ASCII rows: '#' wall, '.' floor, '+' door, '=' window
func ParseGrid(rows []string, opts Options) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	width := len([]rune(rows[0]))
	g := NewGrid(width, len(rows), opts)

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, errors.Wrapf(ErrRaggedRows, "row %d has %d cells, expected %d", y, len(runes), width)
		}
		for x, r := range runes {
			t, ok := tileFromRune(r)
			if !ok {
				return nil, errors.Wrapf(ErrUnknownTile, "%q at (%d,%d)", r, x, y)
			}
			g.Tiles[y*width+x] = t
		}
	}
	return g, nil
}

func tileFromRune(r rune) (Tile, bool) {
	for t, tr := range tileRunes {
		if tr == r {
			return Tile(t), true
		}
	}
	return Floor, false
}

// Size returns the number of cells
func (g *Grid) Size() int {
	return g.Width * g.Height
}

// Bounds returns the grid extent as a rectangle
func (g *Grid) Bounds() geom.Rect {
	return geom.NewRect(0, 0, g.Width, g.Height)
}

func (g *Grid) InBounds(p geom.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Width && p.Y < g.Height
}

// At returns the tile at p, out-of-bounds cells read as Wall
func (g *Grid) At(p geom.Point) Tile {
	if !g.InBounds(p) {
		return Wall
	}
	return g.Tiles[p.Y*g.Width+p.X]
}

// Set writes a tile, out-of-bounds writes are ignored
func (g *Grid) Set(p geom.Point, t Tile) {
	if g.InBounds(p) {
		g.Tiles[p.Y*g.Width+p.X] = t
	}
}

// Fill writes t to every in-bounds cell of r
func (g *Grid) Fill(r geom.Rect, t Tile) {
	r.ForEach(func(p geom.Point) {
		g.Set(p, t)
	})
}

// Walkable reports whether p is in bounds and enterable
func (g *Grid) Walkable(p geom.Point) bool {
	return g.InBounds(p) && g.Tiles[p.Y*g.Width+p.X].Walkable()
}

// --- Algorithm2D ---

func (g *Grid) Point2DToIndex(p geom.Point) int {
	return p.Y*g.Width + p.X
}

func (g *Grid) IndexToPoint2D(idx int) geom.Point {
	if g.Width == 0 {
		return geom.Point{}
	}
	return geom.Point{X: idx % g.Width, Y: idx / g.Width}
}

func (g *Grid) IsOpaque(idx int) bool {
	if idx < 0 || idx >= len(g.Tiles) {
		return true
	}
	return g.Tiles[idx].Opaque()
}

func (g *Grid) AvailableExits(idx int, exits []Exit) []Exit {
	if idx < 0 || idx >= len(g.Tiles) {
		return exits
	}
	c := g.IndexToPoint2D(idx)

	for d, v := range dirVectors {
		diagonal := d%2 == 1
		if diagonal && g.Opts.Connectivity != Connectivity8 {
			continue
		}

		n := c.Add(v)
		if !g.Walkable(n) {
			continue
		}

		cost := g.Opts.CardinalCost
		if diagonal {
			// Corner cutting prevention: both orthogonal cells must be open
			if !g.Opts.CornerCutting && (!g.Walkable(geom.Pt(c.X+v.X, c.Y)) || !g.Walkable(geom.Pt(c.X, c.Y+v.Y))) {
				continue
			}
			cost = g.Opts.DiagonalCost
		}

		exits = append(exits, Exit{Index: n.Y*g.Width + n.X, Cost: cost})
	}
	return exits
}

func (g *Grid) PathingDistance(idx1, idx2 int) float32 {
	return g.Opts.Heuristic.Distance2D(g.IndexToPoint2D(idx1), g.IndexToPoint2D(idx2))
}

// String renders the grid with one glyph per tile
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			sb.WriteRune(g.Tiles[y*g.Width+x].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
