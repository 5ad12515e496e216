package mapgen

import (
	"github.com/lixenwraith/tilegrid/dice"
	"github.com/lixenwraith/tilegrid/geom"
	"github.com/lixenwraith/tilegrid/gridmap"
)

type MazeConfig struct {
	Width, Height int

	// Braiding: 0.0 (perfect maze, a tree) to 1.0 (no dead ends)
	// Plaza and pillar constraints take precedence over the requested ratio
	Braiding float64

	// Open the outer boundary, start moves to the centre and end to the right edge
	RemoveBorders bool

	Start, End *geom.Point // Optional, nil = automatic
	Seed       uint64      // Optional, 0 = time based
	Options    gridmap.Options
}

var (
	jumpDirs  = [4]geom.Point{{X: 0, Y: -2}, {X: 0, Y: 2}, {X: -2, Y: 0}, {X: 2, Y: 0}}
	orthoDirs = [4]geom.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}
)

// Maze carves a recursive-backtracker maze, optionally braided into a graph
// Dimensions round down to odd numbers, minimum 3
func Maze(cfg MazeConfig) *Layout {
	rows := ensureOdd(cfg.Height)
	cols := ensureOdd(cfg.Width)

	g := gridmap.NewGrid(cols, rows, optionsOrDefault(cfg.Options))
	g.Fill(g.Bounds(), gridmap.Wall)
	rng := newRNG(cfg.Seed)

	startDef, endDef := geom.Pt(1, 1), geom.Pt(cols-2, rows-2)
	if cfg.RemoveBorders {
		startDef = geom.Pt((cols/2)|1, (rows/2)|1)
		endDef = geom.Pt(cols-1, (rows/2)|1)
	}
	start := resolvePoint(cfg.Start, startDef, cols, rows)
	end := resolvePoint(cfg.End, endDef, cols, rows)

	carve(g, start, rng)

	// Borders go before braiding so edge nodes count their outside exits
	if cfg.RemoveBorders {
		openBorders(g)
	}
	if cfg.Braiding > 0 {
		braid(g, cfg.Braiding, rng)
	}

	forceOpen(g, start)
	forceOpen(g, end)

	return &Layout{Grid: g, Start: start, End: end}
}

// carve runs the recursive backtracker over odd cells from start
func carve(g *gridmap.Grid, start geom.Point, rng *dice.RNG) {
	if start.X < 1 || start.X >= g.Width-1 || start.Y < 1 || start.Y >= g.Height-1 {
		start = geom.Pt(1, 1)
	}
	// Backtracker walks odd lattice cells only
	start = geom.Pt(start.X|1, start.Y|1)
	if start.X >= g.Width-1 || start.Y >= g.Height-1 {
		start = geom.Pt(1, 1)
	}

	stack := []geom.Point{start}
	g.Set(start, gridmap.Floor)

	candidates := make([]geom.Point, 0, 4)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range jumpDirs {
			n := cur.Add(d)
			if n.X > 0 && n.X < g.Width-1 && n.Y > 0 && n.Y < g.Height-1 && g.At(n) == gridmap.Wall {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		next := cur.Add(d)
		g.Set(cur.Add(d.DivScalar(2)), gridmap.Floor)
		g.Set(next, gridmap.Floor)
		stack = append(stack, next)
	}
}

// braid opens a loop at dead ends with the given probability
func braid(g *gridmap.Grid, probability float64, rng *dice.RNG) {
	candidates := make([]geom.Point, 0, 4)

	for y := 1; y < g.Height-1; y += 2 {
		for x := 1; x < g.Width-1; x += 2 {
			p := geom.Pt(x, y)
			if g.At(p) == gridmap.Wall {
				continue
			}

			exits := 0
			for _, d := range orthoDirs {
				if g.At(p.Add(d)) == gridmap.Floor {
					exits++
				}
			}
			if exits != 1 || !rng.Chance(probability) {
				continue
			}

			candidates = candidates[:0]
			for _, d := range jumpDirs {
				n := p.Add(d)
				w := p.Add(d.DivScalar(2))
				if g.InBounds(n) && g.At(n) == gridmap.Floor && g.At(w) == gridmap.Wall && canRemoveWall(g, w) {
					candidates = append(candidates, w)
				}
			}
			if len(candidates) > 0 {
				g.Set(candidates[rng.Intn(len(candidates))], gridmap.Floor)
			}
		}
	}
}

// canRemoveWall rejects openings that would create a 2x2 plaza or leave an isolated pillar
func canRemoveWall(g *gridmap.Grid, w geom.Point) bool {
	open := func(dx, dy int) bool {
		return g.At(geom.Pt(w.X+dx, w.Y+dy)) == gridmap.Floor
	}

	// Plazas: any 2x2 quadrant around w already three-quarters open
	for _, q := range [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		if open(q[0], 0) && open(0, q[1]) && open(q[0], q[1]) {
			return false
		}
	}

	// Pillars: every orthogonal wall neighbour must keep another wall neighbour
	for _, d := range orthoDirs {
		n := w.Add(d)
		if !g.InBounds(n) || g.At(n) != gridmap.Wall {
			continue
		}
		links := 0
		for _, d2 := range orthoDirs {
			nn := n.Add(d2)
			if nn == w || !g.InBounds(nn) {
				continue
			}
			if g.At(nn) == gridmap.Wall {
				links++
			}
		}
		if links == 0 {
			return false
		}
	}
	return true
}

func openBorders(g *gridmap.Grid) {
	for x := 0; x < g.Width; x++ {
		g.Set(geom.Pt(x, 0), gridmap.Floor)
		g.Set(geom.Pt(x, g.Height-1), gridmap.Floor)
	}
	for y := 0; y < g.Height; y++ {
		g.Set(geom.Pt(0, y), gridmap.Floor)
		g.Set(geom.Pt(g.Width-1, y), gridmap.Floor)
	}
}

// forceOpen opens p and, if it has no open neighbour, the first interior neighbour
func forceOpen(g *gridmap.Grid, p geom.Point) {
	if !g.InBounds(p) {
		return
	}
	g.Set(p, gridmap.Floor)

	for _, d := range orthoDirs {
		if g.At(p.Add(d)) == gridmap.Floor {
			return
		}
	}
	for _, d := range orthoDirs {
		n := p.Add(d)
		if n.X > 0 && n.X < g.Width-1 && n.Y > 0 && n.Y < g.Height-1 {
			g.Set(n, gridmap.Floor)
			return
		}
	}
}

// --- Helpers ---

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}

func resolvePoint(p *geom.Point, def geom.Point, w, h int) geom.Point {
	if p == nil {
		return def
	}
	return clampInto(*p, w, h)
}
