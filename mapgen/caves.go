package mapgen

import (
	"github.com/aquilax/go-perlin"

	"github.com/lixenwraith/tilegrid/geom"
	"github.com/lixenwraith/tilegrid/gridmap"
)

// Perlin parameters: smoothing, frequency, octaves
const (
	caveAlpha   = 2.0
	caveBeta    = 2.0
	caveOctaves = int32(3)
)

type CavesConfig struct {
	Width, Height int
	Scale         float64 // Cells per noise unit, default 8
	Threshold     float64 // Noise above this is floor, noise spans roughly -1..1
	Smooth        int     // Cellular smoothing passes
	Seed          uint64
	Options       gridmap.Options
}

// Caves thresholds a perlin field, smooths it, and keeps only the region connected to the start
// Start is the floor cell nearest the centre, End the farthest reachable cell from it
func Caves(cfg CavesConfig) *Layout {
	if cfg.Scale <= 0 {
		cfg.Scale = 8
	}
	w, h := max(cfg.Width, 3), max(cfg.Height, 3)

	g := gridmap.NewGrid(w, h, optionsOrDefault(cfg.Options))
	rng := newRNG(cfg.Seed)
	noise := perlin.NewPerlin(caveAlpha, caveBeta, caveOctaves, int64(rng.Next()))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := geom.Pt(x, y)
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				g.Set(p, gridmap.Wall)
				continue
			}
			if noise.Noise2D(float64(x)/cfg.Scale, float64(y)/cfg.Scale) > cfg.Threshold {
				g.Set(p, gridmap.Floor)
			} else {
				g.Set(p, gridmap.Wall)
			}
		}
	}

	for i := 0; i < cfg.Smooth; i++ {
		smooth(g)
	}

	center := geom.Pt(w/2, h/2)
	start, ok := nearestFloor(g, center)
	if !ok {
		start = center
		g.Set(start, gridmap.Floor)
	}

	end, d := farthestFrom(g, start)
	keepReachable(g, d)

	return &Layout{Grid: g, Start: start, End: end}
}

// smooth applies one 4-5 cellular automaton step to the interior
func smooth(g *gridmap.Grid) {
	next := make([]gridmap.Tile, len(g.Tiles))
	copy(next, g.Tiles)

	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			walls := 0
			geom.NewRect(x-1, y-1, 3, 3).ForEach(func(p geom.Point) {
				if g.At(p) == gridmap.Wall {
					walls++
				}
			})
			if walls >= 5 {
				next[y*g.Width+x] = gridmap.Wall
			} else {
				next[y*g.Width+x] = gridmap.Floor
			}
		}
	}
	g.Tiles = next
}

// nearestFloor finds the walkable cell closest to p, first in row-major order on ties
func nearestFloor(g *gridmap.Grid, p geom.Point) (geom.Point, bool) {
	best, found := p, false
	var bestDist float32
	g.Bounds().ForEach(func(c geom.Point) {
		if !g.Walkable(c) {
			return
		}
		d := geom.PythagorasSquared.Distance2D(p, c)
		if !found || d < bestDist {
			best, bestDist, found = c, d, true
		}
	})
	return best, found
}
