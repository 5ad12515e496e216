// Package mapgen produces tile maps for routing and visibility: mazes, rooms joined by corridors, and caves
package mapgen

import (
	"github.com/lixenwraith/tilegrid/dice"
	"github.com/lixenwraith/tilegrid/geom"
	"github.com/lixenwraith/tilegrid/gridmap"
	"github.com/lixenwraith/tilegrid/pathfind"
)

// Kind names a generator
type Kind string

const (
	KindMaze  Kind = "maze"
	KindRooms Kind = "rooms"
	KindCaves Kind = "caves"
)

// Layout is a generated map with a connected start and end
type Layout struct {
	Grid       *gridmap.Grid
	Start, End geom.Point
	Rooms      []geom.Rect // Room interiors, empty for mazes and caves
}

// Route returns the A* path from Start to End
func (l *Layout) Route() pathfind.Path {
	return pathfind.AStarSearch2D(l.Start, l.End, l.Grid)
}

// Distances floods the layout from Start
func (l *Layout) Distances() *pathfind.DistanceMap {
	return pathfind.NewDistanceMap(l.Grid.Size(), []int{l.Grid.Point2DToIndex(l.Start)}, l.Grid, pathfind.MaxDepthUnlimited)
}

// Config selects and parameterizes one generator
type Config struct {
	Kind          Kind
	Width, Height int
	Seed          uint64  // 0 = time based
	Braiding      float64 // Maze only
	Doors         bool    // Rooms only
	Options       gridmap.Options
}

// Generate dispatches to the generator named by cfg.Kind, unknown kinds fall back to rooms
func Generate(cfg Config) *Layout {
	switch cfg.Kind {
	case KindMaze:
		return Maze(MazeConfig{Width: cfg.Width, Height: cfg.Height, Braiding: cfg.Braiding, Seed: cfg.Seed, Options: cfg.Options})
	case KindCaves:
		return Caves(CavesConfig{Width: cfg.Width, Height: cfg.Height, Seed: cfg.Seed, Options: cfg.Options})
	default:
		return RoomsAndCorridors(RoomsConfig{Width: cfg.Width, Height: cfg.Height, Doors: cfg.Doors, Seed: cfg.Seed, Options: cfg.Options})
	}
}

// --- Helpers ---

func newRNG(seed uint64) *dice.RNG {
	if seed == 0 {
		return dice.NewRNG()
	}
	return dice.Seeded(seed)
}

func optionsOrDefault(opts gridmap.Options) gridmap.Options {
	if opts.Connectivity == 0 {
		return gridmap.DefaultOptions()
	}
	return opts
}

// farthestFrom returns the reachable cell with the highest distance label, start itself if isolated
func farthestFrom(g *gridmap.Grid, start geom.Point) (geom.Point, *pathfind.DistanceMap) {
	d := pathfind.NewDistanceMap(g.Size(), []int{g.Point2DToIndex(start)}, g, pathfind.MaxDepthUnlimited)

	best, bestCost := start, float32(0)
	for idx, c := range d.Costs {
		if c != pathfind.Unreachable && c > bestCost {
			best, bestCost = g.IndexToPoint2D(idx), c
		}
	}
	return best, d
}

// keepReachable walls off every walkable cell the distance map never labeled
func keepReachable(g *gridmap.Grid, d *pathfind.DistanceMap) {
	for idx, t := range g.Tiles {
		if t.Walkable() && !d.Reachable(idx) {
			g.Tiles[idx] = gridmap.Wall
		}
	}
}

func clampInto(p geom.Point, w, h int) geom.Point {
	return geom.Pt(min(max(p.X, 0), w-1), min(max(p.Y, 0), h-1))
}
