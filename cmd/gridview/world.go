package main

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/tilegrid/dice"
	"github.com/lixenwraith/tilegrid/fov"
	"github.com/lixenwraith/tilegrid/geom"
	"github.com/lixenwraith/tilegrid/gridmap"
	"github.com/lixenwraith/tilegrid/mapgen"
	"github.com/lixenwraith/tilegrid/pathfind"
	"github.com/lixenwraith/tilegrid/raster"
)

// Overlay selects what is drawn between the player and the cursor
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayPath
	OverlayBresenham
	OverlayVector
	OverlayDistance
	overlayCount
)

var overlayNames = [overlayCount]string{"none", "a* path", "bresenham line", "vector line", "distance map"}

func (o Overlay) String() string {
	if o >= 0 && o < overlayCount {
		return overlayNames[o]
	}
	return "unknown"
}

func (o Overlay) Next() Overlay {
	return (o + 1) % overlayCount
}

// World is the viewer state without any terminal concerns
type World struct {
	cfg *Config

	Layout   *mapgen.Layout
	Player   geom.Point
	Cursor   geom.Point
	Chasers  []geom.Point
	Cache    *pathfind.DistanceMapCache
	Visible  mapset.Set[geom.Point]
	Explored mapset.Set[geom.Point]
	Overlay  Overlay
	Ticks    int
	Caught   int

	rng *dice.RNG
}

func NewWorld(cfg *Config) *World {
	w := &World{cfg: cfg}
	w.Regenerate(mapgen.Kind(cfg.Map.Kind), cfg.Map.Seed)
	return w
}

// Regenerate builds a fresh map and respawns everything on it
func (w *World) Regenerate(kind mapgen.Kind, seed uint64) {
	layout := mapgen.Generate(mapgen.Config{
		Kind:     kind,
		Width:    w.cfg.Map.Width,
		Height:   w.cfg.Map.Height,
		Seed:     seed,
		Braiding: w.cfg.Map.Braiding,
		Doors:    w.cfg.Map.Doors,
		Options:  w.cfg.GridOptions(),
	})
	w.reset(layout, seed)
}

func (w *World) reset(layout *mapgen.Layout, seed uint64) {
	w.Layout = layout
	w.Player = layout.Start
	w.Cursor = layout.End
	w.Ticks = 0
	w.Caught = 0
	w.Explored = mapset.New[geom.Point]()
	w.Cache = pathfind.NewDistanceMapCache(layout.Grid.Size(), w.cfg.ChaserDepth(), w.cfg.Chasers.MinTicks, w.cfg.Chasers.DirtyDistance)

	if seed == 0 {
		w.rng = dice.NewRNG()
	} else {
		w.rng = dice.Seeded(seed + 1)
	}

	w.refreshView()

	w.Chasers = w.Chasers[:0]
	for i := 0; i < w.cfg.Chasers.Count; i++ {
		w.Chasers = append(w.Chasers, w.spawnPoint())
	}
}

func (w *World) Grid() *gridmap.Grid {
	return w.Layout.Grid
}

// MovePlayer steps the player by d, false if the step is not an exit of the current cell
func (w *World) MovePlayer(d geom.Point) bool {
	g := w.Grid()
	target := w.Player.Add(d)
	if !g.InBounds(target) {
		return false
	}

	targetIdx := g.Point2DToIndex(target)
	for _, e := range g.AvailableExits(g.Point2DToIndex(w.Player), nil) {
		if e.Index == targetIdx {
			w.Player = target
			w.refreshView()
			return true
		}
	}
	return false
}

// MoveCursor shifts the cursor by d, clamped to the map
func (w *World) MoveCursor(d geom.Point) {
	c := w.Cursor.Add(d)
	g := w.Grid()
	w.Cursor = geom.Pt(min(max(c.X, 0), g.Width-1), min(max(c.Y, 0), g.Height-1))
}

// Tick advances the chasers, returns true if one reached the player this tick
func (w *World) Tick() bool {
	w.Ticks++
	g := w.Grid()
	w.Cache.Update([]geom.Point{w.Player}, g)

	if w.Ticks%w.cfg.Chasers.StepEvery != 0 {
		return false
	}

	caught := false
	for i, c := range w.Chasers {
		next, ok := w.Cache.Map.LowestExit(g.Point2DToIndex(c), g)
		if !ok {
			continue
		}
		np := g.IndexToPoint2D(next)
		if w.occupied(np, i) {
			continue
		}
		w.Chasers[i] = np

		if np == w.Player {
			caught = true
			w.Caught++
			w.Chasers[i] = w.spawnPoint()
		}
	}
	return caught
}

func (w *World) occupied(p geom.Point, self int) bool {
	for i, c := range w.Chasers {
		if i != self && c == p {
			return true
		}
	}
	return false
}

// spawnPoint picks a random walkable cell out of sight, any free walkable cell if all are in sight
func (w *World) spawnPoint() geom.Point {
	g := w.Grid()
	var hidden, free []geom.Point
	g.Bounds().ForEach(func(p geom.Point) {
		if !g.Walkable(p) || p == w.Player {
			return
		}
		free = append(free, p)
		if !w.Visible.Has(p) {
			hidden = append(hidden, p)
		}
	})

	if p, ok := dice.RandomEntry(w.rng, hidden); ok {
		return p
	}
	if p, ok := dice.RandomEntry(w.rng, free); ok {
		return p
	}
	return w.Player
}

func (w *World) refreshView() {
	w.Visible = fov.FieldOfViewSet(w.Player, w.cfg.View.FOVRadius, w.Grid())
	w.Visible.Each(func(p geom.Point) {
		w.Explored.Put(p)
	})
}

// OverlayCells returns the cells the current overlay highlights
func (w *World) OverlayCells() []geom.Point {
	switch w.Overlay {
	case OverlayPath:
		return pathfind.AStarSearch2D(w.Player, w.Cursor, w.Grid()).Points(w.Grid())
	case OverlayBresenham:
		return raster.Line2D(raster.LineBresenham, w.Player, w.Cursor)
	case OverlayVector:
		return raster.Line2D(raster.LineVector, w.Player, w.Cursor)
	default:
		return nil
	}
}

// DistanceAt returns the chaser distance map label at p
func (w *World) DistanceAt(p geom.Point) float32 {
	return w.Cache.Cost(p, w.Grid())
}
