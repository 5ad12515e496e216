package mapgen

import (
	"github.com/dhconnelly/rtreego"

	"github.com/lixenwraith/tilegrid/dice"
	"github.com/lixenwraith/tilegrid/geom"
	"github.com/lixenwraith/tilegrid/gridmap"
)

type RoomsConfig struct {
	Width, Height    int
	MaxRooms         int // Placement attempts, default 30
	MinSize, MaxSize int // Room interior side length, default 6..10
	Doors            bool
	Seed             uint64
	Options          gridmap.Options
}

func (c *RoomsConfig) applyDefaults() {
	if c.MaxRooms <= 0 {
		c.MaxRooms = 30
	}
	if c.MinSize <= 0 {
		c.MinSize = 6
	}
	if c.MaxSize < c.MinSize {
		c.MaxSize = max(c.MinSize, 10)
	}
}

// roomEntry stores a room footprint in the overlap index
type roomEntry struct {
	room geom.Rect
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial
func (e *roomEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// roomBox pads the footprint by a quarter cell so touching rooms intersect and rooms one wall apart do not
func roomBox(r geom.Rect) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{float64(r.X1) - 0.25, float64(r.Y1) - 0.25},
		[]float64{float64(r.Width()) + 0.5, float64(r.Height()) + 0.5},
	)
}

// RoomsAndCorridors places random non-overlapping rooms and joins consecutive rooms with L-shaped corridors
// Start is the first room's centre, End the farthest reachable cell from it
func RoomsAndCorridors(cfg RoomsConfig) *Layout {
	cfg.applyDefaults()
	w, h := max(cfg.Width, 3), max(cfg.Height, 3)

	g := gridmap.NewGrid(w, h, optionsOrDefault(cfg.Options))
	g.Fill(g.Bounds(), gridmap.Wall)
	rng := newRNG(cfg.Seed)

	tree := rtreego.NewTree(2, 25, 50)
	var rooms []geom.Rect

	for i := 0; i < cfg.MaxRooms; i++ {
		rw := rng.Range(cfg.MinSize, cfg.MaxSize+1)
		rh := rng.Range(cfg.MinSize, cfg.MaxSize+1)
		x := rng.Range(1, w-rw-1)
		y := rng.Range(1, h-rh-1)
		room := geom.NewRect(x, y, rw, rh)
		if room.X2 > w-1 || room.Y2 > h-1 {
			continue
		}

		bbox, err := roomBox(room)
		if err != nil {
			continue
		}
		if len(tree.SearchIntersect(bbox)) > 0 {
			continue
		}

		g.Fill(room, gridmap.Floor)
		if len(rooms) > 0 {
			connect(g, rooms[len(rooms)-1].Center(), room.Center(), rng)
		}
		tree.Insert(&roomEntry{room: room, bbox: bbox})
		rooms = append(rooms, room)
	}

	// Nothing fit, open the whole interior as one room
	if len(rooms) == 0 {
		room := geom.NewRectExact(1, 1, w-1, h-1)
		if room.Empty() {
			room = geom.NewRect(w/2, h/2, 1, 1)
		}
		g.Fill(room, gridmap.Floor)
		rooms = append(rooms, room)
	}

	if cfg.Doors {
		placeDoors(g, rooms)
	}

	start := rooms[0].Center()
	end, _ := farthestFrom(g, start)
	return &Layout{Grid: g, Start: start, End: end, Rooms: rooms}
}

// connect digs an L-shaped corridor, the bend side chosen at random
func connect(g *gridmap.Grid, from, to geom.Point, rng *dice.RNG) {
	if rng.Intn(2) == 0 {
		digHorizontal(g, from.X, to.X, from.Y)
		digVertical(g, from.Y, to.Y, to.X)
	} else {
		digVertical(g, from.Y, to.Y, from.X)
		digHorizontal(g, from.X, to.X, to.Y)
	}
}

func digHorizontal(g *gridmap.Grid, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		g.Set(geom.Pt(x, y), gridmap.Floor)
	}
}

func digVertical(g *gridmap.Grid, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		g.Set(geom.Pt(x, y), gridmap.Floor)
	}
}

// placeDoors turns corridor cells that enter a room through its wall ring into doors
// A cell qualifies when it lies on the ring, is open, and has walls on both sides along the ring
func placeDoors(g *gridmap.Grid, rooms []geom.Rect) {
	for _, r := range rooms {
		ring := r.Grow(1)
		ring.ForEach(func(p geom.Point) {
			if r.Contains(p) || g.At(p) != gridmap.Floor {
				return
			}
			horizontalEdge := p.Y == ring.Y1 || p.Y == ring.Y2-1
			verticalEdge := p.X == ring.X1 || p.X == ring.X2-1
			switch {
			case horizontalEdge && verticalEdge:
				return
			case horizontalEdge:
				if g.At(p.Add(geom.Pt(-1, 0))) == gridmap.Wall && g.At(p.Add(geom.Pt(1, 0))) == gridmap.Wall {
					g.Set(p, gridmap.Door)
				}
			case verticalEdge:
				if g.At(p.Add(geom.Pt(0, -1))) == gridmap.Wall && g.At(p.Add(geom.Pt(0, 1))) == gridmap.Wall {
					g.Set(p, gridmap.Door)
				}
			}
		})
	}
}
