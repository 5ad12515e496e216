package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/tilegrid/fov"
	"github.com/lixenwraith/tilegrid/geom"
	"github.com/lixenwraith/tilegrid/gridmap"
	"github.com/lixenwraith/tilegrid/mapgen"
	"github.com/lixenwraith/tilegrid/pathfind"
)

func main() {
	kind := flag.String("kind", "maze", "generator: maze, rooms or caves")
	w := flag.Int("w", 35, "width")
	h := flag.Int("h", 19, "height")
	seed := flag.Uint64("seed", 0, "seed (0 = time based)")
	braid := flag.Float64("braid", 0.2, "maze braiding 0.0-1.0")
	fovRange := flag.Int("fov", 0, "show only cells visible from start within this range (0 = off)")
	metric := flag.String("metric", "pythagoras", "A* heuristic: pythagoras, pythagoras-squared, manhattan, chebyshev")
	fourWay := flag.Bool("4", false, "4-way movement")
	size := flag.Int("size", 1, "route a size×size mover anchored at its top-left cell")
	flag.Parse()

	opts := gridmap.DefaultOptions()
	heuristic, err := geom.ParseDistanceAlg(*metric)
	if err != nil {
		log.Fatalf("mapgen: %v", err)
	}
	opts.Heuristic = heuristic
	if *fourWay {
		opts.Connectivity = gridmap.Connectivity4
	}

	cfg := mapgen.Config{
		Kind:     mapgen.Kind(strings.ToLower(*kind)),
		Width:    *w,
		Height:   *h,
		Seed:     *seed,
		Braiding: clamp01(*braid),
		Options:  opts,
	}

	startT := time.Now()
	layout := mapgen.Generate(cfg)
	genDur := time.Since(startT)

	startT = time.Now()
	route := layout.Route()
	if *size > 1 {
		route = pathfind.AStarSearch2D(layout.Start, layout.End, gridmap.NewFootprint(layout.Grid, *size, *size, 0, 0))
	}
	routeDur := time.Since(startT)

	var visible mapset.Set[geom.Point]
	if *fovRange > 0 {
		visible = fov.FieldOfViewSet(layout.Start, *fovRange, layout.Grid)
	}

	fmt.Printf("Generated %s %dx%d in %v\n", cfg.Kind, layout.Grid.Width, layout.Grid.Height, genDur)
	if len(layout.Rooms) > 0 {
		fmt.Printf("Rooms: %d\n", len(layout.Rooms))
	}
	if route.Success {
		fmt.Printf("Route: %d steps, cost %.2f (%s heuristic, %v)\n", len(route.Steps), route.Cost, heuristic, routeDur)
	} else {
		fmt.Println("Route: none (isolated start/end)")
	}
	if visible.Size() > 0 {
		fmt.Printf("Visible from start within %d: %d cells\n", *fovRange, visible.Size())
	}

	draw(os.Stdout, layout, route.Points(layout.Grid), visible)
}

func draw(out *os.File, l *mapgen.Layout, path []geom.Point, visible mapset.Set[geom.Point]) {
	onPath := mapset.New[geom.Point]()
	for _, p := range path {
		onPath.Put(p)
	}
	masked := visible.Size() > 0

	var sb strings.Builder
	for y := 0; y < l.Grid.Height; y++ {
		for x := 0; x < l.Grid.Width; x++ {
			p := geom.Pt(x, y)
			switch {
			case p == l.Start:
				sb.WriteRune('S')
			case p == l.End:
				sb.WriteRune('E')
			case masked && !visible.Has(p):
				sb.WriteRune(' ')
			case l.Grid.At(p) == gridmap.Wall:
				sb.WriteRune('█')
			case l.Grid.At(p) == gridmap.Door:
				sb.WriteRune('+')
			case onPath.Has(p):
				sb.WriteRune('•')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(out, sb.String())
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
