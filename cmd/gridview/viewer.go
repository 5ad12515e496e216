package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/tilegrid/geom"
	"github.com/lixenwraith/tilegrid/gridmap"
	"github.com/lixenwraith/tilegrid/mapgen"
	"github.com/lixenwraith/tilegrid/pathfind"
)

const (
	sampleRate   = beep.SampleRate(44100)
	bumpToneHz   = 220
	caughtToneHz = 880
	messageMs    = 1500
	statusLines  = 2
)

var (
	styleWall       = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleFloor      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleDoor       = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleWindow     = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleRemembered = tcell.StyleDefault.Foreground(tcell.NewRGBColor(70, 70, 90))
	stylePlayer     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleChaser     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleOverlay    = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleCursor     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleStatus     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

var kindCycle = []mapgen.Kind{mapgen.KindRooms, mapgen.KindMaze, mapgen.KindCaves}

type Viewer struct {
	screen        tcell.Screen
	width, height int
	logger        *log.Logger

	cfg   *Config
	world *World
	kind  mapgen.Kind
	seed  uint64

	showAll     bool // Ignore field of view when drawing
	message     string
	messageTime time.Time

	audioInit bool
}

func NewViewer(cfg *Config, logger *log.Logger) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}

	v := &Viewer{
		screen: screen,
		logger: logger,
		cfg:    cfg,
		kind:   mapgen.Kind(cfg.Map.Kind),
		seed:   cfg.Map.Seed,
	}
	v.width, v.height = screen.Size()
	v.world = NewWorld(cfg)
	v.logger.Printf("generated %s %dx%d seed %d", v.kind, cfg.Map.Width, cfg.Map.Height, v.seed)

	if cfg.Sound {
		if err := v.initAudio(); err != nil {
			// Non-fatal, viewer runs without sound
			v.logger.Printf("audio initialization failed: %v", err)
		}
	}
	return v, nil
}

func (v *Viewer) initAudio() error {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		v.audioInit = true
	}
	return err
}

func (v *Viewer) playTone(freq int, d time.Duration) {
	if !v.audioInit {
		return
	}
	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		v.logger.Printf("tone %dHz: %v", freq, err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (v *Viewer) say(format string, args ...any) {
	v.message = fmt.Sprintf(format, args...)
	v.messageTime = time.Now()
}

// --- Input ---

var moveKeys = map[rune]geom.Point{
	'h': {X: -1, Y: 0}, 'j': {X: 0, Y: 1}, 'k': {X: 0, Y: -1}, 'l': {X: 1, Y: 0},
	'y': {X: -1, Y: -1}, 'u': {X: 1, Y: -1}, 'b': {X: -1, Y: 1}, 'n': {X: 1, Y: 1},
}

var arrowKeys = map[tcell.Key]geom.Point{
	tcell.KeyLeft: {X: -1, Y: 0}, tcell.KeyDown: {X: 0, Y: 1},
	tcell.KeyUp: {X: 0, Y: -1}, tcell.KeyRight: {X: 1, Y: 0},
}

func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyTab {
			v.world.Overlay = v.world.Overlay.Next()
			v.say("overlay: %s", v.world.Overlay)
			return true
		}
		if d, ok := arrowKeys[ev.Key()]; ok {
			v.movePlayer(d)
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}

		r := ev.Rune()
		if d, ok := moveKeys[r]; ok {
			v.movePlayer(d)
			return true
		}
		// Shifted movement keys drive the cursor
		if d, ok := moveKeys[r+'a'-'A']; ok && r >= 'A' && r <= 'Z' {
			v.world.MoveCursor(d)
			return true
		}

		switch r {
		case 'q':
			return false
		case 'f':
			v.showAll = !v.showAll
			v.say("reveal map: %t", v.showAll)
		case 'c':
			v.world.Cursor = v.world.Player
		case 'r':
			v.seed++
			v.regenerate()
		case 'm':
			v.kind = nextKind(v.kind)
			v.regenerate()
		}

	case *tcell.EventResize:
		v.width, v.height = v.screen.Size()
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) movePlayer(d geom.Point) {
	if !v.world.MovePlayer(d) {
		v.playTone(bumpToneHz, 30*time.Millisecond)
	}
}

func (v *Viewer) regenerate() {
	v.world.Regenerate(v.kind, v.seed)
	v.logger.Printf("generated %s seed %d", v.kind, v.seed)
	v.say("%s, seed %d", v.kind, v.seed)
}

func nextKind(k mapgen.Kind) mapgen.Kind {
	for i, c := range kindCycle {
		if c == k {
			return kindCycle[(i+1)%len(kindCycle)]
		}
	}
	return kindCycle[0]
}

// --- Drawing ---

func (v *Viewer) draw() {
	v.screen.Clear()
	w := v.world
	g := w.Grid()

	// Keep the player centred when the map exceeds the screen
	viewH := v.height - statusLines
	offX := clampOffset(w.Player.X-v.width/2, g.Width-v.width)
	offY := clampOffset(w.Player.Y-viewH/2, g.Height-viewH)

	for sy := 0; sy < viewH; sy++ {
		for sx := 0; sx < v.width; sx++ {
			p := geom.Pt(sx+offX, sy+offY)
			if !g.InBounds(p) {
				continue
			}
			r, style, ok := v.tileGlyph(g, p)
			if ok {
				v.screen.SetContent(sx, sy, r, nil, style)
			}
		}
	}

	overlay := mapset.New[geom.Point]()
	for _, p := range w.OverlayCells() {
		overlay.Put(p)
		if p != w.Player && g.InBounds(p) {
			v.screen.SetContent(p.X-offX, p.Y-offY, '*', nil, styleOverlay)
		}
	}

	for _, c := range w.Chasers {
		if v.showAll || w.Visible.Has(c) {
			v.screen.SetContent(c.X-offX, c.Y-offY, 'c', nil, styleChaser)
		}
	}
	v.screen.SetContent(w.Player.X-offX, w.Player.Y-offY, '@', nil, stylePlayer)

	if w.Cursor != w.Player {
		cr, _, ok := v.tileGlyph(g, w.Cursor)
		if !ok {
			cr = ' '
		}
		v.screen.SetContent(w.Cursor.X-offX, w.Cursor.Y-offY, cr, nil, styleCursor)
	}

	v.drawStatus(overlay.Size())
	v.screen.Show()
}

func (v *Viewer) tileGlyph(g *gridmap.Grid, p geom.Point) (rune, tcell.Style, bool) {
	w := v.world
	visible := v.showAll || w.Visible.Has(p)
	if !visible && !w.Explored.Has(p) {
		return 0, tcell.StyleDefault, false
	}

	t := g.At(p)
	r := t.Rune()
	style := styleFloor
	switch t {
	case gridmap.Wall:
		r, style = '█', styleWall
	case gridmap.Door:
		style = styleDoor
	case gridmap.Window:
		style = styleWindow
	}

	if w.Overlay == OverlayDistance && t.Walkable() {
		if c := w.DistanceAt(p); c != pathfind.Unreachable {
			r, style = distanceGlyph(c), heatStyle(c)
		}
	}

	if !visible {
		style = styleRemembered
	}
	return r, style, true
}

// distanceGlyph shows the last digit of the label
func distanceGlyph(c float32) rune {
	return rune('0' + int(c)%10)
}

func heatStyle(c float32) tcell.Style {
	i := int32(min(c*8, 200))
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(255-i, 55+i, 80))
}

func (v *Viewer) drawStatus(overlayCells int) {
	w := v.world
	y := v.height - statusLines

	line := fmt.Sprintf(" %s seed %d | @%v cursor %v | overlay %s (%d) | visible %d | caught %d ",
		v.kind, v.seed, w.Player, w.Cursor, w.Overlay, overlayCells, w.Visible.Size(), w.Caught)
	drawText(v.screen, 0, y, line, styleStatus)

	msg := " tab overlay, HJKL cursor, f reveal, r reseed, m generator, q quit"
	if time.Since(v.messageTime).Milliseconds() < messageMs {
		msg = " " + v.message
	}
	drawText(v.screen, 0, y+1, msg, styleStatus)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func clampOffset(off, maxOff int) int {
	return max(min(off, maxOff), 0)
}

// --- Loop ---

func (v *Viewer) run() {
	ticker := time.NewTicker(time.Duration(v.cfg.View.TickMs) * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- v.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}

		case <-ticker.C:
			if v.world.Tick() {
				v.playTone(caughtToneHz, 80*time.Millisecond)
				v.say("caught! (%d)", v.world.Caught)
				v.logger.Printf("player caught at %v after %d ticks", v.world.Player, v.world.Ticks)
			}
			v.draw()
		}
	}
}

func (v *Viewer) cleanup() {
	if v.audioInit {
		speaker.Close()
	}
	v.screen.Fini()
}
