package main

import (
	"image"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/particle-box-go/config"
	"github.com/olivierh59500/particle-box-go/sim"
)

// Game adapts the simulation to Ebitengine: input becomes events, snapshots become draw calls
type Game struct {
	Sim      *sim.Simulation
	Bar      *ControlBar
	Backdrop *Backdrop

	cfg           config.Settings
	width, height int // Window size from Layout
	cursor        image.Point
	hasCursor     bool
	ctrlDown      bool
	lastTick      time.Time
	clock         func() time.Time
}

// NewGame builds the host and the simulation from settings
func NewGame(cfg config.Settings) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		Bar:    NewControlBar(),
		cfg:    cfg,
		width:  cfg.WindowWidth,
		height: cfg.WindowHeight,
		clock:  time.Now,
	}
	if cfg.Background {
		g.Backdrop = NewBackdrop(seed)
	}

	opts := sim.Options{
		Speed:        cfg.Speed,
		BaseSize:     cfg.BaseSize,
		InitialCount: cfg.InitialCount,
		SettleDelay:  time.Duration(cfg.SettleDelay),
	}
	g.Sim = sim.New(opts, g, rand.New(rand.NewSource(seed)))
	log.Printf("simulation started: %d particles, seed %d", g.Sim.Arena.Len(), seed)
	return g
}

// ArenaSize is the window minus the control bar
func (g *Game) ArenaSize() (float64, float64) {
	return float64(g.width), float64(g.height) - g.cfg.ControlBarHeight
}

// barBounds is the control bar rectangle under the arena
func (g *Game) barBounds() image.Rectangle {
	top := g.height - int(g.cfg.ControlBarHeight)
	return image.Rect(0, top, g.width, g.height)
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	// Handle input
	g.handleInput()

	now := g.clock()
	var dt time.Duration
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick)
	}
	g.lastTick = now

	g.Sim.Step(sim.Tick{DT: dt})
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	aw, ah := g.ArenaSize()
	if g.Backdrop != nil {
		g.Backdrop.Draw(screen, int(aw), int(ah))
	}

	snap := g.Sim.Snapshot()
	for _, op := range snap.DrawOps() {
		// Rings are filled discs drawn under the particle
		vector.DrawFilledCircle(screen, float32(op.Center.X), float32(op.Center.Y),
			float32(op.Radius), toRGBA(op.Color), true)
	}

	g.Bar.Draw(screen, g.barBounds(), g.cursor, snap)
}

// Layout tracks the window size so the arena follows resizes
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		log.Printf("window resized to %dx%d", outsideWidth, outsideHeight)
	}
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// handleInput turns mouse and keyboard state into simulation events
func (g *Game) handleInput() {
	mx, my := ebiten.CursorPosition()
	g.pointer(image.Pt(mx, my))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.press()
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.Sim.Push(sim.PointerUp())
	}

	g.control(ebiten.IsKeyPressed(ebiten.KeyControl))
}

// pointer emits a move event when the cursor changes position
func (g *Game) pointer(pt image.Point) {
	if g.hasCursor && pt == g.cursor {
		return
	}
	g.cursor, g.hasCursor = pt, true
	g.Sim.Push(sim.PointerMoved(float64(pt.X), float64(pt.Y)))
}

// press routes a click to the control bar or to the arena
func (g *Game) press() {
	if b, ok := g.Bar.Hit(g.barBounds(), g.cursor); ok {
		log.Printf("command %q", b.Label)
		g.Sim.Push(b.Event)
		return
	}
	if g.cursor.In(g.barBounds()) {
		return
	}
	g.Sim.Push(sim.PointerDown())
}

// control emits key events on ctrl transitions
func (g *Game) control(down bool) {
	if down == g.ctrlDown {
		return
	}
	g.ctrlDown = down
	g.Sim.Push(sim.KeyChanged(sim.KeyControl, down))
}
