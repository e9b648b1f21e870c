//go:build ebiten

package app

import (
	"image/color"
	"time"

	"life-grid/internal/core"
	"life-grid/internal/render"
	"life-grid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type cellToggler interface {
	ToggleAt(x, y int) error
}

type boardClearer interface {
	ClearAll()
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	ticker  *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. The simulation runs at
// its own tick rate, decoupled from the render frame rate.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, cfg.Scale),
		hud:      ui.NewHUD(sim),
		ticker:   core.NewFixedStep(cfg.TPS),
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
		paused:   cfg.Paused,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if clearer, ok := g.sim.(boardClearer); ok {
			clearer.ClearAll()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.ticker.SetTPS(g.ticker.TPS() - 5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.ticker.SetTPS(g.ticker.TPS() + 5)
	}

	g.handleClick()

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update()
	}

	if g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	} else if !g.paused && g.ticker.ShouldStep() {
		g.sim.Step()
	}
	return nil
}

// handleClick translates a left click into a cell toggle. Coordinates are
// checked against the board here, so the engine's bounds error is never
// tripped from the mouse path.
func (g *Game) handleClick() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	toggler, ok := g.sim.(cellToggler)
	if !ok {
		return
	}
	scale := g.scale
	if scale <= 0 {
		scale = 1
	}
	mx, my := ebiten.CursorPosition()
	cx, cy := mx/scale, my/scale
	size := g.sim.Size()
	if mx < 0 || my < 0 || cx >= size.W || cy >= size.H {
		return
	}
	_ = toggler.ToggleAt(cx, cy)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.ticker.TPS(), g.paused)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
