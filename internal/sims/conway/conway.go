// Package conway adapts the pure life-grid engine to the application's Sim
// contract. It owns exactly one board and replaces it wholesale after every
// engine call.
package conway

import (
	"life-grid/internal/core"
	"life-grid/pkg/life"
)

// World drives a Conway's Life board for the application shell.
type World struct {
	cfg        Config
	grid       *life.Grid
	generation int
}

// New returns a World with the provided dimensions and default seeding.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World for the provided configuration. The board
// starts empty; call Reset to seed a soup.
func NewWithConfig(cfg Config) *World {
	return &World{cfg: cfg, grid: life.NewGrid(cfg.Width, cfg.Height)}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "conway" }

// Size returns the board dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.Width(), H: w.grid.Height()} }

// Cells exposes the current board values for rendering.
func (w *World) Cells() []uint8 { return w.grid.Cells() }

// Grid returns the current board.
func (w *World) Grid() *life.Grid { return w.grid }

// Generation returns the number of steps since the last reseed or clear.
func (w *World) Generation() int { return w.generation }

// Population returns the number of living cells.
func (w *World) Population() int { return w.grid.Population() }

// Reset reseeds the board as a random soup at the configured density. A
// zero seed falls back to the configured seed so reseeding is deterministic
// by default.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	buf := make([]uint8, w.cfg.Width*w.cfg.Height)
	core.FillDensity(core.NewRNG(seed).Source(), buf, w.cfg.Density)
	grid, err := life.GridFromCells(w.cfg.Width, w.cfg.Height, buf)
	if err != nil {
		// Buffer length is derived from the same dimensions; unreachable.
		grid = life.NewGrid(w.cfg.Width, w.cfg.Height)
	}
	w.grid = grid
	w.generation = 0
}

// Step advances the board by one generation.
func (w *World) Step() {
	w.grid = w.grid.Step()
	w.generation++
}

// ToggleAt flips the cell under a viewer click.
func (w *World) ToggleAt(x, y int) error {
	grid, err := w.grid.ToggleCell(life.Position{X: x, Y: y})
	if err != nil {
		return err
	}
	w.grid = grid
	return nil
}

// ClearAll kills every cell and rewinds the generation counter.
func (w *World) ClearAll() {
	w.grid = w.grid.Clear()
	w.generation = 0
}

// StampPattern places a pattern roughly centered on the board.
func (w *World) StampPattern(pat life.Pattern) error {
	pw, ph := pat.Size()
	at := life.Position{X: (w.grid.Width() - pw) / 2, Y: (w.grid.Height() - ph) / 2}
	grid, err := w.grid.Stamp(pat, at)
	if err != nil {
		return err
	}
	w.grid = grid
	return nil
}

// NeighborField returns the living-neighbor count of every cell, in board
// order. The overlay renders it as a heat map of the rule's input.
func (w *World) NeighborField() []uint8 {
	size := w.Size()
	field := make([]uint8, size.W*size.H)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			field[y*size.W+x] = uint8(w.grid.LivingNeighbors(life.Position{X: x, Y: y}))
		}
	}
	return field
}

// ParameterControls exposes the soup density as a HUD tunable.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    "density",
		Label:  "Soup density",
		Type:   core.ParamTypeFloat,
		Step:   0.05,
		Min:    0,
		Max:    1,
		HasMin: true,
		HasMax: true,
	}}
}

// SetFloatParameter updates a tunable, clamping to its bounds.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if key != "density" {
		return false
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	w.cfg.Density = value
	return true
}

// FloatParameter reports the current value of a tunable.
func (w *World) FloatParameter(key string) (float64, bool) {
	if key != "density" {
		return 0, false
	}
	return w.cfg.Density, true
}

func init() {
	core.Register("conway", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
