//go:build ebiten

package ui

import (
	"image/color"

	"life-grid/internal/core"
	"life-grid/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type neighborFieldProvider interface {
	NeighborField() []uint8
}

// heatPalette colors living-neighbor counts 0..8. Zero is transparent so the
// base board stays visible; counts ramp from cool blue to hot red.
var heatPalette = []color.RGBA{
	{},
	{R: 40, G: 60, B: 180, A: 110},
	{R: 40, G: 140, B: 200, A: 110},
	{R: 60, G: 200, B: 120, A: 110},
	{R: 200, G: 200, B: 40, A: 130},
	{R: 230, G: 150, B: 30, A: 130},
	{R: 240, G: 100, B: 30, A: 150},
	{R: 250, G: 60, B: 30, A: 150},
	{R: 255, G: 20, B: 20, A: 170},
}

// Overlay draws a living-neighbor heat map on top of the base board when
// the simulation can provide the field.
type Overlay struct {
	sim     core.Sim
	scale   int
	show    bool
	painter *render.GridPainter
}

// NewOverlay constructs an overlay for the provided simulation.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	size := sim.Size()
	return &Overlay{sim: sim, scale: scale, painter: render.NewGridPainter(size.W, size.H)}
}

// Update handles overlay key bindings.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Draw renders the heat map if it is enabled and available.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.sim.(neighborFieldProvider)
	if !ok {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	o.painter.BlitPalette(screen, provider.NeighborField(), heatPalette, scale)
}
