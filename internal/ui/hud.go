//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"life-grid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type generationProvider interface {
	Generation() int
}

type populationProvider interface {
	Population() int
}

// HUD renders a status strip along the top edge and lets the keyboard
// adjust whatever parameter controls the simulation registers: Tab cycles
// the selected control, Left/Right nudge it by its step.
type HUD struct {
	sim      core.Sim
	controls []core.ParameterControl
	selected int

	intSetter   core.IntParameterSetter
	intGetter   core.IntParameterGetter
	floatSetter core.FloatParameterSetter
	floatGetter core.FloatParameterGetter
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = provider.ParameterControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if getter, ok := sim.(core.IntParameterGetter); ok {
		h.intGetter = getter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	if getter, ok := sim.(core.FloatParameterGetter); ok {
		h.floatGetter = getter
	}
	return h
}

// Update handles HUD key bindings.
func (h *HUD) Update() {
	if len(h.controls) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	dir := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		dir = 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		dir = -1
	}
	if dir == 0 {
		return
	}
	h.adjust(h.controls[h.selected], dir)
}

func (h *HUD) adjust(ctrl core.ParameterControl, dir int) {
	switch ctrl.Type {
	case core.ParamTypeFloat:
		if h.floatSetter == nil || h.floatGetter == nil {
			return
		}
		cur, ok := h.floatGetter.FloatParameter(ctrl.Key)
		if !ok {
			return
		}
		next := cur + float64(dir)*ctrl.Step
		if ctrl.HasMin && next < ctrl.Min {
			next = ctrl.Min
		}
		if ctrl.HasMax && next > ctrl.Max {
			next = ctrl.Max
		}
		h.floatSetter.SetFloatParameter(ctrl.Key, next)
	case core.ParamTypeInt:
		if h.intSetter == nil || h.intGetter == nil {
			return
		}
		cur, ok := h.intGetter.IntParameter(ctrl.Key)
		if !ok {
			return
		}
		step := int(ctrl.Step)
		if step == 0 {
			step = 1
		}
		next := cur + dir*step
		if ctrl.HasMin && float64(next) < ctrl.Min {
			next = int(ctrl.Min)
		}
		if ctrl.HasMax && float64(next) > ctrl.Max {
			next = int(ctrl.Max)
		}
		h.intSetter.SetIntParameter(ctrl.Key, next)
	}
}

// Draw paints the status strip.
func (h *HUD) Draw(screen *ebiten.Image, tps int, paused bool) {
	var parts []string
	if provider, ok := h.sim.(generationProvider); ok {
		parts = append(parts, fmt.Sprintf("gen %d", provider.Generation()))
	}
	if provider, ok := h.sim.(populationProvider); ok {
		parts = append(parts, fmt.Sprintf("pop %d", provider.Population()))
	}
	parts = append(parts, fmt.Sprintf("tps %d", tps))
	if paused {
		parts = append(parts, "paused")
	}
	if len(h.controls) > 0 {
		ctrl := h.controls[h.selected]
		value := "--"
		if ctrl.Type == core.ParamTypeFloat && h.floatGetter != nil {
			if v, ok := h.floatGetter.FloatParameter(ctrl.Key); ok {
				value = fmt.Sprintf("%.2f", v)
			}
		}
		parts = append(parts, fmt.Sprintf("%s %s <tab/arrows>", ctrl.Label, value))
	}

	line := strings.Join(parts, "  |  ")
	face := basicfont.Face7x13
	text.Draw(screen, line, face, 5, 13, color.RGBA{R: 240, G: 240, B: 240, A: 255})
}
