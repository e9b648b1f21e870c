package conway

import (
	"slices"
	"testing"

	"life-grid/pkg/life"
)

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24
	cfg.Seed = 99

	world := NewWithConfig(cfg)
	world.Reset(0)
	initial := append([]uint8(nil), world.Cells()...)

	if world.Population() == 0 {
		t.Fatal("soup at default density should contain live cells")
	}

	// Mutate state to ensure Reset rebuilds from scratch.
	world.Step()
	world.Step()

	world.Reset(0)
	if !slices.Equal(initial, world.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if world.Generation() != 0 {
		t.Fatal("Reset should rewind the generation counter")
	}

	world.Reset(777)
	other := append([]uint8(nil), world.Cells()...)
	world.Reset(777)
	if !slices.Equal(other, world.Cells()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if slices.Equal(initial, other) {
		t.Fatal("different seeds should produce different soups")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":       "64",
		"h":       "48",
		"seed":    "7",
		"density": "0.5",
	})
	if c.Width != 64 || c.Height != 48 || c.Seed != 7 || c.Density != 0.5 {
		t.Fatalf("unexpected config %+v", c)
	}

	// Out-of-range and malformed values keep the defaults.
	c = FromMap(map[string]string{"w": "-3", "density": "1.5", "seed": "nope"})
	d := DefaultConfig()
	if c.Width != d.Width || c.Density != d.Density || c.Seed != d.Seed {
		t.Fatalf("bad overrides should be ignored, got %+v", c)
	}

	if c := FromMap(nil); c != DefaultConfig() {
		t.Fatalf("nil map should yield the default config, got %+v", c)
	}
}

func TestStepAdvancesGeneration(t *testing.T) {
	world := New(8, 8)
	if err := world.StampPattern(life.Block); err != nil {
		t.Fatal(err)
	}
	pop := world.Population()
	world.Step()
	world.Step()
	if world.Generation() != 2 {
		t.Fatalf("generation %d after two steps, want 2", world.Generation())
	}
	if world.Population() != pop {
		t.Fatal("a centered block should be stable under stepping")
	}
}

func TestToggleAtAndClear(t *testing.T) {
	world := New(5, 5)
	if err := world.ToggleAt(2, 2); err != nil {
		t.Fatal(err)
	}
	if world.Population() != 1 {
		t.Fatal("toggle should bring one cell to life")
	}
	if err := world.ToggleAt(9, 9); err == nil {
		t.Fatal("toggling outside the board should error")
	}

	world.Step()
	world.ClearAll()
	if world.Population() != 0 || world.Generation() != 0 {
		t.Fatalf("clear left population=%d generation=%d", world.Population(), world.Generation())
	}
}

func TestStampPatternCentered(t *testing.T) {
	world := New(9, 9)
	if err := world.StampPattern(life.Blinker); err != nil {
		t.Fatal(err)
	}
	for _, p := range []life.Position{{X: 3, Y: 4}, {X: 4, Y: 4}, {X: 5, Y: 4}} {
		if world.Grid().CellAt(p) != life.Alive {
			t.Fatalf("expected live cell at (%d,%d)", p.X, p.Y)
		}
	}
}

func TestNeighborField(t *testing.T) {
	world := New(5, 5)
	if err := world.StampPattern(life.Blinker); err != nil {
		t.Fatal(err)
	}
	// Horizontal blinker at row 2, columns 1-3. The center sees its two
	// horizontal mates; the cell above the center sees all three.
	field := world.NeighborField()
	if got := field[2*5+2]; got != 2 {
		t.Fatalf("center neighbor count %d, want 2", got)
	}
	if got := field[1*5+2]; got != 3 {
		t.Fatalf("count above center %d, want 3", got)
	}
	if got := field[0]; got != 0 {
		t.Fatalf("corner neighbor count %d, want 0", got)
	}
}

func TestDensityParameter(t *testing.T) {
	world := New(4, 4)
	if !world.SetFloatParameter("density", 0.8) {
		t.Fatal("density should be adjustable")
	}
	if v, ok := world.FloatParameter("density"); !ok || v != 0.8 {
		t.Fatalf("got density %v/%v, want 0.8", v, ok)
	}
	if !world.SetFloatParameter("density", 1.5) {
		t.Fatal("setter should clamp values above max")
	}
	if v, _ := world.FloatParameter("density"); v != 1 {
		t.Fatalf("density should clamp to 1, got %v", v)
	}
	if world.SetFloatParameter("unknown", 0.5) {
		t.Fatal("unknown keys must be rejected")
	}
}
