package life

import (
	"errors"
	"testing"
)

func TestStampBlinker(t *testing.T) {
	g, err := NewGrid(5, 5).Stamp(Blinker, Position{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []Position{{1, 2}, {2, 2}, {3, 2}} {
		if g.CellAt(p) != Alive {
			t.Fatalf("cell (%d,%d) not alive after stamp", p.X, p.Y)
		}
	}
	if got := g.Population(); got != 3 {
		t.Fatalf("stamp set %d cells, want 3", got)
	}
}

func TestStampOutOfBounds(t *testing.T) {
	if _, err := NewGrid(3, 3).Stamp(Glider, Position{1, 1}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("got %v, want ErrOutOfBounds", err)
	}
}

func TestStampGliderAdvances(t *testing.T) {
	g, err := NewGrid(8, 8).Stamp(Glider, Position{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	// A glider repeats its shape one cell down-right every 4 generations.
	for i := 0; i < 4; i++ {
		g = g.Step()
	}
	want, err := NewGrid(8, 8).Stamp(Glider, Position{2, 2})
	if err != nil {
		t.Fatal(err)
	}
	if !g.Equal(want) {
		t.Fatal("glider did not translate by (1,1) after 4 steps")
	}
}

func TestPatternSize(t *testing.T) {
	w, h := Glider.Size()
	if w != 3 || h != 3 {
		t.Fatalf("glider bounding box %dx%d, want 3x3", w, h)
	}
	w, h = Pattern{}.Size()
	if w != 0 || h != 0 {
		t.Fatalf("empty pattern bounding box %dx%d, want 0x0", w, h)
	}
}

func TestBuiltin(t *testing.T) {
	if _, ok := Builtin("blinker"); !ok {
		t.Fatal("blinker should be a built-in pattern")
	}
	if _, ok := Builtin("toad"); ok {
		t.Fatal("toad is not built in")
	}
}

func TestParsePatterns(t *testing.T) {
	data := []byte(`
patterns:
  - name: toad
    cells: [[1, 0], [2, 0], [3, 0], [0, 1], [1, 1], [2, 1]]
  - name: dot
    cells: [[0, 0]]
`)
	pats, err := ParsePatterns(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(pats) != 2 {
		t.Fatalf("got %d patterns, want 2", len(pats))
	}
	if pats[0].Name != "toad" || len(pats[0].Cells) != 6 {
		t.Fatalf("toad parsed as %+v", pats[0])
	}
	if pats[0].Cells[3] != (Position{0, 1}) {
		t.Fatalf("toad cell 3 parsed as %+v", pats[0].Cells[3])
	}
}

func TestParsePatternsRejectsUnnamed(t *testing.T) {
	if _, err := ParsePatterns([]byte("patterns:\n  - cells: [[0, 0]]\n")); err == nil {
		t.Fatal("expected error for unnamed pattern")
	}
}
