package life

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Pattern is a named set of live cells relative to its own origin.
type Pattern struct {
	Name  string
	Cells []Position
}

// Canonical seeds. Coordinates are relative; stamp them wherever they fit.
var (
	// Block is the 2×2 still life.
	Block = Pattern{Name: "block", Cells: []Position{{0, 0}, {1, 0}, {0, 1}, {1, 1}}}
	// Blinker is the period-2 oscillator, seeded horizontally.
	Blinker = Pattern{Name: "blinker", Cells: []Position{{0, 0}, {1, 0}, {2, 0}}}
	// Glider travels diagonally one cell every four generations.
	Glider = Pattern{Name: "glider", Cells: []Position{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}}
)

// Builtin returns the built-in pattern with the given name, if any.
func Builtin(name string) (Pattern, bool) {
	for _, pat := range []Pattern{Block, Blinker, Glider} {
		if pat.Name == name {
			return pat, true
		}
	}
	return Pattern{}, false
}

// Size returns the bounding box of the pattern's live cells.
func (p Pattern) Size() (w, h int) {
	for _, c := range p.Cells {
		if c.X+1 > w {
			w = c.X + 1
		}
		if c.Y+1 > h {
			h = c.Y + 1
		}
	}
	return w, h
}

// Stamp returns a grid with pat's cells set Alive, offset by at. Every cell
// of the pattern must land inside the grid.
func (g *Grid) Stamp(pat Pattern, at Position) (*Grid, error) {
	next := g.Clone()
	for _, c := range pat.Cells {
		p := Position{at.X + c.X, at.Y + c.Y}
		if !next.InBounds(p) {
			return nil, fmt.Errorf("stamp %q at (%d,%d): cell (%d,%d): %w", pat.Name, at.X, at.Y, p.X, p.Y, ErrOutOfBounds)
		}
		next.cells[p.Y*next.w+p.X] = uint8(Alive)
	}
	return next, nil
}

type patternFile struct {
	Patterns []struct {
		Name  string   `yaml:"name"`
		Cells [][2]int `yaml:"cells"`
	} `yaml:"patterns"`
}

// ParsePatterns decodes a YAML pattern collection of the form
//
//	patterns:
//	  - name: toad
//	    cells: [[1, 0], [2, 0], [3, 0], [0, 1], [1, 1], [2, 1]]
//
// Each cell is an [x, y] pair relative to the pattern origin.
func ParsePatterns(data []byte) ([]Pattern, error) {
	var f patternFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse patterns: %w", err)
	}
	pats := make([]Pattern, 0, len(f.Patterns))
	for i, raw := range f.Patterns {
		if raw.Name == "" {
			return nil, fmt.Errorf("parse patterns: entry %d has no name", i)
		}
		pat := Pattern{Name: raw.Name, Cells: make([]Position, 0, len(raw.Cells))}
		for _, c := range raw.Cells {
			pat.Cells = append(pat.Cells, Position{X: c[0], Y: c[1]})
		}
		pats = append(pats, pat)
	}
	return pats, nil
}

// LoadPatterns reads a YAML pattern collection from disk.
func LoadPatterns(path string) ([]Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load patterns: %w", err)
	}
	return ParsePatterns(data)
}
