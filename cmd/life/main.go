//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"life-grid/internal/app"
	"life-grid/internal/core"
	_ "life-grid/internal/sims/conway"
	"life-grid/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

type patternStamper interface {
	ClearAll()
	StampPattern(pat life.Pattern) error
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.Overrides())
	sim.Reset(cfg.Seed)

	if cfg.Pattern != "" {
		pat, err := findPattern(cfg.Pattern, cfg.Patterns)
		if err != nil {
			log.Fatal(err)
		}
		stamper, ok := sim.(patternStamper)
		if !ok {
			log.Fatalf("sim %q does not support pattern stamping", cfg.Sim)
		}
		stamper.ClearAll()
		if err := stamper.StampPattern(pat); err != nil {
			log.Fatalf("stamp %q: %v", pat.Name, err)
		}
	}

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("life-grid — " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// findPattern resolves a pattern name against the built-ins and, when
// provided, a YAML pattern file. File entries shadow built-ins.
func findPattern(name, path string) (life.Pattern, error) {
	if path != "" {
		pats, err := life.LoadPatterns(path)
		if err != nil {
			return life.Pattern{}, err
		}
		for _, pat := range pats {
			if pat.Name == name {
				return pat, nil
			}
		}
	}
	if pat, ok := life.Builtin(name); ok {
		return pat, nil
	}
	return life.Pattern{}, errors.New("unknown pattern " + name)
}
