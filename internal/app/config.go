package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim     string
	Width   int
	Height  int
	Scale   int
	TPS     int
	Seed    int64
	Density float64

	// Pattern names a seed pattern to stamp instead of a random soup.
	// Patterns points at an optional YAML file of extra patterns.
	Pattern  string
	Patterns string

	Paused bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "conway",
		Width:   256,
		Height:  256,
		Scale:   3,
		TPS:     30,
		Seed:    42,
		Density: 0.25,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for soup reseeding")
	fs.Float64Var(&c.Density, "density", c.Density, "soup density in [0,1]")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "stamp a named pattern instead of a soup")
	fs.StringVar(&c.Patterns, "patterns", c.Patterns, "YAML file of extra patterns")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
}

// Overrides converts the board-shaping flags into the key/value form the
// sim factories consume.
func (c *Config) Overrides() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
	}
}
