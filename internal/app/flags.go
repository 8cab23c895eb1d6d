package app

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"lifebox/internal/core"
	"lifebox/internal/sims/life"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath string        `json:"-"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Scale      int           `json:"scale"`
	Delay      time.Duration `json:"delay"`
	TPS        int           `json:"tps"`
	Seed       int64         `json:"seed"`
	Density    float64       `json:"density"`
	Pattern    string        `json:"pattern"`
	At         string        `json:"at"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 128, Height: 96, Scale: 8, Delay: core.DefaultDelay, TPS: 60, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "JSON file with default settings")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "time between generations")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second of the window loop")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random soups")
	fs.Float64Var(&c.Density, "density", c.Density, "initial live cell probability (0 starts empty)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern to place at startup ("+strings.Join(life.PatternNames(), ", ")+")")
	fs.StringVar(&c.At, "at", c.At, "row,col of the pattern's top-left corner (default centre)")
}

// LoadConfig reads a JSON configuration file on top of the defaults.
func LoadConfig(filename string) (*Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, cfg); err != nil {
		return cfg, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return cfg, nil
}

// Resolve merges the file named by -config underneath any flags explicitly set
// on fs, then validates the result.
func (c *Config) Resolve(fs *flag.FlagSet) error {
	if c.ConfigPath == "" {
		return c.Validate()
	}
	file, err := LoadConfig(c.ConfigPath)
	if err != nil {
		return err
	}
	file.ConfigPath = c.ConfigPath

	overrides := flag.NewFlagSet("overrides", flag.ContinueOnError)
	file.Bind(overrides)
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		if setErr := overrides.Set(f.Name, f.Value.String()); setErr != nil {
			err = errors.Wrapf(setErr, "[Resolve] failed to apply -%s", f.Name)
		}
	})
	if err != nil {
		return err
	}
	*c = *file
	return c.Validate()
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.Scale <= 0:
		return errors.Errorf("scale must be positive, got %d", c.Scale)
	case c.TPS <= 0:
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	case c.Delay < core.MinDelay || c.Delay > core.MaxDelay:
		return errors.Errorf("delay must be within [%v, %v], got %v", core.MinDelay, core.MaxDelay, c.Delay)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("density must be within [0, 1], got %v", c.Density)
	}
	if c.Pattern != "" {
		if _, ok := life.LookupPattern(c.Pattern); !ok {
			return errors.Errorf("unknown pattern %q", c.Pattern)
		}
	}
	if _, _, _, err := c.Origin(); err != nil {
		return err
	}
	return nil
}

// Origin parses -at. ok is false when no origin was given.
func (c *Config) Origin() (row, col int, ok bool, err error) {
	if c.At == "" {
		return 0, 0, false, nil
	}
	parts := strings.Split(c.At, ",")
	if len(parts) != 2 {
		return 0, 0, false, errors.Errorf("at must be row,col, got %q", c.At)
	}
	row, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false, errors.Wrapf(err, "bad row in %q", c.At)
	}
	col, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false, errors.Wrapf(err, "bad column in %q", c.At)
	}
	return row, col, true, nil
}

// NewSim builds the simulation described by the configuration.
func (c *Config) NewSim() (*life.Life, error) {
	sim := life.New(c.Width, c.Height)
	if c.Density > 0 {
		sim.Randomize(c.Seed, c.Density)
	}
	if c.Pattern == "" {
		return sim, nil
	}
	p, ok := life.LookupPattern(c.Pattern)
	if !ok {
		return nil, errors.Errorf("unknown pattern %q", c.Pattern)
	}
	row, col, ok, err := c.Origin()
	if err != nil {
		return nil, err
	}
	if !ok {
		rows, cols := p.Bounds()
		row, col = (c.Height-rows)/2, (c.Width-cols)/2
	}
	if err := sim.Place(p, row, col); err != nil {
		return nil, errors.Wrap(err, "place startup pattern")
	}
	return sim, nil
}
