package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigDefaultsAreValid(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}
	if cfg.Width != 128 || cfg.Height != 96 {
		t.Fatalf("default grid = %dx%d", cfg.Width, cfg.Height)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	bad := []func(*Config){
		func(c *Config) { c.Width = 0 },
		func(c *Config) { c.Scale = -1 },
		func(c *Config) { c.TPS = 0 },
		func(c *Config) { c.Delay = time.Hour },
		func(c *Config) { c.Density = 1.5 },
		func(c *Config) { c.Pattern = "gosper" },
		func(c *Config) { c.At = "3" },
		func(c *Config) { c.At = "x,4" },
	}
	for i, mutate := range bad {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("case %d: invalid config accepted", i)
		}
	}
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.json")
	if err := os.WriteFile(path, []byte(`{"width": 40, "height": 30, "scale": 2, "pattern": "glider"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-config", path, "-scale", "5"}); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Resolve(fs); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Width != 40 || cfg.Height != 30 || cfg.Pattern != "glider" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Scale != 5 {
		t.Fatalf("flag should override file scale, got %d", cfg.Scale)
	}
	if cfg.TPS != 60 {
		t.Fatalf("unset keys should keep defaults, tps = %d", cfg.TPS)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("missing file should fail")
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("malformed JSON should fail")
	}
}

func TestNewSimCentresPattern(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 10, 10
	cfg.Pattern = "block"
	sim, err := cfg.NewSim()
	if err != nil {
		t.Fatal(err)
	}
	cur := sim.State().Current()
	if !cur.Get(4, 4) || !cur.Get(5, 5) || sim.Population() != 4 {
		t.Fatal("block should be centred on a 10x10 grid")
	}

	cfg.At = "9,9"
	if _, err := cfg.NewSim(); err == nil {
		t.Fatal("block at the far corner should not fit")
	}
}
