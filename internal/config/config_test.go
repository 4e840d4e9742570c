package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "langton/internal/sims/langton"
)

func TestDefaultsMatchOriginalCLI(t *testing.T) {
	cfg, err := Parse("test", []string{"-seed", "5"}, io.Discard, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Sim.Ants != 20 || cfg.Control.TickRate != 60 || cfg.Sim.StepsPerTick != 1 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Derived.GridWidth != 256 || cfg.Derived.GridHeight != 144 {
		t.Fatalf("derived grid = %dx%d, want 256x144", cfg.Derived.GridWidth, cfg.Derived.GridHeight)
	}
	if cfg.Sim.Seed != 5 {
		t.Fatalf("seed = %d, want 5", cfg.Sim.Seed)
	}
}

func TestZeroSeedResolvesToTime(t *testing.T) {
	cfg, err := Parse("test", nil, io.Discard, nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sim.Seed == 0 {
		t.Fatal("seed 0 should be replaced")
	}
}

func TestFileOverlayAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	body := "sim:\n  ants: 7\n  steps_per_tick: 3\nscreen:\n  cell_size: 10\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Parse("test", []string{"-config", path, "-a", "9", "-seed", "1"}, io.Discard, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Sim.Ants != 9 {
		t.Errorf("ants = %d, want flag value 9", cfg.Sim.Ants)
	}
	if cfg.Sim.StepsPerTick != 3 {
		t.Errorf("steps = %d, want file value 3", cfg.Sim.StepsPerTick)
	}
	if cfg.Control.TickRate != 60 {
		t.Errorf("tick rate = %d, want default 60", cfg.Control.TickRate)
	}
	if cfg.Derived.GridWidth != 128 || cfg.Derived.GridHeight != 72 {
		t.Errorf("grid = %dx%d, want 128x72", cfg.Derived.GridWidth, cfg.Derived.GridHeight)
	}
}

func TestValidateReportsAllFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   []string
	}{
		{"zero ants", func(c *Config) { c.Sim.Ants = 0 }, []string{"ant count"}},
		{"zero steps", func(c *Config) { c.Sim.StepsPerTick = 0 }, []string{"steps per tick"}},
		{"zero tick rate", func(c *Config) { c.Control.TickRate = 0 }, []string{"tick rate"}},
		{"indivisible", func(c *Config) {
			c.Screen.Width = 1281
			c.Screen.Height = 719
		}, []string{"screen width 1281", "screen height 719"}},
		{"zero cell", func(c *Config) { c.Screen.CellSize = 0 }, []string{"cell size"}},
		{"unknown rule", func(c *Config) { c.Sim.Rule = "hex" }, []string{`unknown rule "hex"`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Sim.Seed = 1
			tt.mutate(cfg)
			err := cfg.Finalize()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Finalize() = %v, want ErrInvalid", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(err.Error(), w) {
					t.Errorf("error %q missing %q", err, w)
				}
			}
		})
	}
}

func TestMissingFileFails(t *testing.T) {
	_, err := Parse("test", []string{"-config", filepath.Join(t.TempDir(), "nope.yaml")}, io.Discard, nil)
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Sim.Ants = 33
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Sim.Ants != 33 {
		t.Fatalf("ants = %d after reload", loaded.Sim.Ants)
	}
}
