// Package config loads and validates the startup configuration.
package config

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"langton/internal/core"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds every startup option. It is built once and passed explicitly.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Sim       SimConfig       `yaml:"sim"`
	Control   ControlConfig   `yaml:"control"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds render surface settings.
type ScreenConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"` // pixel edge of one cell
}

// SimConfig holds automaton settings.
type SimConfig struct {
	Rule         string `yaml:"rule"` // registered sim name
	Ants         int    `yaml:"ants"`
	StepsPerTick int    `yaml:"steps_per_tick"`
	Seed         int64  `yaml:"seed"`
}

// ControlConfig holds runtime pacing settings.
type ControlConfig struct {
	TickRate     int `yaml:"tick_rate"`      // initial ticks per second
	TickRateStep int `yaml:"tick_rate_step"` // change per speed key press
}

// TelemetryConfig holds perf sampling settings.
type TelemetryConfig struct {
	Window    int    `yaml:"window"`
	OutputDir string `yaml:"output_dir"`
}

// DerivedConfig holds values computed from the loaded fields.
type DerivedConfig struct {
	GridWidth  int
	GridHeight int
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: parsing embedded defaults: %v", err))
	}
	return cfg
}

// Load reads the embedded defaults and overlays the YAML file at path, if any.
// Only fields present in the file are overwritten.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Sim.Ants, "ants", c.Sim.Ants, "number of ants")
	fs.IntVar(&c.Sim.Ants, "a", c.Sim.Ants, "shorthand for -ants")
	fs.IntVar(&c.Control.TickRate, "tps", c.Control.TickRate, "initial ticks per second")
	fs.IntVar(&c.Control.TickRate, "f", c.Control.TickRate, "shorthand for -tps")
	fs.IntVar(&c.Sim.StepsPerTick, "steps", c.Sim.StepsPerTick, "simulated steps per tick")
	fs.IntVar(&c.Sim.StepsPerTick, "s", c.Sim.StepsPerTick, "shorthand for -steps")
	fs.IntVar(&c.Screen.Width, "screen-width", c.Screen.Width, "window width in pixels")
	fs.IntVar(&c.Screen.Height, "screen-height", c.Screen.Height, "window height in pixels")
	fs.IntVar(&c.Screen.CellSize, "cell-size", c.Screen.CellSize, "pixel edge length of one cell")
	fs.IntVar(&c.Screen.CellSize, "c", c.Screen.CellSize, "shorthand for -cell-size")
	fs.StringVar(&c.Sim.Rule, "rule", c.Sim.Rule, "simulation rule (langton, langton-departure)")
	fs.Int64Var(&c.Sim.Seed, "seed", c.Sim.Seed, "seed for ant placement (0 = time-based)")
	fs.IntVar(&c.Control.TickRateStep, "tps-step", c.Control.TickRateStep, "tick rate change per key press")
	fs.IntVar(&c.Telemetry.Window, "perf-window", c.Telemetry.Window, "ticks per perf sample window")
	fs.StringVar(&c.Telemetry.OutputDir, "output-dir", c.Telemetry.OutputDir, "directory for perf.csv and config snapshot")
}

// Parse builds the configuration from defaults, an optional -config file and
// flags, in that order of precedence. extra, if non-nil, binds additional
// command-specific flags on the same FlagSet. The returned config is validated.
func Parse(name string, args []string, out io.Writer, extra func(*flag.FlagSet)) (*Config, error) {
	var path string
	cfg := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&path, "config", "", "path to a YAML config file (empty = defaults)")
	cfg.Bind(fs)
	if extra != nil {
		extra(fs)
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		// Explicit flags win over the file.
		replay := flag.NewFlagSet(name, flag.ContinueOnError)
		replay.SetOutput(io.Discard)
		loaded.Bind(replay)
		var setErr error
		fs.Visit(func(f *flag.Flag) {
			if replay.Lookup(f.Name) == nil || setErr != nil {
				return
			}
			setErr = replay.Set(f.Name, f.Value.String())
		})
		if setErr != nil {
			return nil, setErr
		}
		cfg = loaded
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Finalize resolves a zero seed, validates and computes derived values.
func (c *Config) Finalize() error {
	if c.Sim.Seed == 0 {
		c.Sim.Seed = time.Now().UnixNano()
	}
	if err := c.Validate(); err != nil {
		return err
	}
	c.computeDerived()
	return nil
}

// Validate reports every violated constraint at once.
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %d", name, v))
		}
	}
	positive("screen width", c.Screen.Width)
	positive("screen height", c.Screen.Height)
	positive("cell size", c.Screen.CellSize)
	positive("ant count", c.Sim.Ants)
	positive("steps per tick", c.Sim.StepsPerTick)
	positive("tick rate", c.Control.TickRate)
	positive("tick rate step", c.Control.TickRateStep)
	positive("telemetry window", c.Telemetry.Window)
	if c.Screen.CellSize > 0 {
		if c.Screen.Width%c.Screen.CellSize != 0 {
			errs = append(errs, fmt.Errorf("screen width %d not divisible by cell size %d", c.Screen.Width, c.Screen.CellSize))
		}
		if c.Screen.Height%c.Screen.CellSize != 0 {
			errs = append(errs, fmt.Errorf("screen height %d not divisible by cell size %d", c.Screen.Height, c.Screen.CellSize))
		}
	}
	if _, ok := core.Sims()[c.Sim.Rule]; !ok {
		errs = append(errs, fmt.Errorf("unknown rule %q (available: %v)", c.Sim.Rule, core.Names()))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

func (c *Config) computeDerived() {
	c.Derived.GridWidth = c.Screen.Width / c.Screen.CellSize
	c.Derived.GridHeight = c.Screen.Height / c.Screen.CellSize
}

// Settings converts the configuration into the values a sim factory needs.
func (c *Config) Settings() core.Settings {
	return core.Settings{
		Width:        c.Derived.GridWidth,
		Height:       c.Derived.GridHeight,
		Ants:         c.Sim.Ants,
		StepsPerTick: c.Sim.StepsPerTick,
		Seed:         c.Sim.Seed,
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
