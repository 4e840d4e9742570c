//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"langton/internal/app"
	"langton/internal/config"
	"langton/internal/core"
	_ "langton/internal/sims/langton"
	"langton/internal/telemetry"
)

func main() {
	var verbose bool
	cfg, err := config.Parse("langton", os.Args[1:], os.Stderr, func(fs *flag.FlagSet) {
		fs.BoolVar(&verbose, "v", false, "debug logging")
	})
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "langton"})
	if err != nil {
		logger.Fatal("configuration", "err", err)
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	sim, err := core.Build(cfg.Sim.Rule, cfg.Settings())
	if err != nil {
		logger.Fatal("building simulation", "err", err)
	}

	out, err := telemetry.NewOutputManager(cfg.Telemetry.OutputDir)
	if err != nil {
		logger.Fatal("telemetry output", "err", err)
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		logger.Fatal("config snapshot", "err", err)
	}
	var perf *telemetry.Recorder
	if verbose || out != nil {
		perf = telemetry.NewRecorder("gui", cfg.Telemetry.Window, cfg.Sim.Ants, cfg.Sim.StepsPerTick, out, logger)
	}

	ctrl := app.NewController(sim, cfg.Sim.Seed, cfg.Control.TickRate, cfg.Control.TickRateStep, logger)
	game := app.New(sim, ctrl, cfg.Screen.CellSize, perf, logger)
	size := sim.Size()

	logger.Info("starting",
		"rule", sim.Name(),
		"grid", size,
		"ants", cfg.Sim.Ants,
		"steps_per_tick", cfg.Sim.StepsPerTick,
		"tps", cfg.Control.TickRate,
		"seed", cfg.Sim.Seed,
	)

	ebiten.SetWindowTitle("Langton's ant")
	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		out.Close()
		logger.Fatal("run", "err", err)
	}
}
